// levelgen writes the binary level file loaded by the Flip Doctor game.
//
// Usage:
//
//	levelgen [file]          - Write a random level (default: level.bin)
//	levelgen --fixed [file]  - Write the hand-authored level
//	levelgen history         - Show recently recorded levels
//
// Global flags:
//
//	--db <path>   - History database path (default: ~/.flipdoctor/levels.db)
//	--quiet       - Only log warnings and errors
//	--verbose     - Log debug details
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// globalOptions are shared by every subcommand.
type globalOptions struct {
	dbPath  string
	quiet   bool
	verbose bool
}

func main() {
	logger := newLogger()
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("levelgen failed", "error", err)
		os.Exit(1)
	}
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "levelgen",
	})
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	global := &globalOptions{}
	gen := &generateOptions{}

	root := &cobra.Command{
		Use:   "levelgen [file]",
		Short: "Generate Flip Doctor level files",
		Long: `levelgen writes the 28-byte level file read by the Flip Doctor game.

By default a random level is written to level.bin in the current directory.
The goal and enemy are placed on distinct pegs (never the start peg) and a
wall is dropped near the middle of the screen.

Examples:
  levelgen
  levelgen /media/sd/apps_data/flip_doctor/level.bin
  levelgen --seed 1234 --preview
  levelgen --fixed
  levelgen --fixed --goal 20 --enemy 33 --wall 40,10,6,30
  levelgen --record && levelgen history`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			switch {
			case global.quiet:
				logger.SetLevel(log.WarnLevel)
			case global.verbose:
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				gen.path = args[0]
			}
			gen.wallSet = cmd.Flags().Changed("wall")
			gen.goalSet = cmd.Flags().Changed("goal")
			gen.enemySet = cmd.Flags().Changed("enemy")
			return runGenerate(cmd.OutOrStdout(), logger, global, gen)
		},
	}

	root.PersistentFlags().StringVar(&global.dbPath, "db", "~/.flipdoctor/levels.db", "Path to level history database")
	root.PersistentFlags().BoolVarP(&global.quiet, "quiet", "q", false, "Only log warnings and errors")
	root.PersistentFlags().BoolVarP(&global.verbose, "verbose", "v", false, "Log debug details")
	root.MarkFlagsMutuallyExclusive("quiet", "verbose")

	gen.bindFlags(root)

	root.AddCommand(newHistoryCmd(logger, global))

	return root
}
