package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flipdoctor-levelgen/internal/storage"
)

func newHistoryCmd(logger *log.Logger, global *globalOptions) *cobra.Command {
	var limit int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently recorded levels",
		Long: `Display levels written with --record, newest first.

Examples:
  levelgen history
  levelgen history --limit 5
  levelgen history --seed 1234`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.Open(global.dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			var entries []storage.LevelEntry
			if cmd.Flags().Changed("seed") {
				entries, err = store.LevelsBySeed(seed)
			} else {
				entries, err = store.RecentLevels(limit)
			}
			if err != nil {
				return err
			}
			logger.Debug("history loaded", "db", global.dbPath, "entries", len(entries))

			printHistory(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of levels to show")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Only show levels generated from this seed")

	return cmd
}

func printHistory(out io.Writer, entries []storage.LevelEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No levels recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'levelgen --record' to start a history.")
		return
	}

	fmt.Fprintf(out, "  %-16s  %-6s  %-20s  %-4s  %-5s  %-15s  %s\n", "Date", "Mode", "Seed", "Goal", "Enemy", "Wall", "Path")
	fmt.Fprintf(out, "  %-16s  %-6s  %-20s  %-4s  %-5s  %-15s  %s\n", "----", "----", "----", "----", "-----", "----", "----")

	for _, e := range entries {
		r := e.Record
		seed := "-"
		if e.Mode == storage.ModeRandom {
			seed = fmt.Sprint(e.Seed)
		}
		wall := fmt.Sprintf("%d,%d %dx%d", r.WallX, r.WallY, r.WallW, r.WallH)
		fmt.Fprintf(out, "  %-16s  %-6s  %-20s  %-4d  %-5d  %-15s  %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Mode, seed, r.GoalIdx, r.EnemyIdx, wall, e.Path)
	}
}
