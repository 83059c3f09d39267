package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flipdoctor-levelgen/internal/config"
	"github.com/vovakirdan/flipdoctor-levelgen/internal/level"
	"github.com/vovakirdan/flipdoctor-levelgen/internal/preview"
	"github.com/vovakirdan/flipdoctor-levelgen/internal/storage"
)

type generateOptions struct {
	path    string
	seed    uint64
	fixed   bool
	goal    int32
	enemy   int32
	wall    []int
	preview bool
	record  bool

	goalSet, enemySet, wallSet bool
}

func (o *generateOptions) bindFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Uint64Var(&o.seed, "seed", 0, "RNG seed (0 = random based on time)")
	f.BoolVar(&o.fixed, "fixed", false, "Write the hand-authored level instead of a random one")
	f.Int32Var(&o.goal, "goal", 0, "Goal peg index (with --fixed)")
	f.Int32Var(&o.enemy, "enemy", 0, "Enemy peg index (with --fixed)")
	f.IntSliceVar(&o.wall, "wall", nil, "Wall as x,y,w,h (with --fixed)")
	f.BoolVar(&o.preview, "preview", false, "Print a picture of the level")
	f.BoolVar(&o.record, "record", false, "Record the level in the history database")
}

var wallFields = [4]string{"x", "y", "w", "h"}

// buildRecord returns the level to write and the seed it came from
// (zero for fixed levels).
func (o *generateOptions) buildRecord(cfg config.Config, logger *log.Logger) (level.Record, uint64, error) {
	if !o.fixed {
		if o.goalSet || o.enemySet || o.wallSet {
			return level.Record{}, 0, fmt.Errorf("--goal, --enemy and --wall require --fixed")
		}
		seed := o.seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		logger.Debug("generating random level", "seed", seed, "pegs", cfg.Board.TotalPegs())
		r, err := level.GenerateSeeded(cfg, seed)
		if err != nil {
			return level.Record{}, 0, err
		}
		return r, seed, nil
	}

	r := level.Fixed()
	if o.goalSet {
		r.GoalIdx = o.goal
	}
	if o.enemySet {
		r.EnemyIdx = o.enemy
	}
	if o.wallSet {
		if len(o.wall) != 4 {
			return level.Record{}, 0, fmt.Errorf("--wall needs 4 values x,y,w,h, got %d", len(o.wall))
		}
		for i, v := range o.wall {
			if v < math.MinInt32 || v > math.MaxInt32 {
				return level.Record{}, 0, fmt.Errorf("--wall value %d (%s) does not fit in 32 bits", v, wallFields[i])
			}
		}
		r.WallX, r.WallY, r.WallW, r.WallH = int32(o.wall[0]), int32(o.wall[1]), int32(o.wall[2]), int32(o.wall[3])
	}
	if err := r.Validate(cfg.Board); err != nil {
		return level.Record{}, 0, err
	}
	return r, 0, nil
}

func runGenerate(out io.Writer, logger *log.Logger, global *globalOptions, o *generateOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path := o.path
	if path == "" {
		path = cfg.Output.Filename
	}

	r, seed, err := o.buildRecord(cfg, logger)
	if err != nil {
		return err
	}

	if err := level.Save(path, r); err != nil {
		return err
	}
	logger.Info("level written", "path", path, "bytes", level.RecordSize, "seed", seed)

	fmt.Fprint(out, level.Summary(path, r))

	if o.preview {
		screen := preview.Render(cfg.Board, r)
		if isTerminal(out) {
			fmt.Fprintln(out, preview.Styled(screen))
		} else {
			fmt.Fprintln(out, preview.Plain(screen))
		}
		fmt.Fprintln(out, preview.Legend())
	}

	if o.record {
		mode := storage.ModeRandom
		if o.fixed {
			mode = storage.ModeFixed
		}
		recordHistory(logger, global.dbPath, storage.LevelEntry{
			Path:   path,
			Seed:   seed,
			Mode:   mode,
			Record: r,
		})
	}

	return nil
}

// recordHistory stores a written level. The level file is already complete,
// so history failures are reported but do not fail the run.
func recordHistory(logger *log.Logger, dbPath string, e storage.LevelEntry) {
	store, err := storage.Open(dbPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveLevel(e)
	if err != nil {
		logger.Warn("could not record level", "error", err)
		return
	}
	logger.Debug("level recorded", "id", id, "db", dbPath)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
