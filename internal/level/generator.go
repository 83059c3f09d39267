package level

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/flipdoctor-levelgen/internal/config"
	"github.com/vovakirdan/flipdoctor-levelgen/internal/core"
)

// MinPegs is the smallest board that fits the start peg, a goal and an enemy.
const MinPegs = 3

// ErrBoardTooSmall is returned when the board cannot hold distinct goal and
// enemy pegs next to the start peg.
var ErrBoardTooSmall = errors.New("level: board too small")

// Generate draws a random record for board.
//
// The goal is uniform over pegs 1..TotalPegs-1 and the enemy is uniform over
// the same pegs minus the goal. Wall fields are drawn independently from
// ranges in the order width, height, x, y.
func Generate(board core.Board, ranges config.WallRanges, rng *core.RNG) (Record, error) {
	total := board.TotalPegs()
	if total < MinPegs {
		return Record{}, fmt.Errorf("%w: %d pegs, need at least %d", ErrBoardTooSmall, total, MinPegs)
	}

	goal := rng.IntRange(1, total-1)

	// Pick among the total-2 remaining slots, then step over the goal.
	enemy := rng.IntRange(1, total-2)
	if enemy >= goal {
		enemy++
	}

	wallW := rng.IntRange(ranges.Width.Min, ranges.Width.Max)
	wallH := rng.IntRange(ranges.Height.Min, ranges.Height.Max)
	wallX := rng.IntRange(ranges.X.Min, ranges.X.Max)
	wallY := rng.IntRange(ranges.Y.Min, ranges.Y.Max)

	return Record{
		Magic:    Magic,
		GoalIdx:  int32(goal),
		EnemyIdx: int32(enemy),
		WallX:    int32(wallX),
		WallY:    int32(wallY),
		WallW:    int32(wallW),
		WallH:    int32(wallH),
	}, nil
}

// GenerateSeeded is Generate with a fresh RNG for seed.
func GenerateSeeded(cfg config.Config, seed uint64) (Record, error) {
	return Generate(cfg.Board, cfg.Wall, core.NewRNG(seed))
}
