package level

import (
	"fmt"
	"strings"
)

// Summary describes a written level in the three lines printed after a run.
func Summary(path string, r Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Level generated: %s\n", path)
	fmt.Fprintf(&sb, "Goal Peg: %d | Enemy Peg: %d\n", r.GoalIdx, r.EnemyIdx)
	fmt.Fprintf(&sb, "Wall: x=%d, y=%d, w=%d, h=%d\n", r.WallX, r.WallY, r.WallW, r.WallH)
	return sb.String()
}
