// Package preview draws a generated level as text so it can be checked
// before the file is copied to the device.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flipdoctor-levelgen/internal/core"
	"github.com/vovakirdan/flipdoctor-levelgen/internal/level"
)

// RowsPerLine is how many pixel rows share one line of output.
// Terminal cells are roughly twice as tall as they are wide.
const RowsPerLine = 2

// Glyphs used on the preview.
const (
	GlyphPeg   = 'o'
	GlyphStart = 'S'
	GlyphGoal  = 'G'
	GlyphEnemy = 'E'
	GlyphWall  = '#'
)

// Render draws the board and the level onto a new screen one column per
// pixel and one line per RowsPerLine pixel rows. The wall is clipped to the
// screen; special pegs are drawn over the wall so they stay visible.
func Render(board core.Board, r level.Record) *core.Screen {
	lines := (board.ScreenH + RowsPerLine - 1) / RowsPerLine
	s := core.NewScreen(board.ScreenW, lines)

	wall := r.Wall().Intersect(board.Bounds())
	if !wall.Empty() {
		top := wall.Y / RowsPerLine
		bottom := (wall.Bottom() - 1) / RowsPerLine
		s.DrawRect(core.NewRect(wall.X, top, wall.W, bottom-top+1), GlyphWall, core.ColorYellow)
	}

	for i := 0; i < board.TotalPegs(); i++ {
		glyph, color := GlyphPeg, core.ColorGray
		switch i {
		case 0:
			glyph, color = GlyphStart, core.ColorCyan
		case int(r.GoalIdx):
			glyph, color = GlyphGoal, core.ColorGreen
		case int(r.EnemyIdx):
			glyph, color = GlyphEnemy, core.ColorRed
		default:
			// Plain pegs hidden behind the wall are not drawn.
			if x, y := board.PegPosition(i); wall.Contains(x, y) {
				continue
			}
		}
		x, y := board.PegPosition(i)
		s.Set(x, y/RowsPerLine, glyph, color)
	}

	return s
}

var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

var frameStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240"))

// Styled converts a screen to coloured text framed by a border.
// Adjacent cells with the same colour share one escape sequence.
func Styled(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return frameStyle.Render(sb.String())
}

// Plain converts a screen to uncoloured text with an ASCII frame.
func Plain(s *core.Screen) string {
	var sb strings.Builder
	edge := "+" + strings.Repeat("-", s.Width()) + "+"
	sb.WriteString(edge)
	for y := 0; y < s.Height(); y++ {
		sb.WriteString("\n|")
		sb.WriteString(s.Row(y))
		sb.WriteString("|")
	}
	sb.WriteString("\n")
	sb.WriteString(edge)
	return sb.String()
}

// Legend explains the glyphs.
func Legend() string {
	return "S start  G goal  E enemy  o peg  # wall"
}
