package core

// Board describes the peg layout compiled into the game client.
// Values must match the client exactly or generated indices point at the wrong pegs.
type Board struct {
	ScreenW    int `yaml:"screen_w"`    // Display width in pixels
	ScreenH    int `yaml:"screen_h"`    // Display height in pixels
	PegSpacing int `yaml:"peg_spacing"` // Distance between neighbouring pegs
	PegMargin  int `yaml:"peg_margin"`  // Offset of the first peg from the top-left edge
	PegRows    int `yaml:"peg_rows"`    // Number of peg rows
}

// DefaultBoard returns the layout used by the Flipper build of the game.
func DefaultBoard() Board {
	return Board{
		ScreenW:    128,
		ScreenH:    64,
		PegSpacing: 13,
		PegMargin:  4,
		PegRows:    5,
	}
}

// Cols returns the number of pegs in one row.
func (b Board) Cols() int {
	span := b.ScreenW - 2*b.PegMargin
	if b.PegSpacing <= 0 || span < 0 {
		return 0
	}
	return span/b.PegSpacing + 1
}

// TotalPegs returns the size of the client's peg array.
func (b Board) TotalPegs() int {
	cols := b.Cols()
	if cols <= 0 || b.PegRows <= 0 {
		return 0
	}
	return cols * b.PegRows
}

// PegPosition returns the pixel position of peg idx.
// Pegs are laid out row by row; index 0 is the start peg.
func (b Board) PegPosition(idx int) (x, y int) {
	cols := b.Cols()
	if cols <= 0 {
		return 0, 0
	}
	return b.PegMargin + (idx%cols)*b.PegSpacing, b.PegMargin + (idx/cols)*b.PegSpacing
}

// ValidPeg reports whether idx can hold a goal or an enemy.
func (b Board) ValidPeg(idx int) bool {
	return idx >= 1 && idx < b.TotalPegs()
}

// Bounds returns the screen as a rectangle.
func (b Board) Bounds() Rect {
	return NewRect(0, 0, b.ScreenW, b.ScreenH)
}
