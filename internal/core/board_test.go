package core

import "testing"

func TestDefaultBoardGeometry(t *testing.T) {
	b := DefaultBoard()

	if got := b.Cols(); got != 10 {
		t.Errorf("Cols() = %d, expected 10", got)
	}
	if got := b.TotalPegs(); got != 50 {
		t.Errorf("TotalPegs() = %d, expected 50", got)
	}
}

func TestBoardPegPosition(t *testing.T) {
	b := DefaultBoard()

	tests := []struct {
		idx  int
		x, y int
	}{
		{0, 4, 4},
		{1, 17, 4},
		{9, 121, 4},
		{10, 4, 17},
		{15, 69, 17},
		{42, 30, 56},
		{49, 121, 56},
	}

	for _, tc := range tests {
		x, y := b.PegPosition(tc.idx)
		if x != tc.x || y != tc.y {
			t.Errorf("PegPosition(%d) = (%d, %d), expected (%d, %d)", tc.idx, x, y, tc.x, tc.y)
		}
	}
}

func TestBoardValidPeg(t *testing.T) {
	b := DefaultBoard()

	tests := []struct {
		idx      int
		expected bool
	}{
		{-1, false},
		{0, false}, // start peg
		{1, true},
		{49, true},
		{50, false},
	}

	for _, tc := range tests {
		if got := b.ValidPeg(tc.idx); got != tc.expected {
			t.Errorf("ValidPeg(%d) = %v, expected %v", tc.idx, got, tc.expected)
		}
	}
}

func TestBoardDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		total int
	}{
		{"zero spacing", Board{ScreenW: 128, PegSpacing: 0, PegMargin: 4, PegRows: 5}, 0},
		{"no rows", Board{ScreenW: 128, PegSpacing: 13, PegMargin: 4, PegRows: 0}, 0},
		{"single column", Board{ScreenW: 8, PegSpacing: 13, PegMargin: 4, PegRows: 2}, 2},
		{"margins wider than screen", Board{ScreenW: 4, PegSpacing: 13, PegMargin: 4, PegRows: 5}, 0},
		{"margins exactly fill screen", Board{ScreenW: 8, PegSpacing: 13, PegMargin: 4, PegRows: 5}, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.board.TotalPegs(); got != tc.total {
				t.Errorf("TotalPegs() = %d, expected %d (Cols() = %d)", got, tc.total, tc.board.Cols())
			}
			if tc.total == 0 && tc.board.ValidPeg(1) {
				t.Error("ValidPeg(1) should be false on a board with no pegs")
			}
		})
	}
}
