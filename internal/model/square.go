package model

import "fmt"

const boardSize = 8

// Square is a (row, col) coordinate. Rows run from White's back rank (0) to
// Black's back rank (7). A Square outside [0,7] is off-board: it is never
// occupied and never reachable.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// At returns the square at row, col. Out-of-range coordinates are allowed.
func At(row, col int) Square {
	return Square{Row: row, Col: col}
}

func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < boardSize && s.Col >= 0 && s.Col < boardSize
}

// Offset returns the square dRow rows and dCol columns away.
func (s Square) Offset(dRow, dCol int) Square {
	return At(s.Row+dRow, s.Col+dCol)
}

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col, s.Row+1)
}
