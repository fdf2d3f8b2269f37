package model

import "fmt"

// Board maps squares to at most one piece each. Pieces are found by pointer
// identity, so two pawns of the same player are never confused.
type Board struct {
	squares [boardSize][boardSize]Piece
}

// PieceView is the JSON form of an occupant.
type PieceView struct {
	Type   PieceType `json:"type"`
	Player Player    `json:"player"`
}

func NewBoard() *Board {
	return &Board{}
}

// NewStartingBoard returns a board set up in the standard starting position.
func NewStartingBoard() *Board {
	b := NewBoard()
	for _, player := range []Player{White, Black} {
		backRank := []Piece{
			NewRook(player), NewKnight(player), NewBishop(player), NewQueen(player),
			NewKing(player), NewBishop(player), NewKnight(player), NewRook(player),
		}
		row, pawnRow := 0, 1
		if player == Black {
			row, pawnRow = 7, 6
		}
		for col, p := range backRank {
			b.squares[row][col] = p
			b.squares[pawnRow][col] = NewPawn(player)
		}
	}
	return b
}

// FindPiece returns the square p stands on, or ErrPieceNotFound.
func (b *Board) FindPiece(p Piece) (Square, error) {
	if p == nil {
		return Square{}, fmt.Errorf("nil piece: %w", ErrPieceNotFound)
	}
	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			if b.squares[row][col] == p {
				return At(row, col), nil
			}
		}
	}
	return Square{}, fmt.Errorf("%s %s: %w", p.Player(), p.Type(), ErrPieceNotFound)
}

// GetPiece returns the occupant of sq. Off-board squares are reported empty.
func (b *Board) GetPiece(sq Square) (Piece, bool) {
	if !sq.OnBoard() {
		return nil, false
	}
	p := b.squares[sq.Row][sq.Col]
	return p, p != nil
}

// IsOccupied reports whether any piece stands on sq.
func (b *Board) IsOccupied(sq Square) bool {
	_, ok := b.GetPiece(sq)
	return ok
}

// SetPiece places p on sq, replacing any occupant. A piece already on the
// board is lifted from its old square first. A nil p clears sq.
func (b *Board) SetPiece(sq Square, p Piece) error {
	if !sq.OnBoard() {
		return fmt.Errorf("place on %s: %w", sq, ErrOffBoard)
	}
	if p != nil {
		if old, err := b.FindPiece(p); err == nil {
			b.squares[old.Row][old.Col] = nil
		}
	}
	b.squares[sq.Row][sq.Col] = p
	return nil
}

// MovePiece moves the occupant of from to to. Whatever stood on to is
// captured and returned.
func (b *Board) MovePiece(from, to Square) (Piece, error) {
	if !from.OnBoard() || !to.OnBoard() {
		return nil, fmt.Errorf("move %s to %s: %w", from, to, ErrOffBoard)
	}
	moving := b.squares[from.Row][from.Col]
	if moving == nil {
		return nil, fmt.Errorf("move from %s: %w", from, ErrEmptySquare)
	}
	captured := b.squares[to.Row][to.Col]
	b.squares[to.Row][to.Col] = moving
	b.squares[from.Row][from.Col] = nil
	return captured, nil
}

// Snapshot returns a JSON friendly copy of the grid, indexed [row][col].
func (b *Board) Snapshot() [][]*PieceView {
	grid := make([][]*PieceView, boardSize)
	for row := 0; row < boardSize; row++ {
		grid[row] = make([]*PieceView, boardSize)
		for col := 0; col < boardSize; col++ {
			if p := b.squares[row][col]; p != nil {
				grid[row][col] = &PieceView{Type: p.Type(), Player: p.Player()}
			}
		}
	}
	return grid
}
