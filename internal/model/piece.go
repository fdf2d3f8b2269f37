package model

import "fmt"

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (t PieceType) notation() string {
	switch t {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

// Piece is a chess piece owned by a Player. A piece does not know where it
// stands; its square is looked up on the board each time it is needed, keyed
// by the piece's pointer identity.
type Piece interface {
	Player() Player
	Type() PieceType
	// AvailableMoves returns every square the piece could move to next,
	// considering only occupancy. It does not modify the board.
	AvailableMoves(b *Board) ([]Square, error)
}

// NewPiece creates a piece of the given type for player.
func NewPiece(t PieceType, player Player) (Piece, error) {
	base := piece{player: player}
	switch t {
	case Pawn:
		return &PawnPiece{base}, nil
	case Knight:
		return &KnightPiece{base}, nil
	case Bishop:
		return &BishopPiece{base}, nil
	case Rook:
		return &RookPiece{base}, nil
	case Queen:
		return &QueenPiece{base}, nil
	case King:
		return &KingPiece{base}, nil
	}
	return nil, fmt.Errorf("unknown piece type %q", t)
}

// MoveTo relocates p to newSquare without checking that newSquare is one of
// its available moves. It fails with ErrPieceNotFound if p is not on b.
func MoveTo(p Piece, b *Board, newSquare Square) error {
	current, err := b.FindPiece(p)
	if err != nil {
		return err
	}
	_, err = b.MovePiece(current, newSquare)
	return err
}

type piece struct {
	player Player
}

func (p piece) Player() Player { return p.player }

// PawnPiece moves forward one square, two from its starting row, and captures
// one square diagonally forward.
type PawnPiece struct{ piece }

func NewPawn(player Player) *PawnPiece { return &PawnPiece{piece{player}} }

func (*PawnPiece) Type() PieceType { return Pawn }

type KnightPiece struct{ piece }

func NewKnight(player Player) *KnightPiece { return &KnightPiece{piece{player}} }

func (*KnightPiece) Type() PieceType { return Knight }

// AvailableMoves is not implemented yet (L-shaped jumps) and returns no squares.
func (*KnightPiece) AvailableMoves(*Board) ([]Square, error) { return []Square{}, nil }

type BishopPiece struct{ piece }

func NewBishop(player Player) *BishopPiece { return &BishopPiece{piece{player}} }

func (*BishopPiece) Type() PieceType { return Bishop }

// AvailableMoves is not implemented yet (diagonal rays) and returns no squares.
func (*BishopPiece) AvailableMoves(*Board) ([]Square, error) { return []Square{}, nil }

type RookPiece struct{ piece }

func NewRook(player Player) *RookPiece { return &RookPiece{piece{player}} }

func (*RookPiece) Type() PieceType { return Rook }

// AvailableMoves is not implemented yet (straight rays) and returns no squares.
func (*RookPiece) AvailableMoves(*Board) ([]Square, error) { return []Square{}, nil }

type QueenPiece struct{ piece }

func NewQueen(player Player) *QueenPiece { return &QueenPiece{piece{player}} }

func (*QueenPiece) Type() PieceType { return Queen }

// AvailableMoves is not implemented yet (diagonal and straight rays) and returns no squares.
func (*QueenPiece) AvailableMoves(*Board) ([]Square, error) { return []Square{}, nil }

type KingPiece struct{ piece }

func NewKing(player Player) *KingPiece { return &KingPiece{piece{player}} }

func (*KingPiece) Type() PieceType { return King }

// AvailableMoves is not implemented yet (single steps in any direction) and returns no squares.
func (*KingPiece) AvailableMoves(*Board) ([]Square, error) { return []Square{}, nil }
