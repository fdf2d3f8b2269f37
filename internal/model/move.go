package model

import "fmt"

// MoveRequest is a client's request to move the piece on From to To.
type MoveRequest struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// Ply is one executed move in the game history.
type Ply struct {
	Piece         PieceView  `json:"piece"`
	From          Square     `json:"from"`
	To            Square     `json:"to"`
	CapturedPiece *PieceView `json:"capturedPiece"`
	Notation      string     `json:"notation"`
}

func newPly(moving Piece, captured Piece, from, to Square) Ply {
	ply := Ply{
		Piece: PieceView{Type: moving.Type(), Player: moving.Player()},
		From:  from,
		To:    to,
	}
	capture := ""
	if captured != nil {
		ply.CapturedPiece = &PieceView{Type: captured.Type(), Player: captured.Player()}
		capture = "x"
	}
	fileSpecifier := ""
	if moving.Type() == Pawn && captured != nil {
		fileSpecifier = string(rune('a' + from.Col))
	}
	ply.Notation = fmt.Sprintf("%s%s%s%s", moving.Type().notation(), fileSpecifier, capture, to)
	return ply
}
