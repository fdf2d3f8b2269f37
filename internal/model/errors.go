package model

import "errors"

var (
	// ErrPieceNotFound is returned when a piece is not placed on the board.
	ErrPieceNotFound = errors.New("piece not found on board")
	// ErrEmptySquare is returned when a move starts from an empty square.
	ErrEmptySquare = errors.New("no piece at square")
	ErrOffBoard    = errors.New("square is off the board")
	ErrIllegalMove = errors.New("illegal move")
)
