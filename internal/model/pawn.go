package model

// AvailableMoves returns, in order: one step forward, two steps forward from
// the starting row, the left capture and the right capture. A pawn on its far
// rank has no moves since promotion is not modelled.
func (p *PawnPiece) AvailableMoves(b *Board) ([]Square, error) {
	current, err := b.FindPiece(p)
	if err != nil {
		return nil, err
	}

	moves := []Square{}
	if p.isAtEndOfBoard(current) {
		return moves, nil
	}

	dir := p.player.forward()
	if !p.isPieceInFront(b, current) {
		moves = append(moves, current.Offset(dir, 0))
		// Both squares in front must be empty for the double step.
		twoStep := current.Offset(2*dir, 0)
		if current.Row == p.startRow() && !b.IsOccupied(twoStep) {
			moves = append(moves, twoStep)
		}
	}

	if left := p.diagonalLeft(current); p.canCapture(b, left) {
		moves = append(moves, left)
	}
	if right := p.diagonalRight(current); p.canCapture(b, right) {
		moves = append(moves, right)
	}
	return moves, nil
}

func (p *PawnPiece) startRow() int {
	if p.player == White {
		return 1
	}
	return 6
}

func (p *PawnPiece) isAtEndOfBoard(current Square) bool {
	return (p.player == White && current.Row == 7) || (p.player == Black && current.Row == 0)
}

func (p *PawnPiece) isPieceInFront(b *Board, current Square) bool {
	return b.IsOccupied(current.Offset(p.player.forward(), 0))
}

// Left and right are seen from the pawn's side of the board, so they mirror
// between White and Black.
func (p *PawnPiece) diagonalLeft(current Square) Square {
	dir := p.player.forward()
	return current.Offset(dir, -dir)
}

func (p *PawnPiece) diagonalRight(current Square) Square {
	dir := p.player.forward()
	return current.Offset(dir, dir)
}

func (p *PawnPiece) canCapture(b *Board, target Square) bool {
	occupant, ok := b.GetPiece(target)
	return ok && occupant.Player() == p.player.Opponent()
}
