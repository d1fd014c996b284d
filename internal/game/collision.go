package game

// IsLegal reports whether every cell of p lies inside the board and is
// empty. It is the only check applied before any piece or board mutation.
func IsLegal(b *Board, p Piece) bool {
	for _, c := range p.Cells() {
		if !b.InBounds(c.Col, c.Row) {
			return false
		}
		if b.cells[c.Row][c.Col].Filled {
			return false
		}
	}
	return true
}

// resolveRotation tries the rotated piece in place and then shifted by
// each kick column offset in order. It returns the first legal placement.
func resolveRotation(b *Board, rotated Piece, kicks []int) (Piece, bool) {
	if IsLegal(b, rotated) {
		return rotated, true
	}
	for _, dx := range kicks {
		if kicked := rotated.Translated(dx, 0); IsLegal(b, kicked) {
			return kicked, true
		}
	}
	return Piece{}, false
}
