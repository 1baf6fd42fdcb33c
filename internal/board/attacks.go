package board

// Ray returns every square reachable from sq sliding in d on an empty board.
func (t *Tables) Ray(sq Square, d Direction) Bitboard {
	return t.rays[sq][d]
}

// Between returns the squares strictly between a and b along their shared line.
// Returns empty if the squares are not aligned. Symmetric in a and b.
func (t *Tables) Between(a, b Square) Bitboard {
	return t.between[a][b]
}

// Line returns the full edge-to-edge line through two aligned squares.
// Returns empty if squares are not aligned.
func (t *Tables) Line(a, b Square) Bitboard {
	return t.lines[a][b]
}

// Aligned returns true if three squares are on the same line.
func (t *Tables) Aligned(a, b, c Square) bool {
	return t.lines[a][b].Has(c)
}

// KnightAttacks returns the knight attack bitboard for a square.
func (t *Tables) KnightAttacks(sq Square) Bitboard {
	return t.knight[sq]
}

// KingAttacks returns the king attack bitboard for a square.
func (t *Tables) KingAttacks(sq Square) Bitboard {
	return t.king[sq]
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func (t *Tables) PawnAttacks(sq Square, c Color) Bitboard {
	return t.pawn[c][sq]
}

// BishopAttacks returns the bishop attack bitboard for a square with given occupancy.
func (t *Tables) BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	switch t.index {
	case SliderMagic:
		return t.bishop.magicAttacks(sq, occupied)
	case SliderPext:
		return t.bishop.pextAttacks(sq, occupied)
	}
	return t.rayAttacks(sq, occupied, diagonalDirections[:])
}

// RookAttacks returns the rook attack bitboard for a square with given occupancy.
func (t *Tables) RookAttacks(sq Square, occupied Bitboard) Bitboard {
	switch t.index {
	case SliderMagic:
		return t.rook.magicAttacks(sq, occupied)
	case SliderPext:
		return t.rook.pextAttacks(sq, occupied)
	}
	return t.rayAttacks(sq, occupied, orthogonalDirections[:])
}

// QueenAttacks returns the queen attack bitboard for a square with given occupancy.
func (t *Tables) QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return t.BishopAttacks(sq, occupied) | t.RookAttacks(sq, occupied)
}

// Attacks returns the attack set of a piece of type pt standing on sq.
// Pawn attacks need a color and are not handled here.
func (t *Tables) Attacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return t.knight[sq]
	case Bishop:
		return t.BishopAttacks(sq, occupied)
	case Rook:
		return t.RookAttacks(sq, occupied)
	case Queen:
		return t.QueenAttacks(sq, occupied)
	case King:
		return t.king[sq]
	}
	panic("board: Attacks called with " + pt.String())
}

// AttackersTo returns a bitboard of all pieces of either color attacking a square.
func (p *Position) AttackersTo(sq Square, occupied Bitboard) Bitboard {
	t := p.tables
	return (t.pawn[Black][sq] & p.Pieces(Pawn, White)) |
		(t.pawn[White][sq] & p.Pieces(Pawn, Black)) |
		(t.knight[sq] & p.pieces[Knight]) |
		(t.king[sq] & p.pieces[King]) |
		(t.BishopAttacks(sq, occupied) & (p.pieces[Bishop] | p.pieces[Queen])) |
		(t.RookAttacks(sq, occupied) & (p.pieces[Rook] | p.pieces[Queen]))
}

// IsSquareAttacked returns true if the square is attacked by the given color.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	return p.AttackersTo(sq, p.Occupied())&p.colors[by] != 0
}
