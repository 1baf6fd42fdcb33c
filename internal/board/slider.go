package board

// rayAttacks computes sliding attacks without any lookup table: each ray is
// cut at its nearest blocker by removing the ray that continues past it.
func (t *Tables) rayAttacks(sq Square, occupied Bitboard, dirs []Direction) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		ray := t.rays[sq][d]
		if blockers := ray & occupied; blockers != 0 {
			var blocker Square
			if d.IsForward() {
				blocker = blockers.LSB()
			} else {
				blocker = blockers.MSB()
			}
			ray ^= t.rays[blocker][d]
		}
		attacks |= ray
	}
	return attacks
}

// RayCastAttacks returns bishop, rook or queen attacks computed by walking rays,
// regardless of the index the tables were built with.
func (t *Tables) RayCastAttacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return t.rayAttacks(sq, occupied, diagonalDirections[:])
	case Rook:
		return t.rayAttacks(sq, occupied, orthogonalDirections[:])
	case Queen:
		return t.rayAttacks(sq, occupied, allDirections[:])
	}
	panic("board: RayCastAttacks called with " + pt.String())
}

// MagicEntry returns the lookup entry used for a bishop or rook on sq.
// The zero Magic is returned for ray-cast tables.
func (t *Tables) MagicEntry(pt PieceType, sq Square) Magic {
	switch pt {
	case Bishop:
		return t.bishop.entry(sq)
	case Rook:
		return t.rook.entry(sq)
	}
	panic("board: MagicEntry called with " + pt.String())
}

// SliderTableSize returns the number of attack entries stored for a slider type.
func (t *Tables) SliderTableSize(pt PieceType) int {
	switch pt {
	case Bishop:
		return len(t.bishop.attacks)
	case Rook:
		return len(t.rook.attacks)
	}
	return 0
}
