package board

import "math/bits"

// Magic bitboard implementation for sliding piece attacks.
// Magic multipliers are searched for at startup rather than hard-coded.

// Magic holds the lookup data for a single square.
type Magic struct {
	Mask   Bitboard // Relevant occupancy mask (excludes edges)
	Magic  uint64   // Magic multiplier (unused by the pext index)
	Shift  uint8    // Bits to shift right
	Offset uint32   // Index into the shared attack table
	Length uint32   // Number of table entries owned by this square
}

// sliderTable is one piece type's attack table: a single flat buffer shared by
// all 64 squares, each square owning the window [Offset, Offset+Length).
type sliderTable struct {
	magics  [64]Magic
	attacks []Bitboard
}

// Per-rank PRNG seeds known to converge quickly for 64-bit multipliers.
var magicSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

func (m *Magic) index(occupied Bitboard) uint32 {
	return uint32((uint64(occupied&m.Mask) * m.Magic) >> m.Shift)
}

func (st *sliderTable) magicAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &st.magics[sq]
	return st.attacks[m.Offset+m.index(occupied)]
}

func (st *sliderTable) entry(sq Square) Magic {
	return st.magics[sq]
}

// relevantMask returns the squares whose occupancy can change the slider's
// attack set. Board edges never block anything beyond themselves.
func relevantMask(t *Tables, sq Square, dirs []Direction) Bitboard {
	edges := ((rank1BB | rank8BB) &^ sq.Rank().BB()) | ((fileABB | fileHBB) &^ sq.File().BB())
	return t.rayAttacks(sq, Empty, dirs) &^ edges
}

func sliderDirections(pt PieceType) []Direction {
	if pt == Rook {
		return orthogonalDirections[:]
	}
	return diagonalDirections[:]
}

// enumerateSubsets fills occupancy/reference with every subset of mask and
// its ray-cast attack set, using the carry-rippler walk. Returns the count.
func enumerateSubsets(t *Tables, sq Square, mask Bitboard, dirs []Direction, occupancy, reference []Bitboard) int {
	n := 0
	b := Empty
	for {
		occupancy[n] = b
		reference[n] = t.rayAttacks(sq, b, dirs)
		n++
		b = (b - mask) & mask
		if b == 0 {
			return n
		}
	}
}

// buildMagicTable searches a collision-free multiplier for every square.
func buildMagicTable(t *Tables, pt PieceType) sliderTable {
	var st sliderTable
	dirs := sliderDirections(pt)

	occupancy := make([]Bitboard, 4096)
	reference := make([]Bitboard, 4096)
	epoch := make([]int, 4096)
	count := 0

	for sq := A1; sq <= H8; sq++ {
		m := &st.magics[sq]
		m.Mask = relevantMask(t, sq, dirs)
		m.Shift = uint8(64 - m.Mask.PopCount())
		m.Offset = uint32(len(st.attacks))

		size := enumerateSubsets(t, sq, m.Mask, dirs, occupancy, reference)
		m.Length = uint32(size)
		st.attacks = append(st.attacks, make([]Bitboard, size)...)
		table := st.attacks[m.Offset : m.Offset+m.Length]

		rng := newPRNG(magicSeeds[sq.Rank()])
		for i := 0; i < size; {
			for m.Magic = 0; bits.OnesCount64((m.Magic*uint64(m.Mask))>>56) < 6; {
				m.Magic = rng.sparse()
			}

			// A slot belongs to this attempt iff its epoch equals count,
			// so the scratch never needs clearing between attempts.
			count++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < count {
					epoch[idx] = count
					table[idx] = reference[i]
				} else if table[idx] != reference[i] {
					break
				}
			}
		}
	}
	return st
}
