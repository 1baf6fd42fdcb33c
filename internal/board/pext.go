package board

import "math/bits"

// pext extracts the bits of x selected by mask and packs them into the low
// bits of the result, lowest mask bit first.
// Go exposes no BMI2 intrinsic, so this is the portable loop.
func pext(x, mask uint64) uint64 {
	var res uint64
	for i := uint(0); mask != 0; i++ {
		bit := uint(bits.TrailingZeros64(mask))
		res |= ((x >> bit) & 1) << i
		mask &= mask - 1
	}
	return res
}

func (st *sliderTable) pextAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &st.magics[sq]
	return st.attacks[m.Offset+uint32(pext(uint64(occupied), uint64(m.Mask)))]
}

// buildPextTable lays out the same masks and reference attacks as the magic
// table, indexed by bit extraction instead of a searched multiplier.
func buildPextTable(t *Tables, pt PieceType) sliderTable {
	var st sliderTable
	dirs := sliderDirections(pt)

	occupancy := make([]Bitboard, 4096)
	reference := make([]Bitboard, 4096)

	for sq := A1; sq <= H8; sq++ {
		m := &st.magics[sq]
		m.Mask = relevantMask(t, sq, dirs)
		m.Shift = uint8(64 - m.Mask.PopCount())
		m.Offset = uint32(len(st.attacks))

		size := enumerateSubsets(t, sq, m.Mask, dirs, occupancy, reference)
		m.Length = uint32(size)
		st.attacks = append(st.attacks, make([]Bitboard, size)...)
		table := st.attacks[m.Offset : m.Offset+m.Length]
		for i := 0; i < size; i++ {
			table[pext(uint64(occupancy[i]), uint64(m.Mask))] = reference[i]
		}
	}
	return st
}
