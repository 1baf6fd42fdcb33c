package board

import (
	"iter"
	"math/bits"
	"strings"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit 0 = A1, Bit 7 = H1, Bit 56 = A8, Bit 63 = H8 (Little-Endian Rank-File Mapping).
type Bitboard uint64

const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF

	fileABB Bitboard = 0x0101010101010101
	fileHBB Bitboard = 0x8080808080808080
	rank1BB Bitboard = 0x00000000000000FF
	rank8BB Bitboard = 0xFF00000000000000

	NotFileA Bitboard = ^fileABB
	NotFileH Bitboard = ^fileHBB
)

// FileMask holds the bitboard of every file.
var FileMask = [8]Bitboard{
	fileABB, fileABB << 1, fileABB << 2, fileABB << 3,
	fileABB << 4, fileABB << 5, fileABB << 6, fileABB << 7,
}

// RankMask holds the bitboard of every rank.
var RankMask = [8]Bitboard{
	rank1BB, rank1BB << 8, rank1BB << 16, rank1BB << 24,
	rank1BB << 32, rank1BB << 40, rank1BB << 48, rank1BB << 56,
}

// BB returns the bitboard of the whole file.
func (f File) BB() Bitboard {
	return FileMask[f]
}

// BB returns the bitboard of the whole rank.
func (r Rank) BB() Bitboard {
	return RankMask[r]
}

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// Has returns true if the bit at the given square is set.
func (b Bitboard) Has(sq Square) bool {
	return b&(1<<sq) != 0
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// MoreThanOne reports whether at least two bits are set.
func (b Bitboard) MoreThanOne() bool {
	return b&(b-1) != 0
}

// LSB returns the least significant bit (lowest square index).
// Panics on an empty bitboard.
func (b Bitboard) LSB() Square {
	if b == 0 {
		panic("board: LSB of empty bitboard")
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the most significant bit (highest square index).
// Panics on an empty bitboard.
func (b Bitboard) MSB() Square {
	if b == 0 {
		panic("board: MSB of empty bitboard")
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Shift moves every set square one step in the given direction.
// Squares that would wrap around the a/h files or leave the board are dropped.
func (b Bitboard) Shift(d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b << 1) & NotFileA
	case West:
		return (b >> 1) & NotFileH
	case NorthEast:
		return (b << 9) & NotFileA
	case NorthWest:
		return (b << 7) & NotFileH
	case SouthEast:
		return (b >> 7) & NotFileA
	case SouthWest:
		return (b >> 9) & NotFileH
	}
	panic("board: invalid direction")
}

// All iterates the set squares in ascending order.
func (b Bitboard) All() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for b != 0 {
			if !yield(b.PopLSB()) {
				return
			}
		}
	}
}

// Backward iterates the set squares in descending order.
func (b Bitboard) Backward() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for b != 0 {
			sq := b.MSB()
			b ^= SquareBB(sq)
			if !yield(sq) {
				return
			}
		}
	}
}

// Squares returns a slice of all squares that are set.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}

// String returns a visual representation of the bitboard.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := Rank8; ; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for file := FileA; file <= FileH; file++ {
			if b.Has(NewSquare(file, rank)) {
				sb.WriteString("X ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
		if rank == Rank1 {
			break
		}
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
