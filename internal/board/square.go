// Package board implements chess board representation using bitboards.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// File is a board column, 0=a through 7=h.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank is a board row, 0=1st rank through 7=8th rank.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// NewSquare creates a square from file and rank.
func NewSquare(file File, rank Rank) Square {
	return Square(rank)<<3 | Square(file)
}

// File returns the file (column) of the square.
func (sq Square) File() File {
	return File(sq & 7)
}

// Rank returns the rank (row) of the square.
func (sq Square) Rank() Rank {
	return Rank(sq >> 3)
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(sq.File()), '1'+byte(sq.Rank()))
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	return NewSquare(File(s[0]-'a'), Rank(s[1]-'1')), nil
}

// Relative returns the rank from a given color's perspective.
// For White, Rank1 is the 1st rank; for Black, Rank1 is the 8th rank.
func (r Rank) Relative(c Color) Rank {
	if c == White {
		return r
	}
	return Rank8 - r
}

// RelativeRank returns the rank of the square from c's side of the board.
func (sq Square) RelativeRank(c Color) Rank {
	return sq.Rank().Relative(c)
}

// Distance returns the king-move distance between two squares.
func (sq Square) Distance(other Square) int {
	df := absDiff(int(sq.File()), int(other.File()))
	dr := absDiff(int(sq.Rank()), int(other.Rank()))
	return max(df, dr)
}

// SameLine reports whether two distinct squares share a rank, file or diagonal.
func (sq Square) SameLine(other Square) bool {
	if sq == other {
		return false
	}
	_, ok := sq.DirTo(other)
	return ok
}

// DirTo returns the direction leading from sq towards other, if they share a line.
func (sq Square) DirTo(other Square) (Direction, bool) {
	if sq == other {
		return North, false
	}
	df := int(other.File()) - int(sq.File())
	dr := int(other.Rank()) - int(sq.Rank())
	if df != 0 && dr != 0 && absDiff(df, 0) != absDiff(dr, 0) {
		return North, false
	}
	return directionFromDelta(sign(df), sign(dr)), true
}

// Shift returns the neighbouring square in the given direction.
// The second result is false when the step would leave the board.
func (sq Square) Shift(d Direction) (Square, bool) {
	df, dr := d.delta()
	f := int(sq.File()) + df
	r := int(sq.Rank()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare, false
	}
	return NewSquare(File(f), Rank(r)), true
}

// BB returns the single-square bitboard.
func (sq Square) BB() Bitboard {
	return 1 << sq
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
