package board

import "sync"

// SliderIndex selects how sliding-piece attacks are looked up.
type SliderIndex uint8

const (
	// SliderMagic hashes the masked occupancy with a multiply-and-shift.
	SliderMagic SliderIndex = iota
	// SliderPext packs the masked occupancy bits into an index (parallel bit extract).
	SliderPext
	// SliderRayCast walks the precomputed rays and truncates at the first blocker.
	SliderRayCast
)

// String returns the flag spelling of the index mode.
func (si SliderIndex) String() string {
	switch si {
	case SliderMagic:
		return "magic"
	case SliderPext:
		return "pext"
	case SliderRayCast:
		return "raycast"
	default:
		return "unknown"
	}
}

// ParseSliderIndex parses "magic", "pext" or "raycast".
func ParseSliderIndex(s string) (SliderIndex, bool) {
	for _, si := range []SliderIndex{SliderMagic, SliderPext, SliderRayCast} {
		if si.String() == s {
			return si, true
		}
	}
	return SliderMagic, false
}

// Tables holds every precomputed lookup the move generator needs.
// A Tables value is immutable once built and safe for concurrent readers.
type Tables struct {
	index SliderIndex

	rays    [64][8]Bitboard
	lines   [64][64]Bitboard // Full line through two squares (including endpoints)
	between [64][64]Bitboard // Squares strictly between two squares

	knight [64]Bitboard
	king   [64]Bitboard
	pawn   [2][64]Bitboard // [Color][Square]

	bishop sliderTable
	rook   sliderTable

	zobrist zobristKeys
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the process-wide tables, building them on first use.
// Call it once during startup so the magic search does not run on a hot path.
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables = BuildTables(SliderMagic)
	})
	return defaultTables
}

// BuildTables computes a fresh, independent set of tables.
func BuildTables(index SliderIndex) *Tables {
	t := &Tables{index: index}
	t.initRays()
	t.initLines()
	t.initLeapers()
	switch index {
	case SliderMagic:
		t.bishop = buildMagicTable(t, Bishop)
		t.rook = buildMagicTable(t, Rook)
	case SliderPext:
		t.bishop = buildPextTable(t, Bishop)
		t.rook = buildPextTable(t, Rook)
	}
	t.zobrist = newZobristKeys()
	return t
}

// Index reports which slider lookup the tables use.
func (t *Tables) Index() SliderIndex {
	return t.index
}

func (t *Tables) initRays() {
	for sq := A1; sq <= H8; sq++ {
		for _, d := range allDirections {
			s := SquareBB(sq)
			var r Bitboard
			for s != 0 {
				s = s.Shift(d)
				r |= s
			}
			t.rays[sq][d] = r
		}
	}
}

func (t *Tables) initLines() {
	for a := A1; a <= H8; a++ {
		for b := A1; b <= H8; b++ {
			d, ok := a.DirTo(b)
			if !ok {
				continue
			}
			t.between[a][b] = t.rays[a][d] & t.rays[b][d.Opposite()]
			t.lines[a][b] = t.rays[a][d] | t.rays[a][d.Opposite()] | SquareBB(a)
		}
	}
}

func (t *Tables) initLeapers() {
	for sq := A1; sq <= H8; sq++ {
		s := SquareBB(sq)
		sides := s.Shift(West) | s.Shift(East)

		t.pawn[White][sq] = sides.Shift(North)
		t.pawn[Black][sq] = sides.Shift(South)

		t.king[sq] = t.pawn[White][sq] | t.pawn[Black][sq] | sides | s.Shift(North) | s.Shift(South)

		var knight Bitboard
		for _, d := range [2]Direction{North, South} {
			two := s.Shift(d).Shift(d)
			one := s.Shift(d)
			knight |= two.Shift(East) | two.Shift(West)
			knight |= one.Shift(East).Shift(East) | one.Shift(West).Shift(West)
		}
		t.knight[sq] = knight
	}
}
