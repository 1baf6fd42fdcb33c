package board

import (
	"fmt"
	"testing"
)

// perft counts the number of leaf nodes at the given depth.
// This is the standard way to verify move generation correctness.
func perft(p *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := p.LegalMoves()
	if depth == 1 {
		return int64(moves.Len())
	}

	var nodes int64
	for _, m := range moves.Slice() {
		p.MakeMove(m)
		nodes += perft(p, depth-1)
		p.UnmakeMove(m)
	}
	return nodes
}

type perftCase struct {
	depth    int
	expected int64
	slow     bool
}

func runPerft(t *testing.T, fen string, tests []perftCase) {
	t.Helper()
	for _, index := range []SliderIndex{SliderMagic, SliderPext, SliderRayCast} {
		pos, err := ParseFENWith(tablesFor(index), fen)
		if err != nil {
			t.Fatalf("Failed to parse FEN: %v", err)
		}
		for _, tc := range tests {
			if tc.slow && (testing.Short() || index != SliderMagic) {
				continue
			}
			t.Run(fmt.Sprintf("%s/depth%d", index, tc.depth), func(t *testing.T) {
				got := perft(pos, tc.depth)
				if got != tc.expected {
					t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
				}
				if pos.FEN() != MustParseFEN(fen).FEN() {
					t.Errorf("position not restored after perft(%d): %s", tc.depth, pos.FEN())
				}
			})
		}
	}
}

// TestPerftStartingPosition tests move generation from the starting position.
func TestPerftStartingPosition(t *testing.T) {
	runPerft(t, StartFEN, []perftCase{
		{1, 20, false},
		{2, 400, false},
		{3, 8902, false},
		{4, 197281, false},
		{5, 4865609, true},
		{6, 119060324, true},
	})
}

// TestPerftKiwipete tests the famous Kiwipete position with many edge cases.
func TestPerftKiwipete(t *testing.T) {
	runPerft(t, KiwipeteFEN, []perftCase{
		{1, 48, false},
		{2, 2039, false},
		{3, 97862, false},
		{4, 4085603, true},
	})
}

// TestPerftPosition3 tests en passant edge cases.
func TestPerftPosition3(t *testing.T) {
	runPerft(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -", []perftCase{
		{1, 14, false},
		{2, 191, false},
		{3, 2812, false},
		{4, 43238, false},
		{5, 674624, true},
	})
}

// TestPerftPosition4 covers promotions and castling under check.
func TestPerftPosition4(t *testing.T) {
	runPerft(t, "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []perftCase{
		{1, 6, false},
		{2, 264, false},
		{3, 9467, false},
		{4, 422333, true},
	})
}

// TestPerftPosition5 is a middlegame position with a promoting pawn next to the king.
func TestPerftPosition5(t *testing.T) {
	runPerft(t, "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []perftCase{
		{1, 44, false},
		{2, 1486, false},
		{3, 62379, false},
		{4, 2103487, true},
	})
}

// TestPerftEnPassantPin tests the specific en passant horizontal pin edge case.
// Black pawn on e4 can capture en passant d3, but this would expose the black king
// on a4 to the white rook on h4.
func TestPerftEnPassantPin(t *testing.T) {
	pos := MustParseFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")

	for _, m := range pos.LegalMoves().Slice() {
		if m.IsEnPassant() {
			t.Errorf("En passant move %v should be illegal (horizontal pin)", m)
		}
	}

	// Depth 1: Ka3, Ka5, Kb3, Kb4, Kb5, e3 = 6 moves
	// Depth 2: After e4e3 (14), after king moves (16 each x5) = 14 + 80 = 94
	runPerft(t, "8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1", []perftCase{
		{1, 6, false},
		{2, 94, false},
	})
}

func TestEnPassantLegality(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		legal bool
	}{
		{"captures checking pawn", "k7/8/8/3pP3/4K3/8/8/8 w - d6 0 1", true},
		{"pinned off the diagonal", "k7/6b1/8/3pP3/8/2K5/8/8 w - d6 0 1", false},
		{"pinned along the diagonal", "k7/2b5/8/3pP3/8/8/7K/8 w - d6 0 1", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := MustParseFEN(tc.fen)
			m, ok := ParseUCIMove("e5d6", pos)
			if !ok || !m.IsEnPassant() {
				t.Fatalf("ParseUCIMove(e5d6) = %v, %v", m, ok)
			}
			if got := pos.IsLegal(m); got != tc.legal {
				t.Errorf("IsLegal(e5d6) = %v, want %v", got, tc.legal)
			}
			if got := pos.LegalMoves().Contains(m); got != tc.legal {
				t.Errorf("generated e5d6 = %v, want %v", got, tc.legal)
			}
		})
	}
}
