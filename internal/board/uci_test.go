package board

import "testing"

func TestParseUCIMove(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		s    string
		want Move
		ok   bool
	}{
		{"quiet", StartFEN, "g1f3", NewMove(G1, F3), true},
		{"double push", StartFEN, "e2e4", NewMove(E2, E4), true},
		{"castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", NewCastle(E1, G1), true},
		{"black castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8", NewCastle(E8, C8), true},
		{"en passant", "k7/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5d6", NewEnPassant(E5, D6), true},
		{"promotion", "k7/4P3/8/8/8/8/8/4K3 w - - 0 1", "e7e8q", NewPromotion(E7, E8, Queen), true},
		{"under promotion", "k7/8/8/8/8/8/1p6/4K3 b - - 0 1", "b2b1n", NewPromotion(B2, B1, Knight), true},

		{"too short", StartFEN, "e2e", NoMove, false},
		{"too long", StartFEN, "e2e4qq", NoMove, false},
		{"bad square", StartFEN, "e2e9", NoMove, false},
		{"same square", StartFEN, "e2e2", NoMove, false},
		{"empty origin", StartFEN, "e4e5", NoMove, false},
		{"bad promotion letter", "k7/4P3/8/8/8/8/8/4K3 w - - 0 1", "e7e8k", NoMove, false},
		{"missing promotion", "k7/4P3/8/8/8/8/8/4K3 w - - 0 1", "e7e8", NoMove, false},
		{"promotion letter on quiet move", StartFEN, "e2e4q", NoMove, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseUCIMove(tc.s, MustParseFEN(tc.fen))
			if ok != tc.ok || got != tc.want {
				t.Errorf("ParseUCIMove(%q) = %v, %v; want %v, %v", tc.s, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestParseUCIMoveRoundTrip(t *testing.T) {
	for _, fen := range makeMoveFENs {
		pos := MustParseFEN(fen)
		for _, m := range pos.LegalMoves().Slice() {
			got, ok := ParseUCIMove(m.String(), pos)
			if !ok || got != m {
				t.Errorf("%s: ParseUCIMove(%q) = %v, %v", fen, m.String(), got, ok)
			}
		}
	}
}
