package board

import (
	"reflect"
	"slices"
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

var makeMoveFENs = []string{
	StartFEN,
	KiwipeteFEN,
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1",
}

// walk visits every position reachable in depth plies and checks that each
// move is undone exactly.
func walk(t *testing.T, pos *Position, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}
	for _, m := range pos.LegalMoves().Slice() {
		before := pos.Clone()

		pos.MakeMove(m)
		if n := pos.Checkers().PopCount(); n > 2 {
			t.Fatalf("%s after %s: %d checkers", before.FEN(), m, n)
		}
		if pos.Hash() != pos.ComputeHash() {
			t.Fatalf("%s after %s: incremental hash %x, full %x", before.FEN(), m, pos.Hash(), pos.ComputeHash())
		}
		if err := pos.Validate(); err != nil {
			t.Fatalf("%s after %s: %v", before.FEN(), m, err)
		}
		walk(t, pos, depth-1)
		pos.UnmakeMove(m)

		if !reflect.DeepEqual(pos, before) {
			t.Fatalf("%s: unmake %s did not restore the position\ngot  %s\nwant %s", before.FEN(), m, pos, before)
		}
	}
}

func TestMakeUnmakeInverse(t *testing.T) {
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, fen := range makeMoveFENs {
		t.Run(fen, func(t *testing.T) {
			walk(t, MustParseFEN(fen), depth)
		})
	}
}

func TestMakeMoveState(t *testing.T) {
	pos := MustParseFEN(StartFEN)

	e4 := NewMove(E2, E4)
	pos.MakeMove(e4)
	if pos.EnPassant() != E3 {
		t.Errorf("EnPassant() = %s, want e3", pos.EnPassant())
	}
	if pos.SideToMove() != Black || pos.Ply() != 1 {
		t.Errorf("side %s ply %d after e2e4", pos.SideToMove(), pos.Ply())
	}
	if got := pos.FEN(); got != "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1" {
		t.Errorf("FEN() = %q", got)
	}

	nf6 := NewMove(G8, F6)
	pos.MakeMove(nf6)
	if pos.EnPassant() != NoSquare {
		t.Errorf("EnPassant() = %s after a knight move", pos.EnPassant())
	}
	if pos.HalfMoves() != 1 {
		t.Errorf("HalfMoves() = %d, want 1", pos.HalfMoves())
	}

	pos.UnmakeMove(nf6)
	pos.UnmakeMove(e4)
	if pos.FEN() != StartFEN {
		t.Errorf("FEN() = %q after unmake", pos.FEN())
	}
}

func TestCastlingRightsUpdates(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move Move
		want CastlingRights
	}{
		{"king move", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", NewMove(E1, E2), BlackKingSideCastle | BlackQueenSideCastle},
		{"castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", NewCastle(E1, G1), BlackKingSideCastle | BlackQueenSideCastle},
		{"rook move", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", NewMove(A1, B1), WhiteKingSideCastle | BlackKingSideCastle | BlackQueenSideCastle},
		{"rook captured", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", NewMove(H1, H8), WhiteQueenSideCastle | BlackQueenSideCastle},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := MustParseFEN(tc.fen)
			pos.MakeMove(tc.move)
			if got := pos.CastlingRights(); got != tc.want {
				t.Errorf("CastlingRights() = %s, want %s", got, tc.want)
			}
		})
	}

	pos := MustParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	pos.MakeMove(NewCastle(E1, C1))
	if pos.PieceAt(D1) != WhiteRook || pos.PieceAt(A1) != NoPiece || pos.PieceAt(C1) != WhiteKing {
		t.Errorf("queen side castle left\n%s", pos)
	}
}

func TestPromotionAndEnPassant(t *testing.T) {
	pos := MustParseFEN("4k3/1P6/8/3pP3/8/8/8/4K3 w - d6 0 1")

	promo := NewPromotion(B7, B8, Knight)
	pos.MakeMove(promo)
	if pos.PieceAt(B8) != WhiteKnight || pos.ByType(Pawn).Has(B8) {
		t.Errorf("promotion left %s on b8", pos.PieceAt(B8))
	}
	pos.UnmakeMove(promo)
	if pos.PieceAt(B7) != WhitePawn || pos.PieceAt(B8) != NoPiece {
		t.Errorf("unmake promotion left b7=%s b8=%s", pos.PieceAt(B7), pos.PieceAt(B8))
	}

	ep := NewEnPassant(E5, D6)
	pos.MakeMove(ep)
	if pos.PieceAt(D5) != NoPiece || pos.PieceAt(D6) != WhitePawn || pos.Captured() != BlackPawn {
		t.Errorf("en passant left d5=%s d6=%s captured=%s", pos.PieceAt(D5), pos.PieceAt(D6), pos.Captured())
	}
	pos.UnmakeMove(ep)
	if pos.PieceAt(D5) != BlackPawn || pos.PieceAt(E5) != WhitePawn || pos.EnPassant() != D6 {
		t.Errorf("unmake en passant left\n%s", pos)
	}
}

// TestLegalMovesMatchDragontooth compares generated move sets with an
// independent generator across a shallow tree.
func TestLegalMovesMatchDragontooth(t *testing.T) {
	for _, fen := range makeMoveFENs {
		t.Run(fen, func(t *testing.T) {
			pos := MustParseFEN(fen)
			compareWithDragontooth(t, pos, 2)
		})
	}
}

func compareWithDragontooth(t *testing.T, pos *Position, depth int) {
	t.Helper()
	ours := moveStrings(pos.LegalMoves().Slice())

	other := dragontoothmg.ParseFen(pos.FEN())
	var theirs []string
	for _, m := range other.GenerateLegalMoves() {
		theirs = append(theirs, m.String())
	}
	sort.Strings(theirs)

	if !slices.Equal(ours, theirs) {
		t.Fatalf("%s:\nours   %v\ntheirs %v", pos.FEN(), ours, theirs)
	}
	if depth <= 1 {
		return
	}
	for _, m := range pos.LegalMoves().Slice() {
		pos.MakeMove(m)
		compareWithDragontooth(t, pos, depth-1)
		pos.UnmakeMove(m)
	}
}

func moveStrings(moves []Move) []string {
	s := make([]string, len(moves))
	for i, m := range moves {
		s[i] = m.String()
	}
	sort.Strings(s)
	return s
}
