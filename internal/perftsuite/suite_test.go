package perftsuite

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/perft"
)

const sample = `# comment

rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 ;D1 20 ;D2 400 ;D3 8902
8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - ;D1 14 ;D2 191
`

func TestParse(t *testing.T) {
	cases, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	if len(cases) != 2 {
		t.Fatalf("got %d cases, want 2", len(cases))
	}
	c := cases[0]
	if c.Line != 3 || c.FEN != board.StartFEN || c.MaxDepth() != 3 {
		t.Errorf("case 0 = %+v", c)
	}
	if c.Expects[1] != (Expect{Depth: 2, Nodes: 400}) {
		t.Errorf("expect = %+v", c.Expects[1])
	}
	if cases[1].FEN != "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -" {
		t.Errorf("case 1 FEN = %q", cases[1].FEN)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"bad fen", "not a fen ;D1 20\n", "line 1"},
		{"no depths", "\n" + board.StartFEN + "\n", "line 2"},
		{"bad depth", board.StartFEN + " ;X1 20\n", "line 1"},
		{"bad count", board.StartFEN + " ;D1 many\n", "line 1"},
		{"zero depth", board.StartFEN + " ;D0 1\n", "line 1"},
		{"out of order", board.StartFEN + " ;D2 400 ;D1 20\n", "line 1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			if err == nil {
				t.Fatal("Parse succeeded")
			}
			if !strings.Contains(err.Error(), tc.line) {
				t.Errorf("error %q does not name %s", err, tc.line)
			}
		})
	}
}

func TestLoadCompressed(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "suite.epd")
	if err := os.WriteFile(plain, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Compress(&buf, strings.NewReader(sample)); err != nil {
		t.Fatal(err)
	}
	compressed := filepath.Join(dir, "suite.epd.zst")
	if err := os.WriteFile(compressed, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	want, err := Load(plain)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Load(compressed)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("compressed suite has %d cases, plain %d", len(got), len(want))
	}
	for i := range want {
		if got[i].FEN != want[i].FEN || got[i].MaxDepth() != want[i].MaxDepth() {
			t.Errorf("case %d differs: %+v vs %+v", i, got[i], want[i])
		}
	}

	if _, err := Load(filepath.Join(dir, "missing.epd")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func countWithPerft(_ context.Context, pos *board.Position, depth int) (uint64, error) {
	return perft.Count(pos, depth), nil
}

func TestStandardSuite(t *testing.T) {
	cases := Standard()
	if len(cases) != 8 {
		t.Fatalf("Standard() has %d cases, want 8", len(cases))
	}

	maxDepth := 3
	if testing.Short() {
		maxDepth = 2
	}
	var reported int
	results, err := Run(context.Background(), cases, maxDepth, countWithPerft, func(Result) { reported++ })
	if err != nil {
		t.Fatal(err)
	}
	if reported != len(results) {
		t.Errorf("reported %d results, returned %d", reported, len(results))
	}
	for _, r := range Failures(results) {
		t.Errorf("line %d depth %d: got %d, want %d", r.Case.Line, r.Depth, r.Got, r.Want)
	}
}

func TestRunReportsMismatch(t *testing.T) {
	cases, err := Parse(strings.NewReader(board.StartFEN + " ;D1 21\n"))
	if err != nil {
		t.Fatal(err)
	}
	results, err := Run(context.Background(), cases, 0, countWithPerft, nil)
	if err != nil {
		t.Fatal(err)
	}
	if failed := Failures(results); len(failed) != 1 || failed[0].Got != 20 {
		t.Errorf("Failures = %+v", failed)
	}
}
