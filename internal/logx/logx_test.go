package logx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)
	logger.Info().Str("fen", "startpos").Int("depth", 3).Msg("perft")

	out := buf.String()
	for _, want := range []string{"perft", "fen", "startpos", "depth", "logx_test.go:"} {
		if !strings.Contains(out, want) {
			t.Errorf("log line %q missing %q", out, want)
		}
	}
}

func TestSetLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	if err := SetLevel("warn"); err != nil {
		t.Fatal(err)
	}
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("GlobalLevel = %v, want warn", zerolog.GlobalLevel())
	}
	if err := SetLevel("loud"); err == nil {
		t.Error("SetLevel accepted an unknown level")
	}
}
