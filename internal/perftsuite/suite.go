// Package perftsuite reads EPD perft suites: one position per line followed
// by the expected node count at each depth, e.g.
//
//	rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 ;D1 20 ;D2 400
//
// Blank lines and lines starting with '#' are ignored.
package perftsuite

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/hailam/chesscore/internal/board"
)

// Expect is the published node count for one depth.
type Expect struct {
	Depth int
	Nodes uint64
}

// Case is one suite line.
type Case struct {
	Line    int
	FEN     string
	Expects []Expect // Sorted by depth
}

// MaxDepth returns the deepest depth with a known count.
func (c Case) MaxDepth() int {
	if len(c.Expects) == 0 {
		return 0
	}
	return c.Expects[len(c.Expects)-1].Depth
}

// Parse reads a suite from r. FENs are checked, so every returned case can be loaded.
func Parse(r io.Reader) ([]Case, error) {
	var cases []Case
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		c.Line = lineNo
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read suite: %w", err)
	}
	return cases, nil
}

func parseLine(line string) (Case, error) {
	fields := strings.Split(line, ";")
	c := Case{FEN: strings.TrimSpace(fields[0])}
	if _, err := board.ParseFEN(c.FEN); err != nil {
		return Case{}, err
	}
	if len(fields) < 2 {
		return Case{}, fmt.Errorf("no depth counts after FEN")
	}

	for _, f := range fields[1:] {
		parts := strings.Fields(f)
		if len(parts) != 2 || len(parts[0]) < 2 || parts[0][0] != 'D' {
			return Case{}, fmt.Errorf("malformed depth field %q", strings.TrimSpace(f))
		}
		depth, err := strconv.Atoi(parts[0][1:])
		if err != nil || depth < 1 {
			return Case{}, fmt.Errorf("invalid depth %q", parts[0])
		}
		nodes, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return Case{}, fmt.Errorf("invalid node count %q", parts[1])
		}
		if len(c.Expects) > 0 && depth <= c.MaxDepth() {
			return Case{}, fmt.Errorf("depth %d out of order", depth)
		}
		c.Expects = append(c.Expects, Expect{Depth: depth, Nodes: nodes})
	}
	return c, nil
}

// Load reads a suite file. Files ending in .zst are zstd-decompressed.
func Load(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	}

	cases, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// Compress writes suite text to w as a zstd stream.
func Compress(w io.Writer, r io.Reader) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if _, err := io.Copy(enc, r); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
