package perftsuite

import (
	"context"
	"time"

	"github.com/hailam/chesscore/internal/board"
)

// Counter computes the perft count of pos at depth.
type Counter func(ctx context.Context, pos *board.Position, depth int) (uint64, error)

// Result is the outcome of one (case, depth) check.
type Result struct {
	Case    Case
	Depth   int
	Want    uint64
	Got     uint64
	Elapsed time.Duration
}

// OK reports whether the count matched.
func (r Result) OK() bool {
	return r.Got == r.Want
}

// Run checks every case at each listed depth up to maxDepth (0 means all).
// The report callback, when set, sees each result as soon as it is known.
func Run(ctx context.Context, cases []Case, maxDepth int, count Counter, report func(Result)) ([]Result, error) {
	var results []Result
	for _, c := range cases {
		pos, err := board.ParseFEN(c.FEN)
		if err != nil {
			return results, err
		}
		for _, e := range c.Expects {
			if maxDepth > 0 && e.Depth > maxDepth {
				break
			}
			start := time.Now()
			got, err := count(ctx, pos, e.Depth)
			if err != nil {
				return results, err
			}
			r := Result{Case: c, Depth: e.Depth, Want: e.Nodes, Got: got, Elapsed: time.Since(start)}
			results = append(results, r)
			if report != nil {
				report(r)
			}
		}
	}
	return results, nil
}

// Failures returns the results whose counts did not match.
func Failures(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}
