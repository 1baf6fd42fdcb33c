// Package perft counts move-tree leaves to verify the move generator.
package perft

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/hailam/chesscore/internal/board"
)

// Count returns the number of leaf nodes exactly depth plies below pos.
// Leaves at depth 1 are bulk-counted from the legal move list.
func Count(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var ml board.MoveList
	pos.GenerateLegal(&ml)
	if depth == 1 {
		return uint64(ml.Len())
	}

	var nodes uint64
	for _, m := range ml.Slice() {
		pos.MakeMove(m)
		nodes += Count(pos, depth-1)
		pos.UnmakeMove(m)
	}
	return nodes
}

// Entry is the subtree size below one root move.
type Entry struct {
	Move  board.Move
	Nodes uint64
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %d", e.Move, e.Nodes)
}

// Total sums the node counts of a divide.
func Total(entries []Entry) uint64 {
	var n uint64
	for _, e := range entries {
		n += e.Nodes
	}
	return n
}

// Divide returns the perft count below each legal root move, sorted by move text.
func Divide(pos *board.Position, depth int) []Entry {
	if depth < 1 {
		return nil
	}
	moves := pos.LegalMoves().Slice()
	entries := make([]Entry, 0, len(moves))
	for _, m := range moves {
		pos.MakeMove(m)
		entries = append(entries, Entry{Move: m, Nodes: Count(pos, depth-1)})
		pos.UnmakeMove(m)
	}
	sortEntries(entries)
	return entries
}

// ParallelDivide is Divide with the root moves spread over up to workers
// goroutines. Each goroutine searches its own clone of pos, so pos itself is
// only read. Cancelling ctx stops root moves that have not started yet.
func ParallelDivide(ctx context.Context, pos *board.Position, depth, workers int) ([]Entry, error) {
	return parallelDivide(ctx, pos, depth, workers, Count)
}

func parallelDivide(ctx context.Context, pos *board.Position, depth, workers int, count func(*board.Position, int) uint64) ([]Entry, error) {
	if depth < 1 {
		return nil, nil
	}
	if workers < 1 {
		workers = 1
	}

	moves := pos.LegalMoves().Slice()
	entries := make([]Entry, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, m := range moves {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := pos.Clone()
			p.MakeMove(m)
			entries[i] = Entry{Move: m, Nodes: count(p, depth-1)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("parallel divide: %w", err)
	}

	sortEntries(entries)
	return entries, nil
}

func sortEntries(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Move.String(), b.Move.String())
	})
}
