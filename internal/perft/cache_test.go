package perft

import (
	"context"
	"testing"

	"github.com/hailam/chesscore/internal/board"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := NewCache(1 << 24)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestCountCached(t *testing.T) {
	cache := newTestCache(t)
	for _, tc := range perftTests {
		t.Run(tc.name, func(t *testing.T) {
			pos := board.MustParseFEN(tc.fen)
			if got := CountCached(pos, tc.depth, cache); got != tc.nodes {
				t.Errorf("CountCached(%d) = %d, want %d", tc.depth, got, tc.nodes)
			}
			cache.Wait()
			// Second run reads through the warmed cache.
			if got := CountCached(pos, tc.depth, cache); got != tc.nodes {
				t.Errorf("warm CountCached(%d) = %d, want %d", tc.depth, got, tc.nodes)
			}
		})
	}
}

func TestCacheGetPut(t *testing.T) {
	cache := newTestCache(t)
	cache.Put(0xABCDEF, 3, 1234)
	cache.Wait()

	if got, ok := cache.Get(0xABCDEF, 3); ok && got != 1234 {
		t.Errorf("Get = %d, want 1234", got)
	}
	if _, ok := cache.Get(0xABCDEF, 4); ok {
		t.Error("Get hit for a different depth")
	}
}

func TestCacheParallelDivide(t *testing.T) {
	cache := newTestCache(t)
	pos := board.MustParseFEN(board.KiwipeteFEN)

	entries, err := cache.ParallelDivide(context.Background(), pos, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got := Total(entries); got != 97862 {
		t.Errorf("Total = %d, want 97862", got)
	}
}

func TestNewCacheTooSmall(t *testing.T) {
	if _, err := NewCache(1); err == nil {
		t.Error("NewCache(1) succeeded")
	}
}
