package perft

import (
	"context"
	"fmt"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/hailam/chesscore/internal/board"
)

// Cache memoizes subtree counts by Zobrist hash and remaining depth.
// It is safe for concurrent use, so ParallelDivide workers can share one.
type Cache struct {
	c *ristretto.Cache[uint64, cacheEntry]
}

type cacheEntry struct {
	hash  uint64
	depth int
	nodes uint64
}

// entryCost is the nominal size of one cached subtree count, in bytes.
const entryCost = 32

// NewCache creates a cache holding roughly maxBytes of entries.
func NewCache(maxBytes int64) (*Cache, error) {
	if maxBytes < entryCost {
		return nil, fmt.Errorf("perft cache: size %d too small", maxBytes)
	}
	c, err := ristretto.NewCache(&ristretto.Config[uint64, cacheEntry]{
		NumCounters: 10 * (maxBytes / entryCost),
		MaxCost:     maxBytes,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("perft cache: %w", err)
	}
	return &Cache{c: c}, nil
}

// key mixes the depth into the hash; the stored entry repeats both so a
// colliding key is treated as a miss.
func key(hash uint64, depth int) uint64 {
	return hash ^ uint64(depth)*0x9E3779B97F4A7C15
}

// Get returns the cached count for (hash, depth).
func (c *Cache) Get(hash uint64, depth int) (uint64, bool) {
	e, ok := c.c.Get(key(hash, depth))
	if !ok || e.hash != hash || e.depth != depth {
		return 0, false
	}
	return e.nodes, true
}

// Put stores a count. Admission is asynchronous and may be refused.
func (c *Cache) Put(hash uint64, depth int, nodes uint64) {
	c.c.Set(key(hash, depth), cacheEntry{hash: hash, depth: depth, nodes: nodes}, entryCost)
}

// Wait blocks until pending Puts are applied.
func (c *Cache) Wait() {
	c.c.Wait()
}

// HitRatio reports the fraction of lookups served from the cache.
func (c *Cache) HitRatio() float64 {
	return c.c.Metrics.Ratio()
}

// Close releases the cache's background goroutines.
func (c *Cache) Close() {
	c.c.Close()
}

// CountCached is Count with subtree results memoized in cache.
// Positions reached by different move orders share an entry.
func CountCached(pos *board.Position, depth int, cache *Cache) uint64 {
	if depth <= 1 {
		return Count(pos, depth)
	}
	if nodes, ok := cache.Get(pos.Hash(), depth); ok {
		return nodes
	}

	var ml board.MoveList
	pos.GenerateLegal(&ml)
	var nodes uint64
	for _, m := range ml.Slice() {
		pos.MakeMove(m)
		nodes += CountCached(pos, depth-1, cache)
		pos.UnmakeMove(m)
	}

	cache.Put(pos.Hash(), depth, nodes)
	return nodes
}

// ParallelDivide is the package-level ParallelDivide with every worker
// counting through the shared cache.
func (c *Cache) ParallelDivide(ctx context.Context, pos *board.Position, depth, workers int) ([]Entry, error) {
	return parallelDivide(ctx, pos, depth, workers, func(p *board.Position, d int) uint64 {
		return CountCached(p, d, c)
	})
}
