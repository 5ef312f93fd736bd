// File: cache.go
// Role: the per-source parents cache (spec.md §5 "Lazy vs eager", §9
// "Cache locking"). A route query from stop A pins one ShortestPaths run
// for A; asking for a second destination from the same A must not
// recompute it. Slot creation is guarded by one coarse mutex; the actual
// Dijkstra run inside a slot is guarded by that slot's own sync.Once, so
// concurrent queries from two different sources never block each other.
package dijkstra

import (
	"sync"

	"github.com/arzamas-transit/busnet/graph"
)

// slot lazily computes and memoizes the Result for one source vertex.
type slot struct {
	once   sync.Once
	result *Result
	err    error
}

// Cache memoizes ShortestPaths runs against a fixed graph, keyed by
// source vertex.
type Cache struct {
	g *graph.Graph

	mu    sync.Mutex
	slots map[graph.VertexID]*slot
}

// NewCache returns a Cache bound to g. g is never mutated by the cache.
func NewCache(g *graph.Graph) *Cache {
	return &Cache{g: g, slots: make(map[graph.VertexID]*slot)}
}

// ParentsFrom returns the (possibly cached) shortest-path Result rooted
// at source. Safe for concurrent use.
//
// Complexity: O(1) plus map lookup on a cache hit; a full ShortestPaths
// run the first time a given source is requested.
func (c *Cache) ParentsFrom(source graph.VertexID) (*Result, error) {
	c.mu.Lock()
	s, ok := c.slots[source]
	if !ok {
		s = &slot{}
		c.slots[source] = s
	}
	c.mu.Unlock()

	s.once.Do(func() {
		s.result, s.err = ShortestPaths(c.g, source)
	})

	return s.result, s.err
}
