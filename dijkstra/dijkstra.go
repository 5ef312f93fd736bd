// File: dijkstra.go
// Role: the single-source shortest-path run itself — ported from the
// teacher library's lazy decrease-key Dijkstra, adapted from string
// vertex ids and a map-based graph to graph.Graph's integer VertexID
// arena and dense distance/parent slices.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/arzamas-transit/busnet/graph"
)

// ShortestPaths computes shortest distances (and parents, for path
// reconstruction) from source to every vertex reachable in g.
//
// Preconditions:
//  1. g must be non-nil (ErrNilGraph).
//  2. source must lie within [0, g.VertexCount()) (ErrVertexOutOfRange).
//  3. No edge in g may have negative weight (ErrNegativeWeight) — the
//     graph builder never emits one, but this is checked regardless.
//
// Complexity:
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPaths(g *graph.Graph, source graph.VertexID) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	v := g.VertexCount()
	if int(source) < 0 || int(source) >= v {
		return nil, ErrVertexOutOfRange
	}

	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d->%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	dist := make([]float64, v)
	parent := make([]graph.VertexID, v)
	visited := make([]bool, v)
	for i := range dist {
		dist[i] = math.Inf(1)
		parent[i] = noParent
	}
	dist[source] = 0

	pq := make(nodePQ, 0, v)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist

		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range g.Neighbors(u) {
			newDist := d + e.Weight
			if newDist >= dist[e.To] {
				continue
			}
			dist[e.To] = newDist
			parent[e.To] = u
			heap.Push(&pq, &nodeItem{id: e.To, dist: newDist})
		}
	}

	return &Result{Dist: dist, Parent: parent}, nil
}

// nodeItem is one priority-queue entry: a vertex and its candidate
// distance from the source.
type nodeItem struct {
	id   graph.VertexID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Stale
// entries (a vertex already visited by the time it's popped) are
// discarded rather than removed in place — the same lazy decrease-key
// approach the teacher library uses.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
