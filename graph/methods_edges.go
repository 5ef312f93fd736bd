// File: methods_edges.go
// Role: the graph builder's edge arena (spec.md §4.D) — insertion-ordered,
// multi-edge-tolerant, directed-only. Thin enough that Phase 1 (wait
// edges) and Phase 2 (travel edges) in the catalog's build step are just
// sequences of AddEdge calls.
package graph

// AddEdge appends a new directed edge from -> to with the given weight
// and item, and returns its id. Both endpoints must already lie within
// an allocated block. Parallel edges between the same endpoints are
// permitted and preserved in insertion order (spec.md §4.D "Tie-breaks").
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to VertexID, weight float64, item Item) (EdgeID, error) {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return -1, ErrVertexOutOfRange
	}
	if weight < 0 {
		return -1, ErrNegativeWeight
	}

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{ID: id, From: from, To: to, Weight: weight, Item: item})

	g.adjacency[from] = append(g.adjacency[from], adjEntry{to: id})
	if g.firstEdge[from] == nil {
		g.firstEdge[from] = make(map[VertexID]EdgeID)
	}
	if _, exists := g.firstEdge[from][to]; !exists {
		g.firstEdge[from][to] = id
	}

	return id, nil
}

// HasEdge reports whether at least one edge from -> to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to VertexID) bool {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	if int(from) < 0 || int(from) >= len(g.firstEdge) {
		return false
	}
	_, ok := g.firstEdge[from][to]

	return ok
}

// GetEdgeID returns the canonical (first-inserted) edge id from -> to, if
// any. Used by route reconstruction to translate a vertex path back into
// an edge sequence (spec.md §4.E step 4).
// Complexity: O(1).
func (g *Graph) GetEdgeID(from, to VertexID) (EdgeID, bool) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	if int(from) < 0 || int(from) >= len(g.firstEdge) {
		return -1, false
	}
	id, ok := g.firstEdge[from][to]

	return id, ok
}

// Neighbors returns every outgoing edge from vertex v, in insertion
// order. Dijkstra relies on this order only for deterministic tie-
// breaking among equal-cost relaxations (spec.md §4.E).
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v VertexID) []Edge {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	if int(v) < 0 || int(v) >= len(g.adjacency) {
		return nil
	}
	out := make([]Edge, 0, len(g.adjacency[v]))
	for _, a := range g.adjacency[v] {
		out = append(out, g.edges[a.to])
	}

	return out
}

// Edges returns every edge in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
