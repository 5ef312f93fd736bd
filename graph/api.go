// File: api.go
// Role: thin, read-only facade over Graph's size and configuration.
// Policy: no algorithms here — just O(1) snapshot getters, matching the
// teacher library's convention of keeping construction/inspection
// separate from mutation (methods_vertices.go, methods_edges.go).
package graph

// VertexCount returns the total number of vertices allocated so far
// (the V of spec.md §3's invariant Σ(pᵢ+1) = V).
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muBlocks.RLock()
	defer g.muBlocks.RUnlock()

	return int(g.vertexCount)
}

// EdgeCount returns the total number of edges added so far.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	return len(g.edges)
}

// BlockCount returns the number of vertex blocks (i.e. stops) allocated.
// Complexity: O(1).
func (g *Graph) BlockCount() int {
	g.muBlocks.RLock()
	defer g.muBlocks.RUnlock()

	return len(g.blocks)
}

// BlockAt returns the vertex block at the given index (insertion order),
// and whether that index exists.
// Complexity: O(1).
func (g *Graph) BlockAt(idx int) (Block, bool) {
	g.muBlocks.RLock()
	defer g.muBlocks.RUnlock()
	if idx < 0 || idx >= len(g.blocks) {
		return Block{}, false
	}

	return g.blocks[idx], true
}

// EdgeByID returns the edge with the given id.
// Complexity: O(1).
func (g *Graph) EdgeByID(id EdgeID) (Edge, error) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	if int(id) < 0 || int(id) >= len(g.edges) {
		return Edge{}, ErrEdgeNotFound
	}

	return g.edges[id], nil
}
