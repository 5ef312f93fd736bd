// File: navigator.go
// Role: component E's build_route query — turns a cached parents chain
// into the edge sequence a rider actually experiences (spec.md §4.E
// step 4). The itinerary package folds that edge sequence into Wait/Bus
// items; Navigator's job stops at "here is the path", not "here is what
// it means".
package dijkstra

import (
	"github.com/arzamas-transit/busnet/graph"
)

// Route is the result of a build_route query: the total weight (minutes)
// and the ordered edge ids a rider traverses from source to target.
// Edges is nil and Found is false when no path exists.
type Route struct {
	Found  bool
	Weight float64
	Edges  []graph.EdgeID
}

// Navigator answers build_route queries against a fixed graph, caching
// one shortest-path run per source vertex so repeated queries from the
// same stop are cheap.
type Navigator struct {
	g     *graph.Graph
	cache *Cache
}

// NewNavigator returns a Navigator bound to g.
func NewNavigator(g *graph.Graph) *Navigator {
	return &Navigator{g: g, cache: NewCache(g)}
}

// BuildRoute finds the shortest path from -> to and returns it as an
// ordered edge sequence. from == to returns a trivial, zero-weight,
// edge-free Route.
//
// Complexity: O((V+E) log V) the first time `from` is queried, O(path
// length) thereafter.
func (n *Navigator) BuildRoute(from, to graph.VertexID) (Route, error) {
	if from == to {
		return Route{Found: true}, nil
	}

	res, err := n.cache.ParentsFrom(from)
	if err != nil {
		return Route{}, err
	}
	if !res.Reached(to) {
		return Route{}, nil
	}

	var reversed []graph.VertexID
	for v := to; v != from; {
		reversed = append(reversed, v)
		p := res.Parent[v]
		if p == noParent {
			// Reached() already guards against this, but a corrupt parent
			// chain should fail loudly rather than loop forever.
			return Route{}, ErrUnreachable
		}
		v = p
	}
	reversed = append(reversed, from)

	edges := make([]graph.EdgeID, 0, len(reversed)-1)
	for i := len(reversed) - 1; i > 0; i-- {
		u, v := reversed[i], reversed[i-1]
		id, ok := n.g.GetEdgeID(u, v)
		if !ok {
			return Route{}, ErrUnreachable
		}
		edges = append(edges, id)
	}

	return Route{Found: true, Weight: res.Dist[to], Edges: edges}, nil
}
