// File: compress.go
// Role: the non-adjacency rank-compression algorithm (spec.md §4.G),
// ported from the original engine's compress_coordinates_in_place.
package mapsvg

import (
	"sort"

	"github.com/arzamas-transit/busnet/graph"
)

// entry pairs a StopRef with the rank index it accumulates across both
// compression passes.
type entry struct {
	ref  StopRef
	rank RankIndex
}

// areNeighborsOnRoute reports whether some bus travels directly from a
// transit vertex of `from` to a transit or root vertex of `to` — the
// "directly connected, cannot be compressed together" relation.
//
// Mirrors the original's are_neighbors_on_route: the route can only
// start from a transit vertex (index 1..Passes, never the root, since
// the root is only ever a waiting state) but may end at the destination
// stop's root (index 0) or any of its transit vertices.
func areNeighborsOnRoute(g *graph.Graph, from, to graph.Block) bool {
	for fromIdx := 1; fromIdx <= from.Passes; fromIdx++ {
		fv := from.Root + graph.VertexID(fromIdx)
		for toIdx := 0; toIdx <= to.Passes; toIdx++ {
			tv := to.Root + graph.VertexID(toIdx)
			if g.HasEdge(fv, tv) {
				return true
			}
		}
	}

	return false
}

// canBeCompressed reports whether two stops may share a rank: neither
// is directly reachable from the other by a single bus ride.
func canBeCompressed(g *graph.Graph, left, right graph.Block) bool {
	return !areNeighborsOnRoute(g, left, right) && !areNeighborsOnRoute(g, right, left)
}

// compressAxis sorts items by less and assigns each a dense rank via
// assign, bumping the rank only when the current item cannot be
// compressed onto every item seen since the last bump. The first (sorted)
// item is never explicitly assigned — rank 0 is RankIndex's zero value,
// matching the original's reliance on zero-initialization.
func compressAxis(g *graph.Graph, items []*entry, less func(a, b *entry) bool, assign func(e *entry, rank int)) {
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
	if len(items) == 0 {
		return
	}

	rank := 0
	base := 0
	for i := 1; i < len(items); i++ {
		bumped := false
		for k := base; k < i; k++ {
			if !canBeCompressed(g, items[i].ref.Block, items[k].ref.Block) {
				bumped = true
				break
			}
		}
		if bumped {
			base = i
			rank++
		}
		assign(items[i], rank)
	}
}

// compressRanks runs the longitude and latitude compression passes
// independently over the same set of stops and returns, for each stop
// name, its combined (X, Y) rank plus the maximum rank reached on each
// axis.
func compressRanks(g *graph.Graph, stops []StopRef) (ranks map[string]RankIndex, maxX, maxY int) {
	entries := make([]*entry, len(stops))
	for i, s := range stops {
		entries[i] = &entry{ref: s}
	}

	byLon := make([]*entry, len(entries))
	copy(byLon, entries)
	compressAxis(g, byLon, func(a, b *entry) bool {
		return a.ref.Longitude < b.ref.Longitude
	}, func(e *entry, r int) { e.rank.X = r })
	if len(byLon) > 0 {
		maxX = byLon[len(byLon)-1].rank.X
	}

	byLat := make([]*entry, len(entries))
	copy(byLat, entries)
	compressAxis(g, byLat, func(a, b *entry) bool {
		return a.ref.Latitude < b.ref.Latitude
	}, func(e *entry, r int) { e.rank.Y = r })
	if len(byLat) > 0 {
		maxY = byLat[len(byLat)-1].rank.Y
	}

	ranks = make(map[string]RankIndex, len(entries))
	for _, e := range entries {
		ranks[e.ref.Name] = e.rank
	}

	return ranks, maxX, maxY
}
