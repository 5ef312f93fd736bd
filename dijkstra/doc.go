// Package dijkstra implements the transport graph's shortest-path engine
// (spec.md §4.E): classic Dijkstra over graph.Graph's integer vertex ids,
// plus the per-source parents cache that lets repeated route queries from
// the same origin skip recomputation.
//
// Weights are minutes (or zero, for free returns) and are always
// non-negative by construction — the graph builder never emits a
// negative edge — but ShortestPaths still pre-scans and fails fast on
// one, the same defensive posture the teacher library's own Dijkstra
// implementation takes.
//
// Complexity:
//
//   - Time:  O((V + E) log V), one heap extraction per vertex and up to
//     one heap push per edge relaxation (lazy decrease-key).
//   - Space: O(V + E): distance/parent slices plus heap entries.
//
// Caching: Cache holds one Result per source vertex that has ever been
// queried, computed at most once and guarded by that slot's own
// sync.Once, so two distinct sources never contend with each other —
// only the (rare) creation of a brand-new slot briefly holds the cache's
// single coarse lock (spec.md §5 "Cache locking").
package dijkstra
