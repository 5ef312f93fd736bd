// Package graph provides the transport network's directed, weighted
// multigraph: an arena of integer-addressed vertices and edges, plus the
// vertex allocator that carves one contiguous block per stop.
//
// Unlike a general-purpose graph type, this Graph is purpose-built for the
// transit catalog: vertices are never named directly by callers, they are
// assigned in contiguous per-stop blocks (AllocateBlock), and edges always
// carry an optional Item describing what a rider experiences while
// traversing them (waiting at a stop, riding a bus) or nothing at all (a
// free return to a stop's root).
//
// Concurrency: the Graph is mutated only during the build phase
// (AllocateBlock / AddEdge). Once Synchronize has run, the graph is
// treated as read-only and callers — including concurrent Dijkstra runs
// from different sources — only call the read methods (Neighbors,
// HasEdge, EdgeByID). Two separate RWMutex guard vertex-block allocation
// and edge/adjacency state respectively, so a build-phase bug in one does
// not serialize reads in the other.
package graph
