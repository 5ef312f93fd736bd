package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex id outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("graph: vertex id out of range")

	// ErrNegativeWeight indicates an attempt to add an edge with weight < 0.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")

	// ErrEdgeNotFound indicates a lookup of a non-existent edge id.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrBlockAlreadySized indicates a stop's vertex block was requested a
	// second time with a different pass count than first allocated.
	ErrBlockAlreadySized = errors.New("graph: vertex block already allocated with a different size")
)

// VertexID addresses a single vertex in the arena: either a stop's root
// (the "waiting here" state) or one of its transit vertices (the
// "riding this particular bus pass" state).
type VertexID int

// EdgeID addresses a single directed edge in insertion order.
type EdgeID int

// ItemKind distinguishes what a rider experiences while traversing an edge.
type ItemKind uint8

const (
	// ItemNone marks an edge with no rider-visible meaning — typically a
	// zero-weight "free return to root" edge.
	ItemNone ItemKind = iota
	// ItemWait marks an edge as the wait-at-a-stop transition.
	ItemWait
	// ItemBus marks an edge as riding a particular bus between two stops.
	ItemBus
)

// Item labels an edge with the rider-facing semantics spec.md §3/§4.D
// assigns it: a Wait edge names the stop being waited at, a Bus edge
// names the bus being ridden. Edges with Kind == ItemNone carry no name
// and are never surfaced to a client.
type Item struct {
	Kind ItemKind
	Name string
}

// Edge is a directed, weighted connection between two vertices. Weight is
// expressed in minutes (or zero, for free returns) and is always >= 0.
type Edge struct {
	ID     EdgeID
	From   VertexID
	To     VertexID
	Weight float64
	Item   Item
}

// HasItem reports whether this edge carries rider-visible metadata.
func (e *Edge) HasItem() bool { return e.Item.Kind != ItemNone }

// Block is the contiguous range of vertex ids a single stop owns: one
// root vertex plus one transit vertex per bus pass through that stop.
// The block spans [Root, Root+Passes] inclusive; Root is the canonical
// "waiting at this stop" vertex and Root+1..Root+Passes are the distinct
// "currently riding pass i" vertices.
type Block struct {
	Root   VertexID
	Passes int
}

// Transit returns the vertex id of the i-th bus pass through this block's
// stop (i is 0-based, 0 <= i < Passes).
func (b Block) Transit(i int) VertexID { return b.Root + VertexID(i) + 1 }

// Span returns the exclusive upper bound of this block: Root+Passes+1.
func (b Block) Span() VertexID { return b.Root + VertexID(b.Passes) + 1 }

// adjEntry is one outgoing step recorded for a source vertex: the id of
// the edge taken (its destination is read from that edge). Graph keeps these
// in insertion order per source, which is what makes Dijkstra's
// tie-breaking (spec.md §4.E) and HasEdge/first-edge lookups (§4.D "Tie-
// breaks") deterministic and cheap.
type adjEntry struct {
	to EdgeID // edge id; To vertex is edges[to].To
}

// Graph is the directed weighted multigraph described by spec.md §3/§4.D.
// Vertex ids are never deleted once allocated: the catalog is built once,
// Synchronize freezes it, and all subsequent access is read-only.
type Graph struct {
	muBlocks sync.RWMutex // guards blocks and vertexCount
	muEdges  sync.RWMutex // guards edges and adjacency

	blocks      []Block // dense, insertion order == stop iteration order
	vertexCount VertexID

	edges []Edge

	// adjacency[v] is the insertion-ordered list of outgoing steps from v;
	// Dijkstra iterates this directly. firstEdge[v][w] is the first edge
	// id discovered from v to w, giving HasEdge/GetEdgeID O(1) lookups
	// without scanning the full adjacency slice (spec.md §4.D).
	adjacency [][]adjEntry
	firstEdge []map[VertexID]EdgeID
}

// NewGraph returns an empty Graph with no vertices or edges.
func NewGraph() *Graph {
	return &Graph{}
}
