package dijkstra

import (
	"errors"
	"math"

	"github.com/arzamas-transit/busnet/graph"
)

// Sentinel errors for the shortest-path engine.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexOutOfRange indicates the source vertex is outside the
	// graph's allocated range.
	ErrVertexOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates a negative edge weight was detected
	// during the pre-scan. The graph builder should never produce one —
	// this is a last-resort invariant check, not a routine path.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates BuildRoute could not turn the cached parent
	// chain into an edge sequence (a broken chain or a missing edge). A
	// target with no path at all is not an error: BuildRoute returns a
	// Route with Found == false and a nil error.
	ErrUnreachable = errors.New("dijkstra: destination unreachable from source")
)

// noParent marks a vertex with no predecessor: the source itself, or a
// vertex Dijkstra never reached.
const noParent graph.VertexID = -1

// Result is the outcome of a single-source shortest-path run: dense,
// VertexID-indexed distance and parent slices. Unreached vertices carry
// Dist == math.Inf(1) and Parent == noParent.
type Result struct {
	Dist   []float64
	Parent []graph.VertexID
}

// Reached reports whether v was reached from the source.
func (r *Result) Reached(v graph.VertexID) bool {
	return int(v) >= 0 && int(v) < len(r.Dist) && !math.IsInf(r.Dist[v], 1)
}
