// Package busnet answers queries against a small urban bus network: stop
// and route definitions go in, bus statistics, stop-to-stop routes, and a
// rendered network map come out.
//
// The work is split across subpackages, each owning one stage of the
// pipeline:
//
//	geo/       — great-circle distance and travel-time conversion
//	catalog/   — the Stop/Bus store and its derived per-bus statistics
//	graph/     — the integer-addressed vertex/edge arena the catalog compiles into
//	dijkstra/  — shortest paths over that arena, with a per-source parents cache
//	itinerary/ — folds a raw edge path into Wait/Bus itinerary items
//	mapsvg/    — rank-compresses stop coordinates and renders the network as SVG
//	transport/ — the request façade and Catalog orchestrator tying the above together
//	config/    — environment-derived process settings
//	cmd/busnet — the batch JSON-in, JSON-out entrypoint
//
// A Catalog is built once from a batch of base requests, Synchronize'd,
// and then queried concurrently — see transport.Catalog.
package busnet
