// Package transport is the request façade and orchestrator (spec.md
// §9 "Capability-based polymorphism", this repository's component H):
// it decodes the stdin JSON document into a tagged-union Request type,
// owns the Catalog that wires together the store, graph, navigator, and
// map projector, and dispatches stat_requests to produce the answer
// array.
//
// The tagged Request type is a single flat struct with a Kind
// discriminator rather than an interface hierarchy, grounded in lvlath
// `builder`'s one-constructor-per-shape pattern: each request shape gets
// its own factory function, and the one place that switches on Kind is
// Catalog.Process.
package transport
