// Package catalog is the content-addressed Stop/Bus store (spec.md §3,
// §4.B): the single source of truth for stop coordinates, road
// distances, and bus waybills, plus the per-stop enrichment
// (bus membership, bus-pass count, root vertex id) that Synchronize
// computes once the catalog is frozen.
//
// Ownership: the Store exclusively owns Stop and Bus records (spec.md §3
// "Ownership and lifecycle"). Cross-references between stops and buses
// are always by name (string key), never by pointer, so no stop or bus
// record holds a pointer to another.
//
// Modeled on joeshaw/cota-bus's internal/store.Store: one mutex-guarded
// map per entity plus secondary indexes built alongside it, exposed
// through read-only view types rather than raw internal pointers.
package catalog
