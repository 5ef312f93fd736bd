// Package geo provides the great-circle distance and travel-time
// primitives spec.md §4.A describes: a pure, stateless, dependency-free
// layer that every other component (the catalog's pairwise distance
// lookup, the graph builder's edge weights) calls through rather than
// reimplementing.
//
// No third-party geodesy library appears anywhere across the reference
// pack — every bus/transit repo in it computes great-circle distance (or
// skips geography entirely) with plain math, matching the spherical-law-
// of-cosines form used here.
package geo
