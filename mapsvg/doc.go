// Package mapsvg implements the map projector (spec.md §4.G): assigning
// each stop a dense rank index under the "no direct route between them"
// equivalence relation, scaling those ranks to pixel coordinates, and
// emitting a layered SVG document.
//
// The compression walk is a direct port of the original catalog engine's
// compress_coordinates_in_place: sort stops by one axis, then walk the
// sorted order left to right, only advancing the rank counter when the
// current stop cannot be compressed onto at least one stop seen since the
// last rank bump — "cannot be compressed" meaning some bus travels directly
// between the two without an intervening stop. Longitude and latitude
// are compressed independently, producing the X and Y rank of spec.md's
// two-pass algorithm.
//
// SVG assembly uses github.com/ajstarks/svgo, the same library the
// beads_viewer-family tools in the retrieval pack depend on for
// primitive-shape rendering.
package mapsvg
