// Package itinerary implements the route merger (spec.md §4.F):
// folding a shortest-path edge sequence into the alternating Wait/Bus
// item list a rider actually sees. The walk-and-accumulate shape mirrors
// the teacher library's traversal packages, which build a result slice
// by walking a parent/edge chain one step at a time rather than
// recursing — here applied to dijkstra.Navigator's reconstructed edge
// sequence instead of a BFS/DFS frontier.
package itinerary
