// File: merge.go
// Role: the merge itself — spec.md §4.F's coalescing rule, applied to a
// graph.Edge sequence (typically dijkstra.Route.Edges resolved back to
// full edges by the caller).
package itinerary

import "github.com/arzamas-transit/busnet/graph"

// Merge folds an ordered edge sequence into itinerary items. Edges with
// no item (graph.ItemNone — the zero-weight free-return edges) carry no
// rider-visible meaning and are skipped entirely; they never start or
// extend an item.
//
// Coalescing rule: a Wait edge always starts a new Wait item. A Bus edge
// extends the current item only if that item is itself a Bus item for
// the same bus name and is not separated from it by an intervening
// Wait; otherwise it starts a new Bus item with SpanCount 1.
//
// Complexity: O(len(edges)).
func Merge(edges []graph.Edge) []Item {
	var items []Item

	for _, e := range edges {
		switch e.Item.Kind {
		case graph.ItemNone:
			continue
		case graph.ItemWait:
			items = append(items, Item{Kind: Wait, Name: e.Item.Name, Time: e.Weight})
		case graph.ItemBus:
			if n := len(items); n > 0 && items[n-1].Kind == Bus && items[n-1].Name == e.Item.Name {
				items[n-1].Time += e.Weight
				items[n-1].SpanCount++
				continue
			}
			items = append(items, Item{Kind: Bus, Name: e.Item.Name, Time: e.Weight, SpanCount: 1})
		}
	}

	return items
}

// TotalTime sums the weight of every edge in the sequence, including the
// invisible free-return edges Merge skips — this is the total_time a
// Route query response reports alongside its merged items.
func TotalTime(edges []graph.Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
