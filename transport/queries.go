// File: queries.go
// Role: the stat_requests handlers and the single Process dispatch that
// pattern-matches on Request.Kind (spec.md §9 "Capability-based
// polymorphism").
package transport

import (
	"github.com/arzamas-transit/busnet/dijkstra"
	"github.com/arzamas-transit/busnet/graph"
	"github.com/arzamas-transit/busnet/itinerary"
)

// Process answers one stat_requests item. AddStop/AddBus requests are
// rejected — they belong to the build phase and must go through
// AddStop/AddBus directly, before Synchronize.
func (c *Catalog) Process(req Request) (interface{}, error) {
	switch req.Kind {
	case KindBusInfo:
		return c.busStats(req.ID, req.Name), nil
	case KindStopInfo:
		return c.stopBuses(req.ID, req.Name), nil
	case KindRouteInfo:
		return c.route(req.ID, req.From, req.To)
	case KindMap:
		return c.mapAnswer(req.ID)
	default:
		return nil, ErrUnknownRequestType
	}
}

func (c *Catalog) busStats(id int, name string) interface{} {
	stats, ok := c.store.RouteStats(name)
	if !ok {
		return notFoundAnswer(KindBusInfo, id)
	}

	return BusStatsAnswer{
		RequestID:       id,
		RouteLength:     stats.RoadLen,
		Curvature:       stats.Curvature,
		StopCount:       stats.StopCount,
		UniqueStopCount: stats.UniqueStopCount,
	}
}

func (c *Catalog) stopBuses(id int, name string) interface{} {
	st, ok := c.store.Stop(name)
	if !ok {
		return notFoundAnswer(KindStopInfo, id)
	}

	return StopBusesAnswer{RequestID: id, Buses: st.Buses}
}

func (c *Catalog) route(id int, from, to string) (interface{}, error) {
	fromStop, ok := c.store.Stop(from)
	if !ok {
		return notFoundAnswer(KindRouteInfo, id), nil
	}
	toStop, ok := c.store.Stop(to)
	if !ok {
		return notFoundAnswer(KindRouteInfo, id), nil
	}

	built, err := c.nav.BuildRoute(fromStop.RootVertex, toStop.RootVertex)
	if err != nil {
		return nil, err
	}
	if !built.Found {
		return notFoundAnswer(KindRouteInfo, id), nil
	}

	edges, err := c.resolveEdges(built)
	if err != nil {
		return nil, err
	}

	return RouteAnswer{
		RequestID: id,
		TotalTime: itinerary.TotalTime(edges),
		Items:     toItemAnswers(itinerary.Merge(edges)),
	}, nil
}

func (c *Catalog) resolveEdges(route dijkstra.Route) ([]graph.Edge, error) {
	edges := make([]graph.Edge, 0, len(route.Edges))
	for _, id := range route.Edges {
		e, err := c.graph.EdgeByID(id)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	return edges, nil
}

func toItemAnswers(items []itinerary.Item) []RouteItemAnswer {
	out := make([]RouteItemAnswer, 0, len(items))
	for _, it := range items {
		switch it.Kind {
		case itinerary.Wait:
			out = append(out, RouteItemAnswer{Type: "Wait", StopName: it.Name, Time: it.Time})
		case itinerary.Bus:
			out = append(out, RouteItemAnswer{Type: "Bus", Bus: it.Name, SpanCount: it.SpanCount, Time: it.Time})
		}
	}

	return out
}
