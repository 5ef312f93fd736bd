package transport_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arzamas-transit/busnet/catalog"
	"github.com/arzamas-transit/busnet/geo"
	"github.com/arzamas-transit/busnet/mapsvg"
	"github.com/arzamas-transit/busnet/transport"
)

func threeStopLoop(t *testing.T, extraStops ...string) *transport.Catalog {
	t.Helper()
	routing := transport.RoutingSettings{BusWaitTime: 5, BusVelocityKMPH: 60}
	render := mapsvg.Settings{
		Width: 600, Height: 400, Padding: 20,
		StopRadius: 3, LineWidth: 2,
		LayerSequence: []string{"bus_lines", "bus_labels", "stop_points", "stop_labels"},
	}
	cat := transport.NewCatalog(routing, render)

	require.NoError(t, cat.AddStop(catalog.StopInput{
		Name: "A", Coordinates: geo.Coordinates{Latitude: 0, Longitude: 0},
		RoadDistances: map[string]float64{"B": 3000},
	}))
	require.NoError(t, cat.AddStop(catalog.StopInput{
		Name: "B", Coordinates: geo.Coordinates{Latitude: 0, Longitude: 1},
		RoadDistances: map[string]float64{"C": 4000},
	}))
	require.NoError(t, cat.AddStop(catalog.StopInput{
		Name: "C", Coordinates: geo.Coordinates{Latitude: 1, Longitude: 1},
		RoadDistances: map[string]float64{"A": 5000},
	}))
	require.NoError(t, cat.AddBus(catalog.BusInput{
		Name: "1", IsRoundTrip: true, Waybill: []string{"A", "B", "C", "A"},
	}))
	for _, name := range extraStops {
		require.NoError(t, cat.AddStop(catalog.StopInput{Name: name}))
	}
	require.NoError(t, cat.Synchronize())

	return cat
}

func TestS2_BusInfo_ReturnsRouteStats(t *testing.T) {
	cat := threeStopLoop(t)

	answer, err := cat.Process(transport.NewBusInfoRequest(1, "1"))
	require.NoError(t, err)
	stats, ok := answer.(transport.BusStatsAnswer)
	require.True(t, ok)
	require.Equal(t, 1, stats.RequestID)
	require.Equal(t, 4, stats.StopCount)
	require.Equal(t, 3, stats.UniqueStopCount)
	require.Equal(t, float64(12000), stats.RouteLength)
}

func TestS3_BusInfo_UnknownBusIsNotFound(t *testing.T) {
	cat := threeStopLoop(t)

	answer, err := cat.Process(transport.NewBusInfoRequest(2, "Ghost"))
	require.NoError(t, err)
	stats, ok := answer.(transport.BusStatsAnswer)
	require.True(t, ok)
	require.Equal(t, "not found", stats.ErrorMessage)
}

func TestStopInfo_ReturnsSortedBusList(t *testing.T) {
	cat := threeStopLoop(t)

	answer, err := cat.Process(transport.NewStopInfoRequest(3, "A"))
	require.NoError(t, err)
	stopAns, ok := answer.(transport.StopBusesAnswer)
	require.True(t, ok)
	require.Equal(t, []string{"1"}, stopAns.Buses)
}

func TestRouteInfo_BuildsItineraryAcrossStops(t *testing.T) {
	cat := threeStopLoop(t)

	answer, err := cat.Process(transport.NewRouteInfoRequest(4, "A", "C"))
	require.NoError(t, err)
	routeAns, ok := answer.(transport.RouteAnswer)
	require.True(t, ok)
	require.Empty(t, routeAns.ErrorMessage)
	require.NotEmpty(t, routeAns.Items)
	require.Equal(t, "Wait", routeAns.Items[0].Type)
	require.Equal(t, "A", routeAns.Items[0].StopName)
}

func TestRouteInfo_UnreachableIsNotFound(t *testing.T) {
	cat := threeStopLoop(t, "Island")

	answer, err := cat.Process(transport.NewRouteInfoRequest(5, "A", "Island"))
	require.NoError(t, err)
	routeAns, ok := answer.(transport.RouteAnswer)
	require.True(t, ok)
	require.Equal(t, "not found", routeAns.ErrorMessage)
}

func TestMapRequest_RendersSVGOnce(t *testing.T) {
	cat := threeStopLoop(t)

	first, err := cat.Process(transport.NewMapRequest(6))
	require.NoError(t, err)
	firstMap, ok := first.(transport.MapAnswer)
	require.True(t, ok)
	require.Contains(t, firstMap.Map, "<svg")

	second, err := cat.Process(transport.NewMapRequest(7))
	require.NoError(t, err)
	secondMap := second.(transport.MapAnswer)
	require.Equal(t, firstMap.Map, secondMap.Map)
}

func TestProcessBatch_PreservesRequestOrder(t *testing.T) {
	cat := threeStopLoop(t)

	reqs := []transport.Request{
		transport.NewBusInfoRequest(1, "1"),
		transport.NewStopInfoRequest(2, "A"),
		transport.NewRouteInfoRequest(3, "A", "B"),
	}
	answers, err := cat.ProcessBatch(context.Background(), reqs, 0)
	require.NoError(t, err)
	require.Len(t, answers, 3)
	_, ok := answers[0].(transport.BusStatsAnswer)
	require.True(t, ok)
	_, ok = answers[1].(transport.StopBusesAnswer)
	require.True(t, ok)
	_, ok = answers[2].(transport.RouteAnswer)
	require.True(t, ok)
}

func TestProcessBatch_WorkerLimitStillAnswersEveryRequest(t *testing.T) {
	cat := threeStopLoop(t)

	reqs := make([]transport.Request, 0, 10)
	for i := 0; i < 10; i++ {
		reqs = append(reqs, transport.NewStopInfoRequest(i, "A"))
	}
	// A worker cap smaller than the batch must still answer every
	// request, just with bounded concurrency (spec.md §5 "parallel
	// profile" worker pool).
	answers, err := cat.ProcessBatch(context.Background(), reqs, 2)
	require.NoError(t, err)
	require.Len(t, answers, 10)
	for i, a := range answers {
		stopAns, ok := a.(transport.StopBusesAnswer)
		require.True(t, ok)
		require.Equal(t, i, stopAns.RequestID)
	}
}

func TestLoadBase_AppliesStopsBeforeBuses(t *testing.T) {
	cat := transport.NewCatalog(
		transport.RoutingSettings{BusWaitTime: 1, BusVelocityKMPH: 30},
		mapsvg.Settings{Width: 100, Height: 100},
	)
	reqs := []transport.Request{
		transport.NewAddBusRequest(catalog.BusInput{Name: "1", Waybill: []string{"A", "B"}}),
		transport.NewAddStopRequest(catalog.StopInput{Name: "A"}),
		transport.NewAddStopRequest(catalog.StopInput{Name: "B"}),
	}
	require.NoError(t, cat.LoadBase(reqs))
	require.NoError(t, cat.Synchronize())
}

// TestRouteInfo_TransferBetweenBusesSharingAStopRequiresAWait pins down
// spec.md §4.D Phase 2's "per-stop running counter used[stop]" as a
// counter shared across every bus, not reset per bus. Two one-way buses
// that both pass through stop M must claim distinct transit vertices
// there, so a rider transferring from one to the other always passes
// back through M's root and pays the wait — never a free same-vertex
// hop straight from one bus's ride onto the other's.
func TestRouteInfo_TransferBetweenBusesSharingAStopRequiresAWait(t *testing.T) {
	routing := transport.RoutingSettings{BusWaitTime: 5, BusVelocityKMPH: 60}
	cat := transport.NewCatalog(routing, mapsvg.Settings{Width: 100, Height: 100})

	require.NoError(t, cat.AddStop(catalog.StopInput{
		Name: "A", RoadDistances: map[string]float64{"M": 6000},
	}))
	require.NoError(t, cat.AddStop(catalog.StopInput{
		Name: "M", RoadDistances: map[string]float64{"B": 6000},
	}))
	require.NoError(t, cat.AddStop(catalog.StopInput{Name: "B"}))
	require.NoError(t, cat.AddBus(catalog.BusInput{Name: "P", Waybill: []string{"A", "M"}}))
	require.NoError(t, cat.AddBus(catalog.BusInput{Name: "Q", Waybill: []string{"M", "B"}}))
	require.NoError(t, cat.Synchronize())

	answer, err := cat.Process(transport.NewRouteInfoRequest(1, "A", "B"))
	require.NoError(t, err)
	routeAns, ok := answer.(transport.RouteAnswer)
	require.True(t, ok)
	require.Empty(t, routeAns.ErrorMessage)

	// Wait@A(5) + Bus P(6) + [free return to M's root, invisible] +
	// Wait@M(5) + Bus Q(6) + [free return to B's root, invisible] = 22.
	// If P and Q collided on the same transit vertex at M, this would
	// instead be 17 (no second wait, no free-return round trip at M).
	require.Equal(t, 22.0, routeAns.TotalTime)
	require.Len(t, routeAns.Items, 4)
	require.Equal(t, "Wait", routeAns.Items[0].Type)
	require.Equal(t, "A", routeAns.Items[0].StopName)
	require.Equal(t, 5.0, routeAns.Items[0].Time)
	require.Equal(t, "Bus", routeAns.Items[1].Type)
	require.Equal(t, "P", routeAns.Items[1].Bus)
	require.Equal(t, 6.0, routeAns.Items[1].Time)
	require.Equal(t, "Wait", routeAns.Items[2].Type)
	require.Equal(t, "M", routeAns.Items[2].StopName)
	require.Equal(t, 5.0, routeAns.Items[2].Time)
	require.Equal(t, "Bus", routeAns.Items[3].Type)
	require.Equal(t, "Q", routeAns.Items[3].Bus)
	require.Equal(t, 6.0, routeAns.Items[3].Time)
}

// TestRouteInfo_S7_SelfPassBusGetsDistinctTransitVertices covers a bus
// whose waybill visits the same stop twice, non-consecutively — the
// S7 scenario SPEC_FULL.md §8 adds. Each pass must own its own transit
// vertex, so riding straight through the first occurrence of X never
// short-circuits into the edges reserved for the second pass.
func TestRouteInfo_S7_SelfPassBusGetsDistinctTransitVertices(t *testing.T) {
	routing := transport.RoutingSettings{BusWaitTime: 5, BusVelocityKMPH: 60}
	cat := transport.NewCatalog(routing, mapsvg.Settings{Width: 100, Height: 100})

	for _, s := range []string{"A", "X", "B", "C", "D"} {
		require.NoError(t, cat.AddStop(catalog.StopInput{Name: s}))
	}
	// Bus loops back through X on its way to D: A -> X -> B -> C -> X -> D.
	require.NoError(t, cat.AddBus(catalog.BusInput{
		Name: "R", Waybill: []string{"A", "X", "B", "C", "X", "D"},
	}))
	require.NoError(t, cat.Synchronize())

	answer, err := cat.Process(transport.NewRouteInfoRequest(1, "A", "D"))
	require.NoError(t, err)
	routeAns, ok := answer.(transport.RouteAnswer)
	require.True(t, ok)
	require.Empty(t, routeAns.ErrorMessage)
	// Wait@A, then one uninterrupted Bus item spanning all five edges of
	// the ride (A-X, X-B, B-C, C-X, X-D) — riding straight through both
	// passes of X never gets short-circuited onto the wrong transit slot.
	require.Len(t, routeAns.Items, 2)
	require.Equal(t, "Wait", routeAns.Items[0].Type)
	require.Equal(t, "A", routeAns.Items[0].StopName)
	require.Equal(t, "Bus", routeAns.Items[1].Type)
	require.Equal(t, "R", routeAns.Items[1].Bus)
	require.Equal(t, 5, routeAns.Items[1].SpanCount)
}
