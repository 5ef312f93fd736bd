package catalog_test

import (
	"testing"

	"github.com/arzamas-transit/busnet/catalog"
	"github.com/arzamas-transit/busnet/geo"
	"github.com/stretchr/testify/require"
)

func mustSync(t *testing.T, s *catalog.Store) {
	t.Helper()
	require.NoError(t, s.Synchronize())
}

func TestAddBus_StripsRoundTripDuplicateEndpoint(t *testing.T) {
	s := catalog.NewStore()
	require.NoError(t, s.AddStop(catalog.StopInput{Name: "A"}))
	require.NoError(t, s.AddStop(catalog.StopInput{Name: "B"}))
	require.NoError(t, s.AddStop(catalog.StopInput{Name: "C"}))
	require.NoError(t, s.AddBus(catalog.BusInput{
		Name: "X", IsRoundTrip: true, Waybill: []string{"A", "B", "C", "A"},
	}))

	view, ok := s.Bus("X")
	require.True(t, ok)
	require.Equal(t, []string{"A", "B", "C"}, view.Waybill)
}

func TestSynchronize_RejectsUnknownWaybillStop(t *testing.T) {
	s := catalog.NewStore()
	require.NoError(t, s.AddStop(catalog.StopInput{Name: "A"}))
	require.NoError(t, s.AddBus(catalog.BusInput{Name: "X", Waybill: []string{"A", "Ghost"}}))

	err := s.Synchronize()
	require.ErrorIs(t, err, catalog.ErrUnknownWaybillStop)
}

func TestSynchronize_ComputesBusPassCount(t *testing.T) {
	s := catalog.NewStore()
	require.NoError(t, s.AddStop(catalog.StopInput{Name: "A"}))
	require.NoError(t, s.AddStop(catalog.StopInput{Name: "B"}))
	require.NoError(t, s.AddBus(catalog.BusInput{Name: "X", Waybill: []string{"A", "B", "A", "B"}}))
	mustSync(t, s)

	require.Equal(t, 2, s.BusPassCount("A"))
	require.Equal(t, 2, s.BusPassCount("B"))

	view, ok := s.Stop("A")
	require.True(t, ok)
	require.Equal(t, []string{"X"}, view.Buses)
}

func TestDistance_AsymmetricFallback(t *testing.T) {
	s := catalog.NewStore()
	require.NoError(t, s.AddStop(catalog.StopInput{
		Name: "A", Coordinates: geo.Coordinates{Latitude: 0, Longitude: 0},
		RoadDistances: map[string]float64{"B": 120000},
	}))
	require.NoError(t, s.AddStop(catalog.StopInput{
		Name: "B", Coordinates: geo.Coordinates{Latitude: 0, Longitude: 1},
	}))

	_, real, ok := s.Distance("A", "B")
	require.True(t, ok)
	require.Equal(t, 120000.0, real)

	// B->A has no direct entry; falls back to A's recorded value (rule 2).
	_, real2, ok := s.Distance("B", "A")
	require.True(t, ok)
	require.Equal(t, 120000.0, real2)
}

func TestDistance_FallsBackToGeographic(t *testing.T) {
	s := catalog.NewStore()
	require.NoError(t, s.AddStop(catalog.StopInput{Name: "A", Coordinates: geo.Coordinates{Latitude: 0, Longitude: 0}}))
	require.NoError(t, s.AddStop(catalog.StopInput{Name: "B", Coordinates: geo.Coordinates{Latitude: 0, Longitude: 1}}))

	geoDist, real, ok := s.Distance("A", "B")
	require.True(t, ok)
	require.Equal(t, geoDist, real)
}

func TestDistance_UnknownStop(t *testing.T) {
	s := catalog.NewStore()
	require.NoError(t, s.AddStop(catalog.StopInput{Name: "A"}))
	_, _, ok := s.Distance("A", "Ghost")
	require.False(t, ok)
}

func TestRouteStats_S1_OneWayTwoStops(t *testing.T) {
	s := catalog.NewStore()
	require.NoError(t, s.AddStop(catalog.StopInput{
		Name: "A", Coordinates: geo.Coordinates{Latitude: 0, Longitude: 0},
		RoadDistances: map[string]float64{"B": 120000},
	}))
	require.NoError(t, s.AddStop(catalog.StopInput{Name: "B", Coordinates: geo.Coordinates{Latitude: 0, Longitude: 1}}))
	require.NoError(t, s.AddBus(catalog.BusInput{Name: "X", IsRoundTrip: false, Waybill: []string{"A", "B"}}))
	mustSync(t, s)

	stats, ok := s.RouteStats("X")
	require.True(t, ok)
	require.Equal(t, 3, stats.StopCount)
	require.Equal(t, 2, stats.UniqueStopCount)
	require.InDelta(t, 240000, stats.RoadLen, 1e-6)
	require.GreaterOrEqual(t, stats.Curvature, 1.0-1e-9)
}

func TestRouteStats_S2_RoundTripThreeStops(t *testing.T) {
	s := catalog.NewStore()
	require.NoError(t, s.AddStop(catalog.StopInput{Name: "A", Coordinates: geo.Coordinates{Latitude: 0, Longitude: 0}}))
	require.NoError(t, s.AddStop(catalog.StopInput{Name: "B", Coordinates: geo.Coordinates{Latitude: 0, Longitude: 1}}))
	require.NoError(t, s.AddStop(catalog.StopInput{Name: "C", Coordinates: geo.Coordinates{Latitude: 1, Longitude: 1}}))
	require.NoError(t, s.AddBus(catalog.BusInput{
		Name: "X", IsRoundTrip: true, Waybill: []string{"A", "B", "C", "A"},
	}))
	mustSync(t, s)

	stats, ok := s.RouteStats("X")
	require.True(t, ok)
	require.Equal(t, 4, stats.StopCount)
	require.Equal(t, 3, stats.UniqueStopCount)
}

func TestRouteStats_UnknownBus(t *testing.T) {
	s := catalog.NewStore()
	_, ok := s.RouteStats("Ghost")
	require.False(t, ok)
}

func TestStopNamesAndBusNames_SortedDeterministic(t *testing.T) {
	s := catalog.NewStore()
	require.NoError(t, s.AddStop(catalog.StopInput{Name: "Charlie"}))
	require.NoError(t, s.AddStop(catalog.StopInput{Name: "Alpha"}))
	require.NoError(t, s.AddStop(catalog.StopInput{Name: "Bravo"}))
	require.Equal(t, []string{"Alpha", "Bravo", "Charlie"}, s.StopNames())

	require.NoError(t, s.AddBus(catalog.BusInput{Name: "Zulu", Waybill: []string{"Alpha"}}))
	require.NoError(t, s.AddBus(catalog.BusInput{Name: "Xray", Waybill: []string{"Alpha"}}))
	require.NoError(t, s.AddBus(catalog.BusInput{Name: "Yankee", Waybill: []string{"Alpha"}}))
	require.Equal(t, []string{"Xray", "Yankee", "Zulu"}, s.BusNames())
}
