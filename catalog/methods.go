// File: methods.go
// Role: the heavier catalog operations — Synchronize's validation and
// enrichment pass, the pairwise distance lookup (spec.md §4.B), and
// memoised per-bus route statistics.
package catalog

import (
	"fmt"
	"sort"

	"github.com/arzamas-transit/busnet/geo"
)

// Synchronize validates that every waybill name has a matching stop
// record (spec.md §3 invariant) and computes each stop's bus membership
// set and bus-pass count (spec.md §4.C step 1). It must run exactly once,
// before any vertex allocation or query. Returns ErrUnknownWaybillStop on
// the first dangling reference found (buses visited in sorted-name
// order, so the error is deterministic).
//
// Complexity: O(Σ waybill lengths).
func (s *Store) Synchronize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	busNames := make([]string, 0, len(s.buses))
	for n := range s.buses {
		busNames = append(busNames, n)
	}
	sort.Strings(busNames)

	for _, bn := range busNames {
		b := s.buses[bn]
		for _, stopName := range b.waybill {
			st, ok := s.stops[stopName]
			if !ok {
				return fmt.Errorf("%w: bus %q references stop %q", ErrUnknownWaybillStop, bn, stopName)
			}
			if st.buses == nil {
				st.buses = make(map[string]struct{})
			}
			st.buses[bn] = struct{}{}
			st.busPassCount++
		}
	}

	s.synchronized = true

	return nil
}

// Synchronized reports whether Synchronize has completed successfully.
func (s *Store) Synchronized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.synchronized
}

// Distance returns the great-circle (geographic) and road (real)
// distance, in meters, between two named stops. The real distance
// follows spec.md §4.B's lookup rule: a's recorded distance to b, else
// b's recorded distance to a, else the great-circle distance. ok is
// false if either stop is unknown.
// Complexity: O(1).
func (s *Store) Distance(aName, bName string) (geographic, real float64, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, okA := s.stops[aName]
	b, okB := s.stops[bName]
	if !okA || !okB {
		return 0, 0, false
	}

	geographic = geo.GreatCircleDistance(a.coordinates, b.coordinates)
	if d, ok := a.roadDistances[bName]; ok {
		real = d
	} else if d, ok := b.roadDistances[aName]; ok {
		real = d
	} else {
		real = geographic
	}

	return geographic, real, true
}

// RouteStats returns the memoised per-bus statistics (spec.md §3 "Bus"
// carries a memoised route-stat record; §8 invariant 7 defines
// curvature). Computed lazily on first access and cached thereafter —
// safe to call concurrently for different buses or the same bus
// (spec.md §5 "Lazy vs eager", §9 "Cache locking" applied to bus stats).
// ok is false if the bus is unknown.
// Complexity: O(n) on first call, O(1) thereafter (n = waybill length).
func (s *Store) RouteStats(busName string) (RouteStats, bool) {
	s.mu.RLock()
	b, ok := s.buses[busName]
	s.mu.RUnlock()
	if !ok {
		return RouteStats{}, false
	}

	b.statsOnce.Do(func() {
		b.stats, b.statsErr = s.computeRouteStats(b)
	})
	if b.statsErr != nil {
		return RouteStats{}, false
	}

	return b.stats, true
}

// computeRouteStats walks the bus's waybill — forward and back for a
// one-way bus, once around the loop for a round-trip bus — summing
// geographic and road distance over every traversed pair, per the S1/S2
// scenarios of spec.md §8.
func (s *Store) computeRouteStats(b *bus) (RouteStats, error) {
	n := len(b.waybill)
	unique := make(map[string]struct{}, n)
	for _, name := range b.waybill {
		unique[name] = struct{}{}
	}

	var pairs [][2]string
	if b.isRoundTrip {
		for i := 0; i < n; i++ {
			pairs = append(pairs, [2]string{b.waybill[i], b.waybill[(i+1)%n]})
		}
	} else {
		for i := 0; i < n-1; i++ {
			pairs = append(pairs, [2]string{b.waybill[i], b.waybill[i+1]})
		}
		for i := n - 1; i > 0; i-- {
			pairs = append(pairs, [2]string{b.waybill[i], b.waybill[i-1]})
		}
	}

	var geoSum, roadSum float64
	for _, p := range pairs {
		g, r, ok := s.Distance(p[0], p[1])
		if !ok {
			return RouteStats{}, fmt.Errorf("%w: %q", ErrUnknownWaybillStop, p[0])
		}
		geoSum += g
		roadSum += r
	}

	curvature := 1.0
	if geoSum > 0 {
		curvature = roadSum / geoSum
	}

	return RouteStats{
		StopCount:       len(pairs) + 1,
		UniqueStopCount: len(unique),
		GeographicLen:   geoSum,
		RoadLen:         roadSum,
		Curvature:       curvature,
	}, nil
}
