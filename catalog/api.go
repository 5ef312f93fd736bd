// File: api.go
// Role: construction and read-only accessors. Mutation that changes the
// shape of the catalog (AddStop, AddBus) lives here too, since both are
// simple insert-or-reject operations; Synchronize and the heavier
// statistics computation live in methods.go.
package catalog

import (
	"sort"

	"github.com/arzamas-transit/busnet/graph"
)

// AddStop registers a new stop. Returns ErrEmptyName or ErrDuplicateStop.
// Complexity: O(1).
func (s *Store) AddStop(in StopInput) error {
	if in.Name == "" {
		return ErrEmptyName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.stops[in.Name]; exists {
		return ErrDuplicateStop
	}

	rd := make(map[string]float64, len(in.RoadDistances))
	for k, v := range in.RoadDistances {
		rd[k] = v
	}
	s.stops[in.Name] = &stop{
		name:          in.Name,
		coordinates:   in.Coordinates,
		roadDistances: rd,
	}

	return nil
}

// AddBus registers a new bus. For round-trip buses whose waybill repeats
// its first stop as its last entry, the duplicate is stripped before
// storage (spec.md §3 "Bus" invariant). Returns ErrEmptyName,
// ErrDuplicateBus, or ErrEmptyWaybill.
// Complexity: O(n) in the waybill length.
func (s *Store) AddBus(in BusInput) error {
	if in.Name == "" {
		return ErrEmptyName
	}
	if len(in.Waybill) == 0 {
		return ErrEmptyWaybill
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.buses[in.Name]; exists {
		return ErrDuplicateBus
	}

	waybill := make([]string, len(in.Waybill))
	copy(waybill, in.Waybill)
	if in.IsRoundTrip && len(waybill) > 1 && waybill[0] == waybill[len(waybill)-1] {
		waybill = waybill[:len(waybill)-1]
	}

	s.buses[in.Name] = &bus{
		name:        in.Name,
		isRoundTrip: in.IsRoundTrip,
		waybill:     waybill,
	}

	return nil
}

// Stop returns a read-only view of the named stop.
// Complexity: O(b log b) where b is the number of distinct buses serving
// the stop (Buses is
// sorted on every call; callers that need the view repeatedly should
// cache it rather than re-fetch in a hot loop).
func (s *Store) Stop(name string) (StopView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.stops[name]
	if !ok {
		return StopView{}, false
	}

	return stopView(st), true
}

// Bus returns a read-only view of the named bus.
// Complexity: O(n) copy of the waybill.
func (s *Store) Bus(name string) (BusView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.buses[name]
	if !ok {
		return BusView{}, false
	}

	return busView(b), true
}

// StopNames returns every registered stop name, sorted ascending. This is
// the deterministic iteration order spec.md §4.C and §9 Open Question (i)
// require for vertex allocation.
// Complexity: O(V log V).
func (s *Store) StopNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.stops))
	for n := range s.stops {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// BusNames returns every registered bus name, sorted ascending — the
// deterministic bus-iteration order spec.md §4.D Phase 2 and §9 Open
// Question (i) require.
// Complexity: O(B log B).
func (s *Store) BusNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.buses))
	for n := range s.buses {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

func stopView(st *stop) StopView {
	buses := make([]string, 0, len(st.buses))
	for b := range st.buses {
		buses = append(buses, b)
	}
	sort.Strings(buses)
	rd := make(map[string]float64, len(st.roadDistances))
	for k, v := range st.roadDistances {
		rd[k] = v
	}

	return StopView{
		Name:          st.name,
		Coordinates:   st.coordinates,
		RoadDistances: rd,
		Buses:         buses,
		BusPassCount:  st.busPassCount,
		RootVertex:    st.rootVertex,
		HasRootVertex: st.hasRootVertex,
	}
}

func busView(b *bus) BusView {
	wb := make([]string, len(b.waybill))
	copy(wb, b.waybill)

	return BusView{Name: b.name, IsRoundTrip: b.isRoundTrip, Waybill: wb}
}

// SetRootVertex records the vertex id the graph builder assigned as this
// stop's root (spec.md §4.C). May only be called once per stop, after
// Synchronize has computed bus-pass counts.
// Complexity: O(1).
func (s *Store) SetRootVertex(name string, id graph.VertexID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stops[name]
	if !ok {
		return ErrUnknownWaybillStop
	}
	if st.hasRootVertex {
		return ErrRootVertexAlreadySet
	}
	st.rootVertex = id
	st.hasRootVertex = true

	return nil
}

// BusPassCount returns the stop's bus-pass count (0 if the stop does not
// exist or Synchronize has not run).
// Complexity: O(1).
func (s *Store) BusPassCount(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.stops[name]
	if !ok {
		return 0
	}

	return st.busPassCount
}
