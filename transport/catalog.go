// File: catalog.go
// Role: the Catalog orchestrator (component H) — owns the store, graph,
// navigator, and map-projection state, and runs the two-phase graph
// builder at Synchronize time (spec.md §4.D).
package transport

import (
	"fmt"
	"sync"

	"github.com/arzamas-transit/busnet/catalog"
	"github.com/arzamas-transit/busnet/dijkstra"
	"github.com/arzamas-transit/busnet/geo"
	"github.com/arzamas-transit/busnet/graph"
	"github.com/arzamas-transit/busnet/mapsvg"
)

// Catalog owns every piece of state needed to answer queries: the
// Stop/Bus store, the graph, the shortest-path navigator, and (lazily)
// the map projector and rendered SVG. All lifetimes end together with
// the Catalog (spec.md §3 "Ownership and lifecycle").
type Catalog struct {
	routing RoutingSettings
	render  mapsvg.Settings

	store *catalog.Store
	graph *graph.Graph
	nav   *dijkstra.Navigator

	mapOnce sync.Once
	mapSVG  string
	mapErr  error
}

// NewCatalog returns an empty Catalog ready to receive base requests.
func NewCatalog(routing RoutingSettings, render mapsvg.Settings) *Catalog {
	return &Catalog{
		routing: routing,
		render:  render,
		store:   catalog.NewStore(),
	}
}

// AddStop registers a stop (base_requests "Stop").
func (c *Catalog) AddStop(in catalog.StopInput) error {
	return c.store.AddStop(in)
}

// AddBus registers a bus (base_requests "Bus").
func (c *Catalog) AddBus(in catalog.BusInput) error {
	return c.store.AddBus(in)
}

// Synchronize freezes the catalog: validates the store, allocates
// vertex blocks, builds the graph's wait and travel edges, and prepares
// the shortest-path navigator. Must be called exactly once, after every
// AddStop/AddBus and before any query.
func (c *Catalog) Synchronize() error {
	if err := c.store.Synchronize(); err != nil {
		return err
	}

	c.graph = graph.NewGraph()
	if err := c.allocateBlocks(); err != nil {
		return err
	}
	c.buildWaitEdges()
	if err := c.buildTravelEdges(); err != nil {
		return err
	}

	c.nav = dijkstra.NewNavigator(c.graph)

	return nil
}

// allocateBlocks implements the vertex allocator (spec.md §4.C): stops
// are visited in sorted-name order for determinism (§9 Open Question i).
func (c *Catalog) allocateBlocks() error {
	for _, name := range c.store.StopNames() {
		passes := c.store.BusPassCount(name)
		b := c.graph.AllocateBlock(passes)
		if err := c.store.SetRootVertex(name, b.Root); err != nil {
			return fmt.Errorf("transport: allocating vertex block for %q: %w", name, err)
		}
	}

	return nil
}

// buildWaitEdges implements Phase 1 (spec.md §4.D): for every stop, one
// wait/return edge pair per bus pass.
func (c *Catalog) buildWaitEdges() {
	for _, name := range c.store.StopNames() {
		st, _ := c.store.Stop(name)
		block := graph.Block{Root: st.RootVertex, Passes: st.BusPassCount}
		for i := 0; i < st.BusPassCount; i++ {
			transit := block.Transit(i)
			_, _ = c.graph.AddEdge(st.RootVertex, transit, c.routing.BusWaitTime, graph.Item{Kind: graph.ItemWait, Name: name})
			_, _ = c.graph.AddEdge(transit, st.RootVertex, 0, graph.Item{})
		}
	}
}

// buildTravelEdges implements Phase 2 (spec.md §4.D): buses are walked
// in sorted-name order; a per-stop `used` counter tracks how many of
// that stop's transit vertices have been claimed so far by ANY bus.
//
// used[stop] is shared across every bus, not reset per bus: a stop's
// busPassCount (computed at Synchronize) sums passes over ALL buses, so
// transit vertex slots must be claimed from one running counter spanning
// the whole sorted bus iteration. Resetting it per bus would make two
// different buses through the same stop collide on the same transit
// vertex.
//
// Crucially — and this is where spec.md's prose ("after processing this
// pair, increment used[cur]") undersells the original engine's actual
// behavior — the counter advances once per waybill POSITION, including
// a bus's own last stop, which forms no outgoing pair of its own.
// original_source/tr_catalog/tr_catalog_engine.cpp's make_graph
// increments current_vertex[*stop_it] unconditionally at the bottom of
// its per-position loop, not only inside the "next stop exists" branch.
// Skipping that final increment (as a pair-count-based reading of
// spec.md would) leaves the last stop's slot uncommitted, so a
// different bus starting from that same stop reuses the same transit
// vertex — a same-vertex, no-wait "free transfer" between two
// unrelated buses that never happens in the original engine.
func (c *Catalog) buildTravelEdges() error {
	used := make(map[string]int)
	for _, name := range c.store.BusNames() {
		b, _ := c.store.Bus(name)
		if err := c.buildOneBusTravelEdges(name, b, used); err != nil {
			return err
		}
	}

	return nil
}

func (c *Catalog) buildOneBusTravelEdges(name string, b catalog.BusView, used map[string]int) error {
	waybill := b.Waybill

	for i := 0; i < len(waybill); i++ {
		cur := waybill[i]
		curStop, ok := c.store.Stop(cur)
		if !ok {
			return fmt.Errorf("transport: bus %q references unknown stop %q", name, cur)
		}

		if i+1 < len(waybill) {
			nxt := waybill[i+1]
			nxtStop, ok := c.store.Stop(nxt)
			if !ok {
				return fmt.Errorf("transport: bus %q references unknown stop %q", name, nxt)
			}

			from := curStop.RootVertex + graph.VertexID(used[cur]) + 1
			to := nxtStop.RootVertex + graph.VertexID(used[nxt]) + 1

			_, real, _ := c.store.Distance(cur, nxt)
			if _, err := c.graph.AddEdge(from, to, geo.TravelMinutes(real, c.routing.BusVelocityKMPH), graph.Item{Kind: graph.ItemBus, Name: name}); err != nil {
				return err
			}

			if !b.IsRoundTrip {
				fromPrime := from
				if i == 0 {
					fromPrime = curStop.RootVertex
				}
				_, realBack, _ := c.store.Distance(nxt, cur)
				if _, err := c.graph.AddEdge(to, fromPrime, geo.TravelMinutes(realBack, c.routing.BusVelocityKMPH), graph.Item{Kind: graph.ItemBus, Name: name}); err != nil {
					return err
				}
			}
		}

		used[cur]++
	}

	if b.IsRoundTrip && len(waybill) > 1 {
		last, first := waybill[len(waybill)-1], waybill[0]
		lastStop, _ := c.store.Stop(last)
		firstStop, _ := c.store.Stop(first)
		// No +1 here: the main loop above already incremented used[last]
		// once (every waybill position is incremented, including the
		// last), so used[last] already names the transit vertex the last
		// stop's final pass claimed.
		from := lastStop.RootVertex + graph.VertexID(used[last])
		_, real, _ := c.store.Distance(last, first)
		if _, err := c.graph.AddEdge(from, firstStop.RootVertex, geo.TravelMinutes(real, c.routing.BusVelocityKMPH), graph.Item{Kind: graph.ItemBus, Name: name}); err != nil {
			return err
		}
	}

	return nil
}
