// File: mapview.go
// Role: the lazy map-render accessor (spec.md §4.G / §8 S8-S9): the SVG
// document is assembled once per Catalog, on first "Map" request, and
// cached for the rest of the process lifetime.
package transport

import (
	"strings"

	"github.com/arzamas-transit/busnet/graph"
	"github.com/arzamas-transit/busnet/mapsvg"
)

func (c *Catalog) mapAnswer(id int) (MapAnswer, error) {
	svg, err := c.renderMap()
	if err != nil {
		return MapAnswer{}, err
	}

	return MapAnswer{RequestID: id, Map: svg}, nil
}

func (c *Catalog) renderMap() (string, error) {
	c.mapOnce.Do(func() {
		c.mapSVG, c.mapErr = c.buildMapSVG()
	})

	return c.mapSVG, c.mapErr
}

func (c *Catalog) buildMapSVG() (string, error) {
	stops := make([]mapsvg.StopRef, 0, len(c.store.StopNames()))
	for _, name := range c.store.StopNames() {
		st, _ := c.store.Stop(name)
		stops = append(stops, mapsvg.StopRef{
			Name:      st.Name,
			Longitude: st.Coordinates.Longitude,
			Latitude:  st.Coordinates.Latitude,
			Block:     graph.Block{Root: st.RootVertex, Passes: st.BusPassCount},
		})
	}

	routes := make([]mapsvg.Route, 0, len(c.store.BusNames()))
	for _, name := range c.store.BusNames() {
		b, _ := c.store.Bus(name)
		routes = append(routes, mapsvg.Route{
			BusName:     b.Name,
			IsRoundTrip: b.IsRoundTrip,
			Waybill:     b.Waybill,
		})
	}

	projector := mapsvg.NewProjector(c.graph, c.render, stops)

	var buf strings.Builder
	projector.Render(&buf, routes)

	return buf.String(), nil
}
