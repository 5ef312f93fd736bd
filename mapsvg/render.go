// File: render.go
// Role: pixel scaling and layered SVG emission. Projector owns one
// Settings and renders whichever layers its LayerSequence names, in
// that order — the same layer_sequence-driven dispatch the original
// render_map/layer_renderers pair uses.
package mapsvg

import (
	"io"
	"sort"
	"strconv"

	"github.com/ajstarks/svgo"
	"github.com/arzamas-transit/busnet/graph"
)

// Projector computes stop rank indices once and renders an arbitrary
// number of SVG documents from the cached result — the step (pixel-per-
// rank) settings only need computing once per catalog.
type Projector struct {
	settings Settings

	ranks  map[string]RankIndex
	xStep  float64
	yStep  float64
	coords map[string]point
}

type point struct{ x, y float64 }

// NewProjector computes rank indices for stops and the resulting pixel
// step sizes, per spec.md §4.G (step = 0 when the corresponding max rank
// is 0 — a single stop, or stops of which no two are directly connected,
// collapses to one line on that axis).
func NewProjector(g *graph.Graph, settings Settings, stops []StopRef) *Projector {
	ranks, maxX, maxY := compressRanks(g, stops)

	p := &Projector{settings: settings, ranks: ranks}
	usable := settings.Width - 2*settings.Padding
	if maxX > 0 {
		p.xStep = usable / float64(maxX)
	}
	usableH := settings.Height - 2*settings.Padding
	if maxY > 0 {
		p.yStep = usableH / float64(maxY)
	}

	p.coords = make(map[string]point, len(ranks))
	for name, r := range ranks {
		p.coords[name] = point{
			x: float64(r.X)*p.xStep + settings.Padding,
			y: settings.Height - settings.Padding - float64(r.Y)*p.yStep,
		}
	}

	return p
}

// Coordinates returns the pixel position assigned to a stop, if known.
func (p *Projector) Coordinates(stopName string) (x, y float64, ok bool) {
	pt, ok := p.coords[stopName]

	return pt.x, pt.y, ok
}

// Render draws every layer in settings.LayerSequence, in order, onto a
// new SVG document written to w.
func (p *Projector) Render(w io.Writer, routes []Route) {
	canvas := svg.New(w)
	canvas.Start(int(p.settings.Width), int(p.settings.Height))
	defer canvas.End()

	for _, layer := range p.settings.LayerSequence {
		switch layer {
		case "bus_lines":
			p.renderBusLines(canvas, routes)
		case "bus_labels":
			p.renderBusLabels(canvas, routes)
		case "stop_points":
			p.renderStopPoints(canvas)
		case "stop_labels":
			p.renderStopLabels(canvas)
		}
	}
}

func (p *Projector) color(i int) string {
	if len(p.settings.Palette) == 0 {
		return "black"
	}

	return p.settings.Palette[i%len(p.settings.Palette)]
}

func (p *Projector) renderBusLines(canvas *svg.SVG, routes []Route) {
	for i, r := range routes {
		xs, ys := p.polylinePoints(r)
		if len(xs) < 2 {
			continue
		}
		canvas.Polyline(xs, ys, "fill:none;stroke:"+p.color(i)+";stroke-width:"+strconv.Itoa(int(p.settings.LineWidth)))
	}
}

func (p *Projector) polylinePoints(r Route) ([]int, []int) {
	stops := r.Waybill
	if !r.IsRoundTrip && len(stops) > 1 {
		back := make([]string, len(stops)-1)
		for i := 0; i < len(stops)-1; i++ {
			back[i] = stops[len(stops)-2-i]
		}
		stops = append(append([]string{}, stops...), back...)
	} else if r.IsRoundTrip && len(stops) > 1 {
		stops = append(append([]string{}, stops...), stops[0])
	}

	xs := make([]int, 0, len(stops))
	ys := make([]int, 0, len(stops))
	for _, name := range stops {
		x, y, ok := p.Coordinates(name)
		if !ok {
			continue
		}
		xs = append(xs, int(x))
		ys = append(ys, int(y))
	}

	return xs, ys
}

// busLabelAt draws one bus-name label at (x, y): a wide-stroked
// underlayer first (substrate, for legibility over crossing route
// lines), then the bold fill on top — spec.md §4.G "bus_labels" ("bold
// text at the first stop ... each with a substrate underlayer and then
// the main fill").
func (p *Projector) busLabelAt(canvas *svg.SVG, x, y int, name, fill string) {
	ox, oy := x+int(p.settings.BusLabelOffsetX), y+int(p.settings.BusLabelOffsetY)
	if p.settings.UnderlayerColor != "" {
		canvas.Text(ox, oy, name,
			"font-weight:bold",
			"font-size:"+strconv.Itoa(p.settings.BusLabelFontSize),
			"fill:none",
			"stroke:"+p.settings.UnderlayerColor,
			"stroke-width:"+strconv.FormatFloat(p.settings.UnderlayerWidth, 'f', -1, 64),
			"stroke-linejoin:round")
	}
	canvas.Text(ox, oy, name,
		"font-weight:bold",
		"font-size:"+strconv.Itoa(p.settings.BusLabelFontSize),
		"fill:"+fill)
}

func (p *Projector) renderBusLabels(canvas *svg.SVG, routes []Route) {
	for i, r := range routes {
		if len(r.Waybill) == 0 {
			continue
		}
		x, y, ok := p.Coordinates(r.Waybill[0])
		if !ok {
			continue
		}
		p.busLabelAt(canvas, int(x), int(y), r.BusName, p.color(i))

		// Round-trip buses show the label only at their single terminus
		// (first == last); one-way buses whose endpoints actually differ
		// additionally label the far end.
		if !r.IsRoundTrip && len(r.Waybill) > 1 && r.Waybill[len(r.Waybill)-1] != r.Waybill[0] {
			lastName := r.Waybill[len(r.Waybill)-1]
			if lx, ly, ok := p.Coordinates(lastName); ok {
				p.busLabelAt(canvas, int(lx), int(ly), r.BusName, p.color(i))
			}
		}
	}
}

// sortedStopNames returns every stop with a known projected coordinate,
// in a stable, deterministic order — stop_points/stop_labels draw order
// must not depend on Go's randomized map iteration.
func (p *Projector) sortedStopNames() []string {
	names := make([]string, 0, len(p.ranks))
	for name := range p.ranks {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (p *Projector) renderStopPoints(canvas *svg.SVG) {
	for _, name := range p.sortedStopNames() {
		x, y, ok := p.Coordinates(name)
		if !ok {
			continue
		}
		canvas.Circle(int(x), int(y), int(p.settings.StopRadius), "fill:white")
	}
}

// stopLabelAt draws one stop-name label: substrate underlayer, then the
// plain (non-bold) fill on top, per spec.md §4.G "stop_labels" ("non-bold
// text per stop, substrate + fill").
func (p *Projector) stopLabelAt(canvas *svg.SVG, x, y int, name string) {
	ox, oy := x+int(p.settings.StopLabelOffsetX), y+int(p.settings.StopLabelOffsetY)
	if p.settings.UnderlayerColor != "" {
		canvas.Text(ox, oy, name,
			"font-size:"+strconv.Itoa(p.settings.StopLabelFontSize),
			"fill:none",
			"stroke:"+p.settings.UnderlayerColor,
			"stroke-width:"+strconv.FormatFloat(p.settings.UnderlayerWidth, 'f', -1, 64),
			"stroke-linejoin:round")
	}
	canvas.Text(ox, oy, name, "font-size:"+strconv.Itoa(p.settings.StopLabelFontSize))
}

func (p *Projector) renderStopLabels(canvas *svg.SVG) {
	for _, name := range p.sortedStopNames() {
		x, y, ok := p.Coordinates(name)
		if !ok {
			continue
		}
		p.stopLabelAt(canvas, int(x), int(y), name)
	}
}
