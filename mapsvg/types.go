package mapsvg

import "github.com/arzamas-transit/busnet/graph"

// StopRef is the projector's view of one stop: enough to sort it by
// coordinate and to test route adjacency against its transit vertices.
type StopRef struct {
	Name      string
	Longitude float64
	Latitude  float64
	Block     graph.Block
}

// RankIndex is a stop's compressed position: a dense integer rank along
// each axis, not its raw coordinate.
type RankIndex struct {
	X int
	Y int
}

// Settings mirrors the original render.Settings shape (spec.md §4.G):
// canvas geometry, route/label styling, and the layer draw order.
type Settings struct {
	Width, Height, Padding float64
	StopRadius, LineWidth  float64

	StopLabelFontSize int
	StopLabelOffsetX  float64
	StopLabelOffsetY  float64

	BusLabelFontSize int
	BusLabelOffsetX  float64
	BusLabelOffsetY  float64

	// UnderlayerColor is the CSS color string painted as a substrate
	// behind every label, stroked wide enough (UnderlayerWidth) to keep
	// text legible over crossing route lines, per spec.md §4.G "Layers"
	// (each label layer draws "a substrate underlayer and then the main
	// fill").
	UnderlayerColor string
	UnderlayerWidth float64

	Palette       []string // CSS color strings, cycled per bus
	LayerSequence []string // e.g. "bus_lines", "bus_labels", "stop_points", "stop_labels"
}

// Route is one bus's rendered polyline: the ordered stop names it visits
// on its forward pass, plus (for one-way buses) its backward pass.
type Route struct {
	BusName     string
	IsRoundTrip bool
	Waybill     []string
}
