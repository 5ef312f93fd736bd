// File: codec.go
// Role: JSON (de)serialization of the stdin/stdout document (spec.md §6),
// using jsoniter in stdlib-compatible mode rather than encoding/json, per
// this repository's dependency-maximizing stance.
package transport

import (
	"encoding/json"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/arzamas-transit/busnet/catalog"
	"github.com/arzamas-transit/busnet/geo"
	"github.com/arzamas-transit/busnet/mapsvg"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardEncoding

// document is the stdin JSON shape: routing/render settings plus the two
// request arrays.
type document struct {
	RoutingSettings routingSettingsJSON `json:"routing_settings"`
	RenderSettings  renderSettingsJSON  `json:"render_settings"`
	BaseRequests    []requestJSON       `json:"base_requests"`
	StatRequests    []requestJSON       `json:"stat_requests"`
}

type routingSettingsJSON struct {
	BusWaitTime float64 `json:"bus_wait_time"`
	BusVelocity float64 `json:"bus_velocity"`
}

type renderSettingsJSON struct {
	Width             float64         `json:"width"`
	Height            float64         `json:"height"`
	Padding           float64         `json:"padding"`
	StopRadius        float64         `json:"stop_radius"`
	LineWidth         float64         `json:"line_width"`
	StopLabelFontSize int             `json:"stop_label_font_size"`
	StopLabelOffset   []float64       `json:"stop_label_offset"`
	BusLabelFontSize  int             `json:"bus_label_font_size"`
	BusLabelOffset    []float64       `json:"bus_label_offset"`
	UnderlayerColor   json.RawMessage `json:"underlayer_color"`
	UnderlayerWidth   float64         `json:"underlayer_width"`
	Palette           []string        `json:"color_palette"`
	LayerSequence     []string        `json:"layers"`
}

type requestJSON struct {
	Type          string             `json:"type"`
	ID            int                `json:"id"`
	Name          string             `json:"name"`
	From          string             `json:"from"`
	To            string             `json:"to"`
	Latitude      float64            `json:"latitude"`
	Longitude     float64            `json:"longitude"`
	RoadDistances map[string]float64 `json:"road_distances"`
	IsRoundTrip   bool               `json:"is_roundtrip"`
	Stops         []string           `json:"stops"`
}

// Decode parses the stdin document into base/stat requests plus the
// routing and render settings, per spec.md §6.
func Decode(data []byte) (base, stat []Request, routing RoutingSettings, render mapsvg.Settings, err error) {
	var doc document
	if err = jsonAPI.Unmarshal(data, &doc); err != nil {
		return nil, nil, RoutingSettings{}, mapsvg.Settings{}, fmt.Errorf("transport: decoding input document: %w", err)
	}

	routing = RoutingSettings{
		BusWaitTime:     doc.RoutingSettings.BusWaitTime,
		BusVelocityKMPH: doc.RoutingSettings.BusVelocity,
	}
	render = toRenderSettings(doc.RenderSettings)

	base, err = decodeRequests(doc.BaseRequests, true)
	if err != nil {
		return nil, nil, RoutingSettings{}, mapsvg.Settings{}, err
	}
	stat, err = decodeRequests(doc.StatRequests, false)
	if err != nil {
		return nil, nil, RoutingSettings{}, mapsvg.Settings{}, err
	}

	return base, stat, routing, render, nil
}

func toRenderSettings(r renderSettingsJSON) mapsvg.Settings {
	s := mapsvg.Settings{
		Width:             r.Width,
		Height:            r.Height,
		Padding:           r.Padding,
		StopRadius:        r.StopRadius,
		LineWidth:         r.LineWidth,
		StopLabelFontSize: r.StopLabelFontSize,
		BusLabelFontSize:  r.BusLabelFontSize,
		UnderlayerColor:   decodeColor(r.UnderlayerColor),
		UnderlayerWidth:   r.UnderlayerWidth,
		Palette:           r.Palette,
		LayerSequence:     r.LayerSequence,
	}
	if len(r.StopLabelOffset) == 2 {
		s.StopLabelOffsetX, s.StopLabelOffsetY = r.StopLabelOffset[0], r.StopLabelOffset[1]
	}
	if len(r.BusLabelOffset) == 2 {
		s.BusLabelOffsetX, s.BusLabelOffsetY = r.BusLabelOffset[0], r.BusLabelOffset[1]
	}

	return s
}

// decodeColor accepts underlayer_color in any of the three shapes
// spec.md §6 names: a CSS color string, an [r,g,b] triple, or an
// [r,g,b,a] quadruple (each channel 0-255, alpha 0-1 or 0-255 scaled
// down to rgba()'s 0-1 range). Returns "" if raw is empty/null.
func decodeColor(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var asString string
	if err := jsonAPI.Unmarshal(raw, &asString); err == nil {
		return asString
	}

	var channels []float64
	if err := jsonAPI.Unmarshal(raw, &channels); err != nil || len(channels) < 3 {
		return ""
	}

	r, g, b := int(channels[0]), int(channels[1]), int(channels[2])
	if len(channels) >= 4 {
		a := channels[3]
		if a > 1 {
			a /= 255
		}

		return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, strconv.FormatFloat(a, 'f', -1, 64))
	}

	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

func decodeRequests(items []requestJSON, isBase bool) ([]Request, error) {
	out := make([]Request, 0, len(items))
	for _, it := range items {
		req, err := decodeOneRequest(it, isBase)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}

	return out, nil
}

func decodeOneRequest(it requestJSON, isBase bool) (Request, error) {
	switch it.Type {
	case "Stop":
		if isBase {
			return NewAddStopRequest(catalog.StopInput{
				Name:          it.Name,
				Coordinates:   geo.Coordinates{Latitude: it.Latitude, Longitude: it.Longitude},
				RoadDistances: it.RoadDistances,
			}), nil
		}

		return NewStopInfoRequest(it.ID, it.Name), nil
	case "Bus":
		if isBase {
			return NewAddBusRequest(catalog.BusInput{
				Name:        it.Name,
				IsRoundTrip: it.IsRoundTrip,
				Waybill:     it.Stops,
			}), nil
		}

		return NewBusInfoRequest(it.ID, it.Name), nil
	case "Route":
		return NewRouteInfoRequest(it.ID, it.From, it.To), nil
	case "Map":
		return NewMapRequest(it.ID), nil
	default:
		return Request{}, fmt.Errorf("%w: %q", ErrUnknownRequestType, it.Type)
	}
}

// EncodeAnswers marshals the ordered answer slice into the stdout JSON
// array, per spec.md §6 "Numeric format" (jsoniter's compatible config
// preserves encoding/json's float formatting).
func EncodeAnswers(answers []interface{}) ([]byte, error) {
	return jsonAPI.MarshalIndent(answers, "", "  ")
}
