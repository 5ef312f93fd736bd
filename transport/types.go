package transport

import (
	"errors"

	"github.com/arzamas-transit/busnet/catalog"
)

// ErrUnknownRequestType indicates a base_requests or stat_requests item
// carried a "type" field this façade does not recognize. This is a
// configuration error (spec.md §7): the whole batch aborts.
var ErrUnknownRequestType = errors.New("transport: unknown request type")

// RequestKind discriminates the tagged Request union.
type RequestKind uint8

const (
	KindAddStop RequestKind = iota
	KindAddBus
	KindStopInfo
	KindBusInfo
	KindRouteInfo
	KindMap
)

// Request is the tagged-union shape spec.md §9 describes: one flat
// struct carrying every request kind's fields, a Kind tag selecting
// which are meaningful, and a single switch (Catalog.Process) that
// pattern-matches on it.
type Request struct {
	Kind RequestKind
	ID   int // stat_requests only; base_requests carry no id

	Stop catalog.StopInput // KindAddStop
	Bus  catalog.BusInput  // KindAddBus

	Name     string // KindStopInfo / KindBusInfo
	From, To string // KindRouteInfo
}

// NewAddStopRequest builds a base_requests "Stop" item.
func NewAddStopRequest(stop catalog.StopInput) Request {
	return Request{Kind: KindAddStop, Stop: stop}
}

// NewAddBusRequest builds a base_requests "Bus" item.
func NewAddBusRequest(bus catalog.BusInput) Request {
	return Request{Kind: KindAddBus, Bus: bus}
}

// NewStopInfoRequest builds a stat_requests "Stop" item.
func NewStopInfoRequest(id int, name string) Request {
	return Request{Kind: KindStopInfo, ID: id, Name: name}
}

// NewBusInfoRequest builds a stat_requests "Bus" item.
func NewBusInfoRequest(id int, name string) Request {
	return Request{Kind: KindBusInfo, ID: id, Name: name}
}

// NewRouteInfoRequest builds a stat_requests "Route" item.
func NewRouteInfoRequest(id int, from, to string) Request {
	return Request{Kind: KindRouteInfo, ID: id, From: from, To: to}
}

// NewMapRequest builds a stat_requests "Map" item.
func NewMapRequest(id int) Request {
	return Request{Kind: KindMap, ID: id}
}

// RoutingSettings mirrors the input document's routing_settings object.
type RoutingSettings struct {
	BusWaitTime     float64 // minutes
	BusVelocityKMPH float64
}

// BusStatsAnswer is the JSON shape of a "Bus" stat_requests response.
type BusStatsAnswer struct {
	RequestID       int     `json:"request_id"`
	RouteLength     float64 `json:"route_length,omitempty"`
	Curvature       float64 `json:"curvature,omitempty"`
	StopCount       int     `json:"stop_count,omitempty"`
	UniqueStopCount int     `json:"unique_stop_count,omitempty"`
	ErrorMessage    string  `json:"error_message,omitempty"`
}

// StopBusesAnswer is the JSON shape of a "Stop" stat_requests response.
type StopBusesAnswer struct {
	RequestID    int      `json:"request_id"`
	Buses        []string `json:"buses,omitempty"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// RouteItemAnswer is one merged itinerary item, JSON-shaped per
// spec.md §6: a Wait item carries StopName, a Bus item carries Bus and
// SpanCount.
type RouteItemAnswer struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

// RouteAnswer is the JSON shape of a "Route" stat_requests response.
type RouteAnswer struct {
	RequestID    int               `json:"request_id"`
	TotalTime    float64           `json:"total_time,omitempty"`
	Items        []RouteItemAnswer `json:"items,omitempty"`
	ErrorMessage string            `json:"error_message,omitempty"`
}

// MapAnswer is the JSON shape of a "Map" stat_requests response.
type MapAnswer struct {
	RequestID int    `json:"request_id"`
	Map       string `json:"map,omitempty"`
}

// notFoundAnswer builds the in-band "not found" answer for the given kind
// (spec.md §7 "Missing reference").
func notFoundAnswer(kind RequestKind, id int) interface{} {
	switch kind {
	case KindBusInfo:
		return BusStatsAnswer{RequestID: id, ErrorMessage: "not found"}
	case KindStopInfo:
		return StopBusesAnswer{RequestID: id, ErrorMessage: "not found"}
	case KindRouteInfo:
		return RouteAnswer{RequestID: id, ErrorMessage: "not found"}
	default:
		return nil
	}
}
