package itinerary

// ItemKind distinguishes the two shapes of a merged itinerary item.
type ItemKind uint8

const (
	// Wait is the time spent waiting at a stop before boarding.
	Wait ItemKind = iota
	// Bus is one uninterrupted run of consecutive edges on the same bus.
	Bus
)

// Item is a single entry in a merged itinerary: either a wait at a named
// stop, or a ride spanning one or more consecutive edges on a named bus.
// SpanCount is meaningless (left at zero) for Wait items.
type Item struct {
	Kind      ItemKind
	Name      string
	Time      float64
	SpanCount int
}
