package temporal

import "errors"

var (
	// ErrUnsortedEvents is returned when an event's time is strictly less than the time of the event preceding it.
	ErrUnsortedEvents = errors.New("events are not sorted by time in increasing order")

	// ErrSelfLoopEvent is returned when an event references the same node as both endpoints. Self-contacts have no
	// defined path semantics and are rejected outright.
	ErrSelfLoopEvent = errors.New("event endpoints reference the same node")
)

// Event records an instantaneous, undirected contact between two nodes at a point in time.
type Event struct {
	Time int64
	A    uint64
	B    uint64
}

// Touches returns true if either endpoint of the event is the given node.
func (s Event) Touches(node uint64) bool {
	return s.A == node || s.B == node
}

// Other returns the opposite endpoint of the event relative to the given node.
func (s Event) Other(node uint64) uint64 {
	if s.A == node {
		return s.B
	}

	return s.A
}
