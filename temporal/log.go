package temporal

import (
	"fmt"
	"sort"

	"github.com/tempnet-io/tempnet/cardinality"
	"github.com/tempnet-io/tempnet/util"
)

// ContactLog is a materialized, time-ordered sequence of contact events. The log is indexable in both directions,
// which is what allows measures that sweep the same event sequence forward and in reverse to observe exactly
// mirrored enumerations of it.
//
// Events sharing a time value keep their insertion order: Sort is stable and validation accepts ties. Measures
// over the log process simultaneous events strictly in that order, meaning an earlier-listed event is visible to a
// later-listed event at the same timestamp.
type ContactLog struct {
	events []Event
	nodes  cardinality.Duplex
}

func NewContactLog() *ContactLog {
	return &ContactLog{
		nodes: cardinality.NewBitmap64(),
	}
}

// NewContactLogWith returns a log populated with the given events in the given order. The caller is responsible
// for time ordering; call Sort to establish it.
func NewContactLogWith(events ...Event) *ContactLog {
	log := NewContactLog()

	for _, event := range events {
		log.Add(event.Time, event.A, event.B)
	}

	return log
}

// Add appends a contact event to the log.
func (s *ContactLog) Add(time int64, a, b uint64) {
	s.events = append(s.events, Event{
		Time: time,
		A:    a,
		B:    b,
	})

	s.nodes.Add(a, b)
}

// Sort orders the log by event time. The sort is stable so that events sharing a time value retain their insertion
// order.
func (s *ContactLog) Sort() {
	sort.SliceStable(s.events, func(i, j int) bool {
		return s.events[i].Time < s.events[j].Time
	})
}

// Validate performs a single pre-scan over the log checking that events are sorted by time in increasing order and
// that no event is a self-loop. All violations are reported, wrapped with the offending event index.
func (s *ContactLog) Validate() error {
	collector := util.NewErrorCollector()

	for idx, event := range s.events {
		if idx > 0 && event.Time < s.events[idx-1].Time {
			collector.Add(fmt.Errorf("event %d at time %d: %w", idx, event.Time, ErrUnsortedEvents))
		}

		if event.A == event.B {
			collector.Add(fmt.Errorf("event %d at time %d on node %d: %w", idx, event.Time, event.A, ErrSelfLoopEvent))
		}
	}

	return collector.Combined()
}

func (s *ContactLog) NumEvents() int {
	return len(s.events)
}

func (s *ContactLog) NumNodes() uint64 {
	return s.nodes.Cardinality()
}

// Nodes returns the set of node IDs touched by at least one event.
func (s *ContactLog) Nodes() cardinality.Duplex {
	return s.nodes.Clone()
}

// Event returns the event at the given index.
func (s *ContactLog) Event(idx int) Event {
	return s.events[idx]
}

// Span returns the times of the earliest and latest events. The third return value is false if the log is empty.
func (s *ContactLog) Span() (int64, int64, bool) {
	if len(s.events) == 0 {
		return 0, 0, false
	}

	return s.events[0].Time, s.events[len(s.events)-1].Time, true
}

// EachEvent enumerates the log in increasing time order.
func (s *ContactLog) EachEvent(delegate func(event Event) bool) {
	for _, event := range s.events {
		if !delegate(event) {
			break
		}
	}
}

// EachEventReversed enumerates the log in decreasing time order. The enumeration is the element-for-element mirror
// of EachEvent by construction since both traverse the same backing slice by index.
func (s *ContactLog) EachEventReversed(delegate func(event Event) bool) {
	for idx := len(s.events) - 1; idx >= 0; idx-- {
		if !delegate(s.events[idx]) {
			break
		}
	}
}
