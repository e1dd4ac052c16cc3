package temporal

import (
	"github.com/tempnet-io/tempnet/cardinality"
)

// LogStats summarizes a scan over an event stream.
type LogStats struct {
	NumEvents   uint64
	Start       int64
	End         int64
	ApproxNodes uint64
}

// StatsAccumulator gathers LogStats over a single pass of an event stream without materializing it. Distinct node
// counting uses a HyperLogLog sketch so the accumulator's footprint stays constant regardless of how many nodes
// the stream touches.
type StatsAccumulator struct {
	numEvents uint64
	start     int64
	end       int64
	nodes     cardinality.Simplex
}

func NewStatsAccumulator() *StatsAccumulator {
	return &StatsAccumulator{
		nodes: cardinality.NewHyperLogLog64(),
	}
}

func (s *StatsAccumulator) Observe(event Event) {
	if s.numEvents == 0 {
		s.start = event.Time
	}

	s.numEvents += 1
	s.end = event.Time

	s.nodes.Add(event.A, event.B)
}

func (s *StatsAccumulator) Stats() LogStats {
	return LogStats{
		NumEvents:   s.numEvents,
		Start:       s.start,
		End:         s.end,
		ApproxNodes: s.nodes.Cardinality(),
	}
}
