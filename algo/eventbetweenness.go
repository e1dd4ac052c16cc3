package algo

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/gammazero/deque"
	"github.com/tempnet-io/tempnet/temporal"
)

// ErrCounterOverflow is returned when a path count exceeds the range of a uint64. Path counts grow combinatorially
// with event count, so dense logs can overflow long before memory becomes a concern. Overflow is detected on every
// counter update and surfaced instead of wrapping silently.
var ErrCounterOverflow = errors.New("time-respecting path counter overflow")

// EventBetweennessFunc receives one (time, betweenness) pair per event, in input order. Returning false stops the
// sweep; results already produced and any node totals accumulated so far remain valid.
type EventBetweennessFunc func(time int64, betweenness uint64) bool

// leavingDelta records how much each endpoint's leaving-path count grew due to one event. The forward sweep
// subtracts it to walk the leaving counts back to their value excluding all events at or after the current one.
type leavingDelta struct {
	a uint64
	b uint64
}

// EventBetweenness computes the betweenness of every event in the log: the number of time-respecting paths that
// include the event as an internal hop, a start, or an end. The single-event path anchored at the event itself is
// included, so an event with no temporal neighbors has betweenness 1.
//
// Values are produced lazily through the delegate, one per event, in the same order as the log. Both time and
// space are linear: O(events) for the correction stack and O(nodes) for the arrival and leaving counters.
//
// Events sharing a timestamp are processed strictly in log order, so an earlier-listed simultaneous event is
// reachable from a later-listed one. Callers that need a different simultaneity policy must pre-process the log.
func EventBetweenness(log *temporal.ContactLog, delegate EventBetweennessFunc) error {
	return eventBetweenness(log, nil, false, delegate)
}

// NodeBetweenness computes, for every node touched by the log, the number of time-respecting paths passing through
// the node. With includePathEnds set, paths that start or end at one of the node's events are credited as well;
// every value in the resulting map is then greater than or equal to its value without path ends.
func NodeBetweenness(log *temporal.ContactLog, includePathEnds bool) (map[uint64]uint64, error) {
	return EventAndNodeBetweenness(log, includePathEnds, func(time int64, betweenness uint64) bool {
		return true
	})
}

// EventAndNodeBetweenness computes event and node betweenness in a single pair of sweeps, streaming per-event
// values through the delegate and returning the per-node totals. The totals map carries an entry for every node
// that appears in at least one event, including nodes whose total is zero.
func EventAndNodeBetweenness(log *temporal.ContactLog, includePathEnds bool, delegate EventBetweennessFunc) (map[uint64]uint64, error) {
	nodeTotals := make(map[uint64]uint64, log.NumNodes())

	log.Nodes().Each(func(node uint64) bool {
		nodeTotals[node] = 0
		return true
	})

	if err := eventBetweenness(log, nodeTotals, includePathEnds, delegate); err != nil {
		return nil, err
	}

	return nodeTotals, nil
}

func eventBetweenness(log *temporal.ContactLog, nodeTotals map[uint64]uint64, includePathEnds bool, delegate EventBetweennessFunc) error {
	if err := log.Validate(); err != nil {
		return err
	}

	var (
		numNodes = int(log.NumNodes())
		leaving  = make(map[uint64]uint64, numNodes)
		arriving = make(map[uint64]uint64, numNodes)
		sweepErr error

		// One correction per event, pushed latest-event first and popped earliest-event first. The LIFO discipline
		// is what re-aligns the two opposite traversal orders onto the same event without random access.
		corrections deque.Deque[leavingDelta]
	)

	// Reverse sweep: build, per node, the count of paths that can leave the node at or after each event. Each
	// event combines the paths already leaving either endpoint with the one new path anchored at the event.
	log.EachEventReversed(func(event temporal.Event) bool {
		var (
			leavingA = leaving[event.A]
			leavingB = leaving[event.B]
		)

		combined, ok := checkedSum(leavingA, leavingB, 1)
		if !ok {
			sweepErr = fmt.Errorf("leaving count at time %d: %w", event.Time, ErrCounterOverflow)
			return false
		}

		corrections.PushBack(leavingDelta{
			a: combined - leavingA,
			b: combined - leavingB,
		})

		leaving[event.A] = combined
		leaving[event.B] = combined

		return true
	})

	if sweepErr != nil {
		return sweepErr
	}

	// Forward sweep: combine the arrival counts (paths reaching an endpoint strictly before the event) with the
	// corrected leaving counts (paths departing an endpoint at or after the event) into the event's betweenness.
	log.EachEvent(func(event temporal.Event) bool {
		var (
			arrivingA = arriving[event.A]
			arrivingB = arriving[event.B]

			correction = corrections.PopBack()
		)

		leaving[event.A] -= correction.a
		leaving[event.B] -= correction.b

		var (
			leavingA = leaving[event.A]
			leavingB = leaving[event.B]
		)

		if nodeTotals != nil {
			// Credit only paths that arrive at the node via this exact event so that each path is attributed to a
			// node once across the whole sweep. Path ends are safe to fold in without double counting because no
			// other event shares this exact start or end.
			var (
				creditA, okA = nodeCredit(nodeTotals[event.A], arrivingB, leavingA, leavingB, includePathEnds)
				creditB, okB = nodeCredit(nodeTotals[event.B], arrivingA, leavingB, leavingA, includePathEnds)
			)

			if !okA || !okB {
				sweepErr = fmt.Errorf("node betweenness at time %d: %w", event.Time, ErrCounterOverflow)
				return false
			}

			nodeTotals[event.A] = creditA
			nodeTotals[event.B] = creditB
		}

		betweenness, ok := eventValue(arrivingA, arrivingB, leavingA, leavingB)
		if !ok {
			sweepErr = fmt.Errorf("event betweenness at time %d: %w", event.Time, ErrCounterOverflow)
			return false
		}

		if !delegate(event.Time, betweenness) {
			return false
		}

		combined, ok := checkedSum(arrivingA, arrivingB, 1)
		if !ok {
			sweepErr = fmt.Errorf("arrival count at time %d: %w", event.Time, ErrCounterOverflow)
			return false
		}

		arriving[event.A] = combined
		arriving[event.B] = combined

		return true
	})

	return sweepErr
}

// eventValue combines arrival and leaving counts into an event's betweenness: through-paths crossing the event
// from one side to the other, paths ending at the event, paths starting at the event and the single-event path
// anchored at the event itself.
func eventValue(arrivingA, arrivingB, leavingA, leavingB uint64) (uint64, bool) {
	throughAB, okAB := checkedProduct(arrivingA, leavingB)
	throughBA, okBA := checkedProduct(arrivingB, leavingA)

	if !okAB || !okBA {
		return 0, false
	}

	return checkedSum(throughAB, throughBA, arrivingA, arrivingB, leavingA, leavingB, 1)
}

// nodeCredit accumulates one endpoint's share of an event into its running total: paths crossing the node via
// this event plus paths starting at the event and continuing through the node. With path ends included, paths
// that terminate at the node through this event and paths departing from the far side are credited too.
func nodeCredit(total, arrivingFar, leavingNear, leavingFar uint64, includePathEnds bool) (uint64, bool) {
	through, ok := checkedProduct(arrivingFar, leavingNear)
	if !ok {
		return 0, false
	}

	if includePathEnds {
		return checkedSum(total, through, leavingNear, arrivingFar, leavingFar)
	}

	return checkedSum(total, through, leavingNear)
}

func checkedSum(values ...uint64) (uint64, bool) {
	var total uint64

	for _, value := range values {
		next, carry := bits.Add64(total, value, 0)
		if carry != 0 {
			return 0, false
		}

		total = next
	}

	return total, true
}

func checkedProduct(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}
