package temporal_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tempnet-io/tempnet/temporal"
)

func TestContactLogOrdering(t *testing.T) {
	log := temporal.NewContactLog()

	log.Add(3, 1, 2)
	log.Add(1, 2, 3)
	log.Add(2, 3, 4)

	log.Sort()

	var times []int64

	log.EachEvent(func(event temporal.Event) bool {
		times = append(times, event.Time)
		return true
	})

	require.Equal(t, []int64{1, 2, 3}, times)

	var reversed []int64

	log.EachEventReversed(func(event temporal.Event) bool {
		reversed = append(reversed, event.Time)
		return true
	})

	require.Equal(t, []int64{3, 2, 1}, reversed)
}

func TestContactLogStableSort(t *testing.T) {
	log := temporal.NewContactLog()

	// Three events share time 1; their insertion order must survive the sort
	log.Add(2, 10, 11)
	log.Add(1, 1, 2)
	log.Add(1, 3, 4)
	log.Add(1, 5, 6)

	log.Sort()

	require.Equal(t, temporal.Event{Time: 1, A: 1, B: 2}, log.Event(0))
	require.Equal(t, temporal.Event{Time: 1, A: 3, B: 4}, log.Event(1))
	require.Equal(t, temporal.Event{Time: 1, A: 5, B: 6}, log.Event(2))
	require.Equal(t, temporal.Event{Time: 2, A: 10, B: 11}, log.Event(3))
}

func TestContactLogValidate(t *testing.T) {
	log := temporal.NewContactLog()

	log.Add(2, 1, 2)
	log.Add(1, 2, 3)
	log.Add(3, 4, 4)

	err := log.Validate()

	require.ErrorIs(t, err, temporal.ErrUnsortedEvents)
	require.ErrorIs(t, err, temporal.ErrSelfLoopEvent)

	log.Sort()

	// Sorting clears the ordering violation but not the self-loop
	err = log.Validate()

	require.NotErrorIs(t, err, temporal.ErrUnsortedEvents)
	require.ErrorIs(t, err, temporal.ErrSelfLoopEvent)
}

func TestContactLogNodesAndSpan(t *testing.T) {
	log := temporal.NewContactLog()

	_, _, spanned := log.Span()
	require.False(t, spanned)

	log.Add(0, 1, 2)
	log.Add(5, 2, 3)

	start, end, spanned := log.Span()

	require.True(t, spanned)
	require.Equal(t, int64(0), start)
	require.Equal(t, int64(5), end)

	require.Equal(t, uint64(3), log.NumNodes())
	require.Equal(t, []uint64{1, 2, 3}, log.Nodes().Slice())
}

func TestContactLogEarlyStop(t *testing.T) {
	log := temporal.NewContactLogWith(
		temporal.Event{Time: 0, A: 1, B: 2},
		temporal.Event{Time: 1, A: 2, B: 3},
		temporal.Event{Time: 2, A: 3, B: 4},
	)

	visited := 0

	log.EachEvent(func(event temporal.Event) bool {
		visited += 1
		return visited < 2
	})

	require.Equal(t, 2, visited)
}
