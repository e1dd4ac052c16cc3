package algo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tempnet-io/tempnet/algo"
	"github.com/tempnet-io/tempnet/container"
)

func pathGraph(length int) *container.ContactGraph {
	graph := container.NewContactGraph()

	for node := 1; node < length; node++ {
		graph.AddContact(uint64(node), uint64(node+1))
	}

	return graph
}

func TestClosenessParallelMatchesSerial(t *testing.T) {
	graph := pathGraph(12)

	serial := algo.Closeness(graph)

	parallel, err := algo.ClosenessParallel(context.Background(), graph, 4)
	require.NoError(t, err)
	require.Equal(t, serial, parallel)
}

func TestClosenessParallelSingleWorker(t *testing.T) {
	graph := pathGraph(5)

	parallel, err := algo.ClosenessParallel(context.Background(), graph, 0)
	require.NoError(t, err)
	require.Equal(t, algo.Closeness(graph), parallel)
}

func TestClosenessParallelExpiredContext(t *testing.T) {
	cancelCtx, done := context.WithCancel(context.Background())
	done()

	_, err := algo.ClosenessParallel(cancelCtx, pathGraph(8), 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEstimateMeanPathLength(t *testing.T) {
	// Sampling every source of a triangle gives the exact mean distance of 1
	graph := container.NewContactGraph()
	graph.AddContact(1, 2)
	graph.AddContact(2, 3)
	graph.AddContact(1, 3)

	estimate, ok := algo.EstimateMeanPathLength(context.Background(), graph, 100, 2)
	require.True(t, ok)
	require.Equal(t, 1.0, estimate)
}

func TestEstimateMeanPathLengthEmptyGraph(t *testing.T) {
	_, ok := algo.EstimateMeanPathLength(context.Background(), container.NewContactGraph(), 10, 2)
	require.False(t, ok)
}

func TestPathOracle(t *testing.T) {
	var (
		graph  = pathGraph(6)
		oracle = algo.NewPathOracle(graph, 4)
	)

	distance, reachable := oracle.Distance(1, 4)
	require.True(t, reachable)
	require.Equal(t, uint64(3), distance)

	distance, reachable = oracle.Distance(1, 1)
	require.True(t, reachable)
	require.Equal(t, uint64(0), distance)

	// The second query from the same source is served from the cache
	_, reachable = oracle.Distance(1, 6)
	require.True(t, reachable)
	require.Equal(t, int64(1), oracle.CacheStats().Hits())

	graph.AddNode(99)

	_, reachable = algo.NewPathOracle(graph, 4).Distance(1, 99)
	require.False(t, reachable)
}
