package algo_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tempnet-io/tempnet/algo"
	"github.com/tempnet-io/tempnet/container"
)

func TestBetweenness_PathGraph(t *testing.T) {
	graph := container.NewContactGraph()

	// Path graph 1 - 2 - 3: only the middle node carries a shortest path
	graph.AddContact(1, 2)
	graph.AddContact(2, 3)

	centrality := algo.Betweenness(graph)

	require.InDelta(t, 0, centrality[1], 1e-9)
	require.InDelta(t, 1, centrality[2], 1e-9)
	require.InDelta(t, 0, centrality[3], 1e-9)
}

func TestBetweenness_StarGraph(t *testing.T) {
	graph := container.NewContactGraph()

	graph.AddContact(0, 1)
	graph.AddContact(0, 2)
	graph.AddContact(0, 3)

	centrality := algo.Betweenness(graph)

	// The hub lies on the shortest path of every leaf pair
	require.InDelta(t, 3, centrality[0], 1e-9)

	for _, leaf := range []uint64{1, 2, 3} {
		require.InDelta(t, 0, centrality[leaf], 1e-9)
	}
}

func TestBetweenness_EvenSplit(t *testing.T) {
	graph := container.NewContactGraph()

	// Square 1 - 2 - 4 - 3 - 1: opposite corners are joined by two equal paths
	graph.AddContact(1, 2)
	graph.AddContact(1, 3)
	graph.AddContact(2, 4)
	graph.AddContact(3, 4)

	centrality := algo.Betweenness(graph)

	for _, node := range []uint64{1, 2, 3, 4} {
		require.InDelta(t, 0.5, centrality[node], 1e-9)
	}
}
