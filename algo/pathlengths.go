package algo

import (
	"github.com/gammazero/deque"
	"github.com/tempnet-io/tempnet/cardinality"
	"github.com/tempnet-io/tempnet/container"
)

// PathLengths returns the unweighted shortest path length from the source to every other node reachable from it.
// The source itself is not included in the result.
func PathLengths(graph *container.ContactGraph, source uint64) map[uint64]uint64 {
	type frontier struct {
		node     uint64
		distance uint64
	}

	var (
		distances = map[uint64]uint64{}
		visited   = cardinality.NewBitmap64With(source)
		queue     deque.Deque[frontier]
	)

	queue.PushBack(frontier{
		node: source,
	})

	for queue.Len() > 0 {
		next := queue.PopFront()

		graph.EachAdjacent(next.node, func(adjacent uint64, weight float64) bool {
			if visited.CheckedAdd(adjacent) {
				distances[adjacent] = next.distance + 1

				queue.PushBack(frontier{
					node:     adjacent,
					distance: next.distance + 1,
				})
			}

			return true
		})
	}

	return distances
}

// Closeness returns the closeness centrality of every node: the count of nodes reachable from it divided by the
// sum of their shortest path distances. Nodes with no reachable peers score zero.
func Closeness(graph *container.ContactGraph) map[uint64]float64 {
	scores := make(map[uint64]float64, graph.NumNodes())

	graph.EachNode(func(node uint64) bool {
		if lengths := PathLengths(graph, node); len(lengths) > 0 {
			var distanceSum uint64 = 0

			for _, distance := range lengths {
				distanceSum += distance
			}

			if distanceSum > 0 {
				scores[node] = float64(len(lengths)) / float64(distanceSum)
			}
		}

		return true
	})

	return scores
}
