package algo

import (
	"github.com/gammazero/deque"
	"github.com/tempnet-io/tempnet/container"
)

// Betweenness returns the unweighted betweenness centrality of every node in the aggregate graph using Brandes'
// dependency accumulation. The traversal visits each unordered node pair from both endpoints; scores are halved
// before returning so that each pair contributes once.
func Betweenness(graph *container.ContactGraph) map[uint64]float64 {
	centrality := make(map[uint64]float64, graph.NumNodes())

	graph.EachNode(func(node uint64) bool {
		centrality[node] = 0
		return true
	})

	graph.EachNode(func(source uint64) bool {
		var (
			stack        []uint64
			predecessors = map[uint64][]uint64{}
			sigma        = map[uint64]float64{source: 1}
			distance     = map[uint64]int64{source: 0}
			queue        deque.Deque[uint64]
		)

		queue.PushBack(source)

		for queue.Len() > 0 {
			vertex := queue.PopFront()
			stack = append(stack, vertex)

			graph.EachAdjacent(vertex, func(adjacent uint64, weight float64) bool {
				if _, visited := distance[adjacent]; !visited {
					distance[adjacent] = distance[vertex] + 1
					queue.PushBack(adjacent)
				}

				if distance[adjacent] == distance[vertex]+1 {
					sigma[adjacent] += sigma[vertex]
					predecessors[adjacent] = append(predecessors[adjacent], vertex)
				}

				return true
			})
		}

		// Unwind in reverse BFS order to accumulate pair dependencies
		delta := map[uint64]float64{}

		for idx := len(stack) - 1; idx >= 0; idx-- {
			vertex := stack[idx]

			for _, predecessor := range predecessors[vertex] {
				delta[predecessor] += sigma[predecessor] / sigma[vertex] * (1 + delta[vertex])
			}

			if vertex != source {
				centrality[vertex] += delta[vertex]
			}
		}

		return true
	})

	for node := range centrality {
		centrality[node] /= 2
	}

	return centrality
}
