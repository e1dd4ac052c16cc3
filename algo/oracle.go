package algo

import (
	"github.com/tempnet-io/tempnet/cache"
	"github.com/tempnet-io/tempnet/container"
)

// PathOracle answers shortest path distance queries against a fixed graph, memoizing the BFS sweep of each queried
// source in a fixed-capacity cache. Repeated queries from the same source cost a single cache lookup. The oracle
// assumes the graph does not change after construction.
type PathOracle struct {
	graph   *container.ContactGraph
	lengths cache.Cache[uint64, map[uint64]uint64]
}

func NewPathOracle(graph *container.ContactGraph, cacheCapacity int) *PathOracle {
	return &PathOracle{
		graph:   graph,
		lengths: cache.NewSieve[uint64, map[uint64]uint64](cacheCapacity),
	}
}

// Lengths returns the shortest path length from the source to every node reachable from it. Callers must not
// mutate the returned map; it is shared with the cache.
func (s *PathOracle) Lengths(source uint64) map[uint64]uint64 {
	if cached, found := s.lengths.Get(source); found {
		return cached
	}

	swept := PathLengths(s.graph, source)
	s.lengths.Put(source, swept)

	return swept
}

// Distance returns the shortest path length between two nodes. The second return value is false when the target
// is unreachable from the source.
func (s *PathOracle) Distance(source, target uint64) (uint64, bool) {
	if source == target {
		return 0, true
	}

	distance, reachable := s.Lengths(source)[target]
	return distance, reachable
}

func (s *PathOracle) CacheStats() cache.Stats {
	return s.lengths.Stats()
}
