package algo

import (
	"context"
	"math/rand"
	"sync"

	"github.com/tempnet-io/tempnet/cardinality"
	"github.com/tempnet-io/tempnet/container"
	"github.com/tempnet-io/tempnet/util/atomics"
	"github.com/tempnet-io/tempnet/util/channels"
)

// ClosenessParallel computes the closeness centrality of every node using up to concurrency parallel BFS sweeps.
// The scores match Closeness exactly; only the evaluation order differs. Returns the context error if it expires
// before all sources have been swept.
func ClosenessParallel(ctx context.Context, graph *container.ContactGraph, concurrency int) (map[uint64]float64, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	var (
		limiter   = channels.NewConcurrencyLimiter(concurrency)
		scores    = make(map[uint64]float64, graph.NumNodes())
		scoreLock = &sync.Mutex{}
		waitGroup = &sync.WaitGroup{}

		ctxErr error
	)

	graph.EachNode(func(node uint64) bool {
		if ctx.Err() != nil || !limiter.Acquire(ctx) {
			ctxErr = ctx.Err()
			return false
		}

		waitGroup.Add(1)

		go func(source uint64) {
			defer waitGroup.Done()
			defer limiter.Release()

			if lengths := PathLengths(graph, source); len(lengths) > 0 {
				var distanceSum uint64 = 0

				for _, distance := range lengths {
					distanceSum += distance
				}

				if distanceSum > 0 {
					scoreLock.Lock()
					scores[source] = float64(len(lengths)) / float64(distanceSum)
					scoreLock.Unlock()
				}
			}
		}(node)

		return true
	})

	waitGroup.Wait()

	return scores, ctxErr
}

// EstimateMeanPathLength estimates the mean shortest path length of the graph by sweeping from randomly sampled
// source nodes, at most samples draws spread across concurrency workers with each distinct source swept once.
// Unreachable pairs do not contribute. The second return value is false when no sampled sweep reached another
// node.
func EstimateMeanPathLength(ctx context.Context, graph *container.ContactGraph, samples uint64, concurrency int) (float64, bool) {
	if concurrency < 1 {
		concurrency = 1
	}

	nodes := graph.Nodes().Slice()

	if len(nodes) == 0 {
		return 0, false
	}

	var (
		sampleCounter  = atomics.NewCounter(samples)
		sampledSources = cardinality.ThreadSafeDuplex(cardinality.NewBitmap64())
		waitGroup      = &sync.WaitGroup{}
		resultLock     = &sync.Mutex{}

		distanceSum uint64
		pairCount   uint64
	)

	for workerID := 0; workerID < concurrency; workerID++ {
		waitGroup.Add(1)

		go func(seed int64) {
			defer waitGroup.Done()

			var (
				random = rand.New(rand.NewSource(seed))

				localSum   uint64
				localPairs uint64
			)

			for !sampleCounter() && ctx.Err() == nil {
				source := nodes[random.Intn(len(nodes))]

				// Each distinct source contributes one sweep no matter how many workers draw it
				if !sampledSources.CheckedAdd(source) {
					continue
				}

				for _, distance := range PathLengths(graph, source) {
					localSum += distance
					localPairs += 1
				}
			}

			resultLock.Lock()
			distanceSum += localSum
			pairCount += localPairs
			resultLock.Unlock()
		}(int64(workerID) + 1)
	}

	waitGroup.Wait()

	if pairCount == 0 {
		return 0, false
	}

	return float64(distanceSum) / float64(pairCount), true
}
