// Package cache provides a small concurrency-safe fixed-capacity cache used to memoize per-source traversal
// results.
package cache

import "sync/atomic"

type Cache[K comparable, V any] interface {
	Put(key K, value V)
	Get(key K) (V, bool)
	Delete(key K)
	Stats() Stats
}

// Stats tracks cache usage with shared atomic counters so that copies handed out by Stats() keep reporting live
// values.
type Stats struct {
	hits     *atomic.Int64
	misses   *atomic.Int64
	size     *atomic.Int64
	Capacity int
}

func NewStats(capacity int) Stats {
	return Stats{
		hits:     &atomic.Int64{},
		misses:   &atomic.Int64{},
		size:     &atomic.Int64{},
		Capacity: capacity,
	}
}

func (s Stats) Hit() {
	s.hits.Add(1)
}

func (s Stats) Hits() int64 {
	return s.hits.Load()
}

func (s Stats) Miss() {
	s.misses.Add(1)
}

func (s Stats) Misses() int64 {
	return s.misses.Load()
}

func (s Stats) Put() {
	s.size.Add(1)
}

func (s Stats) Delete() {
	s.size.Add(-1)
}

func (s Stats) Size() int64 {
	return s.size.Load()
}
