package cache

import (
	"container/list"
	"sync"
	"sync/atomic"
)

type entry[K comparable, V any] struct {
	key     K
	value   V
	visited atomic.Bool
	element *list.Element
}

// Sieve is a fixed-capacity clock-hand (second-chance) cache that is safe for concurrent use. Entries are queued
// from most recently inserted to least recently inserted; eviction walks the queue backwards, clearing the
// visited flag of each entry it passes and removing the first entry found unvisited.
type Sieve[K comparable, V any] struct {
	rwLock sync.RWMutex
	store  map[K]*entry[K, V]
	queue  *list.List
	hand   *list.Element
	stats  Stats
}

func NewSieve[K comparable, V any](capacity int) Cache[K, V] {
	// Do not panic on an invalid capacity but ensure that the cache remains functional
	if capacity <= 0 {
		capacity = 1
	}

	return &Sieve[K, V]{
		store: make(map[K]*entry[K, V], capacity),
		queue: list.New(),
		stats: NewStats(capacity),
	}
}

func (s *Sieve[K, V]) Stats() Stats {
	return s.stats
}

// putEntry expects the caller to hold the write lock.
func (s *Sieve[K, V]) putEntry(key K, value V) {
	if s.queue.Len() >= s.stats.Capacity {
		s.evict()
	}

	newEntry := &entry[K, V]{
		key:     key,
		value:   value,
		element: s.queue.PushFront(key),
	}

	s.store[key] = newEntry
	s.stats.Put()
}

// Put adds or updates the value associated with key. Updated entries are marked visited so that they survive the
// next eviction sweep; new entries may trigger an eviction when the cache is full.
func (s *Sieve[K, V]) Put(key K, value V) {
	s.rwLock.Lock()
	defer s.rwLock.Unlock()

	if existingEntry, exists := s.store[key]; exists {
		existingEntry.value = value
		existingEntry.visited.Store(true)
	} else {
		s.putEntry(key, value)
	}
}

func (s *Sieve[K, V]) Get(key K) (V, bool) {
	s.rwLock.RLock()
	defer s.rwLock.RUnlock()

	if entry, exists := s.store[key]; exists {
		s.stats.Hit()

		entry.visited.Store(true)
		return entry.value, true
	}

	s.stats.Miss()

	var emptyV V
	return emptyV, false
}

// removeEntry expects the caller to hold the write lock.
func (s *Sieve[K, V]) removeEntry(e *entry[K, V]) {
	s.queue.Remove(e.element)
	delete(s.store, e.key)

	s.stats.Delete()
}

func (s *Sieve[K, V]) Delete(key K) {
	s.rwLock.Lock()
	defer s.rwLock.Unlock()

	if entry, exists := s.store[key]; exists {
		// Step the hand off the entry being removed so that eviction can continue from a live element
		if entry.element == s.hand {
			s.hand = s.hand.Prev()
		}

		s.removeEntry(entry)
	}
}

// evict expects the caller to hold the write lock.
func (s *Sieve[K, V]) evict() {
	hand := s.hand

	if hand == nil {
		hand = s.queue.Back()
	}

	entry := s.store[hand.Value.(K)]

	for entry.visited.Load() {
		entry.visited.Store(false)

		if hand = hand.Prev(); hand == nil {
			hand = s.queue.Back()
		}

		entry = s.store[hand.Value.(K)]
	}

	s.hand = hand.Prev()
	s.removeEntry(entry)
}
