package cardinality

import (
	"sync"
)

type threadSafeDuplex struct {
	provider Duplex
	lock     *sync.Mutex
}

// ThreadSafeDuplex wraps a Duplex provider with a mutex guard.
func ThreadSafeDuplex(provider Duplex) Duplex {
	return threadSafeDuplex{
		provider: provider,
		lock:     &sync.Mutex{},
	}
}

func (s threadSafeDuplex) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.provider.Clear()
}

func (s threadSafeDuplex) Add(values ...uint64) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.provider.Add(values...)
}

func (s threadSafeDuplex) Remove(value uint64) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.provider.Remove(value)
}

func (s threadSafeDuplex) Or(other Provider) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.provider.Or(other)
}

func (s threadSafeDuplex) Cardinality() uint64 {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.provider.Cardinality()
}

func (s threadSafeDuplex) Slice() []uint64 {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.provider.Slice()
}

func (s threadSafeDuplex) Contains(value uint64) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.provider.Contains(value)
}

func (s threadSafeDuplex) Each(delegate func(value uint64) bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.provider.Each(delegate)
}

func (s threadSafeDuplex) CheckedAdd(value uint64) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.provider.CheckedAdd(value)
}

func (s threadSafeDuplex) Clone() Duplex {
	s.lock.Lock()
	defer s.lock.Unlock()

	return ThreadSafeDuplex(s.provider.Clone())
}
