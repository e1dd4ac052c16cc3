package cache_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tempnet-io/tempnet/cache"
)

func TestSievePutGet(t *testing.T) {
	sieve := cache.NewSieve[uint64, string](4)

	sieve.Put(1, "one")
	sieve.Put(2, "two")

	value, found := sieve.Get(1)
	require.True(t, found)
	require.Equal(t, "one", value)

	_, found = sieve.Get(3)
	require.False(t, found)

	require.Equal(t, int64(1), sieve.Stats().Hits())
	require.Equal(t, int64(1), sieve.Stats().Misses())
	require.Equal(t, int64(2), sieve.Stats().Size())
}

func TestSieveUpdateExisting(t *testing.T) {
	sieve := cache.NewSieve[uint64, string](2)

	sieve.Put(1, "one")
	sieve.Put(1, "uno")

	value, found := sieve.Get(1)
	require.True(t, found)
	require.Equal(t, "uno", value)
	require.Equal(t, int64(1), sieve.Stats().Size())
}

func TestSieveEvictsUnvisited(t *testing.T) {
	sieve := cache.NewSieve[uint64, string](2)

	sieve.Put(1, "one")
	sieve.Put(2, "two")

	// Touching key 1 gives it a second chance; inserting a third key must evict key 2 instead
	_, found := sieve.Get(1)
	require.True(t, found)

	sieve.Put(3, "three")

	_, found = sieve.Get(1)
	require.True(t, found)

	_, found = sieve.Get(2)
	require.False(t, found)

	require.Equal(t, int64(2), sieve.Stats().Size())
}

func TestSieveDelete(t *testing.T) {
	sieve := cache.NewSieve[uint64, string](2)

	sieve.Put(1, "one")
	sieve.Delete(1)

	_, found := sieve.Get(1)
	require.False(t, found)
	require.Equal(t, int64(0), sieve.Stats().Size())

	// Deleting an absent key is a no-op
	sieve.Delete(9)
}
