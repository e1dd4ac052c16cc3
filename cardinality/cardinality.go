package cardinality

// Provider describes the most basic functionality of a node set cardinality provider: adding node IDs to the provider
// and producing the cardinality of the IDs added so far.
type Provider interface {
	Add(values ...uint64)
	Or(other Provider)
	Clear()
	Cardinality() uint64
}

// Simplex is a one-way cardinality provider that does not allow a user to retrieve encoded node IDs back out of the
// provider. This interface is suitable for sketch algorithms such as HyperLogLog.
type Simplex interface {
	Provider

	Clone() Simplex
}

// Duplex is a two-way cardinality provider that allows a user to retrieve encoded node IDs back out of the provider.
// This interface is suitable for bitvector-like implementations.
type Duplex interface {
	Provider

	Remove(value uint64)
	Slice() []uint64
	Contains(value uint64) bool
	Each(delegate func(value uint64) bool)
	CheckedAdd(value uint64) bool
	Clone() Duplex
}
