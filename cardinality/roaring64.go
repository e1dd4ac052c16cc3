package cardinality

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

type bitmap64 struct {
	bitmap *roaring64.Bitmap
}

// NewBitmap64 returns an empty roaring bitmap backed Duplex provider.
func NewBitmap64() Duplex {
	return bitmap64{
		bitmap: roaring64.New(),
	}
}

// NewBitmap64With returns a roaring bitmap backed Duplex provider seeded with the given node IDs.
func NewBitmap64With(values ...uint64) Duplex {
	duplex := NewBitmap64()
	duplex.Add(values...)

	return duplex
}

func (s bitmap64) Clear() {
	s.bitmap.Clear()
}

func (s bitmap64) Each(delegate func(value uint64) bool) {
	for itr := s.bitmap.Iterator(); itr.HasNext(); {
		if ok := delegate(itr.Next()); !ok {
			break
		}
	}
}

func (s bitmap64) Slice() []uint64 {
	return s.bitmap.ToArray()
}

func (s bitmap64) Contains(value uint64) bool {
	return s.bitmap.Contains(value)
}

func (s bitmap64) CheckedAdd(value uint64) bool {
	return s.bitmap.CheckedAdd(value)
}

func (s bitmap64) Add(values ...uint64) {
	switch len(values) {
	case 0:
	case 1:
		s.bitmap.Add(values[0])
	default:
		s.bitmap.AddMany(values)
	}
}

func (s bitmap64) Remove(value uint64) {
	s.bitmap.Remove(value)
}

func (s bitmap64) Or(provider Provider) {
	switch typedProvider := provider.(type) {
	case bitmap64:
		s.bitmap.Or(typedProvider.bitmap)

	case Duplex:
		typedProvider.Each(func(nextValue uint64) bool {
			s.Add(nextValue)
			return true
		})
	}
}

func (s bitmap64) Cardinality() uint64 {
	return s.bitmap.GetCardinality()
}

func (s bitmap64) Clone() Duplex {
	return bitmap64{
		bitmap: s.bitmap.Clone(),
	}
}
