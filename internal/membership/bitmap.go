package membership

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/rablab/interactome/core"
)

// Bitmap is the set of universe elements belonging to one collection.
// It wraps the official roaring implementation.
type Bitmap struct {
	rb *roaring.Bitmap
}

// NewBitmap creates a new empty bitmap.
func NewBitmap() *Bitmap {
	return &Bitmap{
		rb: roaring.New(),
	}
}

// Add adds an element to the bitmap.
func (b *Bitmap) Add(id core.ElementID) {
	b.rb.Add(uint32(id))
}

// Contains checks if an element is in the bitmap.
func (b *Bitmap) Contains(id core.ElementID) bool {
	return b.rb.Contains(uint32(id))
}

// IsEmpty returns true if the bitmap is empty.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Cardinality returns the number of elements in the bitmap.
func (b *Bitmap) Cardinality() uint64 {
	return b.rb.GetCardinality()
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{
		rb: b.rb.Clone(),
	}
}

// Iterator returns an iterator over the bitmap in ascending order.
func (b *Bitmap) Iterator() iter.Seq[core.ElementID] {
	return func(yield func(core.ElementID) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(core.ElementID(it.Next())) {
				return
			}
		}
	}
}

// AndCardinality returns the size of the intersection without
// materializing it.
func (b *Bitmap) AndCardinality(other *Bitmap) uint64 {
	return b.rb.AndCardinality(other.rb)
}

// IntersectionCardinality returns the number of elements present in every
// bitmap. It returns 0 for an empty argument list.
func IntersectionCardinality(bitmaps ...*Bitmap) uint64 {
	switch len(bitmaps) {
	case 0:
		return 0
	case 1:
		return bitmaps[0].Cardinality()
	case 2:
		return bitmaps[0].AndCardinality(bitmaps[1])
	}
	rbs := make([]*roaring.Bitmap, len(bitmaps))
	for i, b := range bitmaps {
		rbs[i] = b.rb
	}
	return roaring.FastAnd(rbs...).GetCardinality()
}
