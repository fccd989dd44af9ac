// Package membership turns an ordered list of collections into a universe
// of identifiers and a per-identifier membership vector.
//
// Every identifier of the universe receives a dense core.ElementID (its rank
// in sorted order). Each collection becomes a roaring bitmap over those IDs,
// which gives O(1) membership tests and cheap intersections.
package membership

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rablab/interactome/core"
	"github.com/rablab/interactome/model"
)

var (
	// ErrNoCollections is returned when no collection is supplied.
	ErrNoCollections = errors.New("at least one collection is required")
)

// ErrDuplicateName indicates two input collections share a name.
type ErrDuplicateName struct {
	Name string
}

func (e *ErrDuplicateName) Error() string {
	return fmt.Sprintf("duplicate collection name %q", e.Name)
}

// ErrTooMany indicates more collections than a Pattern can address.
type ErrTooMany struct {
	Count int
	Max   int
}

func (e *ErrTooMany) Error() string {
	return fmt.Sprintf("too many collections: %d (max %d)", e.Count, e.Max)
}

// Matrix is the membership matrix of a set of collections.
// It is immutable once built.
type Matrix struct {
	names    []string
	universe []string
	bitmaps  []*Bitmap
	vectors  []model.Pattern
}

// Build validates the collections and builds their membership matrix.
// Cost is O(U log U + sum of collection sizes).
func Build(collections []model.Collection) (*Matrix, error) {
	if err := Validate(collections); err != nil {
		return nil, err
	}

	index := make(map[string]core.ElementID)
	for _, c := range collections {
		for _, e := range c.Elements {
			index[e] = 0
		}
	}

	universe := make([]string, 0, len(index))
	for e := range index {
		universe = append(universe, e)
	}
	slices.Sort(universe)
	for i, e := range universe {
		index[e] = core.ElementID(i)
	}

	m := &Matrix{
		names:    model.Names(collections),
		universe: universe,
		bitmaps:  make([]*Bitmap, len(collections)),
		vectors:  make([]model.Pattern, len(universe)),
	}

	for i, c := range collections {
		bm := NewBitmap()
		for _, e := range c.Elements {
			bm.Add(index[e])
		}
		m.bitmaps[i] = bm

		bit := model.Singleton(i)
		for id := range bm.Iterator() {
			m.vectors[id] |= bit
		}
	}

	return m, nil
}

// Validate checks the configuration constraints on the input collections.
func Validate(collections []model.Collection) error {
	if len(collections) == 0 {
		return ErrNoCollections
	}
	if len(collections) > model.MaxCollections {
		return &ErrTooMany{Count: len(collections), Max: model.MaxCollections}
	}
	seen := make(map[string]struct{}, len(collections))
	for _, c := range collections {
		if _, ok := seen[c.Name]; ok {
			return &ErrDuplicateName{Name: c.Name}
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}

// K returns the number of collections.
func (m *Matrix) K() int {
	return len(m.names)
}

// Names returns the collection names in input order.
func (m *Matrix) Names() []string {
	return slices.Clone(m.names)
}

// Universe returns the deduplicated identifiers in ascending order.
func (m *Matrix) Universe() []string {
	return slices.Clone(m.universe)
}

// Len returns the size of the universe.
func (m *Matrix) Len() int {
	return len(m.universe)
}

// Vector returns the membership vector of the element.
func (m *Matrix) Vector(id core.ElementID) model.Pattern {
	return m.vectors[id]
}

// Lookup returns the membership vector of an identifier, and false when the
// identifier is not part of the universe.
func (m *Matrix) Lookup(identifier string) (model.Pattern, bool) {
	i, ok := slices.BinarySearch(m.universe, identifier)
	if !ok {
		return 0, false
	}
	return m.vectors[i], true
}

// Vectors returns the membership vectors indexed by element ID.
func (m *Matrix) Vectors() []model.Pattern {
	return slices.Clone(m.vectors)
}

// Bitmap returns the membership bitmap of collection i.
func (m *Matrix) Bitmap(i int) *Bitmap {
	return m.bitmaps[i]
}

// Size returns the number of distinct identifiers in collection i.
func (m *Matrix) Size(i int) int {
	return int(m.bitmaps[i].Cardinality())
}

// Count returns how many identifiers are present in at least every
// collection flagged by p.
func (m *Matrix) Count(p model.Pattern) int {
	idx := p.Indices()
	bms := make([]*Bitmap, 0, len(idx))
	for _, i := range idx {
		if i >= len(m.bitmaps) {
			return 0
		}
		bms = append(bms, m.bitmaps[i])
	}
	return int(IntersectionCardinality(bms...))
}
