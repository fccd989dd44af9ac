package aggregate

import (
	"github.com/rablab/interactome/internal/membership"
	"github.com/rablab/interactome/model"
)

// Strict groups identifiers by their exact membership vector.
// The counts sum to the size of the universe.
func Strict(m *membership.Matrix) *Table {
	t := newTable(m.Names(), model.Strict, m.Len())
	for _, v := range m.Vectors() {
		t.counts[v]++
	}
	return t
}
