package aggregate

import (
	"github.com/rablab/interactome/internal/membership"
	"github.com/rablab/interactome/model"
)

// Uncorrected counts, for every non-empty pattern, the identifiers present
// in at least the flagged collections. Patterns with no match are present
// with a count of 0. Degree-1 entries equal the collection sizes.
func Uncorrected(m *membership.Matrix) *Table {
	patterns := model.All(m.K())
	t := newTable(m.Names(), model.Inclusive, len(patterns))
	for _, p := range patterns {
		t.counts[p] = int64(m.Count(p))
	}
	return t
}

// Inclusive returns the uncorrected intersection table with its singleton
// totals corrected.
func Inclusive(m *membership.Matrix) *Table {
	return CorrectSingletons(Uncorrected(m))
}

// uncorrectedByVector is the bitmask AND-equality variant of Uncorrected.
// It is O(U * 2^K) and serves as a cross-check.
func uncorrectedByVector(m *membership.Matrix) *Table {
	patterns := model.All(m.K())
	vectors := m.Vectors()
	t := newTable(m.Names(), model.Inclusive, len(patterns))
	for _, p := range patterns {
		var n int64
		for _, v := range vectors {
			if v.Contains(p) {
				n++
			}
		}
		t.counts[p] = n
	}
	return t
}
