package aggregate

import (
	"cmp"
	"slices"

	"github.com/rablab/interactome/model"
)

// Entry is one row of a Table.
type Entry struct {
	Pattern model.Pattern
	Count   int64
}

// Table maps patterns to counts. A pattern without an entry counts 0.
type Table struct {
	names  []string
	mode   model.Mode
	counts map[model.Pattern]int64
}

func newTable(names []string, mode model.Mode, size int) *Table {
	return &Table{
		names:  slices.Clone(names),
		mode:   mode,
		counts: make(map[model.Pattern]int64, size),
	}
}

// Mode returns the semantics the table was built with.
func (t *Table) Mode() model.Mode {
	return t.mode
}

// Names returns the collection names in input order.
func (t *Table) Names() []string {
	return slices.Clone(t.names)
}

// K returns the number of collections.
func (t *Table) K() int {
	return len(t.names)
}

// Len returns the number of explicit entries.
func (t *Table) Len() int {
	return len(t.counts)
}

// Get returns the count of p, or 0 when p has no entry.
func (t *Table) Get(p model.Pattern) int64 {
	return t.counts[p]
}

// Has reports whether p has an explicit entry.
func (t *Table) Has(p model.Pattern) bool {
	_, ok := t.counts[p]
	return ok
}

// Lookup returns the count of the pattern flagging the named collections.
func (t *Table) Lookup(names ...string) (int64, error) {
	p, err := model.PatternOf(t.names, names...)
	if err != nil {
		return 0, err
	}
	return t.Get(p), nil
}

// Sum returns the sum of all counts.
func (t *Table) Sum() int64 {
	var s int64
	for _, c := range t.counts {
		s += c
	}
	return s
}

// Patterns returns the patterns with an explicit entry, ordered by degree
// and then by bitmask.
func (t *Table) Patterns() []model.Pattern {
	out := make([]model.Pattern, 0, len(t.counts))
	for p := range t.counts {
		out = append(out, p)
	}
	slices.SortFunc(out, comparePatterns)
	return out
}

// Entries returns the explicit entries in Patterns order.
func (t *Table) Entries() []Entry {
	ps := t.Patterns()
	out := make([]Entry, len(ps))
	for i, p := range ps {
		out[i] = Entry{Pattern: p, Count: t.counts[p]}
	}
	return out
}

// Filter returns a copy of the table keeping only patterns of at least
// minDegree collections.
func (t *Table) Filter(minDegree int) *Table {
	out := newTable(t.names, t.mode, len(t.counts))
	for p, c := range t.counts {
		if p.Degree() >= minDegree {
			out.counts[p] = c
		}
	}
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	return t.Filter(0)
}

// Map returns the counts keyed by pattern. The map is a copy.
func (t *Table) Map() map[model.Pattern]int64 {
	out := make(map[model.Pattern]int64, len(t.counts))
	for p, c := range t.counts {
		out[p] = c
	}
	return out
}

func comparePatterns(a, b model.Pattern) int {
	if c := cmp.Compare(a.Degree(), b.Degree()); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}
