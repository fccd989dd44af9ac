package model

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

// MaxCollections bounds the number of collections in one aggregation.
// Inclusive tables enumerate 2^K-1 patterns.
const MaxCollections = 20

// Collection is a named set of string identifiers.
// Identifiers are compared by exact string equality.
type Collection struct {
	Name     string
	Elements []string
}

// NewCollection returns a collection holding the given identifiers.
// Duplicate identifiers are kept as-is; they collapse during aggregation.
func NewCollection(name string, elements ...string) Collection {
	return Collection{Name: name, Elements: elements}
}

// Size returns the number of distinct identifiers in the collection.
func (c Collection) Size() int {
	seen := make(map[string]struct{}, len(c.Elements))
	for _, e := range c.Elements {
		seen[e] = struct{}{}
	}
	return len(seen)
}

// String returns a string representation of the Collection.
func (c Collection) String() string {
	return fmt.Sprintf("Collection(%s:%d)", c.Name, len(c.Elements))
}

// Names returns the names of the collections in input order.
func Names(collections []Collection) []string {
	names := make([]string, len(collections))
	for i, c := range collections {
		names[i] = c.Name
	}
	return names
}

// Pattern is a combination of collections. Bit i is set when the i-th
// collection (in input order) is flagged. The zero Pattern is never a key.
type Pattern uint32

// Singleton returns the degree-1 pattern flagging collection i.
func Singleton(i int) Pattern {
	return Pattern(1) << uint(i)
}

// Full returns the pattern flagging all k collections.
func Full(k int) Pattern {
	return Pattern(uint32(1)<<uint(k) - 1)
}

// PatternOf builds the pattern flagging the named collections.
func PatternOf(names []string, flagged ...string) (Pattern, error) {
	var p Pattern
	for _, f := range flagged {
		i := slices.Index(names, f)
		if i < 0 {
			return 0, fmt.Errorf("unknown collection %q", f)
		}
		p |= Singleton(i)
	}
	if p == 0 {
		return 0, fmt.Errorf("empty pattern")
	}
	return p, nil
}

// PatternFromBools builds a pattern from a membership tuple.
func PatternFromBools(flags []bool) Pattern {
	var p Pattern
	for i, f := range flags {
		if f {
			p |= Singleton(i)
		}
	}
	return p
}

// Has reports whether collection i is flagged.
func (p Pattern) Has(i int) bool {
	return p&Singleton(i) != 0
}

// Contains reports whether every collection flagged in q is flagged in p.
func (p Pattern) Contains(q Pattern) bool {
	return p&q == q
}

// Degree returns the number of flagged collections.
func (p Pattern) Degree() int {
	return bits.OnesCount32(uint32(p))
}

// Indices returns the flagged positions in ascending order.
func (p Pattern) Indices() []int {
	out := make([]int, 0, p.Degree())
	for v := uint32(p); v != 0; v &= v - 1 {
		out = append(out, bits.TrailingZeros32(v))
	}
	return out
}

// Bools expands the pattern into a membership tuple of length k.
func (p Pattern) Bools(k int) []bool {
	out := make([]bool, k)
	for i := range out {
		out[i] = p.Has(i)
	}
	return out
}

// Names returns the flagged collection names in input order.
func (p Pattern) Names(names []string) []string {
	out := make([]string, 0, p.Degree())
	for _, i := range p.Indices() {
		if i < len(names) {
			out = append(out, names[i])
		}
	}
	return out
}

// Label joins the flagged names with " & ".
func (p Pattern) Label(names []string) string {
	return strings.Join(p.Names(names), " & ")
}

// String returns the bitmask with position 0 on the left.
func (p Pattern) String() string {
	if p == 0 {
		return "Pattern()"
	}
	n := 32 - bits.LeadingZeros32(uint32(p))
	var sb strings.Builder
	sb.WriteString("Pattern(")
	for i := 0; i < n; i++ {
		if p.Has(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// All returns every non-empty pattern over k collections in ascending
// bitmask order. There are exactly 2^k-1 of them.
func All(k int) []Pattern {
	if k <= 0 {
		return nil
	}
	full := Full(k)
	out := make([]Pattern, 0, int(full))
	for p := Pattern(1); p <= full; p++ {
		out = append(out, p)
		if p == full {
			break
		}
	}
	return out
}

// Mode selects the counting semantics of a cardinality table.
type Mode int

const (
	// Strict counts each identifier once, under its exact membership.
	Strict Mode = iota
	// Inclusive counts, per pattern, the identifiers present in at least
	// the flagged collections, then corrects the singleton totals.
	Inclusive
)

// String returns the stable name of the mode.
func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Inclusive:
		return "inclusive"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is a supported mode.
func (m Mode) Valid() bool {
	return m == Strict || m == Inclusive
}

// ParseMode parses a mode name. "total" is accepted as an alias of
// inclusive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "inclusive", "total":
		return Inclusive, nil
	default:
		return 0, fmt.Errorf("unsupported mode %q", s)
	}
}
