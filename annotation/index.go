package annotation

import (
	"slices"
	"sort"
)

// Index maps gene symbols to their GO terms.
type Index struct {
	terms map[string][]string
}

// NewIndex groups annotations by symbol. Each symbol's terms are sorted and
// distinct.
func NewIndex(anns []Annotation) *Index {
	terms := make(map[string][]string)
	for _, a := range anns {
		if a.Symbol == "" || a.GOID == "" {
			continue
		}
		terms[a.Symbol] = append(terms[a.Symbol], a.GOID)
	}
	for s, t := range terms {
		slices.Sort(t)
		terms[s] = slices.Compact(t)
	}
	return &Index{terms: terms}
}

// Len returns the number of annotated symbols.
func (x *Index) Len() int {
	return len(x.terms)
}

// Annotated reports whether symbol has at least one term.
func (x *Index) Annotated(symbol string) bool {
	_, ok := x.terms[symbol]
	return ok
}

// TermsOf returns the terms of one symbol.
func (x *Index) TermsOf(symbol string) []string {
	return slices.Clone(x.terms[symbol])
}

// Terms returns the sorted, distinct terms of genes. Unannotated genes are
// skipped.
func (x *Index) Terms(genes []string) []string {
	var out []string
	for _, g := range genes {
		out = append(out, x.terms[g]...)
	}
	sort.Strings(out)
	return slices.Compact(out)
}

// Stats counts annotated and unannotated genes.
type Stats struct {
	Annotated   int `json:"annotated"`
	Unannotated int `json:"unannotated"`
}

// Total returns Annotated + Unannotated.
func (s Stats) Total() int {
	return s.Annotated + s.Unannotated
}

// Stats computes coverage of genes. Annotated counts distinct annotated
// genes; Unannotated is len(genes) minus that, so duplicates in genes land
// on the unannotated side.
func (x *Index) Stats(genes []string) Stats {
	seen := make(map[string]struct{}, len(genes))
	annotated := 0
	for _, g := range genes {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		if x.Annotated(g) {
			annotated++
		}
	}
	return Stats{Annotated: annotated, Unannotated: len(genes) - annotated}
}

// NonFilteredProportion returns the percentage of scores at or above
// threshold. It returns 0 for no scores.
func NonFilteredProportion(scores []float64, threshold float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	kept := 0
	for _, s := range scores {
		if s >= threshold {
			kept++
		}
	}
	return float64(kept) / float64(len(scores)) * 100
}
