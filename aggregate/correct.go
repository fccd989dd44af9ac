package aggregate

import "github.com/rablab/interactome/model"

// CorrectSingletons returns a copy of an uncorrected inclusive table whose
// degree-1 entries are replaced by
//
//	2*target - sum(table[p] for every p sharing the singleton's bit)
//
// Every correction reads the input table, never a partially corrected one.
// Degree-2 and higher entries are copied unchanged. Negative results are
// kept as-is.
func CorrectSingletons(uncorrected *Table) *Table {
	out := uncorrected.Clone()
	for i := 0; i < uncorrected.K(); i++ {
		p0 := model.Singleton(i)
		target := uncorrected.Get(p0)

		var aggregate int64
		for p, c := range uncorrected.counts {
			if p&p0 != 0 {
				aggregate += c
			}
		}

		out.counts[p0] = target - (aggregate - target)
	}
	return out
}

// NegativeSingletons returns the degree-1 patterns of t holding a negative
// count.
func NegativeSingletons(t *Table) []model.Pattern {
	var out []model.Pattern
	for i := 0; i < t.K(); i++ {
		p := model.Singleton(i)
		if t.Get(p) < 0 {
			out = append(out, p)
		}
	}
	return out
}
