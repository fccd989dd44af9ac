package render

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rablab/interactome/aggregate"
	"github.com/rablab/interactome/model"
)

const (
	dotPresent = "●"
	dotAbsent  = "·"
)

// SortOrder selects the row order.
type SortOrder int

const (
	// ByDegree orders rows by degree, then by input order of the datasets.
	ByDegree SortOrder = iota
	// ByCount orders rows by decreasing count, ties by degree.
	ByCount
)

// ParseSortOrder parses "degree" or "count".
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(s) {
	case "", "degree":
		return ByDegree, nil
	case "count", "cardinality":
		return ByCount, nil
	default:
		return 0, fmt.Errorf("unknown sort order %q", s)
	}
}

// Style configures one rendering.
type Style struct {
	// OfInterest names the highlighted datasets.
	OfInterest []string
	// MinDegree hides patterns of fewer datasets.
	MinDegree int
	Sort      SortOrder
	// Colors is nil for plain output.
	Colors *Colors
}

// DefaultStyle returns the style used for a mode: singletons are shown in
// strict mode only, because in inclusive mode they hold corrected totals.
func DefaultStyle(mode model.Mode, ofInterest ...string) Style {
	minDegree := 1
	if mode == model.Inclusive {
		minDegree = 2
	}
	return Style{OfInterest: ofInterest, MinDegree: minDegree}
}

func (s Style) interest(names []string) (model.Pattern, error) {
	if len(s.OfInterest) == 0 {
		return 0, nil
	}
	return model.PatternOf(names, s.OfInterest...)
}

// Totals returns, per dataset, the sum of the counts of every pattern
// including it. For a strict table and for a corrected inclusive table this
// is the dataset size.
func Totals(t *aggregate.Table) []int64 {
	out := make([]int64, t.K())
	for _, e := range t.Entries() {
		for _, i := range e.Pattern.Indices() {
			out[i] += e.Count
		}
	}
	return out
}

// Rows returns the entries shown under s, in display order.
func Rows(t *aggregate.Table, s Style) []aggregate.Entry {
	rows := t.Filter(s.MinDegree).Entries()
	if s.Sort == ByCount {
		slices.SortStableFunc(rows, func(a, b aggregate.Entry) int {
			return cmp.Compare(b.Count, a.Count)
		})
	}
	return rows
}

// Text writes the dataset totals then the combination matrix.
func Text(w io.Writer, t *aggregate.Table, s Style) error {
	names := t.Names()
	interest, err := s.interest(names)
	if err != nil {
		return fmt.Errorf("datasets of interest: %w", err)
	}

	bw := bufio.NewWriter(w)

	totals := Totals(t)
	nameWidth := utf8.RuneCountInString("Dataset")
	for _, n := range names {
		nameWidth = max(nameWidth, utf8.RuneCountInString(n))
	}
	countWidth := len("Total")
	for _, v := range totals {
		countWidth = max(countWidth, len(strconv.FormatInt(v, 10)))
	}

	fmt.Fprintf(bw, "%s  %s\n", padRight("Dataset", nameWidth), padLeft("Total", countWidth))
	for i, n := range names {
		line := padRight(n, nameWidth) + "  " + padLeft(strconv.FormatInt(totals[i], 10), countWidth)
		if interest.Has(i) {
			line = s.Colors.interest(line)
		} else {
			line = s.Colors.other(line)
		}
		fmt.Fprintln(bw, line)
	}

	rows := Rows(t, s)
	if len(rows) == 0 {
		return bw.Flush()
	}

	countWidth = len("Count")
	for _, r := range rows {
		countWidth = max(countWidth, len(strconv.FormatInt(r.Count, 10)))
	}
	header := make([]string, len(names))
	for i := range names {
		header[i] = strconv.Itoa((i + 1) % 10)
	}

	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "%s  %s\n", strings.Join(header, " "), padLeft("Count", countWidth))
	for _, r := range rows {
		dots := make([]string, len(names))
		for i := range names {
			dots[i] = dotAbsent
			if r.Pattern.Has(i) {
				dots[i] = dotPresent
			}
		}
		line := strings.Join(dots, " ") + "  " + padLeft(strconv.FormatInt(r.Count, 10), countWidth) + "  " + r.Pattern.Label(names)
		if r.Pattern&interest != 0 {
			line = s.Colors.interest(line)
		} else {
			line = s.Colors.other(line)
		}
		fmt.Fprintln(bw, line)
	}
	return bw.Flush()
}

// TSV writes one line per entry: the dataset flags as 0/1, the count and
// the label, after a header line naming the datasets.
func TSV(w io.Writer, t *aggregate.Table, s Style) error {
	names := t.Names()
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\tcount\tlabel\n", strings.Join(names, "\t"))
	for _, r := range Rows(t, s) {
		flags := make([]string, len(names))
		for i := range names {
			flags[i] = "0"
			if r.Pattern.Has(i) {
				flags[i] = "1"
			}
		}
		fmt.Fprintf(bw, "%s\t%d\t%s\n", strings.Join(flags, "\t"), r.Count, r.Pattern.Label(names))
	}
	return bw.Flush()
}

func padRight(s string, n int) string {
	if d := n - utf8.RuneCountInString(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

func padLeft(s string, n int) string {
	if d := n - utf8.RuneCountInString(s); d > 0 {
		return strings.Repeat(" ", d) + s
	}
	return s
}
