package saint

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// MaxQuant column names.
const (
	ColContaminant    = "Potential contaminant"
	ColReverse        = "Reverse"
	ColOnlyBySite     = "Only identified by site"
	ColMajorityIDs    = "Majority protein IDs"
	ColSequenceLength = "Sequence length"
	ColGeneNames      = "Gene names"

	// CountPrefix prefixes the per-IP spectral count columns.
	CountPrefix = "MS/MS count "
)

// FlagColumns lists the columns whose "+" marks a row to discard.
var FlagColumns = []string{ColContaminant, ColReverse, ColOnlyBySite}

// Filter returns the rows not flagged "+" in any of FlagColumns. Missing
// flag columns filter nothing.
func Filter(t *Table) *Table {
	var flags []int
	for _, c := range FlagColumns {
		if i := t.Column(c); i >= 0 {
			flags = append(flags, i)
		}
	}

	out := &Table{Header: t.Header}
	for _, row := range t.Rows {
		keep := true
		for _, i := range flags {
			if strings.TrimSpace(row[i]) == "+" {
				keep = false
				break
			}
		}
		if keep {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// CountColumns returns the IP names of the spectral count columns in
// header order.
func CountColumns(t *Table) []string {
	var out []string
	for _, h := range t.Header {
		if ip, ok := strings.CutPrefix(h, CountPrefix); ok {
			out = append(out, ip)
		}
	}
	return out
}

// Bait describes one immunoprecipitation.
type Bait struct {
	IPName string
	Bait   string
	// Kind is "T" for test or "C" for control.
	Kind string
}

// ReadBaits parses a headerless "IP name, bait, T/C" table.
func ReadBaits(r io.Reader) ([]Bait, error) {
	cr := newReader(r)
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	var out []Bait
	for i, rec := range recs {
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("bait line %d: want 3 columns, got %d", i+1, len(rec))
		}
		out = append(out, Bait{
			IPName: strings.TrimSpace(rec[0]),
			Bait:   strings.TrimSpace(rec[1]),
			Kind:   strings.TrimSpace(rec[2]),
		})
	}
	return out, nil
}

// WriteBaits writes baits as a headerless table.
func WriteBaits(w io.Writer, baits []Bait) error {
	cw := newWriter(w)
	for _, b := range baits {
		if err := cw.Write([]string{b.IPName, b.Bait, b.Kind}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Interaction is one bait-prey spectral count.
type Interaction struct {
	IPName string
	Bait   string
	Prey   string
	Count  float64
}

// Interactions melts the spectral count columns of a filtered table.
// Records are ordered by count column, then by row. Counts that are empty,
// NaN or zero are skipped. IPs missing from baits get an empty bait.
func Interactions(t *Table, baits []Bait) ([]Interaction, error) {
	cols, err := t.MustColumns(ColMajorityIDs)
	if err != nil {
		return nil, err
	}
	idCol := cols[0]

	byIP := make(map[string]string, len(baits))
	for _, b := range baits {
		if _, ok := byIP[b.IPName]; !ok {
			byIP[b.IPName] = b.Bait
		}
	}

	var out []Interaction
	for _, ip := range CountColumns(t) {
		col := t.Column(CountPrefix + ip)
		for _, row := range t.Rows {
			count, ok, err := parseCount(row[col])
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", CountPrefix+ip, err)
			}
			if !ok {
				continue
			}
			out = append(out, Interaction{
				IPName: ip,
				Bait:   byIP[ip],
				Prey:   first(row[idCol]),
				Count:  count,
			})
		}
	}
	return out, nil
}

func parseCount(s string) (float64, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	if v == 0 || math.IsNaN(v) {
		return 0, false, nil
	}
	return v, true, nil
}

// WriteInteractions writes interactions as a headerless table.
func WriteInteractions(w io.Writer, in []Interaction) error {
	cw := newWriter(w)
	for _, i := range in {
		rec := []string{i.IPName, i.Bait, i.Prey, strconv.FormatFloat(i.Count, 'f', -1, 64)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Prey describes one prey protein.
type Prey struct {
	Prey   string
	Length string
	Gene   string
}

// Preys returns one record per distinct raw (protein IDs, length, gene
// names) row, in row order. Rows are deduplicated before the first
// identifier is taken, so two groups sharing a leading ID both yield a
// record. A missing gene name falls back to the prey identifier.
func Preys(t *Table) ([]Prey, error) {
	cols, err := t.MustColumns(ColMajorityIDs, ColSequenceLength, ColGeneNames)
	if err != nil {
		return nil, err
	}

	var out []Prey
	seen := make(map[[3]string]struct{})
	for _, row := range t.Rows {
		raw := [3]string{row[cols[0]], row[cols[1]], row[cols[2]]}
		if _, ok := seen[raw]; ok {
			continue
		}
		seen[raw] = struct{}{}

		p := Prey{
			Prey:   first(row[cols[0]]),
			Length: strings.TrimSpace(row[cols[1]]),
			Gene:   first(row[cols[2]]),
		}
		if p.Gene == "" {
			p.Gene = p.Prey
		}
		out = append(out, p)
	}
	return out, nil
}

// WritePreys writes preys as a headerless table.
func WritePreys(w io.Writer, preys []Prey) error {
	cw := newWriter(w)
	for _, p := range preys {
		if err := cw.Write([]string{p.Prey, p.Length, p.Gene}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func first(s string) string {
	head, _, _ := strings.Cut(s, ";")
	return strings.TrimSpace(head)
}

// Replicate identifies one column of a Rab screen, e.g. "Rab5 T1".
type Replicate struct {
	Bait string
	// Nucleotide is 'T' (GTP-locked) or 'D' (GDP-locked).
	Nucleotide byte
	Number     string
}

// ErrBadReplicate is returned for column names not shaped "<bait> <T|D>...<n>".
var ErrBadReplicate = errors.New("malformed replicate column name")

// ParseReplicate splits a column name such as "Rab5 T1" or "Rab11 D3".
func ParseReplicate(name string) (Replicate, error) {
	bait, rep, ok := strings.Cut(name, " ")
	if !ok || bait == "" || rep == "" || strings.Contains(rep, " ") {
		return Replicate{}, fmt.Errorf("%w: %q", ErrBadReplicate, name)
	}
	if rep[0] != 'T' && rep[0] != 'D' {
		return Replicate{}, fmt.Errorf("%w: %q", ErrBadReplicate, name)
	}
	return Replicate{
		Bait:       bait,
		Nucleotide: rep[0],
		Number:     rep[len(rep)-1:],
	}, nil
}
