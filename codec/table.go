package codec

import (
	"fmt"

	"github.com/rablab/interactome/aggregate"
	"github.com/rablab/interactome/model"
)

// TableReport is the serialized form of a cardinality table.
type TableReport struct {
	Mode     string        `json:"mode"`
	Datasets []string      `json:"datasets"`
	Entries  []ReportEntry `json:"entries"`
}

// ReportEntry is one pattern of a TableReport.
type ReportEntry struct {
	// Members lists the flagged datasets in input order.
	Members []string `json:"members"`
	Count   int64    `json:"count"`
}

// NewTableReport converts t, in Patterns order.
func NewTableReport(t *aggregate.Table) TableReport {
	names := t.Names()
	r := TableReport{
		Mode:     t.Mode().String(),
		Datasets: names,
		Entries:  make([]ReportEntry, 0, t.Len()),
	}
	for _, e := range t.Entries() {
		r.Entries = append(r.Entries, ReportEntry{
			Members: e.Pattern.Names(names),
			Count:   e.Count,
		})
	}
	return r
}

// Counts returns the entries keyed by pattern.
func (r TableReport) Counts() (map[model.Pattern]int64, error) {
	out := make(map[model.Pattern]int64, len(r.Entries))
	for i, e := range r.Entries {
		p, err := model.PatternOf(r.Datasets, e.Members...)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if _, ok := out[p]; ok {
			return nil, fmt.Errorf("entry %d: duplicate pattern %s", i, p.Label(r.Datasets))
		}
		out[p] = e.Count
	}
	return out, nil
}

// EncodeTable marshals t with c, or with Default when c is nil.
func EncodeTable(c Codec, t *aggregate.Table) ([]byte, error) {
	if c == nil {
		c = Default
	}
	return c.Marshal(NewTableReport(t))
}

// DecodeTable unmarshals a TableReport.
func DecodeTable(c Codec, data []byte) (TableReport, error) {
	if c == nil {
		c = Default
	}
	var r TableReport
	if err := c.Unmarshal(data, &r); err != nil {
		return TableReport{}, err
	}
	return r, nil
}
