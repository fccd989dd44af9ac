package saint

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
)

// Table is a tab-separated table with a header line.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable parses a tab-separated table whose first line is the header.
// Short rows are padded with empty cells.
func ReadTable(r io.Reader) (*Table, error) {
	cr := newReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty table")
	}
	if err != nil {
		return nil, err
	}

	t := &Table{Header: header}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		for len(rec) < len(header) {
			rec = append(rec, "")
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

// WriteTable writes the header and rows.
func WriteTable(w io.Writer, t *Table) error {
	cw := newWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// Column returns the index of the named column, or -1.
func (t *Table) Column(name string) int {
	return slices.Index(t.Header, name)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// MustColumns returns the indices of the named columns or an error naming
// the first missing one.
func (t *Table) MustColumns(names ...string) ([]int, error) {
	out := make([]int, len(names))
	for i, n := range names {
		out[i] = t.Column(n)
		if out[i] < 0 {
			return nil, &ErrMissingColumn{Column: n}
		}
	}
	return out, nil
}

// ErrMissingColumn indicates a required column is absent from the header.
type ErrMissingColumn struct {
	Column string
}

func (e *ErrMissingColumn) Error() string {
	return fmt.Sprintf("missing column %q", e.Column)
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

func newWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return cw
}
