package genelist

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/rablab/interactome/blobstore"
	"github.com/rablab/interactome/model"
)

const (
	colSearchTerm  = "Search Term"
	colHumanSymbol = "Human Symbol"
)

// ErrNoHeader is returned when an ortholog table has no header line.
var ErrNoHeader = errors.New("ortholog table: header with \"Search Term\" and \"Human Symbol\" not found")

// Orthologs maps a source identifier to its best human ortholog.
type Orthologs map[string]string

// ReadOrthologs parses a tab-separated DIOPT export.
func ReadOrthologs(r io.Reader) (Orthologs, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	term, human := -1, -1
	out := make(Orthologs)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ortholog table: %w", err)
		}

		if term < 0 {
			term = slices.Index(rec, colSearchTerm)
			human = slices.Index(rec, colHumanSymbol)
			if term < 0 || human < 0 {
				term = -1
			}
			continue
		}

		if term >= len(rec) || human >= len(rec) {
			continue
		}
		src := strings.TrimSpace(rec[term])
		dst := strings.TrimSpace(rec[human])
		if src == "" || dst == "" {
			continue
		}
		if _, ok := out[src]; !ok {
			out[src] = dst
		}
	}

	if term < 0 {
		return nil, ErrNoHeader
	}
	return out, nil
}

// LoadOrthologs reads the ortholog table stored under path.
func LoadOrthologs(ctx context.Context, store blobstore.BlobStore, path string) (Orthologs, error) {
	rc, err := blobstore.OpenReader(ctx, store, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return ReadOrthologs(rc)
}

// Translate maps the elements of c through the table. Identifiers without
// an ortholog are dropped and returned separately. Several source
// identifiers may map to the same human symbol; it is kept once.
func (o Orthologs) Translate(c model.Collection) (model.Collection, []string) {
	out := model.Collection{Name: c.Name}
	var unmapped []string
	seen := make(map[string]struct{}, len(c.Elements))
	for _, e := range c.Elements {
		h, ok := o[e]
		if !ok {
			unmapped = append(unmapped, e)
			continue
		}
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		out.Elements = append(out.Elements, h)
	}
	return out, unmapped
}
