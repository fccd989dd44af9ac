package annotation

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rablab/interactome/blobstore"
)

// minGAFColumns is the number of mandatory columns before the aspect.
const minGAFColumns = 9

// Annotation is one GAF line reduced to the fields coverage needs.
type Annotation struct {
	Symbol    string
	Qualifier string
	GOID      string
	// Aspect is P, F or C.
	Aspect string
}

// ReadGAF parses GAF lines from r. Lines starting with '!' and blank lines
// are skipped.
func ReadGAF(r io.Reader) ([]Annotation, error) {
	var out []Annotation

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if text == "" || text[0] == '!' {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) < minGAFColumns {
			return nil, fmt.Errorf("gaf line %d: want at least %d columns, got %d", line, minGAFColumns, len(fields))
		}
		out = append(out, Annotation{
			Symbol:    fields[2],
			Qualifier: fields[3],
			GOID:      fields[4],
			Aspect:    fields[8],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Load reads a GAF file from store. "*.gaf.gz" files are decompressed.
func Load(ctx context.Context, store blobstore.BlobStore, path string) (*Index, error) {
	rc, err := blobstore.OpenReader(ctx, store, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	anns, err := ReadGAF(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return NewIndex(anns), nil
}
