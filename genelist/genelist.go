package genelist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/rablab/interactome/blobstore"
	"github.com/rablab/interactome/model"
)

// Read parses a gene list.
func Read(r io.Reader) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Write writes the sorted, distinct identifiers one per line, without a
// trailing newline.
func Write(w io.Writer, ids []string) error {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	_, err := io.WriteString(w, strings.Join(sorted, "\n"))
	return err
}

// Load reads the gene list stored under path as a collection named name.
func Load(ctx context.Context, store blobstore.BlobStore, name, path string) (model.Collection, error) {
	rc, err := blobstore.OpenReader(ctx, store, path)
	if err != nil {
		return model.Collection{}, err
	}
	defer func() { _ = rc.Close() }()

	ids, err := Read(rc)
	if err != nil {
		return model.Collection{}, fmt.Errorf("read gene list %s: %w", path, err)
	}
	return model.NewCollection(name, ids...), nil
}

// Save writes ids as a gene list under path.
func Save(ctx context.Context, store blobstore.BlobStore, path string, ids []string) error {
	var sb strings.Builder
	if err := Write(&sb, ids); err != nil {
		return err
	}
	return blobstore.Put(ctx, store, path, []byte(sb.String()))
}
