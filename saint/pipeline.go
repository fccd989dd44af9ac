package saint

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/rablab/interactome/blobstore"
)

// Paths names the pipeline inputs and outputs inside a store.
type Paths struct {
	ProteinGroups string
	Baits         string

	Filtered     string
	Interactions string
	Preys        string
}

// DefaultPaths mirrors the layout of the screen's data directory.
func DefaultPaths() Paths {
	return Paths{
		ProteinGroups: "proteinGroups.txt",
		Baits:         "bait.txt",
		Filtered:      "proteinGroups_filtered.tsv",
		Interactions:  "interaction.txt",
		Preys:         "prey.txt",
	}
}

// Summary reports what Prepare produced.
type Summary struct {
	Rows         int
	Kept         int
	Interactions int
	Preys        int
}

// Prepare runs the whole pipeline from in to out.
// out must implement blobstore.Writer.
func Prepare(ctx context.Context, in, out blobstore.BlobStore, p Paths, log *slog.Logger) (Summary, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	rc, err := blobstore.OpenReader(ctx, in, p.ProteinGroups)
	if err != nil {
		return Summary{}, err
	}
	groups, err := ReadTable(rc)
	_ = rc.Close()
	if err != nil {
		return Summary{}, fmt.Errorf("read %s: %w", p.ProteinGroups, err)
	}

	rc, err = blobstore.OpenReader(ctx, in, p.Baits)
	if err != nil {
		return Summary{}, err
	}
	baits, err := ReadBaits(rc)
	_ = rc.Close()
	if err != nil {
		return Summary{}, fmt.Errorf("read %s: %w", p.Baits, err)
	}

	filtered := Filter(groups)
	log.InfoContext(ctx, "protein groups filtered",
		"rows", groups.Len(),
		"kept", filtered.Len(),
	)

	var buf bytes.Buffer
	if err := WriteTable(&buf, filtered); err != nil {
		return Summary{}, err
	}
	if err := blobstore.Put(ctx, out, p.Filtered, buf.Bytes()); err != nil {
		return Summary{}, fmt.Errorf("write %s: %w", p.Filtered, err)
	}

	inter, err := Interactions(filtered, baits)
	if err != nil {
		return Summary{}, err
	}
	buf.Reset()
	if err := WriteInteractions(&buf, inter); err != nil {
		return Summary{}, err
	}
	if err := blobstore.Put(ctx, out, p.Interactions, buf.Bytes()); err != nil {
		return Summary{}, fmt.Errorf("write %s: %w", p.Interactions, err)
	}
	log.InfoContext(ctx, "interactions written",
		"path", p.Interactions,
		"count", len(inter),
	)

	preys, err := Preys(filtered)
	if err != nil {
		return Summary{}, err
	}
	buf.Reset()
	if err := WritePreys(&buf, preys); err != nil {
		return Summary{}, err
	}
	if err := blobstore.Put(ctx, out, p.Preys, buf.Bytes()); err != nil {
		return Summary{}, fmt.Errorf("write %s: %w", p.Preys, err)
	}
	log.InfoContext(ctx, "preys written",
		"path", p.Preys,
		"count", len(preys),
	)

	return Summary{
		Rows:         groups.Len(),
		Kept:         filtered.Len(),
		Interactions: len(inter),
		Preys:        len(preys),
	}, nil
}
