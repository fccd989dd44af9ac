package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rablab/interactome/annotation"
	"github.com/rablab/interactome/blobstore"
	"github.com/rablab/interactome/codec"
	"github.com/rablab/interactome/config"
	"github.com/rablab/interactome/genelist"
	"github.com/rablab/interactome/internal/stream"
)

type annotateFlags struct {
	gaf   string
	genes []string
	json  bool
}

// coverage is one line of the annotate report.
type coverage struct {
	Dataset string `json:"dataset"`
	annotation.Stats
	Terms int `json:"terms"`
}

func newAnnotateCmd(root *rootFlags) *cobra.Command {
	f := &annotateFlags{}
	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Report GO annotation coverage of gene lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnnotate(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), root, f)
		},
	}
	cmd.Flags().StringVar(&f.gaf, "gaf", "", "GO annotation file (GAF, may be .gz)")
	cmd.Flags().StringArrayVar(&f.genes, "genes", nil, "gene list; repeat for several datasets")
	cmd.Flags().BoolVar(&f.json, "json", false, "print JSON instead of a table")
	_ = cmd.MarkFlagRequired("gaf")
	_ = cmd.MarkFlagRequired("genes")
	return cmd
}

func runAnnotate(ctx context.Context, stdout, stderr io.Writer, root *rootFlags, f *annotateFlags) error {
	log, err := root.logger(stderr, config.LoggingConfig{})
	if err != nil {
		return err
	}

	store := blobstore.NewLocalStore(".")
	idx, err := annotation.Load(ctx, store, f.gaf)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "annotations loaded", "path", f.gaf, "genes", idx.Len())

	report := make([]coverage, 0, len(f.genes))
	for _, path := range f.genes {
		name := datasetName(path)
		c, err := genelist.Load(ctx, store, name, path)
		if err != nil {
			return err
		}
		report = append(report, coverage{
			Dataset: name,
			Stats:   idx.Stats(c.Elements),
			Terms:   len(idx.Terms(c.Elements)),
		})
	}

	if f.json {
		b, err := codec.Default.Marshal(report)
		if err != nil {
			return err
		}
		_, err = stdout.Write(append(b, '\n'))
		return err
	}

	fmt.Fprintf(stdout, "%-24s %10s %12s %8s\n", "dataset", "annotated", "unannotated", "terms")
	for _, r := range report {
		fmt.Fprintf(stdout, "%-24s %10d %12d %8d\n", r.Dataset, r.Annotated, r.Unannotated, r.Terms)
	}
	return nil
}

// datasetName derives a dataset name from a gene list path:
// "genes/li2016_fly.txt.gz" becomes "li2016_fly".
func datasetName(path string) string {
	base := filepath.Base(stream.TrimExt(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
