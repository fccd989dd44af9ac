package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rablab/interactome"
	"github.com/rablab/interactome/aggregate"
	"github.com/rablab/interactome/blobstore"
	"github.com/rablab/interactome/codec"
	"github.com/rablab/interactome/config"
	"github.com/rablab/interactome/genelist"
	"github.com/rablab/interactome/model"
	"github.com/rablab/interactome/render"
)

type upsetFlags struct {
	config    string
	mode      string
	format    string
	sort      string
	minDegree int
}

func newUpsetCmd(root *rootFlags) *cobra.Command {
	f := &upsetFlags{}
	cmd := &cobra.Command{
		Use:   "upset",
		Short: "Aggregate the manifest's datasets into a combination table",
		Long: `Loads every dataset of the manifest, in order, and prints the
cardinality of each combination of datasets.

Modes:
  strict     each gene counted once, under its exact set of datasets
  inclusive  genes present in at least the flagged datasets; singleton
             rows hold corrected totals and may be negative`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpset(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), root, f)
		},
	}
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "project manifest (YAML)")
	cmd.Flags().StringVar(&f.mode, "mode", "", "strict or inclusive (overrides the manifest)")
	cmd.Flags().StringVar(&f.format, "format", "", "text, json or tsv (overrides the manifest)")
	cmd.Flags().StringVar(&f.sort, "sort", "", "degree or count (overrides the manifest)")
	cmd.Flags().IntVar(&f.minDegree, "min-degree", 0, "hide combinations of fewer datasets")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func runUpset(ctx context.Context, stdout, stderr io.Writer, root *rootFlags, f *upsetFlags) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	if f.mode != "" {
		cfg.Mode = f.mode
	}
	if f.format != "" {
		cfg.Output.Format = f.format
	}
	if f.sort != "" {
		cfg.Output.Sort = f.sort
	}
	if f.minDegree > 0 {
		cfg.Output.MinDegree = f.minDegree
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := root.logger(stderr, cfg.Logging)
	if err != nil {
		return err
	}
	mode, err := cfg.ModeValue()
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	cols, err := loadDatasets(ctx, store, cfg.Datasets, log)
	if err != nil {
		return err
	}

	metrics := &interactome.BasicMetricsCollector{}
	t, err := interactome.Aggregate(cols, mode,
		interactome.WithLogger(log),
		interactome.WithMetricsCollector(metrics),
	)
	if err != nil {
		return err
	}
	stats := metrics.GetStats()
	log.DebugContext(ctx, "aggregate metrics",
		"identifiers", stats.IdentifiersSeen,
		"negative_totals", stats.NegativeTotals,
		"avg_nanos", stats.AvgNanos,
	)

	return writeTable(stdout, t, mode, cfg)
}

func loadDatasets(ctx context.Context, store blobstore.BlobStore, datasets []config.Dataset, log *interactome.Logger) ([]model.Collection, error) {
	cols := make([]model.Collection, 0, len(datasets))
	for _, d := range datasets {
		c, err := genelist.Load(ctx, store, d.Name, d.Path)
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", d.Name, err)
		}
		if d.Orthologs != "" {
			orth, err := genelist.LoadOrthologs(ctx, store, d.Orthologs)
			if err != nil {
				return nil, fmt.Errorf("dataset %q: %w", d.Name, err)
			}
			var unmapped []string
			c, unmapped = orth.Translate(c)
			if len(unmapped) > 0 {
				log.InfoContext(ctx, "identifiers without ortholog dropped",
					"dataset", d.Name,
					"count", len(unmapped),
				)
			}
		}
		log.DebugContext(ctx, "dataset loaded", "dataset", d.Name, "size", c.Size())
		cols = append(cols, c)
	}
	return cols, nil
}

func writeTable(w io.Writer, t *aggregate.Table, mode model.Mode, cfg *config.Config) error {
	style := render.DefaultStyle(mode, cfg.OfInterest...)
	if cfg.Output.MinDegree > 0 {
		style.MinDegree = cfg.Output.MinDegree
	}
	order, err := render.ParseSortOrder(cfg.Output.Sort)
	if err != nil {
		return err
	}
	style.Sort = order

	switch cfg.Output.Format {
	case config.FormatJSON:
		c, err := codec.ByName(cfg.Output.Codec)
		if err != nil {
			return err
		}
		b, err := codec.EncodeTable(c, t)
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case config.FormatTSV:
		return render.TSV(w, t, style)
	default:
		style.Colors = render.ColorsFor(w)
		return render.Text(w, t, style)
	}
}
