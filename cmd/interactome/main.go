// Command interactome compares interactor gene lists across datasets.
//
//	interactome upset --config project.yaml --mode inclusive
//	interactome saint --protein-groups proteinGroups.txt --baits bait.txt --out saint/
//	interactome annotate --gaf goa_human.gaf.gz --genes this_study.txt --genes li2016.txt
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rablab/interactome"
	"github.com/rablab/interactome/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootFlags are shared by every subcommand.
type rootFlags struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "interactome",
		Short: "Compare Rab interactor datasets",
		Long: `interactome prepares SAINT inputs from MaxQuant tables, aggregates
interactor gene lists into combination-matrix tables and reports GO
annotation coverage.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (default from the manifest, else info)")
	cmd.PersistentFlags().StringVar(&f.logFormat, "log-format", "", "text or json (default from the manifest, else text)")

	cmd.AddCommand(newUpsetCmd(f), newSaintCmd(f), newAnnotateCmd(f))
	return cmd
}

// logger builds the logger from the flags, falling back to lc.
func (f *rootFlags) logger(w io.Writer, lc config.LoggingConfig) (*interactome.Logger, error) {
	if f.logLevel != "" {
		lc.Level = f.logLevel
	}
	if f.logFormat != "" {
		lc.Format = f.logFormat
	}
	if lc.Level == "" {
		lc.Level = "info"
	}

	level, err := lc.SlogLevel()
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch lc.Format {
	case "", "text":
		return interactome.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return interactome.NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", lc.Format)
	}
}
