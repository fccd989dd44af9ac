package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rablab/interactome/blobstore"
	"github.com/rablab/interactome/config"
	"github.com/rablab/interactome/saint"
)

type saintFlags struct {
	proteinGroups string
	baits         string
	out           string
}

func newSaintCmd(root *rootFlags) *cobra.Command {
	f := &saintFlags{}
	cmd := &cobra.Command{
		Use:   "saint",
		Short: "Prepare SAINT inputs from a MaxQuant proteinGroups table",
		Long: `Filters contaminant, reverse and site-only protein groups, then writes
the filtered table, interaction.txt and prey.txt to the output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSaint(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), root, f)
		},
	}
	cmd.Flags().StringVar(&f.proteinGroups, "protein-groups", "", "MaxQuant proteinGroups.txt (may be compressed)")
	cmd.Flags().StringVar(&f.baits, "baits", "", "headerless bait table: IP name, bait, T/C")
	cmd.Flags().StringVar(&f.out, "out", ".", "output directory")
	_ = cmd.MarkFlagRequired("protein-groups")
	_ = cmd.MarkFlagRequired("baits")
	return cmd
}

func runSaint(ctx context.Context, stdout, stderr io.Writer, root *rootFlags, f *saintFlags) error {
	log, err := root.logger(stderr, config.LoggingConfig{})
	if err != nil {
		return err
	}

	in := blobstore.NewLocalStore(".")
	out := blobstore.NewLocalStore(f.out)

	paths := saint.DefaultPaths()
	paths.ProteinGroups = f.proteinGroups
	paths.Baits = f.baits

	sum, err := saint.Prepare(ctx, in, out, paths, log.Logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "protein groups: %d read, %d kept\n", sum.Rows, sum.Kept)
	fmt.Fprintf(stdout, "interactions:   %d -> %s\n", sum.Interactions, filepath.Join(f.out, paths.Interactions))
	fmt.Fprintf(stdout, "preys:          %d -> %s\n", sum.Preys, filepath.Join(f.out, paths.Preys))
	return nil
}
