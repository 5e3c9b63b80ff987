// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/PerifanosPrometheus/graspologic/embed"
)

func (a *app) fitPredictCmd() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "fit-predict <graph-file>...",
		Short: "Embed every vertex of one or more graphs",
		Long: `Fit-predict fits an independent model per graph file and prints the
full N × d embedding of each, rows in the file's vertex order. Files are
processed concurrently, at most --workers at a time; output order follows
the argument order. Nothing is saved to the store.`,
		Args: cobra.MinimumNArgs(1),
	}
	flags := addEmbedFlags(cmd)
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent fits (default: config workers)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("workers") {
			a.cfg.Workers = workers
		}
		if err := flags.apply(cmd, a.cfg); err != nil {
			return err
		}

		docs := make([]any, len(args))
		eg, ctx := errgroup.WithContext(cmd.Context())
		eg.SetLimit(a.cfg.Workers)
		for i, path := range args {
			i, path := i, path
			eg.Go(func() error {
				doc, err := a.embedFile(ctx, path)
				if err != nil {
					return errors.Wrapf(err, "fit-predict %s", path)
				}
				docs[i] = doc
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}

		return writeDocs(a.out, docs...)
	}

	return cmd
}

// embedFile runs one FitPredict with its own model and RNG.
func (a *app) embedFile(ctx context.Context, path string) (embeddingDoc, error) {
	if err := ctx.Err(); err != nil {
		return embeddingDoc{}, err
	}
	g, err := readGraph(path, nil)
	if err != nil {
		return embeddingDoc{}, err
	}
	m, err := embed.New(a.cfg.EmbedOptions()...)
	if err != nil {
		return embeddingDoc{}, err
	}
	z, err := m.FitPredict(g)
	if err != nil {
		return embeddingDoc{}, err
	}

	return embeddingDoc{
		Source:   path,
		Labels:   m.Vertices(),
		Rows:     z.ToRows(),
		Warnings: warningStrings(m.Warnings()),
	}, nil
}
