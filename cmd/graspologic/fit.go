// SPDX-License-Identifier: MIT

package main

import (
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/PerifanosPrometheus/graspologic/embed"
	"github.com/PerifanosPrometheus/graspologic/store"
)

func (a *app) fitCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "fit <graph-file>",
		Short: "Fit a model on a graph and save it to the store",
		Long: `Fit reads a graph expression file ("-" for stdin), selects the in-sample
vertices, builds their latent positions and saves the model. The saved
model's metadata is printed as YAML.`,
		Args: cobra.ExactArgs(1),
	}
	flags := addEmbedFlags(cmd)
	cmd.Flags().StringVar(&name, "name", "", "model name (default: graph file name)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := flags.apply(cmd, a.cfg); err != nil {
			return err
		}
		g, err := readGraph(args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}
		m, err := embed.New(a.cfg.EmbedOptions()...)
		if err != nil {
			return err
		}
		if err = m.Fit(g); err != nil {
			return err
		}
		if name == "" {
			name = modelName(args[0])
		}
		klog.V(1).Infof("fit %s: n=%d in-sample=%d d=%d", name, len(m.Vertices()), len(m.InSampleIndices()), m.Components())

		return a.withStore(func(st *store.Store) error {
			meta, err := st.Save(name, m)
			if err != nil {
				return err
			}
			return writeDocs(a.out, meta)
		})
	}

	return cmd
}
