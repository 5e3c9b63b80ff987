// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/PerifanosPrometheus/graspologic/embed"
	"github.com/PerifanosPrometheus/graspologic/store"
)

// modelDetail is the output of "models show".
type modelDetail struct {
	store.Meta `yaml:",inline"`

	Settings         embed.Settings  `yaml:"settings"`
	InSampleVertices []string        `yaml:"in_sample_vertices"`
	SingularValues   []float64       `yaml:"singular_values"`
	WarningDetails   []embed.Warning `yaml:"warning_details,omitempty"`
}

func (a *app) modelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Inspect and manage stored models",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(func(st *store.Store) error {
				all, err := st.List()
				if err != nil {
					return err
				}
				if all == nil {
					all = []store.Meta{}
				}
				return writeDocs(a.out, all)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <model>",
		Short: "Show a model's settings and fitted state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(st *store.Store) error {
				meta, err := st.Resolve(args[0])
				if err != nil {
					return err
				}
				m, _, err := st.Load(meta.ID)
				if err != nil {
					return err
				}
				return writeDocs(a.out, modelDetail{
					Meta:             meta,
					Settings:         m.Settings(),
					InSampleVertices: m.InSampleVertices(),
					SingularValues:   m.SingularValues(),
					WarningDetails:   m.Warnings(),
				})
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <model>",
		Short: "Delete a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(st *store.Store) error {
				meta, err := st.Resolve(args[0])
				if err != nil {
					return err
				}
				if err = st.Delete(meta.ID); err != nil {
					return err
				}
				cmd.Printf("deleted %s (%s)\n", meta.ID, meta.Name)
				return nil
			})
		},
	})

	return cmd
}
