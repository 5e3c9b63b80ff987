// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/PerifanosPrometheus/graspologic/store"
)

func (a *app) predictCmd() *cobra.Command {
	var noSave bool
	cmd := &cobra.Command{
		Use:   "predict <model> <similarity.yaml>",
		Short: "Project vertices into a stored model",
		Long: `Predict loads a model by ID or name and embeds each row of the
similarity matrix. Columns follow the model's reference order: the
in-sample vertices, then (semi-supervised models) every previously
predicted row. A semi-supervised model is saved back with its grown
reference unless --no-save is given.`,
		Args: cobra.ExactArgs(2),
	}
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist reference growth")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		mf, x, err := readMatrix(args[1])
		if err != nil {
			return err
		}

		return a.withStore(func(st *store.Store) error {
			meta, err := st.Resolve(args[0])
			if err != nil {
				return err
			}
			m, _, err := st.Load(meta.ID)
			if err != nil {
				return err
			}
			z, err := m.Predict(x)
			if err != nil {
				return err
			}
			if m.Settings().SemiSupervised && !noSave {
				if _, err = st.Update(meta.ID, m); err != nil {
					return err
				}
			}

			return writeDocs(a.out, embeddingDoc{
				Model:  meta.ID,
				Labels: mf.Labels,
				Rows:   z.ToRows(),
			})
		})
	}

	return cmd
}
