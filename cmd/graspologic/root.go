// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/PerifanosPrometheus/graspologic/config"
	"github.com/PerifanosPrometheus/graspologic/store"
)

// app carries the resolved configuration and the lazily opened store of
// one command invocation.
type app struct {
	out io.Writer

	cfgPath   string
	dataDir   string
	inMemory  bool
	verbosity int

	cfg *config.Config
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "graspologic",
		Short: "Out-of-sample adjacency spectral embedding",
		Long: `graspologic embeds a connected sample of a graph's vertices with a
truncated SVD of their adjacency matrix, then places every other vertex in
the same latent space from its similarity to that sample.

Configuration is read from --config (YAML), then GRASPOLOGIC_* environment
variables, then command line flags, each overriding the previous.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.dataDir, "data-dir", "", "model store directory (overrides store.dir)")
	pf.BoolVar(&a.inMemory, "in-memory", false, "use a throwaway in-memory store")
	pf.IntVarP(&a.verbosity, "verbose", "v", 0, "log verbosity (klog -v)")

	root.AddCommand(
		a.fitCmd(),
		a.predictCmd(),
		a.fitPredictCmd(),
		a.simulateCmd(),
		a.modelsCmd(),
	)

	return root
}

// setup resolves configuration in precedence order file < env < flags.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	initLogging(a.verbosity)

	cfg, err := config.LoadFromEnvOrFile(a.cfgPath)
	if err != nil {
		return errors.Wrap(err, "config")
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.Store.Dir = a.dataDir
	}
	if cmd.Flags().Changed("in-memory") {
		cfg.Store.InMemory = a.inMemory
	}
	a.cfg = cfg

	return nil
}

// withStore opens the configured store for the duration of fn.
func (a *app) withStore(fn func(*store.Store) error) (err error) {
	st, err := store.Open(store.Options{Dir: a.cfg.Store.Dir, InMemory: a.cfg.Store.InMemory})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(st)
}
