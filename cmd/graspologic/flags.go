// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/PerifanosPrometheus/graspologic/config"
	"github.com/PerifanosPrometheus/graspologic/reduce"
)

// embedFlags are the model options exposed on fitting commands. Only flags
// set on the command line override the configuration.
type embedFlags struct {
	components int
	proportion float64
	attempts   int
	seed       int64
	algorithm  string
	inSample   []string
	semi       bool
	checkLCC   bool
	diagAug    bool
}

func addEmbedFlags(cmd *cobra.Command) *embedFlags {
	f := &embedFlags{}
	fs := cmd.Flags()
	fs.IntVarP(&f.components, "components", "d", 0, "embedding dimension (0 = elbow selection)")
	fs.Float64VarP(&f.proportion, "proportion", "p", 1, "fraction of vertices drawn in sample")
	fs.IntVarP(&f.attempts, "attempts", "k", 100, "redraws allowed to find a connected sample")
	fs.Int64Var(&f.seed, "seed", 0, "random seed (0 = fixed default)")
	fs.StringVar(&f.algorithm, "algorithm", "randomized", "SVD backend: randomized | full | truncated")
	fs.StringSliceVar(&f.inSample, "in-sample", nil, "explicit in-sample vertex labels")
	fs.BoolVar(&f.semi, "semi-supervised", false, "grow the reference embedding on predict")
	fs.BoolVar(&f.checkLCC, "check-lcc", true, "check connectivity of the graph and sample")
	fs.BoolVar(&f.diagAug, "diag-aug", false, "replace the in-sample diagonal with scaled degrees")
	return f
}

func (f *embedFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	e := &cfg.Embed
	if fs.Changed("components") {
		e.Components = f.components
	}
	if fs.Changed("proportion") {
		e.InSampleProportion = f.proportion
	}
	if fs.Changed("attempts") {
		e.ConnectedAttempts = f.attempts
	}
	if fs.Changed("seed") {
		e.Seed = f.seed
	}
	if fs.Changed("algorithm") {
		alg, err := reduce.ParseAlgorithm(f.algorithm)
		if err != nil {
			return err
		}
		e.Algorithm = alg
	}
	if fs.Changed("in-sample") {
		e.InSampleVertices = f.inSample
		e.InSampleIndices = nil
	}
	if fs.Changed("semi-supervised") {
		e.SemiSupervised = f.semi
	}
	if fs.Changed("check-lcc") {
		e.CheckLCC = f.checkLCC
	}
	if fs.Changed("diag-aug") {
		e.DiagonalAugmentation = f.diagAug
	}

	return cfg.Validate()
}
