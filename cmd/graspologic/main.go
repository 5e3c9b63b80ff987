// SPDX-License-Identifier: MIT

// Command graspologic fits out-of-sample spectral embeddings of graphs,
// keeps the fitted models in a local store and projects new vertices into
// them.
//
//	graspologic simulate sbm --sizes 20,20 --probs "0.5,0.05;0.05,0.5" > g.txt
//	graspologic fit g.txt --name blocks --proportion 0.5 --components 2
//	graspologic predict blocks similarity.yaml
//	graspologic fit-predict a.txt b.txt --workers 2
//	graspologic models list
package main

import (
	"flag"
	"os"
	"strconv"
	"sync"

	"github.com/plan-systems/klog"
)

var (
	logFlags     *flag.FlagSet
	logFlagsOnce sync.Once
)

// initLogging registers klog on a private FlagSet once and applies the
// requested verbosity.
func initLogging(verbosity int) {
	logFlagsOnce.Do(func() {
		logFlags = flag.NewFlagSet("klog", flag.ContinueOnError)
		klog.InitFlags(logFlags)
		logFlags.Set("logtostderr", "true")
		klog.SetFormatter(&klog.FmtConstWidth{
			FileNameCharWidth: 16,
			UseColor:          false,
		})
	})
	logFlags.Set("v", strconv.Itoa(verbosity))
}

func main() {
	root := newRootCmd(os.Stdout)
	err := root.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
