// SPDX-License-Identifier: MIT

package embed

import (
	"fmt"

	"github.com/plan-systems/klog"
)

// WarningKind classifies non-fatal connectivity findings.
type WarningKind int

const (
	// WarnGraphDisconnected reports that the input graph itself is disconnected.
	WarnGraphDisconnected WarningKind = iota + 1
	// WarnSubgraphDisconnected reports that the chosen in-sample subgraph is disconnected.
	WarnSubgraphDisconnected
)

func (k WarningKind) String() string {
	switch k {
	case WarnGraphDisconnected:
		return "graph-disconnected"
	case WarnSubgraphDisconnected:
		return "subgraph-disconnected"
	default:
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
}

// Warning is a connectivity problem that degrades quality but does not stop a fit.
type Warning struct {
	Kind     WarningKind `msgpack:"kind" yaml:"kind"`
	Attempts int         `msgpack:"attempts" yaml:"attempts"`
	Message  string      `msgpack:"message" yaml:"message"`
}

func (w Warning) String() string {
	return w.Kind.String() + ": " + w.Message
}

// warnings collects the warnings of one fit before it is committed.
type warnings struct {
	list    []Warning
	handler func(Warning)
}

func (ws *warnings) emit(w Warning) {
	ws.list = append(ws.list, w)
	klog.Warningf("embed: %s", w.Message)
	if ws.handler != nil {
		ws.handler(w)
	}
}

func graphDisconnected() Warning {
	return Warning{
		Kind: WarnGraphDisconnected,
		Message: "input graph is not fully connected; results may not be optimal. " +
			"Consider embedding the largest connected component (bfs.LargestComponent)",
	}
}

func subgraphDisconnected(attempts int) Warning {
	msg := "induced in-sample subgraph is not fully connected; results may not be optimal"
	if attempts > 0 {
		msg = fmt.Sprintf("induced in-sample subgraph is not fully connected after %d attempts; "+
			"results may not be optimal. Try increasing the in-sample proportion", attempts)
	}

	return Warning{Kind: WarnSubgraphDisconnected, Attempts: attempts, Message: msg}
}
