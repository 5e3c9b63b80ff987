// SPDX-License-Identifier: MIT

package graphexpr

import (
	"errors"
	"fmt"
	"io"

	"github.com/PerifanosPrometheus/graspologic/core"
)

var (
	// ErrSyntax indicates the input does not match the grammar.
	ErrSyntax = errors.New("graphexpr: syntax error")

	// ErrMixedEdges indicates "--" and "->" hops in the same expression.
	ErrMixedEdges = errors.New("graphexpr: cannot mix directed and undirected edges")
)

// Parse builds a core.Graph from src. Vertices are added in order of first
// appearance, which fixes the row order of the graph's adjacency matrix.
// opts are applied before the direction implied by the hops.
func Parse(src string, opts ...core.GraphOption) (*core.Graph, error) {
	expr, err := parseGraphExpr.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("Parse: %v: %w", err, ErrSyntax)
	}

	return expr.Graph(opts...)
}

// ParseReader is Parse over an io.Reader; name is used in syntax errors.
func ParseReader(name string, r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	expr, err := parseGraphExpr.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("ParseReader: %v: %w", err, ErrSyntax)
	}

	return expr.Graph(opts...)
}

// Directed reports whether the expression uses "->" hops. It fails with
// ErrMixedEdges when both kinds appear.
func (x *GraphExpr) Directed() (bool, error) {
	var undirected, directed bool
	for _, st := range x.Statements {
		for _, h := range st.Hops {
			switch h.Op {
			case opDirected:
				directed = true
			default:
				undirected = true
			}
		}
	}
	if directed && undirected {
		return false, ErrMixedEdges
	}

	return directed, nil
}

// Graph materializes the expression.
func (x *GraphExpr) Graph(opts ...core.GraphOption) (*core.Graph, error) {
	directed, err := x.Directed()
	if err != nil {
		return nil, fmt.Errorf("Graph: %w", err)
	}
	gopts := append(append([]core.GraphOption(nil), opts...), core.WithDirected(directed))
	g := core.NewGraph(gopts...)

	for si, st := range x.Statements {
		cur := st.Start.Label
		if err = g.AddVertex(cur); err != nil {
			return nil, fmt.Errorf("Graph: statement %d: %w", si+1, err)
		}
		for _, h := range st.Hops {
			w := core.DefaultWeight
			if h.Weight != nil {
				w = h.Weight.Value
			}
			if err = g.AddEdge(cur, h.Dst.Label, w); err != nil {
				return nil, fmt.Errorf("Graph: statement %d: %s %s %s: %w", si+1, cur, h.Op, h.Dst.Label, err)
			}
			cur = h.Dst.Label
		}
	}

	return g, nil
}
