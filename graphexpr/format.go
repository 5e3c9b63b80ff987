// SPDX-License-Identifier: MIT

package graphexpr

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PerifanosPrometheus/graspologic/core"
)

var bareLabel = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_.:]*|\d+)$`)

// Format renders g so that Parse(Format(g)) reproduces its vertices (in
// the same order), edges and weights. Edges are written one per line;
// weights equal to core.DefaultWeight are omitted. When the edge walk alone
// would reorder vertices, a leading statement list declares them all.
//
// An edgeless directed graph formats as bare vertices and therefore parses
// back as undirected.
func Format(g *core.Graph) string {
	if g == nil {
		return ""
	}
	vertices := g.Vertices()
	edges := g.Edges()
	op := opUndirected
	if g.Directed() {
		op = opDirected
	}

	var sb strings.Builder
	if !edgeOrderMatches(vertices, edges) {
		for i, v := range vertices {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(label(v))
		}
		sb.WriteString(";\n")
		vertices = nil // all declared
	}

	touched := make(map[string]bool, len(vertices))
	for _, e := range edges {
		touched[e.From], touched[e.To] = true, true
		sb.WriteString(label(e.From))
		sb.WriteString(" " + op + " ")
		sb.WriteString(label(e.To))
		if e.Weight != core.DefaultWeight {
			sb.WriteString(" [" + strconv.FormatFloat(e.Weight, 'g', -1, 64) + "]")
		}
		sb.WriteString(";\n")
	}
	for _, v := range vertices {
		if !touched[v] {
			sb.WriteString(label(v) + ";\n")
		}
	}

	return sb.String()
}

// edgeOrderMatches reports whether first appearance along edges, followed
// by the isolated vertices, equals the vertex order.
func edgeOrderMatches(vertices []string, edges []core.Edge) bool {
	seen := make(map[string]bool, len(vertices))
	order := make([]string, 0, len(vertices))
	visit := func(v string) {
		if !seen[v] {
			seen[v] = true
			order = append(order, v)
		}
	}
	for _, e := range edges {
		visit(e.From)
		visit(e.To)
	}
	for _, v := range vertices {
		visit(v)
	}
	for i := range vertices {
		if order[i] != vertices[i] {
			return false
		}
	}

	return true
}

func label(v string) string {
	if bareLabel.MatchString(v) {
		return v
	}

	return strconv.Quote(v)
}
