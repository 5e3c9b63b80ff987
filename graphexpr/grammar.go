// SPDX-License-Identifier: MIT

// Package graphexpr reads and writes graphs in a compact edge-list syntax:
//
//	a -- b [0.5], b -- c; d -- e
//	hub -> x -> y
//	lonely
//
// A statement is a vertex optionally followed by hops ("--" undirected,
// "->" directed), each with an optional bracketed weight (default 1).
// Statements are separated by ";" or "," or just whitespace. "#" starts a
// comment running to the end of the line. Labels are identifiers, numbers
// or double-quoted Go strings.
//
// All hops in one expression must share a direction: "--" builds an
// undirected core.Graph, "->" a directed one.
package graphexpr

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// GraphExpr is the parsed form of a whole expression.
type GraphExpr struct {
	Statements []*Statement `( @@ ( ";" | "," )? )*`
}

// Statement is a chain of hops starting at Start, e.g. a -- b -- c.
type Statement struct {
	Start *Vertex `@@`
	Hops  []*Hop  `@@*`
}

// Hop is one edge of a chain, ending at Dst.
type Hop struct {
	Op     string  `@Edge`
	Dst    *Vertex `@@`
	Weight *Weight `@@?`
}

// Vertex is a label.
type Vertex struct {
	Label string `@( Ident | Number | String )`
}

// Weight is a bracketed edge weight.
type Weight struct {
	Value float64 `"[" @Number "]"`
}

const (
	opUndirected = "--"
	opDirected   = "->"
)

var graphLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Edge", Pattern: `--|->`},
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_.:]*`},
	{Name: "Punct", Pattern: `[\[\];,]`},
	{Name: "whitespace", Pattern: `[ \t\r\n]+`},
})

var parseGraphExpr = participle.MustBuild[GraphExpr](
	participle.Lexer(graphLexer),
	participle.Unquote("String"),
)
