// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/PerifanosPrometheus/graspologic/core"
	"github.com/PerifanosPrometheus/graspologic/embed"
	"github.com/PerifanosPrometheus/graspologic/graphexpr"
	"github.com/PerifanosPrometheus/graspologic/matrix"
)

// matrixFile is the YAML form of a similarity matrix: one row per vertex
// to embed, one column per reference vertex.
//
//	labels: [x, y]
//	rows:
//	  - [1, 0, 1, 0]
//	  - [0, 1, 0, 1]
type matrixFile struct {
	Labels []string    `yaml:"labels,omitempty"`
	Rows   [][]float64 `yaml:"rows"`
}

// embeddingDoc is one YAML document of embedding output.
type embeddingDoc struct {
	Source   string      `yaml:"source,omitempty"`
	Model    string      `yaml:"model,omitempty"`
	Labels   []string    `yaml:"labels,omitempty"`
	Rows     [][]float64 `yaml:"rows"`
	Warnings []string    `yaml:"warnings,omitempty"`
}

// readGraph parses a graph-expression file ("-" reads stdin).
func readGraph(path string, stdin io.Reader) (*core.Graph, error) {
	if path == "-" {
		if stdin == nil {
			return nil, errors.New("read graph: stdin is not available here")
		}
		g, err := graphexpr.ParseReader("stdin", stdin)
		return g, errors.Wrap(err, "read graph")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "read graph")
	}
	defer f.Close()

	g, err := graphexpr.ParseReader(path, f)
	return g, errors.Wrapf(err, "read graph %s", path)
}

// readMatrix loads a matrixFile and validates its shape.
func readMatrix(path string) (*matrixFile, *matrix.Dense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "read similarity")
	}
	var mf matrixFile
	if err = yaml.Unmarshal(data, &mf); err != nil {
		return nil, nil, errors.Wrapf(err, "read similarity %s", path)
	}
	if len(mf.Labels) > 0 && len(mf.Labels) != len(mf.Rows) {
		return nil, nil, errors.Errorf("read similarity %s: %d labels for %d rows", path, len(mf.Labels), len(mf.Rows))
	}
	x, err := matrix.NewDenseFrom(mf.Rows)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read similarity %s", path)
	}

	return &mf, x, nil
}

// writeDocs emits docs as a YAML stream.
func writeDocs(w io.Writer, docs ...any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, d := range docs {
		if err := enc.Encode(d); err != nil {
			return errors.Wrap(err, "write yaml")
		}
	}

	return errors.Wrap(enc.Close(), "write yaml")
}

func warningStrings(ws []embed.Warning) []string {
	if len(ws) == 0 {
		return nil
	}
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.String()
	}
	return out
}

// modelName derives a default model name from a graph file path.
func modelName(path string) string {
	if path == "-" {
		return "stdin"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
