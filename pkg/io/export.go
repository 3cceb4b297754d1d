package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/ladder/pkg/dag"
	"github.com/matzehuels/ladder/pkg/ladder"
)

type graph struct {
	Meta  dag.Metadata `json:"meta,omitempty"`
	Nodes []node       `json:"nodes"`
	Edges []edge       `json:"edges"`
}

type node struct {
	ID   string       `json:"id"`
	Row  *int         `json:"row,omitempty"`
	Meta dag.Metadata `json:"meta,omitempty"`
}

type edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WriteJSON encodes g as an indented node-link document.
func WriteJSON(g *dag.DAG, w io.Writer) error {
	out := graph{
		Meta:  g.Meta(),
		Nodes: make([]node, 0, g.NodeCount()),
		Edges: make([]edge, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		nd := node{ID: n.ID, Meta: n.Meta}
		if n.Row != 0 {
			row := n.Row
			nd.Row = &row
		}
		out.Nodes = append(out.Nodes, nd)
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, edge{From: e.From, To: e.To})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
func ExportJSON(g *dag.DAG, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// WriteText writes each path on its own line, words separated by spaces.
// Nothing is written for an empty result.
func WriteText(paths [][]string, w io.Writer) error {
	for _, p := range paths {
		if _, err := fmt.Fprintln(w, strings.Join(p, " ")); err != nil {
			return err
		}
	}
	return nil
}

// WriteResultJSON encodes res as indented JSON.
func WriteResultJSON(res *ladder.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
