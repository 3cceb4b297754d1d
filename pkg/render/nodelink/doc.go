// Package nodelink renders ladder level graphs as node-link diagrams.
//
// # Overview
//
// Each row of the input [dag.DAG] is one BFS depth, so the diagram reads top
// to bottom from the begin word to the goal. Nodes on a shortest path are
// drawn in the accent color; dead ends explored by the search are greyed out.
//
// # Usage
//
// Convert a DAG to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The DOT source can also be saved and processed with external Graphviz
// tools. Nodes in the same row are pinned to the same rank.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is required.
package nodelink
