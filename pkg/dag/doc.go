// Package dag provides a row-layered directed acyclic graph used to export
// ladder level graphs.
//
// # Overview
//
// A breadth-first ladder search places every word at the depth where it was
// first reached, and every edge joins a word to a word exactly one depth
// below. This package stores that shape directly: each [Node] carries a Row,
// and [DAG.Validate] checks that every edge connects consecutive rows and that
// no cycle exists.
//
// # Basic Usage
//
//	g := dag.New(nil)
//	_ = g.AddNode(dag.Node{ID: "hit", Row: 0})
//	_ = g.AddNode(dag.Node{ID: "hot", Row: 1})
//	_ = g.AddEdge(dag.Edge{From: "hit", To: "hot"})
//
// Query the structure with [DAG.Children], [DAG.Parents] and
// [DAG.NodesInRow]. Node and edge iteration follows insertion order, so
// renderers built on top produce stable output.
//
// # Metadata
//
// Nodes, edges and the graph carry [Metadata] maps, used by the ladder
// exporter to tag the begin and end words. Metadata maps are never nil after
// insertion.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use.
package dag
