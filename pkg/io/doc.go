// Package io reads and writes ladder results and level graphs.
//
// # Paths
//
// [WriteText] prints one ladder per line with words separated by spaces, the
// format printed by `ladder solve`:
//
//	hit hot dot dog cog
//	hit hot lot log cog
//
// [WriteResultJSON] encodes the full [ladder.Result] including statistics.
//
// # Level Graphs
//
// [WriteJSON] encodes a row-layered [dag.DAG] as a node-link document:
//
//	{
//	  "meta":  {"begin": "hit", "end": "cog", "found": true, "length": 5},
//	  "nodes": [{"id": "hit", "meta": {"root": true, "step": 1}}, ...],
//	  "edges": [{"from": "hit", "to": "hot"}, ...]
//	}
//
// Rows are omitted for row 0. [ReadJSON] decodes the same document, so a graph
// survives an export/import round trip. JSON numbers in metadata decode as
// float64.
package io
