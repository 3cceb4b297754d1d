// Package pkg provides the libraries behind ladder, a word ladder solver.
//
// # Overview
//
// A word ladder transforms one word into another by changing a single letter
// per step, where every intermediate word must appear in a dictionary. Ladder
// finds all shortest ladders: a breadth-first search records every parent of
// every word at its first depth, and a depth-first walk over that level graph
// emits each path exactly once.
//
// # Architecture
//
// The data flow through ladder:
//
//	word list
//	    ↓
//	[dict] package (deduplicated dictionary + per-search index)
//	    ↓
//	[ladder] package (level graph via BFS, paths via DFS)
//	    ↓
//	[pipeline] package (validation, caching, batching)
//	    ↓
//	text / JSON / DOT / SVG output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/ladder/pkg/dict"
//	    "github.com/matzehuels/ladder/pkg/ladder"
//	)
//
//	d := dict.New([]string{"hot", "dot", "dog", "lot", "log", "cog"})
//	res, err := ladder.Find("hit", "cog", d, ladder.Options{})
//	// res.Paths: [[hit hot dot dog cog] [hit hot lot log cog]]
//
// # Main Packages
//
// ## Core Domain Logic
//
// [dict] - Immutable dictionaries and the per-search index with visited
// markers keyed by BFS step.
//
// [ladder] - The level-graph builder ([ladder.Search]), the path enumerator
// ([ladder.Enumerate]) and [ladder.Find], which runs both.
//
// [errors] - Structured error codes shared by every entry point.
//
// ## Visualization
//
// [dag] - Row-based directed acyclic graph the level graph is exported to.
//
// [render/nodelink] - Graphviz DOT and SVG diagrams of the level graph.
//
// [io] - JSON node-link import/export and result encoders.
//
// ## Infrastructure
//
// [pipeline] - The solve/graph/batch pipeline used by the CLI and the HTTP
// API. Ensures consistent validation and caching across entry points.
//
// [cache] - Result caches: file (CLI default), Redis, MongoDB and a null
// cache, with retry on transient network errors.
//
// [config] - TOML configuration file and XDG paths.
//
// [server] - chi-based HTTP API.
//
// [observability] - Solver, cache and HTTP hooks with a Prometheus
// implementation.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./...                        # All tests
//	go test ./pkg/ladder/...             # Specific package
//	go test -run Example ./pkg/...       # Examples only
//	go test -tags integration ./pkg/...  # Include Redis/MongoDB tests
//
// [dict]: https://pkg.go.dev/github.com/matzehuels/ladder/pkg/dict
// [ladder]: https://pkg.go.dev/github.com/matzehuels/ladder/pkg/ladder
// [errors]: https://pkg.go.dev/github.com/matzehuels/ladder/pkg/errors
// [dag]: https://pkg.go.dev/github.com/matzehuels/ladder/pkg/dag
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/ladder/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/matzehuels/ladder/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/ladder/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/ladder/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/ladder/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/ladder/pkg/server
// [observability]: https://pkg.go.dev/github.com/matzehuels/ladder/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/ladder/pkg/buildinfo
package pkg
