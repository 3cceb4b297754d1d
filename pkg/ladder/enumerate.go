package ladder

import (
	"slices"

	"github.com/matzehuels/ladder/pkg/errors"
)

// Enumerate returns every shortest path recorded in g, begin word first.
// Each path has exactly g.FinalStep words. It returns nil when g.Found is
// false. When opts.MaxPaths is set and the graph holds more paths, no path is
// built and a RESOURCE_EXHAUSTED error is returned.
func Enumerate(g *Graph, opts Options) ([][]string, error) {
	if g == nil || !g.Found {
		return nil, nil
	}
	if opts.MaxPaths > 0 {
		if n := g.CountPaths(); n > opts.MaxPaths {
			return nil, errors.Exhausted("paths", opts.MaxPaths)
		}
	}

	var paths [][]string
	buf := make([]string, g.FinalStep)
	for _, goal := range g.Goals() {
		g.walk(goal, buf, func(p []string) bool {
			paths = append(paths, slices.Clone(p))
			return true
		})
	}
	return paths, nil
}

// walk fills buf from the node's depth toward the root and calls emit once per
// root reached. Parents are followed in discovery order. It returns false as
// soon as emit does.
func (g *Graph) walk(id int, buf []string, emit func([]string) bool) bool {
	n := &g.Nodes[id]
	buf[n.Step-1] = n.Word
	for _, p := range n.Parents {
		if p == NoParent {
			if !emit(buf) {
				return false
			}
			continue
		}
		if !g.walk(p, buf, emit) {
			return false
		}
	}
	return true
}

// Each calls fn for every shortest path in g without collecting them. The
// slice passed to fn is reused between calls. Iteration stops early when fn
// returns false.
func (g *Graph) Each(fn func(path []string) bool) {
	if g == nil || !g.Found {
		return
	}
	buf := make([]string, g.FinalStep)
	for _, goal := range g.Goals() {
		if !g.walk(goal, buf, fn) {
			return
		}
	}
}
