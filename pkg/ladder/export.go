package ladder

import (
	"github.com/matzehuels/ladder/pkg/dag"
	"github.com/matzehuels/ladder/pkg/errors"
)

// Metadata keys set on exported nodes.
const (
	MetaStep     = "step"
	MetaRoot     = "root"
	MetaGoal     = "goal"
	MetaShortest = "shortest"
	MetaParents  = "parents"
)

// ToDAG exports the level graph as a row-layered DAG with one row per depth
// and edges from parent to child. With shortestOnly set, nodes that do not lie
// on any shortest path are omitted; otherwise they are kept and tagged with
// MetaShortest = false. A graph whose words repeat across levels cannot be
// exported and yields an INTERNAL_ERROR wrapping the dag error.
func (g *Graph) ToDAG(shortestOnly bool) (*dag.DAG, error) {
	out := dag.New(dag.Metadata{
		"begin": g.Begin,
		"end":   g.End,
		"found": g.Found,
	})
	if g.Found {
		out.Meta()["length"] = g.FinalStep
	}

	on := g.OnShortestPath()
	keep := func(id int) bool { return !shortestOnly || on[id] }

	for _, level := range g.Levels {
		for _, id := range level {
			if !keep(id) {
				continue
			}
			n := g.Nodes[id]
			meta := dag.Metadata{
				MetaStep:     n.Step,
				MetaShortest: on[id],
			}
			if n.IsRoot() {
				meta[MetaRoot] = true
			} else {
				meta[MetaParents] = len(n.Parents)
			}
			if g.Found && n.Word == g.End && n.Step == g.FinalStep {
				meta[MetaGoal] = true
			}
			if err := out.AddNode(dag.Node{ID: n.Word, Row: n.Step - 1, Meta: meta}); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "export node %q", n.Word)
			}
		}
	}

	for _, level := range g.Levels {
		for _, id := range level {
			n := g.Nodes[id]
			if n.IsRoot() || !keep(id) {
				continue
			}
			for _, p := range n.Parents {
				if keep(p) {
					e := dag.Edge{From: g.Nodes[p].Word, To: n.Word}
					if err := out.AddEdge(e); err != nil {
						return nil, errors.Wrap(errors.ErrCodeInternal, err, "export edge %s -> %s", e.From, e.To)
					}
				}
			}
		}
	}
	return out, nil
}
