package ladder

import (
	"math"

	"github.com/matzehuels/ladder/pkg/dict"
	"github.com/matzehuels/ladder/pkg/errors"
)

// NoParent is the single parent of the root node.
const NoParent = -1

// Node is a word placed at the depth where the search first reached it.
// Parents holds arena indices of every node one step up that mutates into
// Word, in discovery order. The root's Parents is []int{NoParent}.
type Node struct {
	Word    string
	Step    int
	Parents []int
}

// IsRoot reports whether the node is the begin word.
func (n Node) IsRoot() bool {
	return len(n.Parents) == 1 && n.Parents[0] == NoParent
}

// Graph is the level graph produced by [Search].
//
// Nodes is an arena addressed by index. Levels[d] lists the nodes at step d+1
// in creation order; Levels[0] holds only the root. When Found is true, Levels
// is cut at FinalStep, but Nodes may still contain deeper nodes that were
// discovered before the goal was dequeued.
type Graph struct {
	Begin     string
	End       string
	Nodes     []Node
	Levels    [][]int
	FinalStep int
	Found     bool
}

// Search builds the level graph for begin → end over the words in d.
// It validates both words first; an unreachable end word is reported through
// Graph.Found, not as an error.
func Search(begin, end string, d *dict.Dictionary, opts Options) (*Graph, error) {
	if err := errors.ValidatePair(begin, end); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return search(begin, end, d.Index(len(begin)), opts)
}

func search(begin, end string, idx *dict.Index, opts Options) (*Graph, error) {
	g := &Graph{Begin: begin, End: end}

	root := g.addNode(begin, 1, NoParent)
	g.Levels = append(g.Levels, []int{root})
	idx.MarkVisited([]byte(begin), 1)

	queue := []int{root}
	word := make([]byte, len(begin))

	var (
		members   map[string]int // word -> node, for the layer being filled
		layerStep int
		truncated bool
	)

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		step := g.Nodes[cur].Step

		if g.Nodes[cur].Word == end {
			g.Found = true
			g.FinalStep = step
			g.Levels = g.Levels[:step]
			return g, nil
		}
		if opts.MaxSteps > 0 && step >= opts.MaxSteps {
			// Nodes still queued at this step may be the goal.
			truncated = true
			continue
		}

		target := step + 1
		if target != layerStep {
			layerStep = target
			members = make(map[string]int)
			g.Levels = append(g.Levels, nil)
		}

		copy(word, g.Nodes[cur].Word)
		for i := range word {
			orig := word[i]
			for c := byte('a'); c <= 'z'; c++ {
				if c == orig {
					continue
				}
				word[i] = c

				e, ok := idx.Lookup(word, target)
				if !ok {
					continue
				}
				if id, seen := members[e.Word]; seen {
					g.Nodes[id].Parents = append(g.Nodes[id].Parents, cur)
					continue
				}

				idx.MarkVisited(word, target)
				id := g.addNode(e.Word, target, cur)
				members[e.Word] = id
				g.Levels[target-1] = append(g.Levels[target-1], id)
				queue = append(queue, id)
			}
			word[i] = orig
		}
	}

	for len(g.Levels) > 0 && len(g.Levels[len(g.Levels)-1]) == 0 {
		g.Levels = g.Levels[:len(g.Levels)-1]
	}
	if truncated {
		return g, errors.Exhausted("steps", opts.MaxSteps)
	}
	return g, nil
}

func (g *Graph) addNode(word string, step, parent int) int {
	g.Nodes = append(g.Nodes, Node{Word: word, Step: step, Parents: []int{parent}})
	return len(g.Nodes) - 1
}

// Goals returns the nodes at the final level whose word is End.
// It returns nil when the end word was not reached.
func (g *Graph) Goals() []int {
	if !g.Found {
		return nil
	}
	var goals []int
	for _, id := range g.Levels[g.FinalStep-1] {
		if g.Nodes[id].Word == g.End {
			goals = append(goals, id)
		}
	}
	return goals
}

// NodeCount returns the number of nodes across all levels.
func (g *Graph) NodeCount() int {
	n := 0
	for _, level := range g.Levels {
		n += len(level)
	}
	return n
}

// EdgeCount returns the number of parent edges across all levels.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, level := range g.Levels {
		for _, id := range level {
			if !g.Nodes[id].IsRoot() {
				n += len(g.Nodes[id].Parents)
			}
		}
	}
	return n
}

// CountPaths returns the number of shortest paths without materializing
// them. The count saturates at math.MaxInt.
func (g *Graph) CountPaths() int {
	if !g.Found {
		return 0
	}
	counts := make(map[int]int, g.NodeCount())
	for _, level := range g.Levels {
		for _, id := range level {
			n := g.Nodes[id]
			if n.IsRoot() {
				counts[id] = 1
				continue
			}
			total := 0
			for _, p := range n.Parents {
				total = addSat(total, counts[p])
			}
			counts[id] = total
		}
	}
	total := 0
	for _, id := range g.Goals() {
		total = addSat(total, counts[id])
	}
	return total
}

func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// OnShortestPath returns the set of nodes that lie on at least one shortest
// path, that is the goals and all of their ancestors.
func (g *Graph) OnShortestPath() map[int]bool {
	on := make(map[int]bool)
	stack := g.Goals()
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if on[id] {
			continue
		}
		on[id] = true
		for _, p := range g.Nodes[id].Parents {
			if p != NoParent {
				stack = append(stack, p)
			}
		}
	}
	return on
}
