package ladder

import (
	"errors"
	"slices"
	"testing"

	"github.com/matzehuels/ladder/pkg/dag"
	"github.com/matzehuels/ladder/pkg/dict"
	lerrors "github.com/matzehuels/ladder/pkg/errors"
)

func TestToDAG(t *testing.T) {
	d := dict.New(append(slices.Clone(classicWords), "hat"))
	g, err := Search("hit", "cog", d, Options{})
	if err != nil {
		t.Fatal(err)
	}

	full, err := g.ToDAG(false)
	if err != nil {
		t.Fatalf("ToDAG(false) = %v", err)
	}
	if err := full.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if full.NodeCount() != 8 {
		t.Errorf("NodeCount() = %d, want 8", full.NodeCount())
	}
	if full.RowCount() != 5 {
		t.Errorf("RowCount() = %d, want 5", full.RowCount())
	}
	if got := full.Parents("cog"); !slices.Equal(got, []string{"dog", "log"}) {
		t.Errorf("Parents(cog) = %v, want [dog log]", got)
	}

	hat, ok := full.Node("hat")
	if !ok {
		t.Fatal("hat missing from full export")
	}
	if hat.Flag(MetaShortest) {
		t.Error("hat should not be flagged as shortest")
	}
	if root, _ := full.Node("hit"); !root.Flag(MetaRoot) || root.Row != 0 {
		t.Errorf("hit = %+v, want root at row 0", root)
	}
	if goal, _ := full.Node("cog"); !goal.Flag(MetaGoal) || goal.Meta[MetaParents] != 2 {
		t.Errorf("cog meta = %v, want goal with 2 parents", goal.Meta)
	}
	if full.Meta()["length"] != 5 {
		t.Errorf("graph meta length = %v, want 5", full.Meta()["length"])
	}

	pruned, err := g.ToDAG(true)
	if err != nil {
		t.Fatalf("ToDAG(true) = %v", err)
	}
	if _, ok := pruned.Node("hat"); ok {
		t.Error("hat should be pruned")
	}
	if pruned.NodeCount() != 7 || pruned.EdgeCount() != 7 {
		t.Errorf("pruned = %d nodes, %d edges; want 7, 7", pruned.NodeCount(), pruned.EdgeCount())
	}
}

func TestToDAGNotFound(t *testing.T) {
	g, err := Search("hit", "cog", dict.New([]string{"hot", "dot"}), Options{})
	if err != nil {
		t.Fatal(err)
	}
	full, err := g.ToDAG(false)
	if err != nil {
		t.Fatal(err)
	}
	if full.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", full.NodeCount())
	}
	if full.Meta()["found"] != false {
		t.Errorf("found meta = %v, want false", full.Meta()["found"])
	}
	pruned, err := g.ToDAG(true)
	if err != nil {
		t.Fatal(err)
	}
	if pruned.NodeCount() != 0 {
		t.Error("pruned export of an unfound search should be empty")
	}
}

func TestToDAGRepeatedWord(t *testing.T) {
	// Search never places a word twice; a hand-built graph can.
	g := &Graph{
		Begin: "ab", End: "cd",
		Nodes: []Node{
			{Word: "ab", Step: 1, Parents: []int{NoParent}},
			{Word: "cb", Step: 2, Parents: []int{0}},
			{Word: "ad", Step: 2, Parents: []int{0}},
			{Word: "cd", Step: 3, Parents: []int{1}},
			{Word: "cd", Step: 3, Parents: []int{2}},
		},
		Levels:    [][]int{{0}, {1, 2}, {3, 4}},
		FinalStep: 3,
		Found:     true,
	}

	for _, shortestOnly := range []bool{false, true} {
		out, err := g.ToDAG(shortestOnly)
		if out != nil {
			t.Errorf("ToDAG(%v) returned a graph alongside the error", shortestOnly)
		}
		if !errors.Is(err, dag.ErrDuplicateNodeID) {
			t.Errorf("ToDAG(%v) error = %v, want ErrDuplicateNodeID", shortestOnly, err)
		}
		if lerrors.GetCode(err) != lerrors.ErrCodeInternal {
			t.Errorf("ToDAG(%v) code = %q, want %q", shortestOnly, lerrors.GetCode(err), lerrors.ErrCodeInternal)
		}
	}
}
