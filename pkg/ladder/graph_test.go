package ladder

import (
	"slices"
	"testing"

	"github.com/matzehuels/ladder/pkg/dict"
	"github.com/matzehuels/ladder/pkg/errors"
)

var classicWords = []string{"hot", "dot", "dog", "lot", "log", "cog"}

func levelWords(g *Graph) [][]string {
	out := make([][]string, len(g.Levels))
	for i, level := range g.Levels {
		for _, id := range level {
			out[i] = append(out[i], g.Nodes[id].Word)
		}
	}
	return out
}

func TestSearchClassic(t *testing.T) {
	g, err := Search("hit", "cog", dict.New(classicWords), Options{})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if !g.Found {
		t.Fatal("Found = false, want true")
	}
	if g.FinalStep != 5 {
		t.Errorf("FinalStep = %d, want 5", g.FinalStep)
	}

	want := [][]string{{"hit"}, {"hot"}, {"dot", "lot"}, {"dog", "log"}, {"cog"}}
	got := levelWords(g)
	if len(got) != len(want) {
		t.Fatalf("levels = %v, want %v", got, want)
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("level %d = %v, want %v", i, got[i], want[i])
		}
	}

	goals := g.Goals()
	if len(goals) != 1 {
		t.Fatalf("Goals() = %v, want one goal", goals)
	}
	var parents []string
	for _, p := range g.Nodes[goals[0]].Parents {
		parents = append(parents, g.Nodes[p].Word)
	}
	if !slices.Equal(parents, []string{"dog", "log"}) {
		t.Errorf("cog parents = %v, want [dog log]", parents)
	}

	if g.NodeCount() != 7 {
		t.Errorf("NodeCount() = %d, want 7", g.NodeCount())
	}
	if g.EdgeCount() != 7 {
		t.Errorf("EdgeCount() = %d, want 7", g.EdgeCount())
	}
	if g.CountPaths() != 2 {
		t.Errorf("CountPaths() = %d, want 2", g.CountPaths())
	}
}

func TestSearchRootNode(t *testing.T) {
	g, err := Search("hit", "cog", dict.New(classicWords), Options{})
	if err != nil {
		t.Fatal(err)
	}
	root := g.Nodes[g.Levels[0][0]]
	if !root.IsRoot() || root.Word != "hit" || root.Step != 1 {
		t.Errorf("root = %+v, want hit at step 1 with NoParent", root)
	}
	for _, n := range g.Nodes[1:] {
		if n.IsRoot() {
			t.Errorf("node %q should not be a root", n.Word)
		}
	}
}

func TestSearchParentsOneLevelUp(t *testing.T) {
	words := []string{"hot", "dot", "dog", "lot", "log", "cog", "hog", "cot", "cat", "hat", "bat", "bag"}
	g, err := Search("hit", "bag", dict.New(words), Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, level := range g.Levels {
		for _, id := range level {
			n := g.Nodes[id]
			if n.IsRoot() {
				continue
			}
			for _, p := range n.Parents {
				if g.Nodes[p].Step != n.Step-1 {
					t.Errorf("%s@%d has parent %s@%d", n.Word, n.Step, g.Nodes[p].Word, g.Nodes[p].Step)
				}
			}
		}
	}
}

func TestSearchNotFound(t *testing.T) {
	g, err := Search("hit", "cog", dict.New([]string{"hot", "dot", "dog", "lot", "log"}), Options{})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if g.Found {
		t.Error("Found = true, want false")
	}
	if g.Goals() != nil {
		t.Errorf("Goals() = %v, want nil", g.Goals())
	}
	if g.CountPaths() != 0 {
		t.Errorf("CountPaths() = %d, want 0", g.CountPaths())
	}
	for i, level := range g.Levels {
		if len(level) == 0 {
			t.Errorf("level %d is empty; trailing empty levels should be trimmed", i)
		}
	}
}

func TestSearchSameWord(t *testing.T) {
	g, err := Search("same", "same", dict.New(nil), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !g.Found || g.FinalStep != 1 {
		t.Errorf("Found = %v, FinalStep = %d; want true, 1", g.Found, g.FinalStep)
	}
}

func TestSearchBeginInDictionary(t *testing.T) {
	// The begin word must never reappear deeper in the graph.
	g, err := Search("hot", "dog", dict.New([]string{"hot", "dot", "dog"}), Options{})
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, level := range g.Levels {
		for _, id := range level {
			if g.Nodes[id].Word == "hot" {
				count++
			}
		}
	}
	if count != 1 {
		t.Errorf("hot appears %d times, want 1", count)
	}
	if g.FinalStep != 3 {
		t.Errorf("FinalStep = %d, want 3", g.FinalStep)
	}
}

func TestSearchInvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		begin, end string
		opts       Options
		code       errors.Code
	}{
		{"length mismatch", "hit", "cogs", Options{}, errors.ErrCodeLengthMismatch},
		{"uppercase", "Hit", "cog", Options{}, errors.ErrCodeInvalidWord},
		{"empty", "", "", Options{}, errors.ErrCodeInvalidInput},
		{"negative max steps", "hit", "cog", Options{MaxSteps: -1}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Search(tt.begin, tt.end, dict.New(classicWords), tt.opts)
			if g != nil {
				t.Error("Search() returned a graph for invalid input")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Search() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestSearchMaxSteps(t *testing.T) {
	d := dict.New(classicWords)

	if _, err := Search("hit", "cog", d, Options{MaxSteps: 5}); err != nil {
		t.Errorf("MaxSteps=5: error %v, want nil", err)
	}

	g, err := Search("hit", "cog", d, Options{MaxSteps: 4})
	if !errors.Is(err, errors.ErrCodeResourceExhausted) {
		t.Fatalf("MaxSteps=4: error %v, want RESOURCE_EXHAUSTED", err)
	}
	if g == nil || g.Found {
		t.Error("truncated search should return the partial, unfound graph")
	}
}

func TestSearchMaxStepsGoalAtLimit(t *testing.T) {
	// The goal sits behind a sibling at the limit depth; it must still be found.
	d := dict.New([]string{"aab", "aba"})
	g, err := Search("aaa", "aab", d, Options{MaxSteps: 2})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if !g.Found || g.FinalStep != 2 {
		t.Errorf("Found = %v, FinalStep = %d; want true, 2", g.Found, g.FinalStep)
	}
}

func TestSearchIgnoresOtherLengths(t *testing.T) {
	d := dict.New([]string{"hot", "hots", "ho", "cog", "dot", "dog"})
	g, err := Search("hit", "cog", d, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !g.Found || g.FinalStep != 5 {
		t.Errorf("Found = %v, FinalStep = %d; want true, 5", g.Found, g.FinalStep)
	}
}

func TestOnShortestPath(t *testing.T) {
	// hog shortcuts the classic ladder; dot, lot, dog and log become dead ends.
	d := dict.New(append(slices.Clone(classicWords), "hog", "hat"))
	g, err := Search("hit", "cog", d, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if g.FinalStep != 4 {
		t.Fatalf("FinalStep = %d, want 4", g.FinalStep)
	}

	onWords := map[string]bool{}
	for id := range g.OnShortestPath() {
		onWords[g.Nodes[id].Word] = true
	}
	for _, w := range []string{"hit", "hot", "hog", "cog"} {
		if !onWords[w] {
			t.Errorf("%s should be on a shortest path", w)
		}
	}
	for _, w := range []string{"hat", "dot", "lot", "dog", "log"} {
		if onWords[w] {
			t.Errorf("%s should not be on a shortest path", w)
		}
	}
}
