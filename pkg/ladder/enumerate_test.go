package ladder

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/matzehuels/ladder/pkg/dict"
	"github.com/matzehuels/ladder/pkg/errors"
)

func TestEnumerateClassic(t *testing.T) {
	g, err := Search("hit", "cog", dict.New(classicWords), Options{})
	if err != nil {
		t.Fatal(err)
	}
	paths, err := Enumerate(g, Options{})
	if err != nil {
		t.Fatalf("Enumerate() error: %v", err)
	}

	want := [][]string{
		{"hit", "hot", "dot", "dog", "cog"},
		{"hit", "hot", "lot", "log", "cog"},
	}
	if !slices.EqualFunc(paths, want, slices.Equal[[]string]) {
		t.Errorf("Enumerate() = %v, want %v", paths, want)
	}
}

func TestEnumerateNotFound(t *testing.T) {
	g, err := Search("hit", "cog", dict.New([]string{"hot"}), Options{})
	if err != nil {
		t.Fatal(err)
	}
	paths, err := Enumerate(g, Options{})
	if err != nil || paths != nil {
		t.Errorf("Enumerate() = %v, %v; want nil, nil", paths, err)
	}
	if paths, err := Enumerate(nil, Options{}); err != nil || paths != nil {
		t.Errorf("Enumerate(nil) = %v, %v; want nil, nil", paths, err)
	}
}

func TestEnumerateMaxPaths(t *testing.T) {
	g, err := Search("hit", "cog", dict.New(classicWords), Options{})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Enumerate(g, Options{MaxPaths: 2}); err != nil {
		t.Errorf("MaxPaths=2: error %v, want nil", err)
	}
	paths, err := Enumerate(g, Options{MaxPaths: 1})
	if !errors.Is(err, errors.ErrCodeResourceExhausted) {
		t.Errorf("MaxPaths=1: error %v, want RESOURCE_EXHAUSTED", err)
	}
	if paths != nil {
		t.Errorf("MaxPaths=1: paths = %v, want nil", paths)
	}
}

func TestEnumerateMultipleGoals(t *testing.T) {
	// Duplicate goal nodes cannot come out of Search; build one by hand.
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

	paths, err := Enumerate(g, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"ab", "cb", "cd"}, {"ab", "ad", "cd"}}
	if !slices.EqualFunc(paths, want, slices.Equal[[]string]) {
		t.Errorf("Enumerate() = %v, want %v", paths, want)
	}
	if g.CountPaths() != 2 {
		t.Errorf("CountPaths() = %d, want 2", g.CountPaths())
	}
}

func TestEach(t *testing.T) {
	g, err := Search("hit", "cog", dict.New(classicWords), Options{})
	if err != nil {
		t.Fatal(err)
	}

	var all [][]string
	g.Each(func(p []string) bool {
		all = append(all, slices.Clone(p))
		return true
	})
	if len(all) != 2 {
		t.Errorf("Each visited %d paths, want 2", len(all))
	}

	calls := 0
	g.Each(func([]string) bool {
		calls++
		return false
	})
	if calls != 1 {
		t.Errorf("Each after stop called fn %d times, want 1", calls)
	}
}

func TestEachStopsTraversal(t *testing.T) {
	// The goal's second parent index is out of range: following it after
	// fn returned false would panic.
	g := &Graph{
		Begin: "ab", End: "cb",
		Nodes: []Node{
			{Word: "ab", Step: 1, Parents: []int{NoParent}},
			{Word: "cb", Step: 2, Parents: []int{0, 99}},
		},
		Levels:    [][]int{{0}, {1}},
		FinalStep: 2,
		Found:     true,
	}

	var got []string
	g.Each(func(p []string) bool {
		got = slices.Clone(p)
		return false
	})
	if !slices.Equal(got, []string{"ab", "cb"}) {
		t.Errorf("Each visited %v, want [ab cb]", got)
	}
}

// odometerPaths enumerates paths with an index vector over parent choices,
// varying the choice nearest the root fastest.
func odometerPaths(g *Graph) [][]string {
	size := g.FinalStep
	var out [][]string
	indexes := make([]int, size)
	nodes := make([]*Node, size)
	for _, goal := range g.Goals() {
		clear(indexes)
		for {
			path := make([]string, size)
			id := goal
			for j := size - 1; j >= 0; j-- {
				n := &g.Nodes[id]
				path[j] = n.Word
				nodes[j] = n
				id = n.Parents[indexes[j]]
			}
			out = append(out, path)

			moved := false
			for j := 0; j < size; j++ {
				if indexes[j] < len(nodes[j].Parents)-1 {
					indexes[j]++
					clear(indexes[:j])
					moved = true
					break
				}
			}
			if !moved {
				break
			}
		}
	}
	return out
}

func TestEnumerateMatchesOdometerOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	checked := 0
	for i := 0; i < 200; i++ {
		words := randomWords(rng, 3, "abcd", 40)
		begin, end := words[0], words[len(words)-1]
		g, err := Search(begin, end, dict.New(words[1:]), Options{})
		if err != nil {
			t.Fatal(err)
		}
		if !g.Found {
			continue
		}
		paths, err := Enumerate(g, Options{})
		if err != nil {
			t.Fatal(err)
		}
		want := odometerPaths(g)
		if !slices.EqualFunc(paths, want, slices.Equal[[]string]) {
			t.Fatalf("%s→%s: Enumerate() = %v, odometer = %v", begin, end, paths, want)
		}
		checked++
	}
	if checked == 0 {
		t.Fatal("no reachable pair generated")
	}
}

func BenchmarkEnumerate(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	words := randomWords(rng, 4, "abcdef", 600)
	d := dict.New(words)
	for i := 0; i < b.N; i++ {
		g, _ := Search(words[0], words[1], d, Options{})
		_, _ = Enumerate(g, Options{})
	}
}

func randomWords(rng *rand.Rand, length int, alphabet string, n int) []string {
	words := make([]string, n)
	buf := make([]byte, length)
	for i := range words {
		for j := range buf {
			buf[j] = alphabet[rng.Intn(len(alphabet))]
		}
		words[i] = string(buf)
	}
	return words
}

func ExampleEnumerate() {
	d := dict.New([]string{"hot", "dot", "dog", "lot", "log", "cog"})
	g, _ := Search("hit", "cog", d, Options{})
	paths, _ := Enumerate(g, Options{})
	for _, p := range paths {
		fmt.Println(p)
	}
	// Output:
	// [hit hot dot dog cog]
	// [hit hot lot log cog]
}
