package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/ladder/pkg/dag"
)

func sample(t *testing.T) *dag.DAG {
	t.Helper()
	g := dag.New(nil)
	nodes := []dag.Node{
		{ID: "hit", Row: 0, Meta: dag.Metadata{"root": true, "shortest": true}},
		{ID: "hot", Row: 1, Meta: dag.Metadata{"shortest": true}},
		{ID: "dot", Row: 2, Meta: dag.Metadata{"shortest": true}},
		{ID: "lot", Row: 2, Meta: dag.Metadata{"shortest": false}},
		{ID: "dog", Row: 3, Meta: dag.Metadata{"goal": true, "shortest": true}},
	}
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range [][2]string{{"hit", "hot"}, {"hot", "dot"}, {"hot", "lot"}, {"dot", "dog"}} {
		if err := g.AddEdge(dag.Edge{From: e[0], To: e[1]}); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sample(t), Options{})

	wants := []string{
		"digraph G {",
		`"hit" [label="hit", peripheries=2, penwidth=2];`,
		`"dog" [label="dog", fillcolor="#cba6f7", penwidth=2];`,
		`{ rank=same; "dot"; "lot"; }`,
		`"hit" -> "hot";`,
		`"hot" -> "lot" [color=grey];`,
	}
	for _, want := range wants {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q\n%s", want, dot)
		}
	}
	if !strings.Contains(dot, `"lot" [label="lot", style="rounded,filled,dashed"`) {
		t.Errorf("off-path node not dashed:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(sample(t), Options{Detailed: true})
	if !strings.Contains(dot, `label="dot\nrow: 2\nshortest: true"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "rewrites root",
			in:   `<svg width="10pt" viewBox="0.00 0.00 120.40 80.00"><g/></svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 120.40 80.00" width="120" height="80"><g/></svg>`,
		},
		{
			name: "no viewBox",
			in:   `<svg><g/></svg>`,
			want: `<svg><g/></svg>`,
		},
		{
			name: "zero size",
			in:   `<svg viewBox="0 0 0 0"></svg>`,
			want: `<svg viewBox="0 0 0 0"></svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(normalizeViewBox([]byte(tt.in))); got != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(sample(t), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
	if !strings.Contains(string(svg), "hot") {
		t.Error("RenderSVG() output missing node label")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), `not valid DOT {{{`); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
