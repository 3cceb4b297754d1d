package dict

import "testing"

func TestIndexSkipsOtherLengths(t *testing.T) {
	d := New([]string{"hot", "hott", "ho", "dot"})
	idx := d.Index(3)

	if idx.Len() != 2 {
		t.Errorf("Len() = %d, want 2", idx.Len())
	}
	if idx.WordLength() != 3 {
		t.Errorf("WordLength() = %d, want 3", idx.WordLength())
	}
	if _, ok := idx.Lookup([]byte("hott"), 1); ok {
		t.Error("Lookup(hott) found a word of the wrong length")
	}
}

func TestIndexLookupSteps(t *testing.T) {
	idx := NewIndex([]string{"hot", "dot"})

	tests := []struct {
		name  string
		setup func()
		word  string
		step  int
		want  bool
	}{
		{"unvisited", func() {}, "hot", 2, true},
		{"absent", func() {}, "cog", 2, false},
		{"visited same step", func() { idx.MarkVisited([]byte("hot"), 2) }, "hot", 2, true},
		{"visited earlier step", func() { idx.MarkVisited([]byte("hot"), 2) }, "hot", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx.Reset()
			tt.setup()
			e, ok := idx.Lookup([]byte(tt.word), tt.step)
			if ok != tt.want {
				t.Fatalf("Lookup(%q, %d) ok = %v, want %v", tt.word, tt.step, ok, tt.want)
			}
			if ok && e.Word != tt.word {
				t.Errorf("Lookup(%q).Word = %q", tt.word, e.Word)
			}
		})
	}
}

func TestIndexMarkVisitedFirstWins(t *testing.T) {
	idx := NewIndex([]string{"hot"})

	if !idx.MarkVisited([]byte("hot"), 2) {
		t.Fatal("MarkVisited(hot) = false, want true")
	}
	idx.MarkVisited([]byte("hot"), 3)

	if step, _ := idx.Step("hot"); step != 2 {
		t.Errorf("Step(hot) = %d, want 2", step)
	}
	if idx.MarkVisited([]byte("cog"), 2) {
		t.Error("MarkVisited(cog) = true for an absent word")
	}
}

func TestIndexDuplicatesCollapse(t *testing.T) {
	idx := NewIndex([]string{"hot", "hot", "dot"})
	if idx.Len() != 2 {
		t.Errorf("Len() = %d, want 2", idx.Len())
	}
}

func TestIndexReset(t *testing.T) {
	idx := NewIndex([]string{"hot"})
	idx.MarkVisited([]byte("hot"), 4)
	idx.Reset()

	if step, ok := idx.Step("hot"); !ok || step != 0 {
		t.Errorf("Step(hot) after Reset = %d, %v; want 0, true", step, ok)
	}
}

func TestIndexLookupDoesNotAllocate(t *testing.T) {
	idx := NewIndex([]string{"hot", "dot", "dog"})
	buf := []byte("dot")

	allocs := testing.AllocsPerRun(100, func() {
		idx.Lookup(buf, 2)
	})
	if allocs != 0 {
		t.Errorf("Lookup allocated %.1f times per call, want 0", allocs)
	}
}

func TestNewIndexEmpty(t *testing.T) {
	idx := NewIndex(nil)
	if idx.Len() != 0 {
		t.Errorf("Len() = %d, want 0", idx.Len())
	}
	if _, ok := idx.Lookup([]byte(""), 1); ok {
		t.Error("Lookup on empty index succeeded")
	}
}
