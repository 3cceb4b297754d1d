package dict

// DictWord is an index entry. Step is zero while the word is unvisited and
// otherwise records the BFS step at which the word was first reached.
type DictWord struct {
	Word string
	Step int
}

// Index maps words of one fixed length to their visited markers.
// An Index is owned by a single search and is not safe for concurrent use.
type Index struct {
	length  int
	entries []DictWord
	slots   map[string]int
}

// NewIndex builds an index over every word in words whose length equals the
// length of the first word. It mirrors [Dictionary.Index] for callers that hold
// a plain slice.
func NewIndex(words []string) *Index {
	if len(words) == 0 {
		return newIndex(nil, 0)
	}
	return newIndex(words, len(words[0]))
}

func newIndex(words []string, length int) *Index {
	x := &Index{
		length:  length,
		entries: make([]DictWord, 0, len(words)),
		slots:   make(map[string]int, len(words)),
	}
	for _, w := range words {
		if len(w) != length {
			continue
		}
		if _, dup := x.slots[w]; dup {
			continue
		}
		x.slots[w] = len(x.entries)
		x.entries = append(x.entries, DictWord{Word: w})
	}
	return x
}

// WordLength returns the length of the indexed words.
func (x *Index) WordLength() int { return x.length }

// Len returns the number of indexed words.
func (x *Index) Len() int { return len(x.entries) }

// Lookup returns the entry for word if it is unvisited or was visited at
// exactly step. Words finalized at an earlier step and words not in the index
// yield false. Lookup does not allocate.
func (x *Index) Lookup(word []byte, step int) (*DictWord, bool) {
	i, ok := x.slots[string(word)]
	if !ok {
		return nil, false
	}
	e := &x.entries[i]
	if e.Step != 0 && e.Step != step {
		return nil, false
	}
	return e, true
}

// MarkVisited records step as the first visit of word. It reports whether the
// word is indexed. Marking an already visited word is a no-op.
func (x *Index) MarkVisited(word []byte, step int) bool {
	i, ok := x.slots[string(word)]
	if !ok {
		return false
	}
	if x.entries[i].Step == 0 {
		x.entries[i].Step = step
	}
	return true
}

// Step returns the visited marker for word and whether the word is indexed.
func (x *Index) Step(word string) (int, bool) {
	i, ok := x.slots[word]
	if !ok {
		return 0, false
	}
	return x.entries[i].Step, true
}

// Reset clears every visited marker.
func (x *Index) Reset() {
	for i := range x.entries {
		x.entries[i].Step = 0
	}
}
