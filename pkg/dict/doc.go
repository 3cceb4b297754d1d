// Package dict holds the word lists a ladder search runs against.
//
// A [Dictionary] is an immutable, deduplicated list of words. It is safe to
// share between goroutines and is typically loaded once from a word-list file
// with [LoadFile] or built in memory with [New].
//
// An [Index] is the per-search view of a dictionary: a hash lookup from word to
// the BFS step at which the word was first reached. Because those markers are
// mutated during a search, every search owns its own Index:
//
//	d := dict.New([]string{"hot", "dot", "dog", "lot", "log", "cog"})
//	idx := d.Index(3)
//	if e, ok := idx.Lookup([]byte("hot"), 2); ok {
//	    idx.MarkVisited([]byte(e.Word), 2)
//	}
//
// Words whose length differs from the indexed length are skipped rather than
// rejected; a single-character mutation can never reach them.
package dict
