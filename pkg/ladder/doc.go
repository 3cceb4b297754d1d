// Package ladder finds every shortest word ladder between two words.
//
// A word ladder is a sequence of equal-length words in which consecutive words
// differ in exactly one position and every word after the first belongs to a
// dictionary. The package works in two phases:
//
//  1. [Search] runs a breadth-first search from the begin word and records a
//     level [Graph]: every reachable word is placed at the depth where it was
//     first discovered, together with every word one level up that produces
//     it. A word with several shortest predecessors keeps all of them.
//  2. [Enumerate] walks that graph backwards from the end word and
//     materializes every root-to-goal path.
//
// [Find] chains both phases and is what most callers want:
//
//	d := dict.New([]string{"hot", "dot", "dog", "lot", "log", "cog"})
//	res, err := ladder.Find("hit", "cog", d, ladder.Options{})
//	// res.Paths == [[hit hot dot dog cog] [hit hot lot log cog]]
//
// # Results
//
// An unreachable end word is not an error: the result has Found == false and
// no paths. Invalid input (empty words, characters outside a-z, mismatched
// lengths) is reported as an error from pkg/errors before any search work is
// done, so the two cases can never be confused.
//
// # Ordering
//
// Mutations are tried position by position, a through z, so parents are
// recorded in a fixed order. Paths are emitted with the choice of the goal's
// parent as the most significant digit and the choice nearest the root
// varying fastest. The order is stable across runs.
//
// # Limits
//
// [Options.MaxSteps] and [Options.MaxPaths] bound pathological dictionaries.
// Exceeding either yields an error with code RESOURCE_EXHAUSTED.
//
// # Concurrency
//
// Search and Enumerate are synchronous and CPU-bound. A [dict.Dictionary] may
// be shared by concurrent calls; every search builds its own index.
package ladder
