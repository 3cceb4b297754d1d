package ladder

import (
	"time"

	"github.com/matzehuels/ladder/pkg/dict"
	"github.com/matzehuels/ladder/pkg/errors"
)

// Options bounds a search. The zero value imposes no limits.
type Options struct {
	// MaxSteps caps the number of words in a ladder. A search that could only
	// continue past this depth stops with RESOURCE_EXHAUSTED.
	MaxSteps int `json:"max_steps,omitempty" toml:"max_steps"`

	// MaxPaths caps the number of ladders materialized.
	MaxPaths int `json:"max_paths,omitempty" toml:"max_paths"`
}

// Validate rejects negative limits.
func (o Options) Validate() error {
	if err := errors.ValidateLimit("max steps", o.MaxSteps); err != nil {
		return err
	}
	return errors.ValidateLimit("max paths", o.MaxPaths)
}

// Result holds every shortest ladder between Begin and End.
type Result struct {
	Begin  string     `json:"begin"`
	End    string     `json:"end"`
	Found  bool       `json:"found"`
	Length int        `json:"length"` // words per ladder, 0 when not found
	Paths  [][]string `json:"paths"`
	Stats  Stats      `json:"stats"`
}

// Stats describes the work done for a [Result].
type Stats struct {
	Nodes         int           `json:"nodes"`
	Edges         int           `json:"edges"`
	Levels        int           `json:"levels"`
	SearchTime    time.Duration `json:"search_time"`
	EnumerateTime time.Duration `json:"enumerate_time"`
}

// Find validates the input, builds the level graph and enumerates every
// shortest ladder from begin to end. A nil error with Found == false means no
// ladder exists.
func Find(begin, end string, d *dict.Dictionary, opts Options) (*Result, error) {
	start := time.Now()
	g, err := Search(begin, end, d, opts)
	if err != nil {
		return nil, err
	}
	searched := time.Since(start)

	start = time.Now()
	paths, err := Enumerate(g, opts)
	if err != nil {
		return nil, err
	}

	res := NewResult(g, paths)
	res.Stats.SearchTime = searched
	res.Stats.EnumerateTime = time.Since(start)
	return res, nil
}

// NewResult packages an enumerated graph. Paths is never nil so that an empty
// result encodes as [] rather than null.
func NewResult(g *Graph, paths [][]string) *Result {
	if paths == nil {
		paths = [][]string{}
	}
	res := &Result{
		Begin: g.Begin,
		End:   g.End,
		Found: g.Found,
		Paths: paths,
		Stats: Stats{
			Nodes:  g.NodeCount(),
			Edges:  g.EdgeCount(),
			Levels: len(g.Levels),
		},
	}
	if g.Found {
		res.Length = g.FinalStep
	}
	return res
}
