// Package pipeline runs ladder queries for the CLI and the HTTP API.
//
// A query passes through three stages:
//
//  1. Validate: check the endpoints and limits, resolve the dictionary
//  2. Search: build the level graph from begin toward end
//  3. Output: enumerate every shortest ladder, or export the graph as
//     DOT, SVG or JSON
//
// [Runner] wraps the stages with result caching and observability hooks so
// that every entry point behaves the same way.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Solve(ctx, pipeline.Options{
//	    Begin: "hit",
//	    End:   "cog",
//	    Dict:  d,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range res.Paths {
//	    fmt.Println(strings.Join(p, " "))
//	}
//
// Independent queries can be solved concurrently:
//
//	items, err := runner.SolveBatch(ctx, queries, 8)
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ladder/pkg/cache"
	"github.com/matzehuels/ladder/pkg/dict"
	"github.com/matzehuels/ladder/pkg/errors"
	"github.com/matzehuels/ladder/pkg/ladder"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultBatchLimit is the number of queries solved concurrently when
	// SolveBatch is called with a non-positive limit.
	DefaultBatchLimit = 4

	// MaxBatchSize bounds the number of queries in one batch.
	MaxBatchSize = 1000
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidResultFormats is the set of formats a solved ladder can be written in.
var ValidResultFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// ValidGraphFormats is the set of formats a level graph can be exported in.
var ValidGraphFormats = map[string]bool{
	FormatDOT:  true,
	FormatSVG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options
// =============================================================================

// Options describes one ladder query. It supports JSON decoding for API
// requests; the dictionary is supplied either inline as Words or resolved by
// the caller as Dict.
type Options struct {
	Begin string   `json:"begin"`
	End   string   `json:"end"`
	Words []string `json:"words,omitempty"`

	MaxSteps int `json:"max_steps,omitempty"`
	MaxPaths int `json:"max_paths,omitempty"`

	// Graph export options
	Format       string `json:"format,omitempty"`
	ShortestOnly bool   `json:"shortest_only,omitempty"`
	Detailed     bool   `json:"detailed,omitempty"`

	// Refresh bypasses cached results and overwrites them.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Dict   *dict.Dictionary `json:"-"`
	Logger *log.Logger      `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks the query and resolves the dictionary.
// Inline Words are merged into Dict when both are present. This method is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidatePair(o.Begin, o.End); err != nil {
		return err
	}
	if err := o.SearchOptions().Validate(); err != nil {
		return err
	}
	if len(o.Words) > 0 {
		o.Dict = o.Dict.Merge(dict.New(o.Words))
	}
	if o.Dict == nil {
		o.Dict = dict.New(nil)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ValidateForGraph validates the query and the export format, defaulting
// the format to DOT.
func (o *Options) ValidateForGraph() error {
	if o.Format == "" {
		o.Format = FormatDOT
	}
	if err := ValidateGraphFormat(o.Format); err != nil {
		return err
	}
	return o.ValidateAndSetDefaults()
}

// SearchOptions returns the solver limits.
func (o *Options) SearchOptions() ladder.Options {
	return ladder.Options{MaxSteps: o.MaxSteps, MaxPaths: o.MaxPaths}
}

// LadderKeyOpts returns cache key options for a solved ladder.
func (o *Options) LadderKeyOpts() cache.LadderKeyOpts {
	return cache.LadderKeyOpts{MaxSteps: o.MaxSteps, MaxPaths: o.MaxPaths}
}

// GraphKeyOpts returns cache key options for an exported graph.
func (o *Options) GraphKeyOpts() cache.GraphKeyOpts {
	format := o.Format
	if o.Detailed {
		format += "+detailed"
	}
	return cache.GraphKeyOpts{
		MaxSteps:     o.MaxSteps,
		ShortestOnly: o.ShortestOnly,
		Format:       format,
	}
}

// =============================================================================
// Results
// =============================================================================

// Result is a solved ladder plus pipeline metadata.
type Result struct {
	*ladder.Result
	CacheHit bool `json:"cache_hit"`
}

// GraphResult is an exported level graph.
type GraphResult struct {
	// Format is the format of Data.
	Format string
	// Data is the rendered graph.
	Data []byte
	// Graph is the level graph. It is nil when Data came from the cache.
	Graph *ladder.Graph
	// CacheHit reports whether Data came from the cache.
	CacheHit bool
}

// BatchItem is the outcome of one query in a batch. Exactly one of Result
// and Err is set.
type BatchItem struct {
	Result *Result
	Err    error
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateResultFormat checks that a result format is valid.
func ValidateResultFormat(format string) error {
	if !ValidResultFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be one of: text, json)", format)
	}
	return nil
}

// ValidateGraphFormat checks that a graph format is valid.
func ValidateGraphFormat(format string) error {
	if !ValidGraphFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be one of: dot, svg, json)", format)
	}
	return nil
}

func batchSizeError(n int) error {
	return errors.New(errors.ErrCodeInvalidInput, "batch of %d queries exceeds the limit of %d", n, MaxBatchSize)
}
