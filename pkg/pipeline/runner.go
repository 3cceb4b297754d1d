package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/ladder/pkg/cache"
	"github.com/matzehuels/ladder/pkg/dict"
	"github.com/matzehuels/ladder/pkg/errors"
	pkgio "github.com/matzehuels/ladder/pkg/io"
	"github.com/matzehuels/ladder/pkg/ladder"
	"github.com/matzehuels/ladder/pkg/observability"
	"github.com/matzehuels/ladder/pkg/render/nodelink"
)

// Cache key types reported to observability hooks.
const (
	keyTypeLadder = "ladder"
	keyTypeGraph  = "graph"
)

// Runner executes queries with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner keeps no per-query state. Multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the default entry lifetime when positive.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Solve returns every shortest ladder for the query, consulting the cache
// first unless opts.Refresh is set.
func (r *Runner) Solve(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := r.Keyer.LadderKey(opts.Begin, opts.End, r.Fingerprint(opts.Dict), opts.LadderKeyOpts())
	if !opts.Refresh {
		if res, ok := r.cachedResult(ctx, key); ok {
			r.Logger.Debug("cache hit", "begin", opts.Begin, "end", opts.End)
			return &Result{Result: res, CacheHit: true}, nil
		}
	}

	g, searched, err := r.search(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	paths, err := ladder.Enumerate(g, opts.SearchOptions())
	elapsed := time.Since(start)
	observability.Solver().OnEnumerateComplete(ctx, len(paths), elapsed, err)
	if err != nil {
		return nil, err
	}

	res := ladder.NewResult(g, paths)
	res.Stats.SearchTime = searched
	res.Stats.EnumerateTime = elapsed

	r.Logger.Info("solved ladder",
		"begin", opts.Begin,
		"end", opts.End,
		"paths", len(res.Paths),
		"length", res.Length,
		"nodes", res.Stats.Nodes,
		"duration", res.Stats.SearchTime+res.Stats.EnumerateTime)

	if data, err := json.Marshal(res); err == nil {
		r.store(ctx, key, keyTypeLadder, data, cache.TTLLadder)
	}
	return &Result{Result: res}, nil
}

// Search builds the level graph for the query without enumerating paths.
func (r *Runner) Search(ctx context.Context, opts Options) (*ladder.Graph, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	g, _, err := r.search(ctx, opts)
	return g, err
}

// Graph exports the level graph in opts.Format, consulting the cache first
// unless opts.Refresh is set.
func (r *Runner) Graph(ctx context.Context, opts Options) (*GraphResult, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForGraph(); err != nil {
		return nil, err
	}

	key := r.Keyer.GraphKey(opts.Begin, opts.End, r.Fingerprint(opts.Dict), opts.GraphKeyOpts())
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, keyTypeGraph)
			return &GraphResult{Format: opts.Format, Data: data, CacheHit: true}, nil
		} else if err != nil {
			r.Logger.Warn("cache read failed", "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeGraph)
	}

	g, _, err := r.search(ctx, opts)
	if err != nil {
		return nil, err
	}

	data, err := RenderGraph(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	r.Logger.Info("exported graph",
		"begin", opts.Begin,
		"end", opts.End,
		"format", opts.Format,
		"nodes", g.NodeCount(),
		"bytes", len(data))

	r.store(ctx, key, keyTypeGraph, data, cache.TTLGraph)
	return &GraphResult{Format: opts.Format, Data: data, Graph: g}, nil
}

// RenderGraph exports g in opts.Format.
func RenderGraph(ctx context.Context, g *ladder.Graph, opts Options) ([]byte, error) {
	d, err := g.ToDAG(opts.ShortestOnly)
	if err != nil {
		return nil, err
	}
	switch opts.Format {
	case FormatJSON:
		var buf bytes.Buffer
		if err := pkgio.WriteJSON(d, &buf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode graph")
		}
		return buf.Bytes(), nil
	case FormatSVG:
		dot := nodelink.ToDOT(d, nodelink.Options{Detailed: opts.Detailed})
		svg, err := nodelink.RenderSVG(ctx, dot)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		return svg, nil
	case FormatDOT, "":
		return []byte(nodelink.ToDOT(d, nodelink.Options{Detailed: opts.Detailed})), nil
	default:
		return nil, ValidateGraphFormat(opts.Format)
	}
}

// SolveBatch solves independent queries with at most limit running at
// once. Per-query failures are reported in the returned items; the error is
// non-nil only for an oversized batch or a cancelled context.
func (r *Runner) SolveBatch(ctx context.Context, queries []Options, limit int) ([]BatchItem, error) {
	if len(queries) > MaxBatchSize {
		return nil, batchSizeError(len(queries))
	}
	if limit <= 0 {
		limit = DefaultBatchLimit
	}

	items := make([]BatchItem, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, q := range queries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.Solve(gctx, q)
			items[i] = BatchItem{Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.Logger.Debug("solved batch", "queries", len(queries), "limit", limit)
	return items, nil
}

// Fingerprint returns the content hash of d used in cache keys.
func (r *Runner) Fingerprint(d *dict.Dictionary) string {
	return d.Fingerprint()
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) search(ctx context.Context, opts Options) (*ladder.Graph, time.Duration, error) {
	observability.Solver().OnSearchStart(ctx, opts.Begin, opts.End, opts.Dict.Len())

	start := time.Now()
	g, err := ladder.Search(opts.Begin, opts.End, opts.Dict, opts.SearchOptions())
	elapsed := time.Since(start)

	var nodes, levels int
	var found bool
	if g != nil {
		nodes, levels, found = g.NodeCount(), len(g.Levels), g.Found
	}
	observability.Solver().OnSearchComplete(ctx, nodes, levels, found, elapsed, err)
	if err != nil {
		opts.Logger.Debug("search failed", "begin", opts.Begin, "end", opts.End, "error", err)
		return nil, elapsed, err
	}
	opts.Logger.Debug("built level graph",
		"nodes", nodes,
		"levels", levels,
		"found", found,
		"duration", elapsed)
	return g, elapsed, nil
}

func (r *Runner) cachedResult(ctx context.Context, key string) (*ladder.Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "error", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeLadder)
		return nil, false
	}

	var res ladder.Result
	if err := json.Unmarshal(data, &res); err != nil {
		r.Logger.Warn("dropping cache entry", "error", fmt.Errorf("%w: %v", cache.ErrCorrupt, err))
		_ = r.Cache.Delete(ctx, key)
		observability.Cache().OnCacheMiss(ctx, keyTypeLadder)
		return nil, false
	}
	if res.Paths == nil {
		res.Paths = [][]string{}
	}
	observability.Cache().OnCacheHit(ctx, keyTypeLadder)
	return &res, true
}

func (r *Runner) store(ctx context.Context, key, keyType string, data []byte, ttl time.Duration) {
	if r.TTL > 0 {
		ttl = r.TTL
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
