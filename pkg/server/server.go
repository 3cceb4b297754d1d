// Package server exposes ladder solving over HTTP.
//
// Routes:
//
//	POST /v1/ladders        solve one query
//	POST /v1/ladders/batch  solve up to pipeline.MaxBatchSize queries
//	POST /v1/graphs         export the level graph (?format=dot|svg|json)
//	GET  /healthz           liveness and build information
//	GET  /metrics           Prometheus exposition
//
// Request bodies name the endpoints and optionally an inline word list:
//
//	{"begin": "hit", "end": "cog", "words": ["hot", "dot", "dog", "lot", "log", "cog"]}
//
// Without "words" the server's configured dictionary is used. Errors are
// returned as {"code": "...", "message": "..."} with status 400 for input
// errors, 422 when a search limit is exceeded and 500 otherwise. Every
// response carries an X-Request-ID header.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/ladder/pkg/dict"
	lerrors "github.com/matzehuels/ladder/pkg/errors"
	"github.com/matzehuels/ladder/pkg/pipeline"
)

// Options configures a [Server].
type Options struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// MaxSteps and MaxPaths cap every query. Requests may ask for lower
	// limits but never higher ones. Zero means unlimited.
	MaxSteps int
	MaxPaths int

	// Concurrency bounds parallel queries within one batch request.
	Concurrency int

	// Timeout bounds the handling of one request.
	Timeout time.Duration

	// MaxBodyBytes bounds request bodies.
	MaxBodyBytes int64

	// Metrics serves GET /metrics. Defaults to promhttp.Handler().
	Metrics http.Handler
}

// Server is the HTTP API.
type Server struct {
	runner *pipeline.Runner
	dict   *dict.Dictionary
	logger *log.Logger
	opts   Options
}

// New creates a server that solves queries with runner. d is the default
// dictionary for requests without inline words and may be nil.
func New(runner *pipeline.Runner, d *dict.Dictionary, logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = pipeline.DefaultBatchLimit
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 8 << 20
	}
	if opts.Metrics == nil {
		opts.Metrics = promhttp.Handler()
	}
	return &Server{runner: runner, dict: d, logger: logger, opts: opts}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.instrument("/healthz", s.handleHealth))
	r.Method(http.MethodGet, "/metrics", s.opts.Metrics)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(s.opts.Timeout))
		r.Post("/ladders", s.instrument("/v1/ladders", s.handleSolve))
		r.Post("/ladders/batch", s.instrument("/v1/ladders/batch", s.handleBatch))
		r.Post("/graphs", s.instrument("/v1/graphs", s.handleGraph))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Code: string(lerrors.ErrCodeNotFound), Message: "no route for " + r.URL.Path})
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.opts.Addr, "dictionary", s.dict.Len())
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

// limit applies the server cap to a requested limit.
func limit(requested, max int) int {
	if max > 0 && (requested <= 0 || requested > max) {
		return max
	}
	return requested
}
