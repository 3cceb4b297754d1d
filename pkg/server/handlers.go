package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/matzehuels/ladder/pkg/buildinfo"
	lerrors "github.com/matzehuels/ladder/pkg/errors"
	"github.com/matzehuels/ladder/pkg/observability"
	"github.com/matzehuels/ladder/pkg/pipeline"
)

// ladderRequest is the body of /v1/ladders and /v1/graphs.
type ladderRequest struct {
	Begin    string   `json:"begin"`
	End      string   `json:"end"`
	Words    []string `json:"words,omitempty"`
	MaxSteps int      `json:"max_steps,omitempty"`
	MaxPaths int      `json:"max_paths,omitempty"`
	Refresh  bool     `json:"refresh,omitempty"`

	ShortestOnly bool `json:"shortest_only,omitempty"`
	Detailed     bool `json:"detailed,omitempty"`
}

type batchRequest struct {
	Queries []ladderRequest `json:"queries"`
}

type batchEntry struct {
	Result *pipeline.Result `json:"result,omitempty"`
	Error  *errorBody       `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchEntry `json:"results"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status     string `json:"status"`
	Dictionary int    `json:"dictionary"`
	buildinfo.Info
}

func (s *Server) options(req ladderRequest) pipeline.Options {
	opts := pipeline.Options{
		Begin:        req.Begin,
		End:          req.End,
		MaxSteps:     limit(req.MaxSteps, s.opts.MaxSteps),
		MaxPaths:     limit(req.MaxPaths, s.opts.MaxPaths),
		Refresh:      req.Refresh,
		ShortestOnly: req.ShortestOnly,
		Detailed:     req.Detailed,
	}
	if len(req.Words) > 0 {
		opts.Words = req.Words
	} else {
		opts.Dict = s.dict
	}
	return opts
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		Dictionary: s.dict.Len(),
		Info:       buildinfo.Current(),
	})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req ladderRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Solve(r.Context(), s.options(req))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	queries := make([]pipeline.Options, len(req.Queries))
	for i, q := range req.Queries {
		queries[i] = s.options(q)
	}
	items, err := s.runner.SolveBatch(r.Context(), queries, s.opts.Concurrency)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := batchResponse{Results: make([]batchEntry, len(items))}
	for i, item := range items {
		if item.Err != nil {
			_, body := classify(item.Err)
			resp.Results[i] = batchEntry{Error: &body}
			continue
		}
		resp.Results[i] = batchEntry{Result: item.Result}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	var req ladderRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := s.options(req)
	opts.Format = r.URL.Query().Get("format")
	out, err := s.runner.Graph(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType(out.Format))
	if out.CacheHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Data)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return lerrors.New(lerrors.ErrCodeInvalidInput, "invalid request body: %v", err)
	}
	return nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := classify(err)
	observability.HTTP().OnError(r.Context(), r.Method, routeFromContext(r.Context()), body.Code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "error", err)
	}
	writeJSON(w, status, body)
}

// classify maps an error to an HTTP status and response body.
func classify(err error) (int, errorBody) {
	switch {
	case lerrors.IsInputError(err):
		return http.StatusBadRequest, errorBody{Code: string(lerrors.GetCode(err)), Message: lerrors.UserMessage(err)}
	case lerrors.Is(err, lerrors.ErrCodeResourceExhausted):
		var ex *lerrors.ExhaustedError
		msg := lerrors.UserMessage(err)
		if errors.As(err, &ex) {
			msg = ex.Error()
		}
		return http.StatusUnprocessableEntity, errorBody{Code: string(lerrors.ErrCodeResourceExhausted), Message: msg}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, errorBody{Code: "TIMEOUT", Message: "request did not complete in time"}
	default:
		return http.StatusInternalServerError, errorBody{Code: string(lerrors.ErrCodeInternal), Message: "internal error"}
	}
}

func contentType(format string) string {
	switch format {
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatJSON:
		return "application/json"
	default:
		return "text/vnd.graphviz; charset=utf-8"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintf(w, `{"code":"INTERNAL_ERROR","message":%q}`, err.Error())
	}
}
