// Package api exposes the tour searches over HTTP.
//
// Routes:
//
//	GET  /healthz            liveness probe
//	GET  /metrics            Prometheus metrics
//	GET  /v1/algorithms      supported strategies
//	POST /v1/solve?algo=     body: edge list ("cityA cityB cost" per line);
//	                         algo: dfs | ucs | astar | all (default all)
//	POST /v1/solve/{algo}    same, algorithm in the path
//
// Query parameters on /v1/solve override the server defaults:
// max_expansions (int), single_start (bool), mst (prim | kruskal).
//
// Status codes: 400 for a malformed edge list or parameter, 404 for an
// unknown algorithm, 413 for an oversized body, 422 when a search hits its
// expansion or time budget, 503 when the request is cancelled, 500 otherwise.
// max_expansions may lower the server's cap but not raise or remove it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/tspsearch/distance"
	"github.com/katalvlaran/tspsearch/prim_kruskal"
	"github.com/katalvlaran/tspsearch/render"
	"github.com/katalvlaran/tspsearch/tsp"
)

// DefaultMaxBody bounds request bodies (edge lists are tiny).
const DefaultMaxBody int64 = 1 << 20

// Server holds the shared, read-only settings of the HTTP surface.
type Server struct {
	logger   *log.Logger
	defaults []tsp.Option
	maxBody  int64
	metrics  *metrics
}

// New returns a Server. defaults are applied before per-request overrides.
func New(logger *log.Logger, defaults ...tsp.Option) *Server {
	if logger == nil {
		logger = log.Default()
	}

	return &Server{logger: logger, defaults: defaults, maxBody: DefaultMaxBody, metrics: newMetrics()}
}

// Handler builds the chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	r.Route("/v1", func(r chi.Router) {
		r.Get("/algorithms", s.listAlgorithms)
		r.Post("/solve", s.solve)
		r.Post("/solve/{algo}", s.solve)
	})

	return r
}

// algorithmInfo describes one strategy in /v1/algorithms.
type algorithmInfo struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

func (s *Server) listAlgorithms(w http.ResponseWriter, _ *http.Request) {
	out := make([]algorithmInfo, 0, len(tsp.Algorithms))
	for _, a := range tsp.Algorithms {
		out = append(out, algorithmInfo{Slug: a.Slug(), Label: a.String()})
	}
	writeJSON(w, http.StatusOK, out)
}

// SolveResponse is the body of a successful /v1/solve call.
type SolveResponse struct {
	RunID   string          `json:"run_id"`
	Cities  int             `json:"cities"`
	Results []render.Report `json:"results"`
}

// errorResponse is the body of every failed call.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) solve(w http.ResponseWriter, r *http.Request) {
	runID := uuid.NewString()
	logger := s.logger.With("run", runID)

	name := chi.URLParam(r, "algo")
	if name == "" {
		name = r.URL.Query().Get("algo")
	}
	algos, err := parseAlgos(name)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	opts, err := s.requestOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return
		}
		writeError(w, http.StatusBadRequest, err)
		return
	}
	m, err := distance.Parse(bytes.NewReader(body), "request body")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp := SolveResponse{RunID: runID, Cities: m.Len(), Results: make([]render.Report, 0, len(algos))}
	for _, a := range algos {
		start := time.Now()
		res, err := tsp.Solve(m, a, opts...)
		s.observe(a, res, err, time.Since(start))
		if err != nil {
			logger.Warn("search failed", "algo", a.Slug(), "err", err)
			writeError(w, searchStatus(err), err)
			return
		}
		rep, err := render.NewReport(m, res)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		rep.RunID = runID
		rep.Elapsed = render.Duration(time.Since(start))
		logger.Debug("search done", "algo", a.Slug(), "cost", rep.CostString(), "expanded", res.Stats.Expanded)
		resp.Results = append(resp.Results, rep)
	}

	writeJSON(w, http.StatusOK, resp)
}

// requestOptions layers query overrides on the server defaults. A request may
// lower the server's expansion cap but never raise or remove it, and the
// search stops when the client goes away.
func (s *Server) requestOptions(r *http.Request) ([]tsp.Option, error) {
	opts := append([]tsp.Option(nil), s.defaults...)
	limit := s.expansionCap()
	q := r.URL.Query()
	if v := q.Get("max_expansions"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("api: max_expansions=%q must be a non-negative integer", v)
		}
		if limit > 0 {
			if n == 0 {
				return nil, fmt.Errorf("api: max_expansions=0 (unlimited) exceeds the server cap of %d", limit)
			}
			n = min(n, limit)
		}
		opts = append(opts, tsp.WithMaxExpansions(n))
	}
	if v := q.Get("single_start"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("api: single_start=%q must be a boolean", v)
		}
		if b {
			opts = append(opts, tsp.WithSingleStart())
		}
	}
	if v := q.Get("mst"); v != "" {
		method, err := prim_kruskal.ParseMethod(v)
		if err != nil {
			return nil, err
		}
		opts = append(opts, tsp.WithMSTMethod(method))
	}

	opts = append(opts, tsp.WithContext(r.Context()))

	return opts, nil
}

// expansionCap is the MaxExpansions the server defaults resolve to (0 = none).
func (s *Server) expansionCap() int {
	o := tsp.DefaultOptions()
	for _, opt := range s.defaults {
		opt(&o)
	}

	return o.MaxExpansions
}

func parseAlgos(s string) ([]tsp.Algorithm, error) {
	if s == "" || s == "all" {
		return tsp.Algorithms, nil
	}
	a, err := tsp.ParseAlgorithm(s)
	if err != nil {
		return nil, err
	}

	return []tsp.Algorithm{a}, nil
}

// observe records one search in the Prometheus metrics.
func (s *Server) observe(a tsp.Algorithm, res tsp.Result, err error, elapsed time.Duration) {
	algo := a.Slug()
	result := resultOK
	switch {
	case err == nil && res.Unreachable():
		result = resultUnreachable
	case searchStatus(err) == http.StatusUnprocessableEntity:
		result = resultLimit
	case searchStatus(err) == http.StatusServiceUnavailable:
		result = resultCanceled
	case err != nil:
		result = resultError
	}
	s.metrics.solves.WithLabelValues(algo, result).Inc()
	s.metrics.duration.WithLabelValues(algo).Observe(elapsed.Seconds())
	if err == nil {
		s.metrics.expanded.WithLabelValues(algo).Observe(float64(res.Stats.Expanded))
	}
}

func searchStatus(err error) int {
	if errors.Is(err, tsp.ErrExpansionLimit) || errors.Is(err, tsp.ErrTimeLimit) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

// logRequests logs method, path, status and latency at debug level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http", "method", r.Method, "path", r.URL.Path, "status", ww.Status(),
			"elapsed", time.Since(start).Round(time.Microsecond))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
