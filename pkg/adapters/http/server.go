package http

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/bough"
	"github.com/aretw0/bough/internal/logging"
	"github.com/aretw0/bough/pkg/domain"
	"github.com/aretw0/bough/pkg/ports"
)

// Server exposes a single bough tree as a JSON API.
//
// The input side of the API is untyped on purpose: whatever JSON the client
// posts is handed to the tree as a decoded `any` (objects arrive as
// map[string]any), matching the engine's opaque-input contract.
type Server[T any] struct {
	tree   *bough.Tree[T]
	store  ports.TraceStore
	logger *slog.Logger
}

// Option configures the handler.
type Option func(*config)

type config struct {
	store    ports.TraceStore
	logger   *slog.Logger
	registry *prometheus.Registry
}

// WithStore enables trace persistence: every traversal is recorded and a
// trace_id is returned, with GET /traces/{id} serving the record back.
func WithStore(store ports.TraceStore) Option {
	return func(c *config) {
		c.store = store
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics mounts promhttp for the given registry at /metrics.
func WithMetrics(registry *prometheus.Registry) Option {
	return func(c *config) {
		c.registry = registry
	}
}

// NewHandler creates the HTTP handler for the tree.
func NewHandler[T any](tree *bough.Tree[T], opts ...Option) http.Handler {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.NewNop()
	}

	server := &Server[T]{
		tree:   tree,
		store:  cfg.store,
		logger: cfg.logger,
	}

	r := chi.NewRouter()
	r.Post("/traverse", server.Traverse)
	r.Get("/healthz", server.Health)
	if cfg.store != nil {
		r.Get("/traces", server.ListTraces)
		r.Get("/traces/{id}", server.GetTrace)
	}
	if cfg.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.registry, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type traverseRequest struct {
	// ID optionally names the trace; generated when empty and a store is
	// configured.
	ID    string `json:"id,omitempty"`
	Input any    `json:"input"`
}

type traverseResponse struct {
	Value   any      `json:"value"`
	Effects []string `json:"effects"`
	Path    []string `json:"path"`
	TraceID string   `json:"trace_id,omitempty"`
}

// Traverse handles POST /traverse.
func (s *Server[T]) Traverse(w http.ResponseWriter, r *http.Request) {
	var body traverseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("traverse: invalid request body", "error", err)
		return
	}

	res, err := s.tree.Traverse(r.Context(), body.Input)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, bough.ErrNoRoot) {
			status = http.StatusServiceUnavailable
		}
		http.Error(w, err.Error(), status)
		s.logger.Error("traverse failed", "error", err)
		return
	}

	resp := traverseResponse{
		Value:   res.Value,
		Effects: res.Effects,
		Path:    res.Labels(),
	}

	if s.store != nil {
		id := body.ID
		if id == "" {
			id = newTraceID()
		}
		record := &domain.TraceRecord{
			ID:        id,
			Input:     body.Input,
			Value:     res.Value,
			Effects:   res.Effects,
			Path:      res.Labels(),
			CreatedAt: time.Now().UTC(),
		}
		if err := s.store.Save(r.Context(), record); err != nil {
			// Persistence is best-effort here; the traversal itself stands.
			s.logger.Error("failed to persist trace", "error", err, "trace", id)
		} else {
			resp.TraceID = id
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetTrace handles GET /traces/{id}.
func (s *Server[T]) GetTrace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := s.store.Load(r.Context(), id)
	if errors.Is(err, domain.ErrTraceNotFound) {
		http.Error(w, "Trace not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		s.logger.Error("failed to load trace", "error", err, "trace", id)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// ListTraces handles GET /traces.
func (s *Server[T]) ListTraces(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		s.logger.Error("failed to list traces", "error", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"traces": ids})
}

// Health handles GET /healthz.
func (s *Server[T]) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": bough.Version,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTraceID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
