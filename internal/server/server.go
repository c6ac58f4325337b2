package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/drewdunne/responder/internal/config"
	"github.com/drewdunne/responder/internal/intent"
	"github.com/drewdunne/responder/internal/logging"
	"github.com/drewdunne/responder/internal/metrics"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// maxBodyBytes bounds JSON query bodies.
const maxBodyBytes = 64 << 10

// HealthResponse represents the health check response structure.
type HealthResponse struct {
	Status string                 `json:"status"`
	Checks map[string]interface{} `json:"checks"`
}

// QueryRequest is the JSON body of POST /api/query.
type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResponse is the JSON reply of POST /api/query.
type QueryResponse struct {
	RequestID string `json:"request_id"`
	intent.Answer
}

// ErrorResponse is returned for malformed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server is the HTTP server answering queries.
type Server struct {
	cfg          *config.Config
	dispatcher   *intent.Dispatcher
	logger       *zap.Logger
	journal      *logging.Journal // nil when the journal is disabled
	mux          *http.ServeMux
	httpServer   *httpServer
	httpServerMu sync.RWMutex  // protects httpServer pointer
	ready        chan struct{} // closed when server is ready to accept connections
}

// Option configures a Server.
type Option func(*Server)

// WithDispatcher replaces the dispatcher built from the config.
func WithDispatcher(d *intent.Dispatcher) Option {
	return func(s *Server) {
		s.dispatcher = d
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithJournal records every answered query to j.
func WithJournal(j *logging.Journal) Option {
	return func(s *Server) {
		s.journal = j
	}
}

// New creates a new Server with the given config.
func New(cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		cfg:    cfg,
		logger: zap.NewNop(),
		mux:    http.NewServeMux(),
		ready:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.dispatcher == nil {
		s.dispatcher = intent.NewDispatcher(cfg.Responder)
	}
	s.routes()
	return s
}

// Ready returns a channel that is closed when the server is ready to accept connections.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return withRequestID(s.mux)
}

// routes sets up the HTTP routes.
func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleQuery)
	s.mux.HandleFunc("GET /api", s.handleQuery)
	s.mux.HandleFunc("POST /api/query", s.handleAPIQuery)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /metrics", s.handleMetrics)
}

type requestIDKey struct{}

// withRequestID propagates the caller's request ID or assigns a new one.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// handleQuery answers ?q= as plain text. A missing q is the empty query.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	answer := s.answer(r.Context(), r.URL.Query().Get("q"))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(answer.Text))
}

// handleAPIQuery answers a JSON QueryRequest with a QueryResponse.
func (s *Server) handleAPIQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	answer := s.answer(r.Context(), req.Query)
	writeJSON(w, http.StatusOK, QueryResponse{RequestID: requestID(r.Context()), Answer: answer})
}

// answer dispatches q and records it in metrics, logs and the journal.
func (s *Server) answer(ctx context.Context, q string) intent.Answer {
	start := time.Now()
	answer := s.dispatcher.Resolve(q)
	metrics.Observe(answer)

	id := requestID(ctx)
	s.logger.Info("Answered query",
		zap.String("request_id", id),
		zap.String("query", q),
		zap.String("intent", string(answer.Intent)),
		zap.Stringer("kind", answer.Kind),
		zap.Duration("duration", time.Since(start)),
	)

	if s.journal != nil {
		err := s.journal.Record(logging.Entry{
			Time:      start,
			RequestID: id,
			Query:     q,
			Intent:    string(answer.Intent),
			Kind:      answer.Kind.String(),
			Answer:    answer.Text,
		})
		if err != nil {
			// Journal failures never fail the query
			s.logger.Warn("Failed to record query", zap.String("request_id", id), zap.Error(err))
		}
	}

	return answer
}

// handleHealth responds with server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	checks := map[string]interface{}{
		"matchers": len(s.dispatcher.Intents()),
		"journal":  s.journal != nil,
	}

	status := "ok"
	if len(s.dispatcher.Intents()) == 0 {
		status = "degraded"
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: status, Checks: checks})
}

// handleMetrics responds with current operational metrics.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, metrics.Get())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
