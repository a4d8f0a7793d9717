package remote

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxDocumentBytes caps a save payload. The document is a personal tracker;
// anything past this is a malformed client.
const maxDocumentBytes = 8 << 20

// Server serves the document-store protocol.
type Server struct {
	store  DocStore
	logger *slog.Logger
}

// NewRouter wires the protocol endpoints onto a chi router.
func NewRouter(store DocStore, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	srv := &Server{store: store, logger: logger}

	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Post("/api/setup", srv.handleSetup)
	r.Get("/api/data", srv.handleLoad)
	r.Post("/api/data", srv.handleSave)
	r.Get("/health", srv.handleHealth)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	if err := s.store.EnsureSchema(r.Context()); err != nil {
		s.logger.Error("schema setup failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Database setup failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Database setup complete"})
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	data, err := s.store.Load(r.Context())
	if err != nil {
		s.logger.Error("load failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Server error"})
		return
	}
	if data == nil {
		writeJSON(w, http.StatusOK, map[string]any{"data": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": json.RawMessage(data)})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid data"})
		return
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid data"})
		return
	}
	if err := s.store.Save(r.Context(), body); err != nil {
		s.logger.Error("save failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Server error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// requestLogger tags each request with an id and logs method, path, and timing.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := uuid.NewString()
			next.ServeHTTP(w, r)
			logger.Debug("request",
				"id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
				"duration", time.Since(start),
			)
		})
	}
}
