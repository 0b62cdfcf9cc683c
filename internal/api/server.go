package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/heartmind/internal/mood"
	"github.com/MikeSquared-Agency/heartmind/internal/prompt"
	"github.com/MikeSquared-Agency/heartmind/internal/sculpture"
	"github.com/MikeSquared-Agency/heartmind/internal/session"
)

type Server struct {
	router    *chi.Mux
	port      int
	sculpture *sculpture.Sculpture
	sessions  *session.Registry
	http      *http.Server
}

func NewServer(port int, apiToken string, sc *sculpture.Sculpture) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:    router,
		port:      port,
		sculpture: sc,
		sessions:  sc.Sessions(),
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/heartmind/status", s.status)
	router.Get("/api/v1/examples", s.examples)

	router.Route("/api/v1/sessions", func(r chi.Router) {
		r.Use(BearerAuthMiddleware(apiToken))
		r.Post("/", s.createSession)
		r.Get("/", s.listSessions)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getSession)
			r.Delete("/", s.deleteSession)
			r.Get("/transcript", s.getTranscript)
			r.Post("/messages", s.postMessage)
		})
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("API server starting", "addr", addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight turns.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"agent":    "heartmind",
		"mood":     mood.At(s.sessions.Now()),
		"sessions": len(s.sessions.List()),
	})
}

func (s *Server) examples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"examples": prompt.Examples})
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, s.sessions.Create())
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sessions": s.sessions.List()})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	st, err := s.sessions.Get(id)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	if err := s.sessions.Delete(id); err != nil {
		writeSessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getTranscript(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	tr, err := s.sessions.Transcript(id)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	if tr == nil {
		tr = session.Transcript{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"messages":  tr,
		"last_cues": tr.LastCues(),
	})
}

// MessageRequest is the body of POST /api/v1/sessions/{id}/messages.
type MessageRequest struct {
	Text             string `json:"text"`
	VisitorCount     int    `json:"visitor_count"`
	InteractionState string `json:"interaction_state"`
}

func (s *Server) postMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}
	state, err := prompt.ParseInteractionState(req.InteractionState)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.VisitorCount < 1 {
		req.VisitorCount = 1
	}

	res, err := s.sculpture.Turn(r.Context(), sculpture.Input{
		SessionID:    id,
		Text:         req.Text,
		VisitorCount: req.VisitorCount,
		State:        state,
	})
	switch {
	case errors.Is(err, sculpture.ErrEmptyInput):
		writeError(w, http.StatusBadRequest, "text is required")
		return
	case errors.Is(err, session.ErrNotFound):
		writeSessionError(w, err)
		return
	case err != nil:
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}

func writeSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
