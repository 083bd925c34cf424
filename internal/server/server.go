// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the writing pipeline over HTTP: a generation
// endpoint, a health check, and a status page. Requests are validated
// before any generation call; responses are JSON, with PDFs carried as a
// base64 field.
package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/amulya/writer-engine/internal/pipeline"
	"github.com/amulya/writer-engine/pkg/types"
)

// Server handles the HTTP surface around one shared Pipeline.
type Server struct {
	pipe *pipeline.Pipeline
	cfg  types.ServerConfig
	log  io.Writer
}

// New builds a Server. Progress and warnings go to w (stderr in commands,
// a buffer in tests).
func New(pipe *pipeline.Pipeline, cfg types.ServerConfig, w io.Writer) *Server {
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = "*"
	}
	return &Server{pipe: pipe, cfg: cfg, log: w}
}

// generateResponse is the JSON body for a successful generation.
type generateResponse struct {
	Topic       string            `json:"topic"`
	WritingType types.WritingType `json:"writing_type"`
	Summary     string            `json:"summary"`
	Insights    string            `json:"insights"`
	Essay       string            `json:"essay"`
	WordCount   int               `json:"word_count"`
	PDFBase64   string            `json:"pdf_base64,omitempty"`
}

// errorResponse is the JSON body for any failure.
type errorResponse struct {
	Error string `json:"error"`
}

// Handler returns the routed HTTP handler with CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /generate-essay", s.handleGenerate)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleRoot)
	return s.cors(mux)
}

// cors sets the response headers browser frontends need and answers
// preflight requests directly.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.AllowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.WriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.WritingType != "" && !req.WritingType.Valid() {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("unsupported writing type %q", req.WritingType))
		return
	}

	res, err := s.pipe.Run(r.Context(), req)
	if err != nil {
		if errors.Is(err, pipeline.ErrMissingTopic) {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		fmt.Fprintf(s.log, "warning: generation failed for topic %q: %v\n", req.Topic, err)
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	resp := generateResponse{
		Topic:       res.Topic,
		WritingType: res.WritingType,
		Summary:     res.Summary,
		Insights:    res.Insights,
		Essay:       res.Essay,
		WordCount:   res.WordCount,
	}
	if res.PDF != nil {
		resp.PDFBase64 = base64.StdEncoding.EncodeToString(res.PDF)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"api":    "operational",
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message":         "Backend is online",
		"title":           "AI Writer API",
		"description":     "Multi-format AI writing engine (essays, reports, summaries, articles, explanations, audits, and social posts).",
		"endpoint":        "/generate-essay",
		"supported_types": types.WritingTypes(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintf(s.log, "warning: writing response: %v\n", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// Run serves until ctx is cancelled, then shuts down gracefully within the
// configured grace period.
func (s *Server) Run(ctx context.Context) error {
	grace := s.cfg.ShutdownGrace
	if grace <= 0 {
		grace = 10 * time.Second
	}

	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(s.log, "listening on %s\n", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
