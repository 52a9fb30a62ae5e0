// Package server exposes the advisor over HTTP for browser clients.
// POST endpoints proxy to the configured LLM provider; the responses
// and error bodies match what the web frontend expects.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/evanlowell/growlab/internal/advisor"
	"github.com/evanlowell/growlab/internal/scoring"
)

const shutdownTimeout = 5 * time.Second

// Server serves scenario generation and evaluation over HTTP.
type Server struct {
	advisor *advisor.Advisor
	logger  *slog.Logger
}

// New creates a Server backed by the given advisor.
func New(adv *advisor.Advisor, logger *slog.Logger) *Server {
	return &Server{advisor: adv, logger: logger}
}

// Handler returns the HTTP handler with CORS and request logging applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", s.handlePing)
	mux.HandleFunc("POST /scenario", s.handleScenario)
	mux.HandleFunc("POST /evaluate", s.handleEvaluate)

	return corsMiddleware(s.logRequests(mux))
}

// ListenAndServe runs the server until ctx is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("server listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"pong": true})
}

type scenarioRequest struct {
	Level int `json:"level"`
}

func (s *Server) handleScenario(w http.ResponseWriter, r *http.Request) {
	var req scenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// A missing or non-numeric level reads as invalid, same as
		// a level outside 1-6.
		writeError(w, http.StatusBadRequest, "Invalid level (must be 1–6)")
		return
	}

	text, err := s.advisor.RequestScenario(r.Context(), req.Level)
	if err != nil {
		if errors.Is(err, advisor.ErrInvalidLevel) {
			writeError(w, http.StatusBadRequest, "Invalid level (must be 1–6)")
			return
		}
		s.logger.Error("scenario generation failed", "level", req.Level, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate scenario")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"scenario": text})
}

type evaluateRequest struct {
	Level          *int           `json:"level"`
	ScenarioText   string         `json:"scenarioText"`
	Sliders        *sliderPayload `json:"sliders"`
	Recommendation string         `json:"recommendation"`
}

type sliderPayload struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
	Light    float64 `json:"light"`
	CO2      float64 `json:"co2"`
	DLI      float64 `json:"dli"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed request")
		return
	}
	if req.Level == nil || req.ScenarioText == "" || req.Sliders == nil || req.Recommendation == "" {
		writeError(w, http.StatusBadRequest, "Malformed request")
		return
	}

	feedback, err := s.advisor.RequestEvaluation(r.Context(), advisor.EvaluationInput{
		Level:        *req.Level,
		ScenarioText: req.ScenarioText,
		Sliders: scoring.Sliders{
			Temp:     req.Sliders.Temp,
			Humidity: req.Sliders.Humidity,
			Light:    req.Sliders.Light,
			CO2:      req.Sliders.CO2,
			DLI:      req.Sliders.DLI,
		},
		Recommendation: req.Recommendation,
	})
	if err != nil {
		if errors.Is(err, advisor.ErrMalformedInput) {
			writeError(w, http.StatusBadRequest, "Malformed request")
			return
		}
		s.logger.Error("evaluation failed", "level", *req.Level, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to evaluate recommendation")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"feedback": feedback})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
