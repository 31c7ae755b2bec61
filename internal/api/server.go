// Package api provides the HTTP server for SugarShield.
// It exposes the insight engine to the presentation layer as a small
// JSON API.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sugarshield/sugarshield/internal/app/insight"
	"github.com/sugarshield/sugarshield/internal/health"
)

// Server is the SugarShield HTTP API server.
type Server struct {
	tracker        *insight.Tracker
	health         *health.Checker
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(tracker *insight.Tracker, checker *health.Checker) *Server {
	return &Server{tracker: tracker, health: checker}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", s.handleHealth)

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "SugarShield is running",
		})
	})

	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version": "0.1.0",
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/logs", s.handleLogIntake)
		r.Get("/logs", s.handleHistory)

		r.Get("/profile", s.handleGetProfile)
		r.Put("/profile", s.handlePutProfile)

		r.Get("/daily", s.handleGetDaily)
		r.Put("/daily", s.handlePutDaily)

		r.Get("/streak", s.handleStreak)
		r.Get("/level", s.handleLevel)
		r.Get("/quote", s.handleQuote)
		r.Get("/summary", s.handleSummary)

		r.Post("/recommendation/complete", s.handleCompleteRecommendation)

		r.Get("/subscription", s.handleGetSubscription)
		r.Put("/subscription", s.handlePutSubscription)
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	statuses := s.health.Statuses()
	status := "ok"
	if !s.health.IsHealthy() {
		status = "degraded"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": status,
		"checks": statuses,
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for the local presentation layer.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
