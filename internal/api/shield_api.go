package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sugarshield/sugarshield/internal/domain"
)

// ─── Intake Log ─────────────────────────────────────────────────────────────

type logIntakeRequest struct {
	Category string `json:"category"`
}

func (s *Server) handleLogIntake(w http.ResponseWriter, r *http.Request) {
	var req logIntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := domain.ParseIntakeCategory(req.Category)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.tracker.LogIntake(category, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	events, err := s.tracker.History()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if events == nil {
		events = []domain.IntakeEvent{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"events": events,
	})
}

// ─── Profile ────────────────────────────────────────────────────────────────

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.tracker.Profile()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, domain.ErrProfileMissing.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

type putProfileRequest struct {
	Age      int     `json:"age"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	Gender   string  `json:"gender"`
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var req putProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := s.tracker.UpdateProfile(domain.Profile{
		Age:      req.Age,
		HeightCm: req.HeightCm,
		WeightKg: req.WeightKg,
		Gender:   domain.Gender(req.Gender),
	})
	if err != nil {
		if errors.Is(err, domain.ErrProfileIncomplete) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// ─── Daily Metrics ──────────────────────────────────────────────────────────

func (s *Server) handleGetDaily(w http.ResponseWriter, r *http.Request) {
	daily, err := s.tracker.Daily(time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, daily)
}

type putDailyRequest struct {
	Steps      *int     `json:"steps,omitempty"`
	SleepHours *float64 `json:"sleep_hours,omitempty"`
}

func (s *Server) handlePutDaily(w http.ResponseWriter, r *http.Request) {
	var req putDailyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	daily, err := s.tracker.SetDaily(time.Now(), req.Steps, req.SleepHours)
	if err != nil {
		if errors.Is(err, domain.ErrNegativeMetric) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, daily)
}

// ─── Gamification State ─────────────────────────────────────────────────────

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	summary, err := s.tracker.Summary(time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary.Streak)
}

func (s *Server) handleLevel(w http.ResponseWriter, r *http.Request) {
	summary, err := s.tracker.Summary(time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"level":            summary.Level,
		"total_xp":         summary.TotalXP,
		"progress_percent": summary.ProgressPercent,
	})
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	quote, err := s.tracker.Quote(time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"quote": quote,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.tracker.Summary(time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleCompleteRecommendation(w http.ResponseWriter, r *http.Request) {
	totalXP, level, leveledUp, err := s.tracker.CompleteRecommendation()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_xp":   totalXP,
		"level":      level,
		"leveled_up": leveledUp,
	})
}

// ─── Subscription ───────────────────────────────────────────────────────────

func (s *Server) handleGetSubscription(w http.ResponseWriter, r *http.Request) {
	subscribed, err := s.tracker.Subscribed()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{
		"subscribed": subscribed,
	})
}

type putSubscriptionRequest struct {
	Subscribed bool `json:"subscribed"`
}

func (s *Server) handlePutSubscription(w http.ResponseWriter, r *http.Request) {
	var req putSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.tracker.SetSubscribed(req.Subscribed); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{
		"subscribed": req.Subscribed,
	})
}
