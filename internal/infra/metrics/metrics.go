// Package metrics provides Prometheus metrics for SugarShield.
// Counters, gauges, and histograms for intake logging, XP, streaks,
// and the insight engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Intake ─────────────────────────────────────────────────────────────────

// IntakeLogged tracks logged intake events by category.
var IntakeLogged = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "sugarshield",
	Name:      "intake_logged_total",
	Help:      "Total intake events logged.",
}, []string{"category"})

// ─── Gamification ───────────────────────────────────────────────────────────

// XPAwarded tracks experience points awarded by source.
var XPAwarded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "sugarshield",
	Name:      "xp_awarded_total",
	Help:      "Total XP awarded, by source.",
}, []string{"source"})

// LevelUps tracks level-up events.
var LevelUps = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "sugarshield",
	Name:      "level_ups_total",
	Help:      "Total level-up events.",
})

// StreakDays tracks the current consecutive-day streak.
var StreakDays = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "sugarshield",
	Name:      "streak_days",
	Help:      "Current consecutive-day logging streak.",
})

// StreakResets tracks user-visible streak resets.
var StreakResets = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "sugarshield",
	Name:      "streak_resets_total",
	Help:      "Total user-visible streak resets.",
})

// ─── Insight ────────────────────────────────────────────────────────────────

// RiskScore tracks the per-event risk score distribution (0-9).
var RiskScore = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "sugarshield",
	Name:      "risk_score",
	Help:      "Per-event risk score distribution.",
	Buckets:   prometheus.LinearBuckets(0, 1, 10),
})

// Recommendations tracks which recommendation rule fired per event.
var Recommendations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "sugarshield",
	Name:      "recommendations_total",
	Help:      "Recommendations served, by rule.",
}, []string{"rule"})
