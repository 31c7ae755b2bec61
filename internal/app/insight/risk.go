package insight

import (
	"fmt"
	"time"

	"github.com/sugarshield/sugarshield/internal/domain"
)

// Risk score contributions. Each is all-or-nothing, not proportional;
// the maximum score is 9.
const (
	riskBMIThreshold   = 25.0
	riskLateHour       = 20
	riskEarlyHour      = 5
	riskStepsThreshold = 4000
	riskSleepThreshold = 6.0
)

// ScoreRisk sums independent contributions for a sugar intake event:
// elevated BMI (+2), a late-night/early-morning hour (+3), low daily
// activity (+2), and short sleep (+2).
func ScoreRisk(profile domain.Profile, eventTime time.Time, metrics domain.DailyMetrics) int {
	score := 0

	if profile.BMI > riskBMIThreshold {
		score += 2
	}

	hour := eventTime.Hour()
	if hour >= riskLateHour || hour < riskEarlyHour {
		score += 3
	}

	if metrics.Steps < riskStepsThreshold {
		score += 2
	}

	if metrics.SleepHours < riskSleepThreshold {
		score += 2
	}

	return score
}

// ─── Recommendation Rules ───────────────────────────────────────────────────

// recommendationRule pairs a predicate with its recommendation builder.
// Rules are evaluated top to bottom and the first match wins; later rules
// never override earlier ones even if their own condition also holds.
type recommendationRule struct {
	name    string
	applies func(risk int, p domain.Profile, m domain.DailyMetrics) bool
	build   func(p domain.Profile, m domain.DailyMetrics) domain.Recommendation
}

// recommendationRules is the fixed priority order. Sleep and activity are
// surfaced ahead of the aggregate score: they are the more actionable
// signals even when the numeric risk is low.
var recommendationRules = []recommendationRule{
	{
		name: "low_sleep",
		applies: func(_ int, _ domain.Profile, m domain.DailyMetrics) bool {
			return m.SleepHours < riskSleepThreshold
		},
		build: func(_ domain.Profile, _ domain.DailyMetrics) domain.Recommendation {
			return domain.Recommendation{
				Insight: "Low sleep may increase sugar cravings and reduce insulin sensitivity.",
				Action:  "Prioritize 8 hours of sleep tonight.",
				Reason:  "Insufficient sleep (< 6 hours) impairs glucose metabolism",
			}
		},
	},
	{
		name: "low_activity",
		applies: func(_ int, _ domain.Profile, m domain.DailyMetrics) bool {
			return m.Steps < riskStepsThreshold
		},
		build: func(_ domain.Profile, _ domain.DailyMetrics) domain.Recommendation {
			return domain.Recommendation{
				Insight: "Late sugar on low-activity days may reduce sleep quality.",
				Action:  "Take a 10-minute walk now.",
				Reason:  "Low daily activity (< 4000 steps) reduces sugar processing efficiency",
			}
		},
	},
	{
		name: "bmi_risk",
		applies: func(risk int, p domain.Profile, _ domain.DailyMetrics) bool {
			return risk >= 5 && p.BMI > riskBMIThreshold
		},
		build: func(p domain.Profile, _ domain.DailyMetrics) domain.Recommendation {
			return domain.Recommendation{
				Insight: "Current BMI and activity levels suggest higher sugar impact.",
				Action:  "Swap next snack with a protein-rich option.",
				Reason:  fmt.Sprintf("Your BMI (%.1f) indicates higher metabolic sensitivity", p.BMI),
			}
		},
	},
	{
		name: "high_risk",
		applies: func(risk int, _ domain.Profile, _ domain.DailyMetrics) bool {
			return risk >= 5
		},
		build: func(_ domain.Profile, _ domain.DailyMetrics) domain.Recommendation {
			return domain.Recommendation{
				Insight: "High-risk intake detected given current conditions.",
				Action:  "Take a 15-minute quick walk now.",
				Reason:  "Combined risk factors (time + activity) suggest immediate movement",
			}
		},
	},
	{
		name: "balanced",
		applies: func(_ int, _ domain.Profile, _ domain.DailyMetrics) bool {
			return true
		},
		build: func(_ domain.Profile, _ domain.DailyMetrics) domain.Recommendation {
			return domain.Recommendation{
				Insight: "Good activity levels! Keep maintaining the balance.",
				Action:  "Drink a glass of water now.",
				Reason:  "Hydration helps with metabolic regulation & cravings",
			}
		},
	},
}

// Recommend selects one recommendation for the event by walking the
// prioritized rule list. The fallback rule always matches, so the result
// is total over the input domain.
func Recommend(riskScore int, profile domain.Profile, metrics domain.DailyMetrics) domain.Recommendation {
	for _, r := range recommendationRules {
		if r.applies(riskScore, profile, metrics) {
			rec := r.build(profile, metrics)
			rec.Rule = r.name
			return rec
		}
	}
	// Unreachable — the fallback rule matches everything
	return domain.Recommendation{}
}
