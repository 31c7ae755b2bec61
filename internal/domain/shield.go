// Package domain defines the core SugarShield types.
// Domain types are pure — no infrastructure dependency.
package domain

import (
	"math"
	"time"
)

// ─── Profile Types ──────────────────────────────────────────────────────────

// Gender is the profile gender selection from onboarding.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Profile holds the static user attributes collected at onboarding.
// BMI is derived from height and weight; it is recomputed on every edit
// and never entered directly.
type Profile struct {
	Age      int     `json:"age"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	Gender   Gender  `json:"gender"`
	BMI      float64 `json:"bmi"`
}

// Complete reports whether all required onboarding fields are filled.
func (p Profile) Complete() bool {
	return p.Age > 0 && p.HeightCm > 0 && p.WeightKg > 0 && p.Gender != ""
}

// CalculateBMI returns weight(kg) / height(m)^2 rounded to one decimal.
// Returns 0 when either input is missing or non-positive — a sentinel,
// not an error.
func CalculateBMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*10) / 10
}

// ─── Intake Log Types ───────────────────────────────────────────────────────

// IntakeCategory classifies a logged sugar intake event.
type IntakeCategory string

const (
	IntakeChai      IntakeCategory = "chai"
	IntakeColdDrink IntakeCategory = "cold_drink"
	IntakeSweets    IntakeCategory = "sweets"
	IntakeSnack     IntakeCategory = "snack"
)

// Categories lists all valid intake categories.
func Categories() []IntakeCategory {
	return []IntakeCategory{IntakeChai, IntakeColdDrink, IntakeSweets, IntakeSnack}
}

// ParseIntakeCategory validates a raw category string.
func ParseIntakeCategory(s string) (IntakeCategory, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

// IntakeEvent is one entry in the append-only intake log.
// The store assigns ID (unix milliseconds, monotonic under normal operation)
// and OccurredAt at append time; events are immutable once created.
type IntakeEvent struct {
	ID         int64          `json:"id"`
	UUID       string         `json:"uuid"`
	Category   IntakeCategory `json:"category"`
	XPAwarded  int            `json:"xp_awarded"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// ─── Daily Metrics ──────────────────────────────────────────────────────────

// DailyMetrics records steps and sleep for one calendar day.
// Mutable throughout the day; a new record starts when the date rolls over.
type DailyMetrics struct {
	Steps      int     `json:"steps"`
	SleepHours float64 `json:"sleep_hours"`
}

// DefaultDailyMetrics is the value assumed for days with no record.
func DefaultDailyMetrics() DailyMetrics {
	return DailyMetrics{Steps: 0, SleepHours: 7}
}

// DayKey truncates a timestamp to its local calendar date ("YYYY-MM-DD").
// Both the streak engine and daily metrics lookups go through this one
// normalization so day-boundary behavior cannot diverge.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Midnight returns t truncated to midnight of its local calendar date.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ─── Streak Types ───────────────────────────────────────────────────────────

// StreakState tracks consecutive days with at least one logged event.
// Invariant: Count == 0 exactly when LastLoggedAt is the zero time;
// otherwise Count >= 1.
type StreakState struct {
	Count        int       `json:"count"`
	LastLoggedAt time.Time `json:"last_logged_at"`
}

// ─── Insight Types ──────────────────────────────────────────────────────────

// Recommendation is the per-event health guidance produced by the insight
// engine. Ephemeral — surfaced to the caller, never persisted.
type Recommendation struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Reason  string `json:"reason"`
	Rule    string `json:"rule"`
}

// MilestoneResult reports whether a streak count hit a milestone threshold.
type MilestoneResult struct {
	Reached bool   `json:"milestone_reached"`
	Message string `json:"message,omitempty"`
	BonusXP int    `json:"bonus_xp,omitempty"`
}

// XPSource categorizes how XP was earned.
type XPSource string

const (
	XPBaseLog     XPSource = "base_log"
	XPRandomBonus XPSource = "random_bonus"
	XPEarlyBonus  XPSource = "early_bonus"
	XPCompletion  XPSource = "completion"
	XPMilestone   XPSource = "milestone"
)

// Summary is the dashboard aggregate assembled per request.
type Summary struct {
	Streak          StreakState  `json:"streak"`
	TotalXP         int          `json:"total_xp"`
	Level           int          `json:"level"`
	ProgressPercent int          `json:"progress_percent"`
	TodayLogged     bool         `json:"today_logged"`
	Daily           DailyMetrics `json:"daily"`
	Quote           string       `json:"quote"`
	Subscribed      bool         `json:"subscribed"`
}

// LogResult is everything a single intake event produced, in the order the
// engines ran: streak update, milestone check, XP update, risk evaluation.
type LogResult struct {
	Event           IntakeEvent     `json:"event"`
	Streak          StreakState     `json:"streak"`
	WasReset        bool            `json:"was_reset"`
	Milestone       MilestoneResult `json:"milestone"`
	TotalXP         int             `json:"total_xp"`
	Level           int             `json:"level"`
	LeveledUp       bool            `json:"leveled_up"`
	ProgressPercent int             `json:"progress_percent"`
	RiskScore       int             `json:"risk_score"`
	Recommendation  Recommendation  `json:"recommendation"`
	PromptSignup    bool            `json:"prompt_signup"`
}
