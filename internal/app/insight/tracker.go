package insight

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sugarshield/sugarshield/internal/domain"
	"github.com/sugarshield/sugarshield/internal/infra/metrics"
	"github.com/sugarshield/sugarshield/internal/infra/sqlite"
)

// Tracker orchestrates the intake control flow against persisted state:
// streak update → milestone check → XP update → risk & recommendation.
// Every call loads the previous state, computes, and saves — the engines
// hold nothing between invocations.
type Tracker struct {
	db  *sqlite.DB
	src Source
}

// NewTracker creates a tracker with a time-seeded random source.
func NewTracker(db *sqlite.DB) *Tracker {
	return NewTrackerWithSource(db, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewTrackerWithSource creates a tracker with an injected random source.
func NewTrackerWithSource(db *sqlite.DB, src Source) *Tracker {
	return &Tracker{db: db, src: src}
}

// LogIntake records one sugar intake event and runs the full engine
// sequence, returning everything the event produced.
func (t *Tracker) LogIntake(category domain.IntakeCategory, now time.Time) (domain.LogResult, error) {
	var result domain.LogResult

	if _, err := domain.ParseIntakeCategory(string(category)); err != nil {
		return result, err
	}

	// 1. Streak
	prevStreak, err := t.db.LoadStreak()
	if err != nil {
		return result, fmt.Errorf("load streak: %w", err)
	}
	streak, wasReset := UpdateStreak(prevStreak, now, now)
	if err := t.db.SaveStreak(streak); err != nil {
		return result, fmt.Errorf("save streak: %w", err)
	}

	// 2. Milestone (exact count match only)
	milestone := CheckMilestone(streak.Count)

	// 3. XP
	oldXP, err := t.db.LoadXP()
	if err != nil {
		return result, fmt.Errorf("load xp: %w", err)
	}
	eventXP := BaseLogXP + t.src.Intn(MaxRandomBonusXP+1)
	if now.Hour() < EarlyLogHourCutoff {
		eventXP += EarlyLogBonusXP
	}
	delta := eventXP
	if milestone.Reached {
		delta += milestone.BonusXP
	}
	newXP := ApplyXP(oldXP, delta)
	if err := t.db.SaveXP(newXP); err != nil {
		return result, fmt.Errorf("save xp: %w", err)
	}

	event, err := t.db.AppendLog(category, eventXP, now)
	if err != nil {
		return result, fmt.Errorf("append log: %w", err)
	}

	// 4. Risk & recommendation
	profile, err := t.db.LoadProfile()
	if err != nil {
		return result, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		profile = &domain.Profile{}
	}
	daily, err := t.db.LoadDailyMetrics(domain.DayKey(now))
	if err != nil {
		return result, fmt.Errorf("load daily metrics: %w", err)
	}
	risk := ScoreRisk(*profile, now, daily)
	rec := Recommend(risk, *profile, daily)

	// Signup prompt after the second log while unsubscribed
	logCount, err := t.db.CountLogs()
	if err != nil {
		return result, fmt.Errorf("count logs: %w", err)
	}
	subscribed, err := t.db.LoadSubscribed()
	if err != nil {
		return result, fmt.Errorf("load subscription: %w", err)
	}

	metrics.IntakeLogged.WithLabelValues(string(category)).Inc()
	metrics.XPAwarded.WithLabelValues(string(domain.XPBaseLog)).Add(float64(eventXP))
	if milestone.Reached {
		metrics.XPAwarded.WithLabelValues(string(domain.XPMilestone)).Add(float64(milestone.BonusXP))
	}
	metrics.StreakDays.Set(float64(streak.Count))
	if wasReset {
		metrics.StreakResets.Inc()
	}
	if LeveledUp(oldXP, newXP) {
		metrics.LevelUps.Inc()
	}
	metrics.RiskScore.Observe(float64(risk))
	metrics.Recommendations.WithLabelValues(rec.Rule).Inc()

	result = domain.LogResult{
		Event:           event,
		Streak:          streak,
		WasReset:        wasReset,
		Milestone:       milestone,
		TotalXP:         newXP,
		Level:           LevelForXP(newXP),
		LeveledUp:       LeveledUp(oldXP, newXP),
		ProgressPercent: ProgressPercent(newXP),
		RiskScore:       risk,
		Recommendation:  rec,
		PromptSignup:    logCount >= 2 && !subscribed,
	}
	return result, nil
}

// CompleteRecommendation applies the fixed completion bonus for acting on a
// recommendation. Returns the new total, level, and whether a level-up fired.
func (t *Tracker) CompleteRecommendation() (int, int, bool, error) {
	oldXP, err := t.db.LoadXP()
	if err != nil {
		return 0, 0, false, fmt.Errorf("load xp: %w", err)
	}
	newXP := ApplyXP(oldXP, CompletionBonusXP)
	if err := t.db.SaveXP(newXP); err != nil {
		return 0, 0, false, fmt.Errorf("save xp: %w", err)
	}

	metrics.XPAwarded.WithLabelValues(string(domain.XPCompletion)).Add(CompletionBonusXP)
	leveledUp := LeveledUp(oldXP, newXP)
	if leveledUp {
		metrics.LevelUps.Inc()
	}
	return newXP, LevelForXP(newXP), leveledUp, nil
}

// Quote returns the motivational string for the current hour, streak, and level.
func (t *Tracker) Quote(now time.Time) (string, error) {
	streak, err := t.db.LoadStreak()
	if err != nil {
		return "", fmt.Errorf("load streak: %w", err)
	}
	xp, err := t.db.LoadXP()
	if err != nil {
		return "", fmt.Errorf("load xp: %w", err)
	}
	return SelectQuote(now.Hour(), streak.Count, LevelForXP(xp), t.src), nil
}

// Summary assembles the dashboard aggregate: streak, level, XP progress,
// whether today has a log yet, today's metrics, and a quote.
func (t *Tracker) Summary(now time.Time) (domain.Summary, error) {
	var s domain.Summary

	streak, err := t.db.LoadStreak()
	if err != nil {
		return s, fmt.Errorf("load streak: %w", err)
	}
	xp, err := t.db.LoadXP()
	if err != nil {
		return s, fmt.Errorf("load xp: %w", err)
	}
	daily, err := t.db.LoadDailyMetrics(domain.DayKey(now))
	if err != nil {
		return s, fmt.Errorf("load daily metrics: %w", err)
	}
	todayLogged, err := t.db.LoggedOn(domain.Midnight(now))
	if err != nil {
		return s, fmt.Errorf("check today: %w", err)
	}
	subscribed, err := t.db.LoadSubscribed()
	if err != nil {
		return s, fmt.Errorf("load subscription: %w", err)
	}

	level := LevelForXP(xp)
	s = domain.Summary{
		Streak:          streak,
		TotalXP:         xp,
		Level:           level,
		ProgressPercent: ProgressPercent(xp),
		TodayLogged:     todayLogged,
		Daily:           daily,
		Quote:           SelectQuote(now.Hour(), streak.Count, level, t.src),
		Subscribed:      subscribed,
	}
	return s, nil
}

// History returns the intake log newest-first for the history view.
func (t *Tracker) History() ([]domain.IntakeEvent, error) {
	events, err := t.db.ListLogs()
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	return events, nil
}

// UpdateProfile validates the edit, recomputes BMI from the new height and
// weight, and persists the result.
func (t *Tracker) UpdateProfile(p domain.Profile) (domain.Profile, error) {
	if !p.Complete() {
		return p, domain.ErrProfileIncomplete
	}
	p.BMI = domain.CalculateBMI(p.WeightKg, p.HeightCm)
	if err := t.db.SaveProfile(p); err != nil {
		return p, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}

// Profile returns the stored profile (nil when onboarding has not run).
func (t *Tracker) Profile() (*domain.Profile, error) {
	return t.db.LoadProfile()
}

// SetDaily shallow-merges steps and/or sleep hours into today's metrics.
func (t *Tracker) SetDaily(now time.Time, steps *int, sleepHours *float64) (domain.DailyMetrics, error) {
	if (steps != nil && *steps < 0) || (sleepHours != nil && *sleepHours < 0) {
		return domain.DailyMetrics{}, domain.ErrNegativeMetric
	}
	return t.db.SaveDailyMetrics(domain.DayKey(now), steps, sleepHours)
}

// Daily returns today's metrics (defaults when unset).
func (t *Tracker) Daily(now time.Time) (domain.DailyMetrics, error) {
	return t.db.LoadDailyMetrics(domain.DayKey(now))
}

// Subscribed returns the local subscription flag.
func (t *Tracker) Subscribed() (bool, error) {
	return t.db.LoadSubscribed()
}

// SetSubscribed persists the local subscription flag.
func (t *Tracker) SetSubscribed(v bool) error {
	return t.db.SaveSubscribed(v)
}
