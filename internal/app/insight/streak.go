// Package insight implements the SugarShield gamification and insight engine:
// streaks, milestones, XP/levels, risk scoring, recommendations, and
// motivational copy. Every function here is pure over its inputs; the
// Tracker is the only piece that touches persisted state.
package insight

import (
	"math"
	"time"

	"github.com/sugarshield/sugarshield/internal/domain"
)

// UpdateStreak computes the next streak state for an event landing at
// eventTime, evaluated at now. Day difference is taken between the midnights
// of now and the previous last-logged timestamp; the stored timestamp keeps
// its time-of-day for the next comparison.
//
// Backdated or out-of-order events are not reconciled: a negative or >1 day
// difference simply resets the streak, same as a missed day.
func UpdateStreak(prev domain.StreakState, eventTime, now time.Time) (domain.StreakState, bool) {
	next := domain.StreakState{Count: 1, LastLoggedAt: eventTime}

	if prev.LastLoggedAt.IsZero() {
		// First log ever
		return next, false
	}

	today := domain.Midnight(now)
	last := domain.Midnight(prev.LastLoggedAt)
	days := int(math.Round(today.Sub(last).Hours() / 24))

	wasReset := false
	switch days {
	case 1:
		// Logged yesterday — extend streak
		next.Count = prev.Count + 1
	case 0:
		// Already logged today — unchanged
		next.Count = prev.Count
	default:
		// Missed a day (or the clock went backwards) — reset.
		// Only user-visible when there was a real streak to lose.
		next.Count = 1
		wasReset = prev.Count > 1
	}

	return next, wasReset
}

// ─── Milestones ─────────────────────────────────────────────────────────────

// Milestone is one fixed streak threshold with its one-time XP reward.
type Milestone struct {
	Days    int
	Message string
	BonusXP int
}

// Milestones returns the fixed thresholds in ascending order.
func Milestones() []Milestone {
	return []Milestone{
		{Days: 7, Message: "🎉 7-Day Streak!", BonusXP: 50},
		{Days: 30, Message: "🏆 30-Day Legend!", BonusXP: 100},
		{Days: 100, Message: "👑 100-Day Master!", BonusXP: 200},
	}
}

// CheckMilestone reports whether count lands exactly on a milestone.
// Exact match only: a count of 8 does not retroactively trigger the 7-day
// milestone it skipped.
func CheckMilestone(count int) domain.MilestoneResult {
	for _, m := range Milestones() {
		if count == m.Days {
			return domain.MilestoneResult{Reached: true, Message: m.Message, BonusXP: m.BonusXP}
		}
	}
	return domain.MilestoneResult{}
}
