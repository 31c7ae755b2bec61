package insight

// XP reward constants. All deltas are independent and summed; applying them
// one at a time or pre-summed gives the same total.
const (
	// BaseLogXP is the fixed reward for logging any intake event.
	BaseLogXP = 5
	// MaxRandomBonusXP bounds the per-event random bonus, inclusive.
	MaxRandomBonusXP = 5
	// EarlyLogBonusXP rewards logging before EarlyLogHourCutoff.
	EarlyLogBonusXP = 3
	// EarlyLogHourCutoff is the local hour before which the early bonus applies.
	EarlyLogHourCutoff = 18
	// CompletionBonusXP rewards acting on a recommendation.
	CompletionBonusXP = 10
)

// ApplyXP accumulates delta onto total. The result is never negative.
func ApplyXP(total, delta int) int {
	next := total + delta
	if next < 0 {
		return 0
	}
	return next
}

// LevelForXP derives the level from total XP: floor(xp/100) + 1.
// Level is always derived, never stored — storing it separately would risk
// desynchronization.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/100 + 1
}

// ProgressPercent returns progress toward the next level: xp mod 100.
func ProgressPercent(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp % 100
}

// LeveledUp reports whether moving from oldTotal to newTotal crossed a
// level boundary.
func LeveledUp(oldTotal, newTotal int) bool {
	return LevelForXP(newTotal) > LevelForXP(oldTotal)
}
