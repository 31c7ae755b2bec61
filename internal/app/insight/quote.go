package insight

import "fmt"

// Source supplies the randomness behind cosmetic variety (quote picks) and
// the per-event bonus XP. Production callers pass a math/rand source; tests
// pass a fixed stub so results are reproducible.
type Source interface {
	Intn(n int) int
}

// Quote pools keyed by time-of-day band: [0,12) morning, [12,18) afternoon,
// [18,24) evening.
var (
	morningQuotes = []string{
		"🌅 Fresh start! Protect your streak today.",
		"☀️ Every log is a victory for your health.",
		"💪 You've got this! Today's a new opportunity.",
	}
	afternoonQuotes = []string{
		"🌤️ Halfway through! Keep the momentum going.",
		"⚡ Your streak is on fire! 🔥 Keep it up.",
		"🎯 Smart choices = strong shield. You're doing great!",
	}
	eveningQuotes = []string{
		"🌙 Tonight's decisions shape tomorrow's health.",
		"✨ One more log to close out a great day!",
		"🛡️ Your shield is getting stronger. Log before bed!",
	}
)

// SelectQuote picks the dashboard motivational string. Exact streak
// milestones short-circuit first, then level >= 5 — a level-5 user at a
// 7-day streak sees the streak message. Otherwise the pick is uniform over
// the pool for the hour's band. Other components must not rely on the
// random pick.
func SelectQuote(hour, streakCount, level int, src Source) string {
	switch streakCount {
	case 7:
		return "🎉 First milestone! 7-day streak unlocked!"
	case 30:
		return "🏆 Legend status! 30-day streakmaster!"
	case 100:
		return "👑 You're unstoppable! 100-day master achieved!"
	}

	if level >= 5 {
		return fmt.Sprintf("🚀 Level %d reached! You're a SugarShield champion!", level)
	}

	pool := morningQuotes
	switch {
	case hour >= 18:
		pool = eveningQuotes
	case hour >= 12:
		pool = afternoonQuotes
	}
	return pool[src.Intn(len(pool))]
}
