package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/sugarshield/sugarshield/internal/domain"
)

// State keys for the singleton persisted values. The intake log and daily
// metrics live in their own tables; everything else is KV.
const (
	keyProfile      = "profile"
	keyStreakCount  = "streak_count"
	keyStreakLastAt = "streak_last_logged_at"
	keyXP           = "xp"
	keySubscribed   = "is_subscribed"
)

// ─── Profile ────────────────────────────────────────────────────────────────

// LoadProfile returns the stored profile, or nil if onboarding has not run.
func (d *DB) LoadProfile() (*domain.Profile, error) {
	raw, err := d.GetState(keyProfile)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if raw == "" {
		return nil, nil
	}

	var p domain.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

// SaveProfile persists the profile as JSON in the state table.
func (d *DB) SaveProfile(p domain.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return d.SetState(keyProfile, string(raw))
}

// ─── Intake Log ─────────────────────────────────────────────────────────────

// AppendLog appends an intake event, assigning its id (unix milliseconds of
// at, bumped past the previous maximum so ids stay monotonic even for
// same-millisecond appends), UUID, and occurred_at.
func (d *DB) AppendLog(category domain.IntakeCategory, xp int, at time.Time) (domain.IntakeEvent, error) {
	var ev domain.IntakeEvent

	id := at.UnixMilli()
	var maxID sql.NullInt64
	if err := d.db.QueryRow(`SELECT MAX(id) FROM intake_logs`).Scan(&maxID); err != nil {
		return ev, fmt.Errorf("max log id: %w", err)
	}
	if maxID.Valid && id <= maxID.Int64 {
		id = maxID.Int64 + 1
	}

	ev = domain.IntakeEvent{
		ID:         id,
		UUID:       uuid.NewString(),
		Category:   category,
		XPAwarded:  xp,
		OccurredAt: at,
	}

	_, err := d.db.Exec(
		`INSERT INTO intake_logs (id, uuid, category, xp, occurred_at) VALUES (?, ?, ?, ?, ?)`,
		ev.ID, ev.UUID, string(ev.Category), ev.XPAwarded, ev.OccurredAt.UnixMilli(),
	)
	if err != nil {
		return ev, fmt.Errorf("insert log: %w", err)
	}
	return ev, nil
}

// ListLogs returns the full intake log in append order (oldest first).
func (d *DB) ListLogs() ([]domain.IntakeEvent, error) {
	rows, err := d.db.Query(
		`SELECT id, uuid, category, xp, occurred_at FROM intake_logs ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.IntakeEvent
	for rows.Next() {
		var ev domain.IntakeEvent
		var occurredAt int64
		if err := rows.Scan(&ev.ID, &ev.UUID, &ev.Category, &ev.XPAwarded, &occurredAt); err != nil {
			return nil, err
		}
		ev.OccurredAt = time.UnixMilli(occurredAt)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// CountLogs returns the total number of logged events.
func (d *DB) CountLogs() (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM intake_logs`).Scan(&count)
	return count, err
}

// LoggedOn reports whether any event falls on the calendar day covering
// [dayStart, dayStart+24h).
func (d *DB) LoggedOn(dayStart time.Time) (bool, error) {
	end := dayStart.Add(24 * time.Hour)
	var count int
	err := d.db.QueryRow(
		`SELECT COUNT(*) FROM intake_logs WHERE occurred_at >= ? AND occurred_at < ?`,
		dayStart.UnixMilli(), end.UnixMilli(),
	).Scan(&count)
	return count > 0, err
}

// ─── Daily Metrics ──────────────────────────────────────────────────────────

// LoadDailyMetrics returns the metrics for a day key ("YYYY-MM-DD").
// Absent days read as the documented defaults: 0 steps, 7 hours sleep.
func (d *DB) LoadDailyMetrics(day string) (domain.DailyMetrics, error) {
	m := domain.DefaultDailyMetrics()
	err := d.db.QueryRow(
		`SELECT steps, sleep_hours FROM daily_metrics WHERE day = ?`, day,
	).Scan(&m.Steps, &m.SleepHours)
	if err == sql.ErrNoRows {
		return domain.DefaultDailyMetrics(), nil
	}
	return m, err
}

// SaveDailyMetrics shallow-merges the given fields over the day's existing
// record (nil fields keep their current value) and returns the merged result.
func (d *DB) SaveDailyMetrics(day string, steps *int, sleepHours *float64) (domain.DailyMetrics, error) {
	m, err := d.LoadDailyMetrics(day)
	if err != nil {
		return m, fmt.Errorf("load daily metrics: %w", err)
	}
	if steps != nil {
		m.Steps = *steps
	}
	if sleepHours != nil {
		m.SleepHours = *sleepHours
	}

	_, err = d.db.Exec(
		`INSERT INTO daily_metrics (day, steps, sleep_hours) VALUES (?, ?, ?)
		 ON CONFLICT(day) DO UPDATE SET steps=excluded.steps, sleep_hours=excluded.sleep_hours`,
		day, m.Steps, m.SleepHours,
	)
	if err != nil {
		return m, fmt.Errorf("save daily metrics: %w", err)
	}
	return m, nil
}

// ─── Streak ─────────────────────────────────────────────────────────────────

// LoadStreak returns the persisted streak state ({0, null} when absent).
func (d *DB) LoadStreak() (domain.StreakState, error) {
	var streak domain.StreakState

	count, err := d.GetState(keyStreakCount)
	if err != nil {
		return streak, fmt.Errorf("get %s: %w", keyStreakCount, err)
	}
	if count != "" {
		streak.Count, _ = strconv.Atoi(count)
	}

	lastAt, err := d.GetState(keyStreakLastAt)
	if err != nil {
		return streak, fmt.Errorf("get %s: %w", keyStreakLastAt, err)
	}
	if lastAt != "" {
		ms, _ := strconv.ParseInt(lastAt, 10, 64)
		streak.LastLoggedAt = time.UnixMilli(ms)
	}

	return streak, nil
}

// SaveStreak persists the streak state. The last-logged timestamp keeps its
// time-of-day — day-difference math normalizes on read, not on write.
func (d *DB) SaveStreak(streak domain.StreakState) error {
	if err := d.SetState(keyStreakCount, strconv.Itoa(streak.Count)); err != nil {
		return fmt.Errorf("save %s: %w", keyStreakCount, err)
	}
	lastAt := ""
	if !streak.LastLoggedAt.IsZero() {
		lastAt = strconv.FormatInt(streak.LastLoggedAt.UnixMilli(), 10)
	}
	if err := d.SetState(keyStreakLastAt, lastAt); err != nil {
		return fmt.Errorf("save %s: %w", keyStreakLastAt, err)
	}
	return nil
}

// ─── XP ─────────────────────────────────────────────────────────────────────

// LoadXP returns the total experience points (0 when absent).
func (d *DB) LoadXP() (int, error) {
	raw, err := d.GetState(keyXP)
	if err != nil {
		return 0, fmt.Errorf("get xp: %w", err)
	}
	if raw == "" {
		return 0, nil
	}
	xp, _ := strconv.Atoi(raw)
	return xp, nil
}

// SaveXP persists the total experience points.
func (d *DB) SaveXP(xp int) error {
	return d.SetState(keyXP, strconv.Itoa(xp))
}

// ─── Subscription ───────────────────────────────────────────────────────────

// LoadSubscribed returns the local subscription flag.
func (d *DB) LoadSubscribed() (bool, error) {
	raw, err := d.GetState(keySubscribed)
	if err != nil {
		return false, fmt.Errorf("get subscription: %w", err)
	}
	return raw == "1", nil
}

// SaveSubscribed persists the local subscription flag.
func (d *DB) SaveSubscribed(v bool) error {
	val := "0"
	if v {
		val = "1"
	}
	return d.SetState(keySubscribed, val)
}
