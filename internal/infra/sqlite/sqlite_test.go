package sqlite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sugarshield/sugarshield/internal/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	dir := t.TempDir()
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// ─── Database Lifecycle ─────────────────────────────────────────────────────

func TestOpen_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Join(dir, "state.db")); os.IsNotExist(err) {
		t.Error("state.db should exist")
	}
}

func TestOpen_Ping(t *testing.T) {
	db := newTestDB(t)
	if err := db.Ping(); err != nil {
		t.Fatalf("Ping() error: %v", err)
	}
}

// ─── KV State ───────────────────────────────────────────────────────────────

func TestState_RoundTrip(t *testing.T) {
	db := newTestDB(t)

	if err := db.SetState("xp", "42"); err != nil {
		t.Fatalf("SetState() error: %v", err)
	}
	got, err := db.GetState("xp")
	if err != nil {
		t.Fatalf("GetState() error: %v", err)
	}
	if got != "42" {
		t.Errorf("GetState() = %q, want %q", got, "42")
	}
}

func TestState_MissingKeyIsEmpty(t *testing.T) {
	db := newTestDB(t)

	got, err := db.GetState("nonexistent")
	if err != nil {
		t.Fatalf("GetState() error: %v", err)
	}
	if got != "" {
		t.Errorf("GetState() = %q, want empty", got)
	}
}

// ─── Profile ────────────────────────────────────────────────────────────────

func TestProfile_NilWhenAbsent(t *testing.T) {
	db := newTestDB(t)

	p, err := db.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() error: %v", err)
	}
	if p != nil {
		t.Errorf("LoadProfile() = %+v, want nil", p)
	}
}

func TestProfile_RoundTrip(t *testing.T) {
	db := newTestDB(t)

	in := domain.Profile{Age: 28, HeightCm: 180, WeightKg: 75, Gender: domain.GenderMale, BMI: 23.1}
	if err := db.SaveProfile(in); err != nil {
		t.Fatalf("SaveProfile() error: %v", err)
	}

	got, err := db.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() error: %v", err)
	}
	if got == nil {
		t.Fatal("LoadProfile() returned nil")
	}
	if *got != in {
		t.Errorf("LoadProfile() = %+v, want %+v", *got, in)
	}
}

// ─── Intake Log ─────────────────────────────────────────────────────────────

func TestAppendLog_AssignsIDAndUUID(t *testing.T) {
	db := newTestDB(t)

	at := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	ev, err := db.AppendLog(domain.IntakeChai, 8, at)
	if err != nil {
		t.Fatalf("AppendLog() error: %v", err)
	}
	if ev.ID != at.UnixMilli() {
		t.Errorf("ID = %d, want %d", ev.ID, at.UnixMilli())
	}
	if ev.UUID == "" {
		t.Error("UUID should be assigned")
	}
	if ev.XPAwarded != 8 {
		t.Errorf("XPAwarded = %d, want 8", ev.XPAwarded)
	}
}

func TestAppendLog_MonotonicIDsSameMillisecond(t *testing.T) {
	db := newTestDB(t)

	at := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	first, err := db.AppendLog(domain.IntakeChai, 5, at)
	if err != nil {
		t.Fatalf("first AppendLog() error: %v", err)
	}
	second, err := db.AppendLog(domain.IntakeSweets, 5, at)
	if err != nil {
		t.Fatalf("second AppendLog() error: %v", err)
	}
	if second.ID <= first.ID {
		t.Errorf("second ID %d should exceed first %d", second.ID, first.ID)
	}
}

func TestListLogs_Ordered(t *testing.T) {
	db := newTestDB(t)

	base := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if _, err := db.AppendLog(domain.IntakeSnack, 5, base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("AppendLog() error: %v", err)
		}
	}

	events, err := db.ListLogs()
	if err != nil {
		t.Fatalf("ListLogs() error: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len = %d, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].ID <= events[i-1].ID {
			t.Errorf("events not ascending at index %d", i)
		}
	}

	count, err := db.CountLogs()
	if err != nil {
		t.Fatalf("CountLogs() error: %v", err)
	}
	if count != 3 {
		t.Errorf("CountLogs() = %d, want 3", count)
	}
}

func TestLoggedOn_DayWindow(t *testing.T) {
	db := newTestDB(t)

	at := time.Date(2025, 7, 1, 23, 30, 0, 0, time.UTC)
	if _, err := db.AppendLog(domain.IntakeChai, 5, at); err != nil {
		t.Fatalf("AppendLog() error: %v", err)
	}

	day := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	logged, err := db.LoggedOn(day)
	if err != nil {
		t.Fatalf("LoggedOn() error: %v", err)
	}
	if !logged {
		t.Error("expected a log on July 1")
	}

	nextDay := day.AddDate(0, 0, 1)
	logged, err = db.LoggedOn(nextDay)
	if err != nil {
		t.Fatalf("LoggedOn() error: %v", err)
	}
	if logged {
		t.Error("no log expected on July 2")
	}
}

// ─── Daily Metrics ──────────────────────────────────────────────────────────

func TestDailyMetrics_DefaultsWhenAbsent(t *testing.T) {
	db := newTestDB(t)

	m, err := db.LoadDailyMetrics("2025-07-01")
	if err != nil {
		t.Fatalf("LoadDailyMetrics() error: %v", err)
	}
	if m.Steps != 0 {
		t.Errorf("Steps = %d, want 0", m.Steps)
	}
	if m.SleepHours != 7 {
		t.Errorf("SleepHours = %.1f, want 7", m.SleepHours)
	}
}

func TestDailyMetrics_ShallowMerge(t *testing.T) {
	db := newTestDB(t)

	steps := 6000
	m, err := db.SaveDailyMetrics("2025-07-01", &steps, nil)
	if err != nil {
		t.Fatalf("SaveDailyMetrics() error: %v", err)
	}
	if m.Steps != 6000 || m.SleepHours != 7 {
		t.Errorf("after steps update: %+v", m)
	}

	sleep := 5.5
	m, err = db.SaveDailyMetrics("2025-07-01", nil, &sleep)
	if err != nil {
		t.Fatalf("SaveDailyMetrics() error: %v", err)
	}
	if m.Steps != 6000 {
		t.Errorf("Steps = %d, want 6000 preserved", m.Steps)
	}
	if m.SleepHours != 5.5 {
		t.Errorf("SleepHours = %.1f, want 5.5", m.SleepHours)
	}
}

func TestDailyMetrics_DaysIndependent(t *testing.T) {
	db := newTestDB(t)

	steps := 9000
	if _, err := db.SaveDailyMetrics("2025-07-01", &steps, nil); err != nil {
		t.Fatalf("SaveDailyMetrics() error: %v", err)
	}

	m, err := db.LoadDailyMetrics("2025-07-02")
	if err != nil {
		t.Fatalf("LoadDailyMetrics() error: %v", err)
	}
	if m.Steps != 0 {
		t.Errorf("next day Steps = %d, want 0", m.Steps)
	}
}

// ─── Streak & XP State ──────────────────────────────────────────────────────

func TestStreak_ZeroWhenAbsent(t *testing.T) {
	db := newTestDB(t)

	s, err := db.LoadStreak()
	if err != nil {
		t.Fatalf("LoadStreak() error: %v", err)
	}
	if s.Count != 0 || !s.LastLoggedAt.IsZero() {
		t.Errorf("LoadStreak() = %+v, want zero state", s)
	}
}

func TestStreak_RoundTripKeepsTimestamp(t *testing.T) {
	db := newTestDB(t)

	at := time.Date(2025, 7, 1, 14, 35, 12, 0, time.UTC)
	in := domain.StreakState{Count: 4, LastLoggedAt: at}
	if err := db.SaveStreak(in); err != nil {
		t.Fatalf("SaveStreak() error: %v", err)
	}

	got, err := db.LoadStreak()
	if err != nil {
		t.Fatalf("LoadStreak() error: %v", err)
	}
	if got.Count != 4 {
		t.Errorf("Count = %d, want 4", got.Count)
	}
	if !got.LastLoggedAt.Equal(at) {
		t.Errorf("LastLoggedAt = %v, want %v", got.LastLoggedAt, at)
	}
}

func TestXP_RoundTrip(t *testing.T) {
	db := newTestDB(t)

	xp, err := db.LoadXP()
	if err != nil {
		t.Fatalf("LoadXP() error: %v", err)
	}
	if xp != 0 {
		t.Errorf("LoadXP() = %d, want 0", xp)
	}

	if err := db.SaveXP(123); err != nil {
		t.Fatalf("SaveXP() error: %v", err)
	}
	xp, err = db.LoadXP()
	if err != nil {
		t.Fatalf("LoadXP() error: %v", err)
	}
	if xp != 123 {
		t.Errorf("LoadXP() = %d, want 123", xp)
	}
}

func TestSubscribed_RoundTrip(t *testing.T) {
	db := newTestDB(t)

	v, err := db.LoadSubscribed()
	if err != nil {
		t.Fatalf("LoadSubscribed() error: %v", err)
	}
	if v {
		t.Error("fresh install should not be subscribed")
	}

	if err := db.SaveSubscribed(true); err != nil {
		t.Fatalf("SaveSubscribed() error: %v", err)
	}
	v, err = db.LoadSubscribed()
	if err != nil {
		t.Fatalf("LoadSubscribed() error: %v", err)
	}
	if !v {
		t.Error("expected subscribed true")
	}
}
