package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sugarshield/sugarshield/internal/app/insight"
	"github.com/sugarshield/sugarshield/internal/health"
	"github.com/sugarshield/sugarshield/internal/infra/sqlite"
)

// fixedSource pins the random XP bonus to 0 for deterministic responses.
type fixedSource struct{}

func (fixedSource) Intn(n int) int { return 0 }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()

	db, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	tracker := insight.NewTrackerWithSource(db, fixedSource{})
	checker := health.NewChecker(db, dir)
	return NewServer(tracker, checker)
}

func doRequest(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, "GET", "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp map[string]interface{}
	decode(t, rec, &resp)
	if resp["status"] != "ok" {
		t.Errorf("status = %v, want ok", resp["status"])
	}
}

func TestStatusEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, "GET", "/api/status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestLogIntake_Valid(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, "POST", "/api/logs", `{"category":"chai"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Streak struct {
			Count int `json:"count"`
		} `json:"streak"`
		TotalXP int `json:"total_xp"`
		Level   int `json:"level"`
	}
	decode(t, rec, &resp)
	if resp.Streak.Count != 1 {
		t.Errorf("streak count = %d, want 1", resp.Streak.Count)
	}
	if resp.Level != 1 {
		t.Errorf("level = %d, want 1", resp.Level)
	}
	if resp.TotalXP < 5 {
		t.Errorf("total xp = %d, want at least base reward", resp.TotalXP)
	}
}

func TestLogIntake_UnknownCategory(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, "POST", "/api/logs", `{"category":"cake"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLogIntake_MalformedBody(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, "POST", "/api/logs", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHistory_EmptyList(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, "GET", "/api/logs", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Events []interface{} `json:"events"`
	}
	decode(t, rec, &resp)
	if resp.Events == nil {
		t.Error("events should be an empty array, not null")
	}
	if len(resp.Events) != 0 {
		t.Errorf("len = %d, want 0", len(resp.Events))
	}
}

func TestProfile_NotFoundBeforeOnboarding(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, "GET", "/api/profile", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestProfile_PutThenGet(t *testing.T) {
	srv := newTestServer(t)

	body := `{"age":30,"height_cm":175,"weight_kg":70,"gender":"female"}`
	rec := doRequest(t, srv, "PUT", "/api/profile", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var put struct {
		BMI float64 `json:"bmi"`
	}
	decode(t, rec, &put)
	if put.BMI != 22.9 {
		t.Errorf("bmi = %.1f, want 22.9", put.BMI)
	}

	rec = doRequest(t, srv, "GET", "/api/profile", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}
}

func TestProfile_RejectsIncomplete(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, "PUT", "/api/profile", `{"age":30}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDaily_DefaultsThenMerge(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, "GET", "/api/daily", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var daily struct {
		Steps      int     `json:"steps"`
		SleepHours float64 `json:"sleep_hours"`
	}
	decode(t, rec, &daily)
	if daily.Steps != 0 || daily.SleepHours != 7 {
		t.Errorf("defaults = %+v, want {0 7}", daily)
	}

	rec = doRequest(t, srv, "PUT", "/api/daily", `{"steps":6000}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d, want 200", rec.Code)
	}
	decode(t, rec, &daily)
	if daily.Steps != 6000 {
		t.Errorf("steps = %d, want 6000", daily.Steps)
	}
	if daily.SleepHours != 7 {
		t.Errorf("sleep = %.1f, want 7 preserved", daily.SleepHours)
	}
}

func TestDaily_RejectsNegative(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, "PUT", "/api/daily", `{"steps":-100}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSummaryEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, "GET", "/api/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Level int    `json:"level"`
		Quote string `json:"quote"`
	}
	decode(t, rec, &resp)
	if resp.Level != 1 {
		t.Errorf("level = %d, want 1", resp.Level)
	}
	if resp.Quote == "" {
		t.Error("expected a quote")
	}
}

func TestCompleteRecommendation(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, "POST", "/api/recommendation/complete", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		TotalXP int `json:"total_xp"`
	}
	decode(t, rec, &resp)
	if resp.TotalXP != 10 {
		t.Errorf("total_xp = %d, want 10", resp.TotalXP)
	}
}

func TestSubscription_RoundTrip(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, "GET", "/api/subscription", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Subscribed bool `json:"subscribed"`
	}
	decode(t, rec, &resp)
	if resp.Subscribed {
		t.Error("fresh install should not be subscribed")
	}

	rec = doRequest(t, srv, "PUT", "/api/subscription", `{"subscribed":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d, want 200", rec.Code)
	}

	rec = doRequest(t, srv, "GET", "/api/subscription", "")
	decode(t, rec, &resp)
	if !resp.Subscribed {
		t.Error("expected subscribed after PUT")
	}
}

func TestCORSPreflights(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, "OPTIONS", "/api/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
}
