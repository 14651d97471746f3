package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSessions(t *testing.T) {
	m := New()

	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded()
	m.SessionRejected("rate_limit")

	if got := testutil.ToFloat64(m.sessionsActive); got != 1 {
		t.Errorf("active sessions = %v, expected 1", got)
	}
	if got := testutil.ToFloat64(m.sessionsTotal); got != 2 {
		t.Errorf("total sessions = %v, expected 2", got)
	}
	if got := testutil.ToFloat64(m.rejected.WithLabelValues("rate_limit")); got != 1 {
		t.Errorf("rejected = %v, expected 1", got)
	}
}

func TestRoundFinished(t *testing.T) {
	m := New()

	m.RoundFinished("arkanoid", "game_over", 12, 40*time.Second)
	m.RoundFinished("arkanoid", "cleared", 80, 90*time.Second)
	m.RoundFinished("arkanoid_hard", "game_over", 3, 5*time.Second)

	tests := []struct {
		board, reason string
		expected      float64
	}{
		{"arkanoid", "game_over", 1},
		{"arkanoid", "cleared", 1},
		{"arkanoid_hard", "game_over", 1},
		{"arkanoid_hard", "cleared", 0},
	}
	for _, tc := range tests {
		if got := testutil.ToFloat64(m.rounds.WithLabelValues(tc.board, tc.reason)); got != tc.expected {
			t.Errorf("rounds{%s,%s} = %v, expected %v", tc.board, tc.reason, got, tc.expected)
		}
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.SessionStarted()
	m.RoundFinished("arkanoid", "game_over", 7, time.Minute)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{
		"arkanoid_sessions_active 1",
		`arkanoid_rounds_total{board="arkanoid",reason="game_over"} 1`,
		"arkanoid_round_score_sum",
		"go_goroutines",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
