package arkanoid

import (
	"testing"

	"github.com/vovakirdan/arkanoid/internal/core"
)

func TestLastLifeLost(t *testing.T) {
	w := newTestWorld(t)
	w.Round.Lives = 1
	w.Round.Score = 7
	w.Balls = []Ball{flyingBall(100, 598, 0, 200)}

	summary := Frame(w, FrameInput{DT: frameDT})
	if summary == nil {
		t.Fatal("expected a game over summary")
	}
	if summary.Score != 7 || summary.Reason != EndGameOver {
		t.Errorf("summary = %+v", summary)
	}
	if got := summary.String(); got != "Game Over! Your score: 7" {
		t.Errorf("String() = %q", got)
	}

	// Fully re-initialized
	if len(w.Balls) != 1 || !w.Balls[0].Docked || !w.Balls[0].Vel.IsZero() {
		t.Errorf("expected one docked idle ball, got %+v", w.Balls)
	}
	if w.Round.Lives != 3 || w.Round.Score != 0 {
		t.Errorf("round not reset: %+v", w.Round)
	}
	if w.Round.Phase != PhaseAwaitingServe || !w.Round.ServePending {
		t.Errorf("new round should await the serve, phase = %v", w.Round.Phase)
	}
	if w.Rounds != 2 || summary.Round != 1 {
		t.Errorf("Rounds = %d, summary.Round = %d", w.Rounds, summary.Round)
	}
	if w.IsBoardCleared() {
		t.Error("new field must have something to clear")
	}
}

func TestLifeLostRespawns(t *testing.T) {
	w := newTestWorld(t)
	w.Round.Score = 4
	w.Balls = []Ball{flyingBall(100, 598, 0, 200)}

	if s := Frame(w, FrameInput{DT: frameDT}); s != nil {
		t.Fatalf("unexpected summary %v", s)
	}
	if w.Round.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", w.Round.Lives)
	}
	if w.Round.Score != 4 {
		t.Errorf("Score = %d, losing a life keeps the score", w.Round.Score)
	}
	if len(w.Balls) != 1 || !w.Balls[0].Docked {
		t.Fatalf("expected one docked ball, got %+v", w.Balls)
	}
	if want := (core.Vec2{X: w.Paddle.CenterX(), Y: w.Paddle.Pos.Y - 10}); w.Balls[0].Pos != want {
		t.Errorf("respawned at %+v, expected %+v", w.Balls[0].Pos, want)
	}
	if w.Round.Phase != PhaseAwaitingServe || !w.Round.Sticky || !w.Round.ServePending {
		t.Errorf("respawn should await a serve: %+v", w.Round)
	}
}

func TestBoardCleared(t *testing.T) {
	w := newTestWorld(t)
	w.Round.Score = 12
	w.Blocks = []Block{blockAt(0, 0, Indestructible, -1), blockAt(80, 0, Destructible, 1)}
	w.Balls = []Ball{flyingBall(400, 300, 0, -100)}

	if s := StepLifecycle(w, OutcomeNone); s != nil {
		t.Fatal("board with a breakable block is not cleared")
	}

	w.HitBlock(&w.Blocks[1])
	s := StepLifecycle(w, OutcomeNone)
	if s == nil {
		t.Fatal("expected a summary once the board is cleared")
	}
	if s.Reason != EndCleared || s.Score != 13 {
		t.Errorf("summary = %+v", s)
	}
	if s.String() != "Game Over! Your score: 13" {
		t.Errorf("String() = %q", s.String())
	}
	if w.Round.Score != 0 || len(w.Balls) != 1 {
		t.Error("world should be reset after clearing the board")
	}
}

func TestIsBoardCleared(t *testing.T) {
	destroyed := blockAt(0, 0, Destructible, 0)
	destroyed.Destroyed = true

	tests := []struct {
		name     string
		blocks   []Block
		expected bool
	}{
		{"empty", nil, true},
		{"only indestructible", []Block{blockAt(0, 0, Indestructible, -1)}, true},
		{"destroyed and indestructible", []Block{destroyed, blockAt(80, 0, Indestructible, -1)}, true},
		{"intact destructible", []Block{destroyed, blockAt(80, 0, Destructible, 2)}, false},
		{"intact speed-up", []Block{blockAt(80, 0, SpeedUp, 1)}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := &World{Blocks: tc.blocks}
			if got := w.IsBoardCleared(); got != tc.expected {
				t.Errorf("IsBoardCleared() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestLaunch(t *testing.T) {
	w := NewWorld(newTestWorld(t).cfg, NewRNG(9))

	if !Launch(w) {
		t.Fatal("launch with a docked ball should succeed")
	}
	b := w.Balls[0]
	if b.Docked || b.Vel != (core.Vec2{X: 200, Y: -200}) {
		t.Errorf("launched ball = %+v", b)
	}
	if w.Round.Phase != PhaseInPlay || w.Round.Sticky || w.Round.ServePending {
		t.Errorf("round after launch = %+v", w.Round)
	}

	if Launch(w) {
		t.Error("launch without a docked ball must be a no-op")
	}
	if w.Balls[0].Vel != b.Vel {
		t.Error("second launch changed the velocity")
	}
}
