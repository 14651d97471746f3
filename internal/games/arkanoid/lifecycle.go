package arkanoid

import "fmt"

// EndReason tells why a round ended.
type EndReason string

const (
	EndGameOver EndReason = "game_over" // Last life lost
	EndCleared  EndReason = "cleared"   // Every breakable block destroyed
)

// Summary describes a finished round.
type Summary struct {
	Score    int
	Reason   EndReason
	Round    int      // 1-based round number within the world's lifetime
	Strategy Strategy // Layout the round was played on
	Ticks    int
}

// String returns the end-of-round line. Clearing the board reads the same as
// losing: both end the round.
func (s Summary) String() string {
	return fmt.Sprintf("Game Over! Your score: %d", s.Score)
}

// Launch serves every docked ball. It does nothing unless a ball is docked.
func Launch(w *World) bool {
	if w.DockedBalls() == 0 {
		return false
	}
	w.Round.Sticky = false
	w.releaseDocked(w.launchVelocity())
	return true
}

// StepLifecycle resolves the physics outcome. A lost last ball costs a life
// and either respawns a docked ball or ends the round; a cleared board also
// ends it. A finished round is summarized and the world is reset before
// returning, so the caller always gets a playable world back.
func StepLifecycle(w *World, out Outcome) *Summary {
	if out == OutcomeBallLost {
		w.Round.Phase = PhaseBallLost
		w.Round.Lives--
		if w.Round.Lives <= 0 {
			w.Round.Lives = 0
			w.Round.Phase = PhaseGameOver
			return w.finish(EndGameOver)
		}
		w.respawn()
	}

	if w.IsBoardCleared() {
		w.Round.Phase = PhaseRoundCleared
		return w.finish(EndCleared)
	}
	return nil
}

// respawn replaces all balls with one docked ball and waits for a serve.
func (w *World) respawn() {
	w.Balls = w.Balls[:0]
	w.Balls = append(w.Balls, w.dockedBall())
	w.Round.Sticky = true
	w.Round.ServePending = true
	w.Round.Phase = PhaseAwaitingServe
}

func (w *World) finish(reason EndReason) *Summary {
	s := &Summary{
		Score:    w.Round.Score,
		Reason:   reason,
		Round:    w.Rounds,
		Strategy: w.Strategy,
		Ticks:    w.Ticks,
	}
	w.Reset()
	return s
}
