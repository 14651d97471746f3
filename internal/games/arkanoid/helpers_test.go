package arkanoid

import (
	"math"
	"testing"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// scriptRNG returns queued values (reduced modulo n), then zeros.
type scriptRNG struct {
	vals []int
	i    int
}

func (s *scriptRNG) IntN(n int) int {
	if s.i >= len(s.vals) {
		return 0
	}
	v := s.vals[s.i] % n
	s.i++
	return v
}

// constRNG always returns the same value (reduced modulo n).
type constRNG int

func (c constRNG) IntN(n int) int { return int(c) % n }

const frameDT = 0.016

// newTestWorld returns a world in play with no sticky paddle, no serve
// pending, no balls and one breakable block far from the action so the
// board never counts as cleared.
func newTestWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld(config.DefaultArkanoidConfig(), NewRNG(42))
	w.Balls = nil
	w.Bonuses = nil
	w.Blocks = []Block{keeperBlock()}
	w.Round.Sticky = false
	w.Round.ServePending = false
	w.Round.Phase = PhaseInPlay
	return w
}

func keeperBlock() Block {
	return Block{Rect: core.NewRect(720, 0, 78, 28), Type: Destructible, Health: 2}
}

func flyingBall(x, y, vx, vy float64) Ball {
	return Ball{Pos: core.Vec2{X: x, Y: y}, Radius: 10, Vel: core.Vec2{X: vx, Y: vy}}
}

func blockAt(x, y float64, t BlockType, health int) Block {
	return Block{Rect: core.NewRect(x, y, 78, 28), Type: t, Health: health}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
