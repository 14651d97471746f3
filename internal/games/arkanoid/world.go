// Package arkanoid implements the brick breaker simulation and its adapter
// to the game registry.
//
// The simulation is a World value advanced by Frame: input first, then
// StepPhysics, then StepLifecycle. It has no I/O and no goroutines; every
// random decision goes through the World's RNG so a seeded World replays
// exactly.
package arkanoid

import (
	"math"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// Paddle is the player's bat. Pos is the top-left corner.
type Paddle struct {
	Pos    core.Vec2
	Width  float64
	Height float64
	Speed  float64 // Keyboard speed, px/s
}

// Rect returns the paddle bounds.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.Pos.X, p.Pos.Y, p.Width, p.Height)
}

// CenterX returns the horizontal center of the paddle.
func (p Paddle) CenterX() float64 {
	return p.Pos.X + p.Width/2
}

// Ball is a single ball. A docked ball has zero velocity and rides the paddle.
type Ball struct {
	Pos    core.Vec2
	Radius float64
	Vel    core.Vec2
	Docked bool
	Held   int  // Frames spent caught by the sticky paddle
	Lost   bool // Fell out; removed when the frame's ball pass ends

	resume core.Vec2 // Bounce velocity restored when a sticky hold times out
}

// Circle returns the ball's collision shape.
func (b Ball) Circle() core.Circle {
	return core.Circle{C: b.Pos, R: b.Radius}
}

func (b *Ball) integrate(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Block is one cell of the field.
type Block struct {
	Rect      core.Rect
	Type      BlockType
	Health    int
	Destroyed bool
}

// Bonus is a falling pickup.
type Bonus struct {
	Rect   core.Rect
	Type   BonusType
	Active bool
}

// Phase is the round life-cycle state.
type Phase int

const (
	PhaseAwaitingServe Phase = iota // Ball docked, waiting for launch
	PhaseInPlay                     // Normal physics
	PhaseBallLost                   // Transient: resolved within the frame
	PhaseGameOver                   // Transient: the world resets within the frame
	PhaseRoundCleared               // Transient: the world resets within the frame
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingServe:
		return "serve"
	case PhaseInPlay:
		return "playing"
	case PhaseBallLost:
		return "ball-lost"
	case PhaseGameOver:
		return "game-over"
	case PhaseRoundCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Round is the score and modifier record of the current round.
type Round struct {
	Score        int
	Lives        int
	Sticky       bool // Paddle catches balls on contact
	ServePending bool // Docked ball waits for the launch trigger
	BottomSave   bool // Bottom edge bounces once
	Phase        Phase
}

// World is the complete simulation state. The caller owns it and passes it
// to Frame (or StepPhysics and StepLifecycle) once per frame.
type World struct {
	Field    core.Rect
	Paddle   Paddle
	Balls    []Ball
	Blocks   []Block
	Bonuses  []Bonus
	Round    Round
	Strategy Strategy

	// Rounds counts rounds started since the world was created.
	Rounds int
	// Ticks counts physics steps in the current round.
	Ticks int

	cfg        config.ArkanoidConfig
	rng        RNG
	difficulty *config.DifficultyManager
}

// NewWorld creates a world and starts the first round.
func NewWorld(cfg config.ArkanoidConfig, rng RNG) *World {
	w := &World{
		cfg:        cfg,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	w.Reset()
	return w
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.ArkanoidConfig {
	return w.cfg
}

// Reset re-initializes every entity and the round record, generating a new field.
func (w *World) Reset() {
	cfg := w.cfg
	w.Field = core.NewRect(0, 0, cfg.Field.Width, cfg.Field.Height)
	w.Paddle = Paddle{
		Pos: core.Vec2{
			X: cfg.Field.Width/2 - cfg.Paddle.Width/2,
			Y: cfg.Field.Height - cfg.Paddle.BottomOffset,
		},
		Width:  cfg.Paddle.Width,
		Height: cfg.Paddle.Height,
		Speed:  cfg.Paddle.Speed,
	}
	w.Balls = w.Balls[:0]
	w.Balls = append(w.Balls, w.dockedBall())
	w.Bonuses = w.Bonuses[:0]
	w.Blocks, w.Strategy = GenerateField(w.rng, cfg.Blocks)
	w.Round = Round{
		Lives:        cfg.Gameplay.Lives,
		Sticky:       true,
		ServePending: true,
		Phase:        PhaseAwaitingServe,
	}
	w.Rounds++
	w.Ticks = 0
}

// dockedBall returns an idle ball resting on the paddle center.
func (w *World) dockedBall() Ball {
	r := w.cfg.Ball.Radius
	return Ball{
		Pos:    core.Vec2{X: w.Paddle.CenterX(), Y: w.Paddle.Pos.Y - r},
		Radius: r,
		Docked: true,
	}
}

// launchVelocity is the serve velocity scaled by the difficulty level.
func (w *World) launchVelocity() core.Vec2 {
	k := w.difficulty.LaunchScale(w.Round.Score, w.Ticks)
	return core.Vec2{X: w.cfg.Ball.LaunchVX, Y: w.cfg.Ball.LaunchVY}.Scale(k)
}

// LiveBalls returns the number of balls still in play.
func (w *World) LiveBalls() int {
	n := 0
	for i := range w.Balls {
		if !w.Balls[i].Lost {
			n++
		}
	}
	return n
}

// DockedBalls returns the number of docked live balls.
func (w *World) DockedBalls() int {
	n := 0
	for i := range w.Balls {
		if w.Balls[i].Docked && !w.Balls[i].Lost {
			n++
		}
	}
	return n
}

// LiveBlocks returns the number of non-destroyed blocks, Indestructible included.
func (w *World) LiveBlocks() int {
	n := 0
	for i := range w.Blocks {
		if !w.Blocks[i].Destroyed {
			n++
		}
	}
	return n
}

// ActiveBonuses returns the number of falling bonuses.
func (w *World) ActiveBonuses() int {
	n := 0
	for i := range w.Bonuses {
		if w.Bonuses[i].Active {
			n++
		}
	}
	return n
}

// IsBoardCleared reports whether every block is destroyed or Indestructible.
func (w *World) IsBoardCleared() bool {
	for i := range w.Blocks {
		b := &w.Blocks[i]
		if !b.Destroyed && b.Type.Breakable() {
			return false
		}
	}
	return true
}

// scaleBalls multiplies the velocity of every live ball by k.
func (w *World) scaleBalls(k float64) {
	for i := range w.Balls {
		b := &w.Balls[i]
		if b.Lost {
			continue
		}
		b.Vel = b.Vel.Scale(k)
		b.resume = b.resume.Scale(k)
	}
}

// clampPaddle keeps the paddle inside the field horizontally.
func (w *World) clampPaddle() {
	w.Paddle.Pos.X = core.ClampF(w.Paddle.Pos.X, 0, math.Max(0, w.Field.W-w.Paddle.Width))
}

// compactBalls drops balls marked lost. Called after the ball pass.
func (w *World) compactBalls() {
	n := 0
	for _, b := range w.Balls {
		if !b.Lost {
			w.Balls[n] = b
			n++
		}
	}
	w.Balls = w.Balls[:n]
}

// compactBonuses drops deactivated bonuses. Called after the bonus pass.
func (w *World) compactBonuses() {
	n := 0
	for _, b := range w.Bonuses {
		if b.Active {
			w.Bonuses[n] = b
			n++
		}
	}
	w.Bonuses = w.Bonuses[:n]
}
