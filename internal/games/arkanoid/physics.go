package arkanoid

import (
	"github.com/vovakirdan/arkanoid/internal/core"
)

// Outcome is what the physics step reports to the round life-cycle.
type Outcome int

const (
	OutcomeNone     Outcome = iota
	OutcomeBallLost         // The last live ball fell out
)

// StepPhysics advances balls and bonuses by dt seconds.
//
// Each ball is resolved in order wall, paddle, blocks, bottom edge so later
// checks see the position settled by earlier ones. Lost balls are only
// marked during the pass and removed afterwards.
func StepPhysics(w *World, dt float64) Outcome {
	if dt < 0 {
		dt = 0
	}
	w.Ticks++

	out := OutcomeNone
	for i := range w.Balls {
		b := &w.Balls[i]
		if b.Lost {
			continue
		}
		if b.Docked {
			w.stepDocked(b)
			continue
		}

		b.integrate(dt)
		w.collideWalls(b, dt)
		if w.collidePaddle(b) && b.Docked {
			continue
		}
		w.collideBlocks(b, dt)
		if w.collideBottom(b) {
			out = OutcomeBallLost
		}
	}
	w.compactBalls()

	w.stepBonuses(dt)
	return out
}

// stepDocked counts the frames a ball caught by the sticky paddle has been
// held and lets it go after StickyReleaseFrames, which also ends the sticky
// modifier. Riding along with the paddle happens in movePaddle.
func (w *World) stepDocked(b *Ball) {
	if w.Round.ServePending {
		return
	}

	b.Held++
	if b.Held <= w.cfg.Gameplay.StickyReleaseFrames {
		return
	}

	b.Vel = b.resume
	if b.Vel.IsZero() {
		b.Vel = w.launchVelocity()
	}
	b.resume = core.Vec2{}
	b.Docked = false
	b.Held = 0
	w.Round.Sticky = false
}

// collideWalls reflects off the left, right and top edges. Only a ball
// heading into a wall is reflected, so a ball that ends a frame past the
// edge is not flipped back in the next one.
func (w *World) collideWalls(b *Ball, dt float64) {
	flipped := false
	if (b.Pos.X-b.Radius < w.Field.X && b.Vel.X < 0) ||
		(b.Pos.X+b.Radius > w.Field.Right() && b.Vel.X > 0) {
		b.Vel.X = -b.Vel.X
		flipped = true
	}
	if b.Pos.Y-b.Radius < w.Field.Y && b.Vel.Y < 0 {
		b.Vel.Y = -b.Vel.Y
		flipped = true
	}
	if flipped {
		b.integrate(dt)
	}
}

// collidePaddle bounces a descending ball off the paddle and puts it back
// on the paddle surface. With the sticky modifier the ball docks instead.
// Reports whether the paddle was hit.
func (w *World) collidePaddle(b *Ball) bool {
	if b.Vel.Y <= 0 || !b.Circle().OverlapsRect(w.Paddle.Rect(), true) {
		return false
	}

	b.Vel.Y = -b.Vel.Y
	b.Pos.Y = w.Paddle.Pos.Y - b.Radius

	if w.Round.Sticky {
		b.resume = b.Vel
		b.Vel = core.Vec2{}
		b.Docked = true
		b.Held = 0
	}
	return true
}

// collideBlocks reflects off every intact block the ball overlaps.
func (w *World) collideBlocks(b *Ball, dt float64) {
	for j := range w.Blocks {
		blk := &w.Blocks[j]
		if blk.Destroyed || !b.Circle().OverlapsRect(blk.Rect, false) {
			continue
		}

		dx, dy := core.Penetration(b.Circle(), blk.Rect)
		b.Vel = core.Reflect(b.Vel, core.ReflectAxis(dx, dy))
		b.integrate(dt)
		w.HitBlock(blk)
	}
}

// collideBottom handles a ball leaving through the bottom edge. It reports
// true when that ball was the last one in play.
func (w *World) collideBottom(b *Ball) bool {
	if b.Pos.Y < w.Field.Bottom() || b.Vel.Y < 0 {
		return false
	}

	switch {
	case w.Round.BottomSave:
		w.Round.BottomSave = false
		b.Vel.Y = -b.Vel.Y
		return false
	case w.LiveBalls() > 1:
		b.Lost = true
		return false
	default:
		return true
	}
}

// HitBlock applies one ball hit to a block. Indestructible blocks ignore
// hits. Every other hit scores, and a SpeedUp block speeds up all balls
// instead of spawning a bonus.
func (w *World) HitBlock(blk *Block) {
	if blk.Destroyed || !blk.Type.Breakable() {
		return
	}

	blk.Health--
	w.Round.Score += w.cfg.Gameplay.PointsPerHit
	if blk.Health <= 0 {
		blk.Destroyed = true
	}

	if blk.Type == SpeedUp {
		w.scaleBalls(w.cfg.Ball.SpeedUp)
		return
	}

	if blk.Destroyed && roll(w.rng) < w.cfg.Bonus.SpawnChance {
		w.spawnBonus(blk.Rect.Center(), BonusType(w.rng.IntN(int(BonusCount))))
	}
}

// spawnBonus drops a bonus centered on c.
func (w *World) spawnBonus(c core.Vec2, t BonusType) {
	size := w.cfg.Bonus.Size
	w.Bonuses = append(w.Bonuses, Bonus{
		Rect:   core.NewRect(c.X-size/2, c.Y-size/2, size, size),
		Type:   t,
		Active: true,
	})
}

// stepBonuses moves falling bonuses and applies the ones the paddle catches.
func (w *World) stepBonuses(dt float64) {
	for i := range w.Bonuses {
		bn := &w.Bonuses[i]
		if !bn.Active {
			continue
		}

		bn.Rect.Y += w.cfg.Bonus.FallSpeed * dt
		if bn.Rect.Overlaps(w.Paddle.Rect(), true) {
			bn.Active = false
			ApplyBonus(w, bn.Type)
			continue
		}
		if bn.Rect.Y > w.Field.Bottom() {
			bn.Active = false
		}
	}
	w.compactBonuses()
}
