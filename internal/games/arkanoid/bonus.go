package arkanoid

import (
	"math"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// ApplyBonus applies a caught bonus to the world. Size and speed effects are
// multiplicative, so repeated pickups compound.
func ApplyBonus(w *World, t BonusType) {
	cfg := w.cfg

	switch t {
	case BonusSizeUp:
		w.resizePaddle(cfg.Paddle.GrowFactor)
	case BonusSizeDown:
		w.resizePaddle(cfg.Paddle.ShrinkFactor)
	case BonusSpeedUp:
		w.scaleBalls(cfg.Ball.SpeedUp)
	case BonusSpeedDown:
		w.scaleBalls(cfg.Ball.SpeedDown)
	case BonusSticky:
		w.Round.Sticky = true
	case BonusExtraLife:
		w.Round.Lives++
	case BonusExtraBall:
		w.spawnExtraBall()
	case BonusBottomSave:
		w.Round.BottomSave = true
	}
}

// resizePaddle scales the paddle width around its center and keeps it in
// the field. The width never exceeds the field. Docked balls follow the
// center if clamping moved it.
func (w *World) resizePaddle(k float64) {
	center := w.Paddle.CenterX()
	w.Paddle.Width = math.Min(w.Paddle.Width*k, w.Field.W)
	w.Paddle.Pos.X = center - w.Paddle.Width/2
	w.clampPaddle()

	if shift := w.Paddle.CenterX() - center; shift != 0 {
		for i := range w.Balls {
			if w.Balls[i].Docked {
				w.Balls[i].Pos.X += shift
			}
		}
	}
}

// spawnExtraBall adds a moving ball above the paddle center. It ends the
// sticky modifier and sends off every docked ball so play never stalls
// with a ball nobody can launch.
func (w *World) spawnExtraBall() {
	v := w.launchVelocity()
	w.Round.Sticky = false
	w.releaseDocked(v)

	r := w.cfg.Ball.Radius
	w.Balls = append(w.Balls, Ball{
		Pos:    core.Vec2{X: w.Paddle.CenterX(), Y: w.Paddle.Pos.Y - r},
		Radius: r,
		Vel:    v,
	})
}

// releaseDocked gives every docked ball the velocity v and starts play.
// It reports how many balls were released.
func (w *World) releaseDocked(v core.Vec2) int {
	n := 0
	for i := range w.Balls {
		b := &w.Balls[i]
		if !b.Docked || b.Lost {
			continue
		}
		b.Vel = v
		b.resume = core.Vec2{}
		b.Docked = false
		b.Held = 0
		n++
	}
	if n > 0 {
		w.Round.ServePending = false
		w.Round.Phase = PhaseInPlay
	}
	return n
}
