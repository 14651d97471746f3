package arkanoid

// FrameInput is the per-frame input of the simulation.
type FrameInput struct {
	DT float64 // Seconds since the previous frame

	// TargetX is an absolute paddle center in world units. It overrides the
	// digital movement when HasTarget is set.
	TargetX   float64
	HasTarget bool

	Left, Right bool // Digital movement at the paddle speed
	Launch      bool // Edge-triggered serve
}

// Frame advances the world by one frame: input, physics, then the round
// life-cycle. It returns a summary when the frame ended a round.
func Frame(w *World, in FrameInput) *Summary {
	dt := in.DT
	if dt < 0 {
		dt = 0
	}

	w.movePaddle(in, dt)
	if in.Launch {
		Launch(w)
	}
	return StepLifecycle(w, StepPhysics(w, dt))
}

// movePaddle applies digital movement, then the absolute target, then
// clamps. Docked balls are carried by the same delta before any launch, so
// a serve leaves from where the paddle is now.
func (w *World) movePaddle(in FrameInput, dt float64) {
	start := w.Paddle.Pos.X
	if in.Left {
		w.Paddle.Pos.X -= w.Paddle.Speed * dt
	}
	if in.Right {
		w.Paddle.Pos.X += w.Paddle.Speed * dt
	}
	if in.HasTarget {
		w.Paddle.Pos.X = in.TargetX - w.Paddle.Width/2
	}
	w.clampPaddle()

	dx := w.Paddle.Pos.X - start
	for i := range w.Balls {
		if b := &w.Balls[i]; b.Docked && !b.Lost {
			b.Pos.X += dx
		}
	}
}

// Autopilot returns input that keeps the paddle under the lowest
// descending ball and serves whenever a ball is docked. Used by the
// headless simulator.
func Autopilot(w *World) FrameInput {
	in := FrameInput{HasTarget: true, TargetX: w.Paddle.CenterX()}

	lowest := -1.0
	for i := range w.Balls {
		b := &w.Balls[i]
		if b.Lost {
			continue
		}
		if b.Docked {
			in.Launch = true
			continue
		}
		if b.Vel.Y > 0 && b.Pos.Y > lowest {
			lowest = b.Pos.Y
			in.TargetX = b.Pos.X
		}
	}
	return in
}
