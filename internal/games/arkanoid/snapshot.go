package arkanoid

import (
	"math"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Snapshot is a read-only copy of everything a renderer draws.
// It shares no memory with the World it was taken from.
type Snapshot struct {
	Field   core.Rect
	Paddle  core.Rect
	Balls   []core.Circle
	Blocks  []BlockView
	Bonuses []BonusView

	Score      int
	Lives      int
	Phase      Phase
	Sticky     bool
	BottomSave bool
	Round      int
}

// BlockView is an intact block. Health drives the crack decoration.
type BlockView struct {
	Rect   core.Rect
	Type   BlockType
	Health int
	Color  core.Color
}

// BonusView is a falling bonus.
type BonusView struct {
	Rect  core.Rect
	Type  BonusType
	Color core.Color
	Glyph rune
}

// Snapshot returns the current state for drawing.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Field:      w.Field,
		Paddle:     w.Paddle.Rect(),
		Balls:      make([]core.Circle, 0, len(w.Balls)),
		Blocks:     make([]BlockView, 0, len(w.Blocks)),
		Bonuses:    make([]BonusView, 0, len(w.Bonuses)),
		Score:      w.Round.Score,
		Lives:      w.Round.Lives,
		Phase:      w.Round.Phase,
		Sticky:     w.Round.Sticky,
		BottomSave: w.Round.BottomSave,
		Round:      w.Rounds,
	}

	for i := range w.Balls {
		if !w.Balls[i].Lost {
			snap.Balls = append(snap.Balls, w.Balls[i].Circle())
		}
	}
	for i := range w.Blocks {
		b := &w.Blocks[i]
		if b.Destroyed {
			continue
		}
		snap.Blocks = append(snap.Blocks, BlockView{
			Rect:   b.Rect,
			Type:   b.Type,
			Health: b.Health,
			Color:  b.Type.Color(),
		})
	}
	for i := range w.Bonuses {
		b := &w.Bonuses[i]
		if !b.Active {
			continue
		}
		snap.Bonuses = append(snap.Bonuses, BonusView{
			Rect:  b.Rect,
			Type:  b.Type,
			Color: b.Type.Color(),
			Glyph: b.Type.Glyph(),
		})
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	var h uint64
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixI := func(i int) { mix(uint64(i)) } //#nosec G115 -- hash computation
	mixRect := func(r core.Rect) {
		mixF(r.X)
		mixF(r.Y)
		mixF(r.W)
		mixF(r.H)
	}

	mixRect(snap.Paddle)
	mixI(snap.Score)
	mixI(snap.Lives)
	mixI(int(snap.Phase))
	mixI(snap.Round)

	for _, c := range snap.Balls {
		mixF(c.C.X)
		mixF(c.C.Y)
		mixF(c.R)
	}
	for _, b := range snap.Blocks {
		mixRect(b.Rect)
		mixI(int(b.Type))
		mixI(b.Health)
	}
	for _, b := range snap.Bonuses {
		mixRect(b.Rect)
		mixI(int(b.Type))
	}
	return h
}
