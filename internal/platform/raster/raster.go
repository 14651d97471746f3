// Package raster draws arkanoid snapshots as images at field resolution.
// The headless simulator uses it to save the final frame of a run.
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

const (
	background = "#000000"
	foreground = "#FFFFFF"
	crackColor = "#202020"
	hudHeight  = 20.0
)

// Render draws the snapshot scaled by scale (1 = one pixel per world unit).
// A HUD strip with score and lives sits above the field.
func Render(snap *arkanoid.Snapshot, scale float64) image.Image {
	if scale <= 0 {
		scale = 1
	}
	w := int(snap.Field.W * scale)
	h := int((snap.Field.H + hudHeight) * scale)
	dc := gg.NewContext(w, h)

	dc.SetHexColor(background)
	dc.Clear()

	dc.Push()
	dc.Scale(scale, scale)
	drawHUD(dc, snap)
	dc.Translate(0, hudHeight)
	drawBlocks(dc, snap.Blocks)
	drawBonuses(dc, snap.Bonuses)
	drawPaddle(dc, snap.Paddle)
	drawBalls(dc, snap.Balls)
	dc.Pop()

	return dc.Image()
}

// WritePNG encodes the rendered snapshot as PNG.
func WritePNG(w io.Writer, snap *arkanoid.Snapshot, scale float64) error {
	dc := gg.NewContextForImage(Render(snap, scale))
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: cannot encode png: %w", err)
	}
	return nil
}

// SavePNG writes the rendered snapshot to path.
func SavePNG(path string, snap *arkanoid.Snapshot, scale float64) error {
	if err := gg.SavePNG(path, Render(snap, scale)); err != nil {
		return fmt.Errorf("raster: cannot save %s: %w", path, err)
	}
	return nil
}

func setColor(dc *gg.Context, c core.Color) {
	if hex := c.Hex(); hex != "" {
		dc.SetHexColor(hex)
		return
	}
	dc.SetHexColor(foreground)
}

func drawHUD(dc *gg.Context, snap *arkanoid.Snapshot) {
	dc.SetHexColor(foreground)
	dc.DrawStringAnchored(fmt.Sprintf("Score: %d", snap.Score), 6, hudHeight/2, 0, 0.5)

	setColor(dc, core.ColorRose)
	for i := range snap.Lives {
		x := snap.Field.W - 12 - float64(i)*16
		dc.DrawCircle(x, hudHeight/2, 5)
		dc.Fill()
	}
}

// drawBlocks fills each block and draws one crack line per health point.
func drawBlocks(dc *gg.Context, blocks []arkanoid.BlockView) {
	for _, b := range blocks {
		r := b.Rect
		setColor(dc, b.Color)
		dc.DrawRectangle(r.X, r.Y, r.W, r.H)
		dc.Fill()

		if b.Health <= 0 {
			continue
		}
		dc.SetHexColor(crackColor)
		dc.SetLineWidth(2)
		for k := 1; k <= b.Health; k++ {
			x := r.X + float64(k)*r.W/float64(b.Health+1)
			dc.DrawLine(x, r.Y+4, x, r.Bottom()-4)
			dc.Stroke()
		}
	}
}

func drawBonuses(dc *gg.Context, bonuses []arkanoid.BonusView) {
	for _, b := range bonuses {
		setColor(dc, b.Color)
		dc.DrawRoundedRectangle(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, b.Rect.W/4)
		dc.Fill()
	}
}

func drawPaddle(dc *gg.Context, paddle core.Rect) {
	dc.SetHexColor(foreground)
	dc.DrawRectangle(paddle.X, paddle.Y, paddle.W, paddle.H)
	dc.Fill()
}

func drawBalls(dc *gg.Context, balls []core.Circle) {
	dc.SetHexColor(foreground)
	for _, b := range balls {
		dc.DrawCircle(b.C.X, b.C.Y, b.R)
		dc.Fill()
	}
}
