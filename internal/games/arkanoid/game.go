package arkanoid

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	CrackChar  = '╎'
	HeartChar  = '♥'
)

// GameID is the board of the default game; presets add a suffix.
const GameID = "arkanoid"

// configPath stores the custom config path set via CLI
var configPath string

// logger receives round summaries; silent until SetLogger is called.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// BoardID returns the score board of a difficulty preset.
func BoardID(preset config.DifficultyPreset) string {
	if preset == "" {
		return GameID
	}
	return GameID + "_" + string(preset)
}

// Boards lists every score board, the default first.
func Boards() []string {
	boards := []string{GameID}
	for _, p := range config.Presets {
		boards = append(boards, BoardID(p))
	}
	return boards
}

// Game adapts a World to the registry.Game interface for the terminal.
type Game struct {
	preset config.DifficultyPreset
	world  *World
	log    *log.Logger

	runtime     core.RuntimeConfig
	paused      bool
	last        *Summary
	showSummary bool // Last summary stays up until the next serve

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game with the given difficulty preset ("" for none).
func New(preset config.DifficultyPreset) *Game {
	return &Game{preset: preset, minScreenW: 40, minScreenH: 16}
}

// ID returns the score board this game records to.
func (g *Game) ID() string {
	return BoardID(g.preset)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.preset == "" {
		return "Arkanoid"
	}
	return fmt.Sprintf("Arkanoid (%s)", g.preset)
}

// Reset loads the configuration and starts a fresh world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger.With("board", g.ID())

	cfg, err := config.LoadArkanoid(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultArkanoidConfig()
	}
	config.ApplyArkanoidPreset(&cfg, g.preset)

	g.world = NewWorld(cfg, NewRNG(runtime.Seed))
	g.paused = false
	g.last = nil
	g.showSummary = false
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
	g.log.Debug("round started", "round", g.world.Rounds, "field", g.world.Strategy, "blocks", len(g.world.Blocks))
}

// Resize adapts the game to a new screen size. The world is kept; only the
// pointer mapping and the too-small check change.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// World exposes the simulation, mainly for tests and the raster renderer.
func (g *Game) World() *World {
	return g.world
}

// LastSummary returns the most recent round summary, or nil.
func (g *Game) LastSummary() *Summary {
	return g.last
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.world.Reset()
		g.paused = false
		g.showSummary = false
		g.log.Debug("round restarted", "round", g.world.Rounds, "field", g.world.Strategy)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	summary := Frame(g.world, g.frameInput(in))
	if summary == nil {
		if g.world.Round.Phase == PhaseInPlay {
			g.showSummary = false
		}
		return core.StepResult{State: g.State()}
	}

	g.last = summary
	g.showSummary = true
	g.log.Info(summary.String(),
		"reason", summary.Reason,
		"round", summary.Round,
		"field", summary.Strategy,
		"ticks", summary.Ticks,
	)
	g.log.Debug("round started", "round", g.world.Rounds, "field", g.world.Strategy, "blocks", len(g.world.Blocks))

	return core.StepResult{
		State:      g.State(),
		RoundOver:  true,
		FinalScore: summary.Score,
		Reason:     string(summary.Reason),
		RoundTicks: summary.Ticks,
	}
}

// frameInput converts terminal input into world input. The pointer column
// maps to the world x at the center of that column.
func (g *Game) frameInput(in core.InputFrame) FrameInput {
	dt := in.DT
	if dt <= 0 && g.runtime.TickRate > 0 {
		dt = 1 / float64(g.runtime.TickRate)
	}

	fi := FrameInput{
		DT:     dt,
		Left:   in.Has(core.ActionLeft),
		Right:  in.Has(core.ActionRight),
		Launch: in.Has(core.ActionJump),
	}
	if in.HasPointer && g.runtime.ScreenW > 0 {
		fi.HasTarget = true
		fi.TargetX = (float64(in.PointerX) + 0.5) * g.world.Field.W / float64(g.runtime.ScreenW)
	}
	return fi
}

// State returns the current game state. Rounds restart on their own, so the
// game never reports itself over.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.world.Round.Score,
		Lives:  g.world.Round.Lives,
		Paused: g.paused,
	}
}

// Render draws the current game state to the screen. Row 0 is the HUD and
// the field is scaled into the rows below it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	snap := g.world.Snapshot()
	v := newViewport(snap.Field, dst.Width(), dst.Height())

	g.renderHUD(dst, &snap)
	renderBlocks(dst, v, snap.Blocks)
	renderBonuses(dst, v, snap.Bonuses)
	renderPaddle(dst, v, snap.Paddle)
	renderBalls(dst, v, snap.Balls, snap.Paddle)
	g.renderOverlay(dst, &snap)
}

// viewport maps world coordinates to screen cells below the HUD row.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(field core.Rect, w, h int) viewport {
	return viewport{
		sx:  float64(w) / field.W,
		sy:  float64(h-1) / field.H,
		top: 1,
	}
}

func (v viewport) col(x float64) int { return int(x * v.sx) }
func (v viewport) row(y float64) int { return v.top + int(y*v.sy) }

// cells returns the cell span of a world rectangle, at least one cell each way.
func (v viewport) cells(r core.Rect) core.CellRect {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1, y1 := v.col(r.Right()), v.row(r.Bottom())
	return core.NewCellRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// renderHUD draws score, modifiers and lives on the top row.
func (g *Game) renderHUD(dst *core.Screen, snap *Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))

	var mods []string
	if snap.Sticky && snap.Phase == PhaseInPlay {
		mods = append(mods, "STICKY")
	}
	if snap.BottomSave {
		mods = append(mods, "SAVE")
	}
	if g.paused {
		mods = append(mods, "PAUSED")
	}
	if len(mods) > 0 {
		dst.DrawTextCentered(0, strings.Join(mods, " "))
	}

	hearts := strings.Repeat(string(HeartChar), snap.Lives)
	if snap.Lives > 5 {
		hearts = fmt.Sprintf("%c x%d", HeartChar, snap.Lives)
	}
	dst.DrawTextColored(dst.Width()-len([]rune(hearts))-1, 0, hearts, core.ColorRose)
}

// renderBlocks fills each intact block and draws one crack per health point.
func renderBlocks(dst *core.Screen, v viewport, blocks []BlockView) {
	for _, b := range blocks {
		r := v.cells(b.Rect)
		// Leave the last column empty so neighbors stay apart
		if r.W > 2 {
			r.W--
		}
		dst.DrawRectColored(r, b.Type.Glyph(), b.Color)

		for k := 1; k <= b.Health && r.W > 2; k++ {
			x := r.X + k*r.W/(b.Health+1)
			for y := r.Y; y < r.Bottom(); y++ {
				dst.SetColored(x, y, CrackChar, b.Color)
			}
		}
	}
}

func renderBonuses(dst *core.Screen, v viewport, bonuses []BonusView) {
	for _, b := range bonuses {
		c := b.Rect.Center()
		dst.SetColored(v.col(c.X), v.row(c.Y), b.Glyph, b.Color)
	}
}

func renderPaddle(dst *core.Screen, v viewport, paddle core.Rect) {
	r := v.cells(paddle)
	r.H = 1
	dst.DrawRectColored(r, PaddleChar, core.ColorBrightWhite)
}

// renderBalls draws balls above the paddle row while they are above the
// paddle, which the cell grid is too coarse to show otherwise.
func renderBalls(dst *core.Screen, v viewport, balls []core.Circle, paddle core.Rect) {
	paddleRow := v.row(paddle.Y)
	for _, b := range balls {
		row := v.row(b.C.Y)
		if row >= paddleRow && b.C.Y < paddle.Y {
			row = paddleRow - 1
		}
		dst.SetColored(v.col(b.C.X), row, BallChar, core.ColorBrightWhite)
	}
}

// renderOverlay draws state messages on the bottom row or in a box.
func (g *Game) renderOverlay(dst *core.Screen, snap *Snapshot) {
	if g.paused {
		drawCenteredBox(dst, "PAUSED", "P to resume, Esc for menu")
		return
	}

	if snap.Phase != PhaseAwaitingServe {
		return
	}
	if g.showSummary && g.last != nil {
		drawCenteredBox(dst, g.last.String(), "Click or press SPACE to play again")
		return
	}
	dst.DrawTextCentered(dst.Height()-1, "Click or press SPACE to launch")
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))
	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewCellRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewCellRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-titleW)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}

// Register one game per score board
func init() {
	registry.Register(GameID, func() registry.Game {
		return New("")
	})
	for _, p := range config.Presets {
		preset := p
		registry.Register(BoardID(preset), func() registry.Game {
			return New(preset)
		})
	}
}
