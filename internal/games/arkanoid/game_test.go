package arkanoid

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

// newTestGame returns a reset game on built-in defaults, ignoring any
// config file on the machine.
func newTestGame(t *testing.T, w, h int) *Game {
	t.Helper()
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	g := New("")
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 11})
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.DT = frameDT
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestBoardsAreRegistered(t *testing.T) {
	boards := Boards()
	if len(boards) != 5 || boards[0] != GameID {
		t.Fatalf("Boards() = %v", boards)
	}

	for _, id := range boards {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestTitle(t *testing.T) {
	if got := New("").Title(); got != "Arkanoid" {
		t.Errorf("Title() = %q", got)
	}
	if got := New("hard").Title(); got != "Arkanoid (hard)" {
		t.Errorf("Title() = %q", got)
	}
}

func TestStepLaunch(t *testing.T) {
	g := newTestGame(t, 80, 24)

	g.Step(input())
	if g.World().DockedBalls() != 1 {
		t.Fatal("ball should stay docked without input")
	}

	g.Step(input(core.ActionJump))
	if g.World().DockedBalls() != 0 || g.World().Round.Phase != PhaseInPlay {
		t.Error("jump should serve the ball")
	}
}

func TestStepPointer(t *testing.T) {
	tests := []struct {
		name     string
		col      int
		expected float64
	}{
		{"left column", 0, 0},
		{"center", 40, 355},
		{"right column", 79, 700},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 80, 24)
			in := input()
			in.SetPointer(tc.col, 10)
			g.Step(in)

			if got := g.World().Paddle.Pos.X; got != tc.expected {
				t.Errorf("paddle x = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestStepPause(t *testing.T) {
	g := newTestGame(t, 80, 24)

	res := g.Step(input(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause action should pause")
	}

	g.Step(input(core.ActionJump))
	if g.World().DockedBalls() != 1 {
		t.Error("paused game must not launch")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	res = g.Step(input(core.ActionPause))
	if res.State.Paused {
		t.Error("second pause action should resume")
	}
}

func TestStepRestart(t *testing.T) {
	g := newTestGame(t, 80, 24)
	g.Step(input(core.ActionJump))
	g.World().Round.Score = 12

	res := g.Step(input(core.ActionRestart))
	if res.State.Score != 0 || g.World().Rounds != 2 {
		t.Errorf("restart: score %d, rounds %d", res.State.Score, g.World().Rounds)
	}
	if res.RoundOver {
		t.Error("restart is not a finished round")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 80, 24)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 0") {
		t.Errorf("HUD = %q, expected the score", hud)
	}
	if !strings.Contains(hud, "♥♥♥") {
		t.Errorf("HUD = %q, expected three hearts", hud)
	}
	if !strings.Contains(screen.Row(23), "SPACE to launch") {
		t.Errorf("bottom row = %q, expected the serve hint", screen.Row(23))
	}
	if !strings.ContainsRune(screen.String(), BallChar) {
		t.Error("ball not drawn")
	}
	if !strings.ContainsRune(screen.String(), PaddleChar) {
		t.Error("paddle not drawn")
	}
}

func TestRenderScreenTooSmall(t *testing.T) {
	g := newTestGame(t, 30, 10)

	g.Step(input(core.ActionJump))
	if g.World().Ticks != 0 {
		t.Error("game advanced on a screen that is too small")
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too-small message")
	}
}

func TestStepRoundOver(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(log.New(&buf))
	t.Cleanup(func() { SetLogger(nil) })

	g := newTestGame(t, 80, 24)
	w := g.World()
	w.Round.Score = 7
	w.Round.Lives = 1
	w.Round.Sticky = false
	w.Round.ServePending = false
	w.Round.Phase = PhaseInPlay
	w.Balls = []Ball{flyingBall(100, 599, 0, 200)}

	res := g.Step(input())

	if !res.RoundOver {
		t.Fatal("expected the round to end")
	}
	if res.FinalScore != 7 || res.Reason != string(EndGameOver) {
		t.Errorf("result = %+v", res)
	}
	if res.State.Score != 0 || res.State.Lives != 3 || res.State.GameOver {
		t.Errorf("state after round = %+v, expected a fresh round", res.State)
	}
	if s := g.LastSummary(); s == nil || s.Score != 7 {
		t.Errorf("LastSummary() = %+v", s)
	}

	logged := buf.String()
	if !strings.Contains(logged, "Game Over! Your score: 7") || !strings.Contains(logged, "reason=game_over") {
		t.Errorf("log = %q", logged)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over! Your score: 7") {
		t.Error("summary box missing")
	}

	g.Step(input(core.ActionJump))
	g.Render(screen)
	if strings.Contains(screen.String(), "Game Over!") {
		t.Error("summary box should close on serve")
	}
}

func TestRestartClosesSummary(t *testing.T) {
	g := newTestGame(t, 80, 24)
	w := g.World()
	w.Round.Score = 4
	w.Round.Lives = 1
	w.Round.Sticky = false
	w.Round.ServePending = false
	w.Round.Phase = PhaseInPlay
	w.Balls = []Ball{flyingBall(100, 599, 0, 200)}

	if res := g.Step(input()); !res.RoundOver {
		t.Fatal("expected the round to end")
	}
	g.Step(input(core.ActionRestart))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if strings.Contains(screen.String(), "Game Over!") {
		t.Error("summary box still shown after restart")
	}
	if !strings.Contains(screen.Row(23), "SPACE to launch") {
		t.Errorf("bottom row = %q, expected the serve hint", screen.Row(23))
	}
}

func TestResizeKeepsWorld(t *testing.T) {
	g := newTestGame(t, 80, 24)
	g.Step(input(core.ActionJump))
	w := g.World()

	g.Resize(20, 8)
	g.Step(input())
	if g.World() != w || w.Ticks != 1 {
		t.Errorf("shrunk game: ticks %d, same world %v", w.Ticks, g.World() == w)
	}

	g.Resize(160, 48)
	in := input()
	in.SetPointer(0, 10)
	g.Step(in)
	if w.Ticks != 2 || w.Paddle.Pos.X != 0 {
		t.Errorf("resized game: ticks %d, paddle x %v", w.Ticks, w.Paddle.Pos.X)
	}
}

var _ registry.Resizer = (*Game)(nil)
