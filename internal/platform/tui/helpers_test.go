package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/registry"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

const stubBoard = "stub_board"

func init() {
	registry.Register(stubBoard, func() registry.Game { return &stubGame{} })
}

// stubGame records what the platform feeds it.
type stubGame struct {
	frames  []core.InputFrame
	resets  int
	resized [][2]int
	paused  bool

	// endRound makes the given step (1-based) finish a round.
	endRound   int
	finalScore int
}

func (g *stubGame) ID() string    { return stubBoard }
func (g *stubGame) Title() string { return "Stub Board" }

func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	res := core.StepResult{State: g.State()}
	if len(g.frames) == g.endRound {
		res.RoundOver = true
		res.FinalScore = g.finalScore
		res.Reason = "game_over"
		res.RoundTicks = g.endRound
	}
	return res
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Lives: 3, Paused: g.paused}
}

func (g *stubGame) last() core.InputFrame {
	return g.frames[len(g.frames)-1]
}

// resizingGame also follows terminal resizes.
type resizingGame struct{ stubGame }

func (g *resizingGame) Resize(w, h int) { g.resized = append(g.resized, [2]int{w, h}) }

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
