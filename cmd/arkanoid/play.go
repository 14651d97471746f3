package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/platform/tui"
	"github.com/vovakirdan/arkanoid/internal/registry"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing. Without a board argument the board follows --difficulty.

Controls:
  Left/Right, A/D  - Move paddle
  Mouse            - Paddle follows the pointer
  Space, click     - Launch the ball
  P                - Pause
  Esc              - Pause, then back
  R                - Restart the round
  Ctrl+S           - Screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, speeds up with score
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty
  fixed  - No progression

Examples:
  arkanoid play
  arkanoid play arkanoid_hard
  arkanoid play --difficulty easy
  arkanoid play --config ./my-arkanoid.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	board := arkanoid.BoardID(preset)
	if len(args) == 1 {
		board = args[0]
	}
	if !registry.Exists(board) {
		return fmt.Errorf("unknown board %q, run 'arkanoid list' to see the boards", board)
	}

	logger, closeLog := fileLogger()
	defer closeLog()
	arkanoid.SetLogger(logger)

	game, err := registry.Create(board)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, terminalConfig(), tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// fileLogger logs to ~/.arcade/arkanoid.log since the alt screen owns
// stdout. It falls back to a silent logger.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard, "arkanoid"), func() {}
	}

	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, "arkanoid"), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "arkanoid.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard, "arkanoid"), func() {}
	}
	return newLogger(f, "arkanoid"), func() { f.Close() }
}

// openStore opens the scores database; the game still runs without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
