package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/platform/raster"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

var (
	flagSimFrames int
	flagSimRounds int
	flagSimPNG    string
	flagSimScale  float64
	flagSimSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot without a terminal",
	Long: `Run the simulation headless with a fixed frame time of 1/fps.
The autopilot follows the lowest falling ball and serves at once.
Every finished round is logged to stderr.

The run stops after --frames frames or --rounds finished rounds,
whichever comes first (0 disables a limit, but not both).

Examples:
  arkanoid sim --seed 42 --frames 3600
  arkanoid sim --rounds 5 --difficulty hard --save
  arkanoid sim --seed 7 --frames 600 --png frame.png --scale 0.5`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 36000, "Stop after this many frames (0 = no limit)")
	simCmd.Flags().IntVar(&flagSimRounds, "rounds", 1, "Stop after this many rounds (0 = no limit)")
	simCmd.Flags().StringVar(&flagSimPNG, "png", "", "Write the final frame to this PNG file")
	simCmd.Flags().Float64Var(&flagSimScale, "scale", 1, "PNG scale relative to the field size")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record finished rounds in the scores database")
}

// simOptions bound a headless run.
type simOptions struct {
	FPS       int
	MaxFrames int
	MaxRounds int
}

// simResult sums up a headless run.
type simResult struct {
	Frames    int
	Summaries []arkanoid.Summary
}

// simulate drives w with the autopilot until a limit is reached.
// onRound sees every finished round.
func simulate(w *arkanoid.World, opts simOptions, onRound func(arkanoid.Summary)) simResult {
	dt := 1 / float64(opts.FPS)
	var res simResult

	for opts.MaxFrames <= 0 || res.Frames < opts.MaxFrames {
		in := arkanoid.Autopilot(w)
		in.DT = dt
		res.Frames++

		if sum := arkanoid.Frame(w, in); sum != nil {
			res.Summaries = append(res.Summaries, *sum)
			if onRound != nil {
				onRound(*sum)
			}
			if opts.MaxRounds > 0 && len(res.Summaries) >= opts.MaxRounds {
				break
			}
		}
	}
	return res
}

func runSim(_ *cobra.Command, _ []string) error {
	if flagSimFrames <= 0 && flagSimRounds <= 0 {
		return fmt.Errorf("sim needs --frames or --rounds")
	}

	logger := newLogger(os.Stderr, "sim")

	cfg, err := config.LoadArkanoid(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyArkanoidPreset(&cfg, preset)
	board := arkanoid.BoardID(preset)

	var store *storage.Store
	if flagSimSave {
		if store = openStore(logger); store != nil {
			defer store.Close()
		}
	}

	w := arkanoid.NewWorld(cfg, arkanoid.NewRNG(flagSeed))
	logger.Debug("round started", "round", w.Rounds, "field", w.Strategy, "blocks", len(w.Blocks))

	res := simulate(w, simOptions{FPS: flagFPS, MaxFrames: flagSimFrames, MaxRounds: flagSimRounds},
		func(s arkanoid.Summary) {
			logger.Info(s.String(), "reason", s.Reason, "round", s.Round, "field", s.Strategy, "ticks", s.Ticks)
			saveSimRound(store, logger, board, s)
		})

	snap := w.Snapshot()
	logger.Info("simulation finished",
		"frames", res.Frames,
		"rounds", len(res.Summaries),
		"score", snap.Score,
		"lives", snap.Lives,
		"hash", fmt.Sprintf("%016x", snap.Hash()),
	)

	if flagSimPNG != "" {
		if err := raster.SavePNG(flagSimPNG, &snap, flagSimScale); err != nil {
			return err
		}
		logger.Info("frame written", "path", flagSimPNG)
	}
	return nil
}

// saveSimRound records a scored round when a store is open.
func saveSimRound(store *storage.Store, logger *log.Logger, board string, s arkanoid.Summary) {
	if store == nil || s.Score == 0 {
		return
	}
	if _, err := store.SaveRound(board, s.Score, string(s.Reason), s.Ticks); err != nil {
		logger.Warn("could not save score", "board", board, "score", s.Score, "err", err)
	}
}
