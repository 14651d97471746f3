package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/platform/tui"
)

var (
	flagSSHAddr      string
	flagHostKey      string
	flagIdleTimeout  int
	flagMetricsAddr  string
	flagSessionRate  float64
	flagSessionBurst int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own single-player session with the board
picker menu. Scores are stored per server (all users share the boards).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  arkanoid serve                           # Listen on :23234 with auto-generated key
  arkanoid serve --ssh :2222               # Listen on port 2222
  arkanoid serve --host-key ./my_host_key  # Use specific host key
  arkanoid serve --metrics :9090           # Expose Prometheus metrics
  arkanoid serve --rate 0                  # No per-host session limit

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	serveCmd.Flags().Float64Var(&flagSessionRate, "rate", defaults.SessionsPerMinute, "New sessions per minute per remote host (0 = unlimited)")
	serveCmd.Flags().IntVar(&flagSessionBurst, "burst", defaults.Burst, "Sessions a host may open at once")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "arkanoid-ssh")
	arkanoid.SetLogger(logger)

	cfg := tui.SSHServerConfig{
		Address:           flagSSHAddr,
		HostKeyPath:       flagHostKey,
		DBPath:            flagDBPath,
		IdleTimeout:       time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:          flagFPS,
		MetricsAddr:       flagMetricsAddr,
		SessionsPerMinute: flagSessionRate,
		Burst:             flagSessionBurst,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting arkanoid SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
