// Package metrics exposes Prometheus metrics for the SSH server.
// Labels are bounded: board IDs come from the registry and reasons are
// the two round end reasons, never user input.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server collectors.
type Metrics struct {
	reg *prometheus.Registry

	sessionsActive prometheus.Gauge
	sessionsTotal  prometheus.Counter
	rejected       *prometheus.CounterVec
	rounds         *prometheus.CounterVec
	roundScore     *prometheus.HistogramVec
	roundDuration  *prometheus.HistogramVec
}

// New creates the collectors on a private registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		sessionsActive: f.NewGauge(prometheus.GaugeOpts{
			Name: "arkanoid_sessions_active",
			Help: "Currently connected SSH sessions",
		}),
		sessionsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "arkanoid_sessions_total",
			Help: "SSH sessions accepted since start",
		}),
		rejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "arkanoid_sessions_rejected_total",
			Help: "SSH sessions refused before a game started",
		}, []string{"reason"}), // "rate_limit", "no_pty"
		rounds: f.NewCounterVec(prometheus.CounterOpts{
			Name: "arkanoid_rounds_total",
			Help: "Finished rounds",
		}, []string{"board", "reason"}),
		roundScore: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "arkanoid_round_score",
			Help:    "Score of finished rounds",
			Buckets: []float64{5, 10, 25, 50, 100, 200, 400},
		}, []string{"board"}),
		roundDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "arkanoid_round_duration_seconds",
			Help:    "Wall-clock length of finished rounds",
			Buckets: []float64{10, 30, 60, 120, 300, 600},
		}, []string{"board"}),
	}
}

// SessionStarted records an accepted session.
func (m *Metrics) SessionStarted() {
	m.sessionsTotal.Inc()
	m.sessionsActive.Inc()
}

// SessionEnded records a closed session.
func (m *Metrics) SessionEnded() {
	m.sessionsActive.Dec()
}

// SessionRejected records a refused session.
func (m *Metrics) SessionRejected(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}

// RoundFinished records a finished round on a board.
func (m *Metrics) RoundFinished(board, reason string, score int, d time.Duration) {
	m.rounds.WithLabelValues(board, reason).Inc()
	m.roundScore.WithLabelValues(board).Observe(float64(score))
	m.roundDuration.WithLabelValues(board).Observe(d.Seconds())
}

// Handler returns the HTTP handler serving the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// Server serves /metrics and /health on its own listener.
type Server struct {
	srv *http.Server
}

// NewServer creates a metrics server for addr.
func NewServer(addr string, m *Metrics) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK")) //nolint:errcheck
	})

	return &Server{srv: &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

// ListenAndServe blocks until the server stops. A clean Shutdown returns nil.
func (s *Server) ListenAndServe() error {
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
