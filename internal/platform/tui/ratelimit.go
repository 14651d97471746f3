package tui

import (
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// sessionLimiter throttles new SSH sessions per remote host.
type sessionLimiter struct {
	mu       sync.Mutex
	limiters map[string]*hostLimiter
	perMin   float64
	burst    int
	idle     time.Duration
	now      func() time.Time
}

type hostLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// newSessionLimiter allows perMinute sessions per host with the given burst.
// A non-positive perMinute disables limiting.
func newSessionLimiter(perMinute float64, burst int) *sessionLimiter {
	if burst < 1 {
		burst = 1
	}
	return &sessionLimiter{
		limiters: make(map[string]*hostLimiter),
		perMin:   perMinute,
		burst:    burst,
		idle:     10 * time.Minute,
		now:      time.Now,
	}
}

// Allow reports whether a new session from addr may start.
func (l *sessionLimiter) Allow(addr string) bool {
	if l == nil || l.perMin <= 0 {
		return true
	}

	host := remoteHost(addr)
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune(now)
	e, ok := l.limiters[host]
	if !ok {
		e = &hostLimiter{limiter: rate.NewLimiter(rate.Limit(l.perMin/60), l.burst)}
		l.limiters[host] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// prune drops hosts that have not connected for a while. Caller holds mu.
func (l *sessionLimiter) prune(now time.Time) {
	cutoff := now.Add(-l.idle)
	for host, e := range l.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(l.limiters, host)
		}
	}
}

// tracked returns the number of hosts with live limiter state.
func (l *sessionLimiter) tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// remoteHost strips the port from a remote address.
func remoteHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
