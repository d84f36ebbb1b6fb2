package database

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
)

// Pinger is the slice of pgxpool.Pool the monitor needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports the monitor's view of store connectivity.
type Health string

const (
	// HealthConnected means the last ping succeeded.
	HealthConnected Health = "connected"
	// HealthDegraded means pings are failing but the breaker still lets
	// probes through.
	HealthDegraded Health = "degraded"
	// HealthDisconnected means the breaker is open: the store is treated
	// as unreachable until the probe window reopens.
	HealthDisconnected Health = "disconnected"
)

// MonitorConfig holds configuration for the connection monitor.
type MonitorConfig struct {
	// Interval between pings. Default: 15 s.
	Interval time.Duration
	// PingTimeout bounds one ping. Default: 3 s.
	PingTimeout time.Duration
	Logger      zerolog.Logger
}

// Monitor pings the pool on an interval through a circuit breaker and
// exposes the result to the liveness probe. A failing store surfaces as
// a degraded state; the service itself stays up.
type Monitor struct {
	pool     Pinger
	breaker  *gobreaker.CircuitBreaker[struct{}]
	interval time.Duration
	timeout  time.Duration
	log      zerolog.Logger
	lastOK   atomic.Bool
	started  time.Time
}

// NewMonitor creates a connection monitor. Call Run to start it.
func NewMonitor(pool Pinger, cfg MonitorConfig) *Monitor {
	if cfg.Interval <= 0 {
		cfg.Interval = 15 * time.Second
	}
	if cfg.PingTimeout <= 0 {
		cfg.PingTimeout = 3 * time.Second
	}

	m := &Monitor{
		pool:     pool,
		interval: cfg.Interval,
		timeout:  cfg.PingTimeout,
		log:      cfg.Logger,
		started:  time.Now(),
	}
	m.lastOK.Store(true)

	m.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:    "database",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			cfg.Logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("database breaker state changed")
		},
	})

	return m
}

// Run pings the pool until ctx is canceled. It pings once before the
// first tick so /health reflects reality from the start instead of
// reporting connected for a whole interval on a dead store.
func (m *Monitor) Run(ctx context.Context) {
	m.ping(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.ping(ctx)
		}
	}
}

func (m *Monitor) ping(ctx context.Context) {
	_, err := m.breaker.Execute(func() (struct{}, error) {
		pingCtx, cancel := context.WithTimeout(ctx, m.timeout)
		defer cancel()
		return struct{}{}, m.pool.Ping(pingCtx)
	})
	if err != nil {
		m.lastOK.Store(false)
		m.log.Warn().Err(err).Msg("database ping failed")
		return
	}
	m.lastOK.Store(true)
}

// Health returns the current connectivity state.
func (m *Monitor) Health() Health {
	switch m.breaker.State() {
	case gobreaker.StateOpen:
		return HealthDisconnected
	case gobreaker.StateHalfOpen:
		return HealthDegraded
	default:
		if m.lastOK.Load() {
			return HealthConnected
		}
		return HealthDegraded
	}
}

// Uptime reports how long the monitor (and so the process) has been up.
func (m *Monitor) Uptime() time.Duration {
	return time.Since(m.started)
}
