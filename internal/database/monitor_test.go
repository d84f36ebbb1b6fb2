package database_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/adaptiveui/tracker/internal/database"
)

// stubPinger answers every ping with a fixed error (or nil) and counts
// how often it was asked.
type stubPinger struct {
	err   error
	pings atomic.Int64
}

func (p *stubPinger) Ping(context.Context) error {
	p.pings.Add(1)
	return p.err
}

// runOnce drives a single monitor ping: with an already-canceled
// context, Run performs its initial ping and returns without waiting for
// a tick.
func runOnce(m *database.Monitor) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m.Run(ctx)
}

func TestMonitor_PingsBeforeFirstTick(t *testing.T) {
	pinger := &stubPinger{err: errors.New("connection refused")}
	m := database.NewMonitor(pinger, database.MonitorConfig{
		Interval: time.Hour,
		Logger:   zerolog.Nop(),
	})

	if got := m.Health(); got != database.HealthConnected {
		t.Fatalf("Health() before Run = %q, want %q", got, database.HealthConnected)
	}

	runOnce(m)

	if got := pinger.pings.Load(); got != 1 {
		t.Fatalf("pings = %d, want 1", got)
	}
	if got := m.Health(); got != database.HealthDegraded {
		t.Errorf("Health() after failed ping = %q, want %q", got, database.HealthDegraded)
	}
}

func TestMonitor_HealthyPingStaysConnected(t *testing.T) {
	pinger := &stubPinger{}
	m := database.NewMonitor(pinger, database.MonitorConfig{
		Interval: time.Hour,
		Logger:   zerolog.Nop(),
	})

	runOnce(m)

	if got := m.Health(); got != database.HealthConnected {
		t.Errorf("Health() = %q, want %q", got, database.HealthConnected)
	}
}

func TestMonitor_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	pinger := &stubPinger{err: errors.New("connection refused")}
	m := database.NewMonitor(pinger, database.MonitorConfig{
		Interval: time.Hour,
		Logger:   zerolog.Nop(),
	})

	for i := 0; i < 3; i++ {
		runOnce(m)
	}

	if got := m.Health(); got != database.HealthDisconnected {
		t.Errorf("Health() after 3 failed pings = %q, want %q", got, database.HealthDisconnected)
	}
}

func TestMonitor_Uptime(t *testing.T) {
	m := database.NewMonitor(&stubPinger{}, database.MonitorConfig{Logger: zerolog.Nop()})
	if m.Uptime() < 0 {
		t.Errorf("Uptime() = %v, want >= 0", m.Uptime())
	}
}
