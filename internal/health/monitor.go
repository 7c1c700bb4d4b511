package health

import (
	"context"
	"sync"
	"time"
)

// Prober reports whether the database session is usable.
type Prober interface {
	IsAlive(ctx context.Context) bool
}

// Pinger probes the optional cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor aggregates health status from the system's external dependencies.
type Monitor struct {
	db    Prober
	cache Pinger

	mu         sync.Mutex
	lastCheck  time.Time
	lastReport Report

	// minInterval rate-limits probes so HTTP polling cannot hammer the
	// database.
	minInterval time.Duration
	now         func() time.Time
}

// NewMonitor creates a new health monitor. cache may be nil.
func NewMonitor(db Prober, cache Pinger) *Monitor {
	return &Monitor{
		db:          db,
		cache:       cache,
		minInterval: 10 * time.Second,
		now:         time.Now,
	}
}

// Check performs a health check, reusing the last report when probed again
// within the rate-limit window.
func (m *Monitor) Check(ctx context.Context) Report {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.now().Sub(m.lastCheck) < m.minInterval && !m.lastCheck.IsZero() {
		return m.lastReport
	}

	report := Report{
		SystemStatus: StatusHealthy,
		CheckedAt:    m.now().UTC(),
	}

	if m.db.IsAlive(ctx) {
		report.Database = Component{Status: StatusHealthy}
	} else {
		report.Database = Component{Status: StatusCritical, Error: "database probe failed"}
		report.SystemStatus = StatusCritical
	}

	if m.cache != nil {
		c := Component{Status: StatusHealthy}
		if err := m.cache.Ping(ctx); err != nil {
			// A dead cache degrades performance but reports still run.
			c = Component{Status: StatusDegraded, Error: err.Error()}
			if report.SystemStatus == StatusHealthy {
				report.SystemStatus = StatusDegraded
			}
		}
		report.Cache = &c
	}

	m.lastCheck = m.now()
	m.lastReport = report
	return report
}
