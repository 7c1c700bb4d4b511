// Package health provides system health monitoring and the HTTP surface
// exposing it, together with the JSON report endpoint and /metrics.
package health

import "time"

// SystemStatus represents the overall health state of the system or a component.
type SystemStatus string

const (
	StatusHealthy  SystemStatus = "healthy"
	StatusDegraded SystemStatus = "degraded"
	StatusCritical SystemStatus = "critical"
)

// Report contains the full system health report.
type Report struct {
	SystemStatus SystemStatus `json:"system_status"`
	Database     Component    `json:"database"`
	Cache        *Component   `json:"cache,omitempty"`
	CheckedAt    time.Time    `json:"checked_at"`
}

// Component is the health of one external dependency.
type Component struct {
	Status SystemStatus `json:"status"`
	Error  string       `json:"error,omitempty"`
}
