package domain

import "time"

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// ServiceHealthStatus describes one backing dependency at probe time.
type ServiceHealthStatus struct {
	Healthy        bool   `json:"healthy"`
	Message        string `json:"message"`
	ResponseTimeMs int64  `json:"responseTime"`
}

// HealthReport is the aggregate health of all backing dependencies.
type HealthReport struct {
	Status          string                         `json:"status"`
	Timestamp       time.Time                      `json:"timestamp"`
	Services        map[string]ServiceHealthStatus `json:"services"`
	TotalDurationMs int64                          `json:"totalDuration"`
}
