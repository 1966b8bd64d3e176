package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/isaireyesmejia/camion-tracker/module/core/domain"
	"github.com/isaireyesmejia/camion-tracker/module/core/internal/repository/database"
)

const (
	documentStoreName   = "mongodb"
	relationalStoreName = "postgres"

	// Per-service slow-response thresholds: a probe that succeeds but
	// exceeds its threshold degrades the overall status.
	documentSlowThreshold   = 5 * time.Second
	relationalSlowThreshold = 3 * time.Second

	notConfiguredMessage = "not configured (optional service)"
)

type HealthService struct {
	document   database.LocationStore
	relational database.UbicacionStore // nil when not configured
}

func NewHealthService(document database.LocationStore, relational database.UbicacionStore) *HealthService {
	return &HealthService{document: document, relational: relational}
}

// Check probes every backing dependency and rolls the results up into one
// overall status.
func (s *HealthService) Check(ctx context.Context) *domain.HealthReport {
	started := time.Now()

	doc := probe(ctx, s.document.Probe, documentSlowThreshold)

	rel := domain.ServiceHealthStatus{Healthy: true, Message: notConfiguredMessage}
	if s.relational != nil {
		rel = probe(ctx, s.relational.Probe, relationalSlowThreshold)
	}

	return &domain.HealthReport{
		Status:    aggregate(doc, rel),
		Timestamp: time.Now().UTC(),
		Services: map[string]domain.ServiceHealthStatus{
			documentStoreName:   doc,
			relationalStoreName: rel,
		},
		TotalDurationMs: time.Since(started).Milliseconds(),
	}
}

func probe(ctx context.Context, fn func(context.Context) error, slowThreshold time.Duration) domain.ServiceHealthStatus {
	started := time.Now()
	err := fn(ctx)
	elapsed := time.Since(started)

	status := domain.ServiceHealthStatus{ResponseTimeMs: elapsed.Milliseconds()}
	switch {
	case err != nil:
		status.Message = err.Error()
	case elapsed > slowThreshold:
		status.Healthy = true
		status.Message = fmt.Sprintf("slow response (%dms)", elapsed.Milliseconds())
	default:
		status.Healthy = true
		status.Message = "ok"
	}
	return status
}

// aggregate applies the tie-break rules in order; the first match wins.
// The document store is the only mandatory dependency.
func aggregate(doc, rel domain.ServiceHealthStatus) string {
	if !doc.Healthy {
		return domain.StatusUnhealthy
	}
	if !rel.Healthy && rel.Message != notConfiguredMessage {
		return domain.StatusDegraded
	}
	if strings.Contains(doc.Message, "slow") || strings.Contains(rel.Message, "slow") {
		return domain.StatusDegraded
	}
	return domain.StatusHealthy
}
