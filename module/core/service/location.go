package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/isaireyesmejia/camion-tracker/module/core/domain"
	"github.com/isaireyesmejia/camion-tracker/module/core/internal/repository/database"
	"github.com/isaireyesmejia/camion-tracker/module/core/internal/repository/publisher"
)

// healthGateTimeout bounds only the pre-write probe, not the request.
const healthGateTimeout = 3 * time.Second

// ValidationError carries every violation found in the request body.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d violation(s)", len(e.Errors))
}

// GateUnavailableError means the health gate rejected the request before
// any write was attempted.
type GateUnavailableError struct {
	Reason error
}

func (e *GateUnavailableError) Error() string {
	return fmt.Sprintf("service temporarily unavailable: %v", e.Reason)
}

func (e *GateUnavailableError) Unwrap() error { return e.Reason }

// PrimaryStoreError means the write to the document store failed; the
// request is fatal and the secondary write is never dispatched.
type PrimaryStoreError struct {
	Err error
}

func (e *PrimaryStoreError) Error() string {
	return fmt.Sprintf("failed to save to primary store: %v", e.Err)
}

func (e *PrimaryStoreError) Unwrap() error { return e.Err }

type LocationService struct {
	primary    database.LocationStore
	secondary  database.UbicacionStore          // nil when not configured
	events     publisher.LocationEventPublisher // nil when not configured
	healthGate bool
}

func NewLocationService(primary database.LocationStore, secondary database.UbicacionStore, events publisher.LocationEventPublisher, healthGate bool) *LocationService {
	return &LocationService{
		primary:    primary,
		secondary:  secondary,
		events:     events,
		healthGate: healthGate,
	}
}

// Register runs the full registration pipeline: health gate, validation,
// primary write, then a detached best-effort secondary write. The returned
// report is the normalized request payload on success.
func (s *LocationService) Register(ctx context.Context, body []byte) (*domain.LocationReport, error) {
	if s.healthGate {
		if err := s.gateProbe(ctx); err != nil {
			return nil, &GateUnavailableError{Reason: err}
		}
	}

	report, violations := ValidateLocationReport(body)
	if violations != nil {
		return nil, &ValidationError{Errors: violations}
	}

	rec := &domain.StoredLocationRecord{
		Latitud:  report.Latitud,
		Longitud: report.Longitud,
		Nombre:   report.Nombre,
	}
	if err := s.primary.Upsert(ctx, report.CamionID, rec); err != nil {
		return nil, &PrimaryStoreError{Err: err}
	}

	// Detached from the request: the caller never waits on the secondary
	// write or the event publish, and their failures only reach the log.
	go s.dispatchSecondary(report)

	return report, nil
}

func (s *LocationService) gateProbe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthGateTimeout)
	defer cancel()
	return s.primary.Probe(ctx)
}

func (s *LocationService) dispatchSecondary(report *domain.LocationReport) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("secondary dispatch panic for %s: %v", report.CamionID, r)
		}
	}()

	ctx := context.Background()

	if s.secondary != nil {
		if err := s.secondary.InsertarUbicacion(ctx, report.CamionID, report.Latitud, report.Longitud); err != nil {
			log.Printf("secondary write failed for %s: %v", report.CamionID, err)
		}
	}

	if s.events != nil {
		event := &domain.LocationRegistered{
			CamionID:  report.CamionID,
			Latitud:   report.Latitud,
			Longitud:  report.Longitud,
			Timestamp: time.Now().Unix(),
		}
		if err := s.events.PublishRegistered(ctx, event); err != nil {
			log.Printf("publish registered event failed for %s: %v", report.CamionID, err)
		}
	}
}
