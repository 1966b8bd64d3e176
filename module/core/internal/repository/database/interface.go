package database

import (
	"context"

	"github.com/isaireyesmejia/camion-tracker/module/core/domain"
)

// LocationStore is the primary (document) store: a merge-upsert keyed by
// camion id plus a cheap liveness probe.
type LocationStore interface {
	Upsert(ctx context.Context, camionID string, rec *domain.StoredLocationRecord) error
	Probe(ctx context.Context) error
}

// UbicacionStore is the secondary (relational) store, written best-effort
// through a stored procedure.
type UbicacionStore interface {
	InsertarUbicacion(ctx context.Context, camionID string, latitud, longitud float64) error
	Probe(ctx context.Context) error
}
