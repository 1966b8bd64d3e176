package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/isaireyesmejia/camion-tracker/module/core/internal/repository/database"
)

var _ database.UbicacionStore = (*UbicacionStore)(nil)

// commandTimeout bounds the stored-procedure call; the write is
// best-effort and must never block a background worker indefinitely.
const commandTimeout = 10 * time.Second

type UbicacionStore struct {
	db *sql.DB
}

func NewUbicacionStore(db *sql.DB) *UbicacionStore {
	return &UbicacionStore{db: db}
}

func (s *UbicacionStore) InsertarUbicacion(ctx context.Context, camionID string, latitud, longitud float64) error {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx,
		`SELECT insertar_ubicacion($1, $2, $3)`,
		camionID, latitud, longitud,
	)
	return err
}

func (s *UbicacionStore) Probe(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
