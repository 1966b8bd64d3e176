package config

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
)

// NewPostgres opens the optional relational store. The open is lazy on
// purpose: a down secondary must not prevent startup, so connectivity
// surfaces through health probes and per-write errors instead.
func NewPostgres(cfg *Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", ensureConnectTimeout(cfg.PostgresDSN))
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	return db, nil
}

// ensureConnectTimeout appends a default connection timeout when the DSN
// does not carry one; an unset timeout would allow unbounded blocking on
// connect.
func ensureConnectTimeout(dsn string) string {
	if strings.Contains(dsn, "connect_timeout=") {
		return dsn
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		return dsn + sep + "connect_timeout=5"
	}
	// keyword/value form
	return dsn + " connect_timeout=5"
}
