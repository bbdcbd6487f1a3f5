package store

import (
	"database/sql"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/migrations"
)

// DB is the local sqlite replica connection shared by every repository.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded goose migrations that are not applied yet.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
