package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
)

// ClientStorages groups the local replica repositories into a single value
// that is passed to the service layer.
type ClientStorages struct {
	ShareRepository        LocalShareRepository
	ShareEventIDRepository LocalShareEventIDRepository
	ItemRepository         LocalItemRepository
	ShareKeyRepository     LocalShareKeyRepository

	db *DB
}

// NewClientStorages opens the sqlite file named by cfg.DB.DSN (creating it
// if needed), applies pending migrations and wires every repository to the
// connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		ShareRepository:        NewLocalShareRepository(db, logger),
		ShareEventIDRepository: NewLocalShareEventIDRepository(db, logger),
		ItemRepository:         NewLocalItemRepository(db, logger),
		ShareKeyRepository:     NewLocalShareKeyRepository(db, logger),
		db:                     db,
	}
}

// Close releases the sqlite connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
