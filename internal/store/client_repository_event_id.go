package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
)

type localShareEventIDRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalShareEventIDRepository(db *DB, logger *logger.Logger) LocalShareEventIDRepository {
	return &localShareEventIDRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localShareEventIDRepository) GetLastEventID(ctx context.Context, userID, shareID string) (string, error) {
	log := logger.FromContext(ctx)

	var eventID string
	err := l.DB.QueryRowContext(ctx, getLastEventID, userID, shareID).Scan(&eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrEventIDNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localShareEventIDRepository.GetLastEventID").
			Str("user_id", userID).
			Str("share_id", shareID).
			Msg("failed to read last event id")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return eventID, nil
}

func (l *localShareEventIDRepository) UpsertLastEventID(ctx context.Context, userID, shareID, eventID string) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, upsertLastEventID, userID, shareID, eventID); err != nil {
		log.Err(err).
			Str("func", "localShareEventIDRepository.UpsertLastEventID").
			Str("user_id", userID).
			Str("share_id", shareID).
			Str("event_id", eventID).
			Msg("failed to upsert last event id")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
