package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
)

type localShareKeyRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalShareKeyRepository returns the share key cache backed by db.
func NewLocalShareKeyRepository(db *DB, logger *logger.Logger) LocalShareKeyRepository {
	return &localShareKeyRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localShareKeyRepository) SaveShareKeys(ctx context.Context, keys []models.ShareKey) error {
	log := logger.FromContext(ctx)

	if len(keys) == 0 {
		return nil
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localShareKeyRepository.SaveShareKeys").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, key := range keys {
		if _, err = tx.ExecContext(ctx, upsertShareKey, key.ShareID, key.KeyRotation, key.Key, key.CreatedAt); err != nil {
			log.Err(err).
				Str("func", "localShareKeyRepository.SaveShareKeys").
				Str("share_id", key.ShareID).
				Int64("key_rotation", key.KeyRotation).
				Msg("failed to upsert share key")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "localShareKeyRepository.SaveShareKeys").
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetLatestShareKey returns the stored key of shareID with the highest
// rotation.
func (l *localShareKeyRepository) GetLatestShareKey(ctx context.Context, shareID string) (models.ShareKey, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("share_id", "key_rotation", "key", "created_at").
		From("share_keys").
		Where(sq.Eq{"share_id": shareID}).
		OrderBy("key_rotation DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.ShareKey{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		key       models.ShareKey
		createdAt sql.NullTime
	)
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&key.ShareID, &key.KeyRotation, &key.Key, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ShareKey{}, ErrShareKeyNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localShareKeyRepository.GetLatestShareKey").
			Str("share_id", shareID).
			Msg("failed to read latest share key")
		return models.ShareKey{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	key.CreatedAt = timePtr(createdAt)

	return key, nil
}
