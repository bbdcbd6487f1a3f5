package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
)

type localShareRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalShareRepository(db *DB, logger *logger.Logger) LocalShareRepository {
	return &localShareRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertShares stores shares for userID in one transaction. Rows of shares
// that are absent from the list are kept.
func (l *localShareRepository) UpsertShares(ctx context.Context, userID string, shares []models.Share) error {
	log := logger.FromContext(ctx)

	if len(shares) == 0 {
		return nil
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localShareRepository.UpsertShares").
			Str("user_id", userID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, share := range shares {
		_, err = tx.ExecContext(ctx, upsertShare,
			userID,
			share.ShareID,
			share.VaultID,
			share.KeyRotation,
			share.Owner,
			share.Shared,
			share.Permission,
			share.TargetMembers,
			share.CreatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localShareRepository.UpsertShares").
				Str("user_id", userID).
				Str("share_id", share.ShareID).
				Msg("failed to execute upsert for share")
			return fmt.Errorf("%w (share_id=%s): %w", ErrExecutingStatement, share.ShareID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "localShareRepository.UpsertShares").
			Str("user_id", userID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localShareRepository) GetShares(ctx context.Context, userID string) ([]models.Share, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getUserShares, userID)
	if err != nil {
		log.Err(err).
			Str("func", "localShareRepository.GetShares").
			Str("user_id", userID).
			Msg("failed to execute query for getting shares")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	shares := make([]models.Share, 0, 8)

	for rows.Next() {
		var (
			share     models.Share
			createdAt sql.NullTime
		)

		scanErr := rows.Scan(
			&share.ShareID,
			&share.VaultID,
			&share.KeyRotation,
			&share.Owner,
			&share.Shared,
			&share.Permission,
			&share.TargetMembers,
			&createdAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localShareRepository.GetShares").
				Str("user_id", userID).
				Msg("failed to scan share row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		share.CreatedAt = timePtr(createdAt)

		shares = append(shares, share)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localShareRepository.GetShares").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return shares, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
