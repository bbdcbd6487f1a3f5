package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
)

type localItemRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalItemRepository returns the item cache backed by db.
func NewLocalItemRepository(db *DB, logger *logger.Logger) LocalItemRepository {
	return &localItemRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertItems writes items of shareID in batches inside a single
// transaction. Either every item is stored or none is.
func (l *localItemRepository) UpsertItems(ctx context.Context, shareID string, items []models.Item) error {
	log := logger.FromContext(ctx)

	if len(items) == 0 {
		return nil
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.UpsertItems").
			Str("share_id", shareID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for start := 0; start < len(items); start += itemsBatchSize {
		end := min(start+itemsBatchSize, len(items))

		query, args, buildErr := buildUpsertItemsQuery(shareID, items[start:end])
		if buildErr != nil {
			log.Err(buildErr).
				Str("func", "localItemRepository.UpsertItems").
				Str("share_id", shareID).
				Msg("failed to build upsert query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "localItemRepository.UpsertItems").
				Str("share_id", shareID).
				Int("batch_start", start).
				Int("batch_size", end-start).
				Msg("failed to execute upsert for items")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "localItemRepository.UpsertItems").
			Str("share_id", shareID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func buildUpsertItemsQuery(shareID string, items []models.Item) (string, []any, error) {
	builder := sq.Insert("items").
		Columns(
			"share_id",
			"item_id",
			"revision",
			"content_format_version",
			"key_rotation",
			"content",
			"item_key",
			"state",
			"created_at",
			"modified_at",
		)

	for _, item := range items {
		builder = builder.Values(
			shareID,
			item.ItemID,
			item.Revision,
			item.ContentFormatVersion,
			item.KeyRotation,
			item.Content,
			item.ItemKey,
			int(item.State),
			item.CreatedAt,
			item.ModifiedAt,
		)
	}

	return builder.Suffix(itemsUpsertSuffix).ToSql()
}

// DeleteItems removes itemIDs of shareID. Unknown ids are ignored.
func (l *localItemRepository) DeleteItems(ctx context.Context, shareID string, itemIDs []string) error {
	log := logger.FromContext(ctx)

	if len(itemIDs) == 0 {
		return nil
	}

	query, args, err := sq.Delete("items").
		Where(sq.Eq{"share_id": shareID, "item_id": itemIDs}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.DeleteItems").
			Str("share_id", shareID).
			Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.DeleteItems").
			Str("share_id", shareID).
			Int("item_ids_count", len(itemIDs)).
			Msg("failed to delete items")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, rowsErr := res.RowsAffected(); rowsErr == nil {
		log.Debug().
			Str("func", "localItemRepository.DeleteItems").
			Str("share_id", shareID).
			Int64("deleted", affected).
			Msg("items deleted")
	}

	return nil
}

func (l *localItemRepository) GetItems(ctx context.Context, shareID string) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getShareItems, shareID)
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.GetItems").
			Str("share_id", shareID).
			Msg("failed to execute query for getting items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 50)

	for rows.Next() {
		var (
			item       models.Item
			state      int
			itemKey    sql.NullString
			createdAt  sql.NullTime
			modifiedAt sql.NullTime
		)

		scanErr := rows.Scan(
			&item.ItemID,
			&item.ShareID,
			&item.Revision,
			&item.ContentFormatVersion,
			&item.KeyRotation,
			&item.Content,
			&itemKey,
			&state,
			&createdAt,
			&modifiedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localItemRepository.GetItems").
				Str("share_id", shareID).
				Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		item.State = models.ItemState(state)
		if itemKey.Valid {
			key := itemKey.String
			item.ItemKey = &key
		}
		item.CreatedAt = timePtr(createdAt)
		item.ModifiedAt = timePtr(modifiedAt)

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localItemRepository.GetItems").
			Str("share_id", shareID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (l *localItemRepository) CountItems(ctx context.Context, shareID string) (int, error) {
	var count int
	if err := l.DB.QueryRowContext(ctx, countShareItems, shareID).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localItemRepository.CountItems").
			Str("share_id", shareID).
			Msg("failed to count items")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}
