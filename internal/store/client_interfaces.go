package store

import (
	"context"

	"github.com/MKhiriev/go-pass-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalShareRepository caches the share directory of each user.
type LocalShareRepository interface {
	UpsertShares(ctx context.Context, userID string, shares []models.Share) error
	GetShares(ctx context.Context, userID string) ([]models.Share, error)
}

// LocalShareEventIDRepository persists the per-share event cursor. A share
// that was never synced has no row and yields [ErrEventIDNotFound].
type LocalShareEventIDRepository interface {
	GetLastEventID(ctx context.Context, userID, shareID string) (string, error)
	UpsertLastEventID(ctx context.Context, userID, shareID, eventID string) error
}

// LocalItemRepository is the encrypted item replica, scoped by share.
type LocalItemRepository interface {
	UpsertItems(ctx context.Context, shareID string, items []models.Item) error
	DeleteItems(ctx context.Context, shareID string, itemIDs []string) error
	GetItems(ctx context.Context, shareID string) ([]models.Item, error)
	CountItems(ctx context.Context, shareID string) (int, error)
}

// LocalShareKeyRepository keeps wrapped share keys for every known rotation.
type LocalShareKeyRepository interface {
	SaveShareKeys(ctx context.Context, keys []models.ShareKey) error
	GetLatestShareKey(ctx context.Context, shareID string) (models.ShareKey, error)
}
