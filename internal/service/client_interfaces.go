package service

import (
	"context"

	"github.com/MKhiriev/go-pass-sync/models"
)

// ShareService is the share directory of the signed-in user.
type ShareService interface {
	// GetShares returns the shares of userID. With forceRefresh the list is
	// fetched from the server and written through to the local cache;
	// otherwise the cached list is returned as is.
	GetShares(ctx context.Context, userID string, forceRefresh bool) ([]models.Share, error)
}

// EventIDService persists the per-share event cursor.
type EventIDService interface {
	// GetLastEventID returns the stored cursor or "" when the share was never
	// synced.
	GetLastEventID(ctx context.Context, userID, shareID string) (string, error)
	UpsertLastEventID(ctx context.Context, userID, shareID, eventID string) error
}

// RemoteSyncEventsService fetches event pages from the server.
type RemoteSyncEventsService interface {
	GetEvents(ctx context.Context, shareID, lastEventID string) (models.SyncEvents, error)
}

// ItemService applies item changes to the local replica.
type ItemService interface {
	UpsertItems(ctx context.Context, shareID string, items []models.Item) error
	DeleteItemsLocally(ctx context.Context, shareID string, itemIDs []string) error
	CountItems(ctx context.Context, shareID string) (int, error)
	// GetItems returns the cached items of one share, content still
	// encrypted.
	GetItems(ctx context.Context, shareID string) ([]models.Item, error)
}

// ShareKeysService owns share key material. SetUserKey must be called before
// any key is fetched.
type ShareKeysService interface {
	SetUserKey(key []byte)

	// GetLatestShareKey returns the key with the highest rotation. With
	// forceRefresh every key is re-fetched, proven decryptable and stored.
	GetLatestShareKey(ctx context.Context, shareID string, forceRefresh bool) (models.ShareKey, error)
}
