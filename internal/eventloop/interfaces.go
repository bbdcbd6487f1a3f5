package eventloop

import (
	"context"

	"github.com/MKhiriev/go-pass-sync/models"
)

// ShareRepository lists the shares of a user. forceRefresh bypasses the
// local cache.
type ShareRepository interface {
	GetShares(ctx context.Context, userID string, forceRefresh bool) ([]models.Share, error)
}

// ShareEventIDRepository stores the event cursor of each (user, share). An
// empty id means the share was never synced.
type ShareEventIDRepository interface {
	GetLastEventID(ctx context.Context, userID, shareID string) (string, error)
	UpsertLastEventID(ctx context.Context, userID, shareID, eventID string) error
}

// RemoteSyncEventsDatasource returns the next page of events after
// lastEventID.
type RemoteSyncEventsDatasource interface {
	GetEvents(ctx context.Context, shareID, lastEventID string) (models.SyncEvents, error)
}

// ItemRepository applies item changes of a share.
type ItemRepository interface {
	UpsertItems(ctx context.Context, shareID string, items []models.Item) error
	DeleteItemsLocally(ctx context.Context, shareID string, itemIDs []string) error
}

// ShareKeysRepository provides share key material.
type ShareKeysRepository interface {
	GetLatestShareKey(ctx context.Context, shareID string, forceRefresh bool) (models.ShareKey, error)
}

// Reachability reports whether the network is up. Start is called lazily
// on the first trigger and must be safe to call again after a failure.
type Reachability interface {
	Start(ctx context.Context) error
	IsReachable() bool
	Subscribe(fn func(reachable bool)) (unsubscribe func())
}

// Collaborators groups everything a [SyncEventLoop] talks to.
type Collaborators struct {
	Shares       ShareRepository
	EventIDs     ShareEventIDRepository
	Events       RemoteSyncEventsDatasource
	Items        ItemRepository
	Keys         ShareKeysRepository
	Reachability Reachability
}
