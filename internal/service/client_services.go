package service

import (
	"github.com/MKhiriev/go-pass-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-sync/internal/crypto"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/store"
)

// ClientServices bundles the collaborators the sync event loop consumes.
type ClientServices struct {
	ShareService            ShareService
	EventIDService          EventIDService
	RemoteSyncEventsService RemoteSyncEventsService
	ItemService             ItemService
	ShareKeysService        ShareKeysService
}

// NewClientServices builds every client-side service on top of storages and
// serverAdapter and bundles them for the event loop and the UI.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, keychain crypto.KeyChainService, log *logger.Logger) *ClientServices {
	log.Debug().Msg("creating client services...")

	return &ClientServices{
		ShareService:            NewShareService(storages, serverAdapter),
		EventIDService:          NewEventIDService(storages),
		RemoteSyncEventsService: NewRemoteSyncEventsService(serverAdapter),
		ItemService:             NewItemService(storages),
		ShareKeysService:        NewShareKeysService(storages, serverAdapter, keychain),
	}
}
