package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
)

type remoteSyncEventsService struct {
	adapter adapter.ServerAdapter
}

// NewRemoteSyncEventsService creates a [RemoteSyncEventsService] that fetches
// share event batches through serverAdapter.
func NewRemoteSyncEventsService(serverAdapter adapter.ServerAdapter) RemoteSyncEventsService {
	return &remoteSyncEventsService{adapter: serverAdapter}
}

func (s *remoteSyncEventsService) GetEvents(ctx context.Context, shareID, lastEventID string) (models.SyncEvents, error) {
	events, err := s.adapter.GetEvents(ctx, shareID, lastEventID)
	if err != nil {
		return models.SyncEvents{}, fmt.Errorf("get events of share %s: %w", shareID, mapAdapterError(err))
	}

	log := logger.FromContext(ctx)
	if n := len(events.UpdatedItems); n > 0 {
		log.Info().Str("share_id", shareID).Int("count", n).Msg("found updated items")
	}
	if n := len(events.DeletedItemIDs); n > 0 {
		log.Info().Str("share_id", shareID).Int("count", n).Msg("found deleted items")
	}

	return events, nil
}
