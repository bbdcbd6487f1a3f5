package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/store"
)

type eventIDService struct {
	repo store.LocalShareEventIDRepository
}

// NewEventIDService creates an [EventIDService] that keeps per-share event
// cursors in the local sqlite store.
func NewEventIDService(storages *store.ClientStorages) EventIDService {
	return &eventIDService{repo: storages.ShareEventIDRepository}
}

func (s *eventIDService) GetLastEventID(ctx context.Context, userID, shareID string) (string, error) {
	eventID, err := s.repo.GetLastEventID(ctx, userID, shareID)
	if errors.Is(err, store.ErrEventIDNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get last event id of share %s: %w", shareID, err)
	}
	return eventID, nil
}

func (s *eventIDService) UpsertLastEventID(ctx context.Context, userID, shareID, eventID string) error {
	if err := s.repo.UpsertLastEventID(ctx, userID, shareID, eventID); err != nil {
		return fmt.Errorf("store last event id of share %s: %w", shareID, err)
	}
	return nil
}
