package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/store"
	"github.com/MKhiriev/go-pass-sync/models"
)

type shareService struct {
	repo    store.LocalShareRepository
	adapter adapter.ServerAdapter
}

// NewShareService creates a [ShareService] that reads the share directory
// from the local cache and, on a forced refresh, from the server through
// serverAdapter. A remote read is written through to the cache.
func NewShareService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter) ShareService {
	return &shareService{repo: storages.ShareRepository, adapter: serverAdapter}
}

func (s *shareService) GetShares(ctx context.Context, userID string, forceRefresh bool) ([]models.Share, error) {
	if !forceRefresh {
		shares, err := s.repo.GetShares(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("get local shares: %w", err)
		}
		return shares, nil
	}

	shares, err := s.adapter.ListShares(ctx)
	if err != nil {
		return nil, fmt.Errorf("list remote shares: %w", mapAdapterError(err))
	}

	if err = s.repo.UpsertShares(ctx, userID, shares); err != nil {
		return nil, fmt.Errorf("cache remote shares: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("user_id", userID).
		Int("shares", len(shares)).
		Msg("share directory refreshed")

	return shares, nil
}
