package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/store"
	"github.com/MKhiriev/go-pass-sync/models"
)

type itemService struct {
	repo store.LocalItemRepository
}

// NewItemService creates an [ItemService] over the local item cache. It never
// talks to the server; items arrive only through applied sync events.
func NewItemService(storages *store.ClientStorages) ItemService {
	return &itemService{repo: storages.ItemRepository}
}

func (s *itemService) UpsertItems(ctx context.Context, shareID string, items []models.Item) error {
	if len(items) == 0 {
		return nil
	}
	if err := s.repo.UpsertItems(ctx, shareID, items); err != nil {
		return fmt.Errorf("upsert %d items of share %s: %w", len(items), shareID, err)
	}
	return nil
}

func (s *itemService) DeleteItemsLocally(ctx context.Context, shareID string, itemIDs []string) error {
	if len(itemIDs) == 0 {
		return nil
	}
	if err := s.repo.DeleteItems(ctx, shareID, itemIDs); err != nil {
		return fmt.Errorf("delete %d items of share %s: %w", len(itemIDs), shareID, err)
	}
	return nil
}

func (s *itemService) CountItems(ctx context.Context, shareID string) (int, error) {
	return s.repo.CountItems(ctx, shareID)
}

func (s *itemService) GetItems(ctx context.Context, shareID string) ([]models.Item, error) {
	items, err := s.repo.GetItems(ctx, shareID)
	if err != nil {
		return nil, fmt.Errorf("get items of share %s: %w", shareID, err)
	}
	return items, nil
}
