package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-sync/internal/crypto"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/store"
	"github.com/MKhiriev/go-pass-sync/models"
)

type shareKeysService struct {
	repo     store.LocalShareKeyRepository
	adapter  adapter.ServerAdapter
	keychain crypto.KeyChainService

	mu      sync.RWMutex
	userKey []byte
}

// NewShareKeysService creates a [ShareKeysService] that caches share keys
// locally and opens them with keychain.
//
// The service holds no user key after construction. Every key refresh fails
// with [ErrUserKeyNotSet] until SetUserKey is called.
func NewShareKeysService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, keychain crypto.KeyChainService) ShareKeysService {
	return &shareKeysService{
		repo:     storages.ShareKeyRepository,
		adapter:  serverAdapter,
		keychain: keychain,
	}
}

func (s *shareKeysService) SetUserKey(key []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userKey = append([]byte(nil), key...)
}

func (s *shareKeysService) getUserKey() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.userKey) == 0 {
		return nil, ErrUserKeyNotSet
	}
	return s.userKey, nil
}

// GetLatestShareKey serves the cached key unless forceRefresh is set or the
// cache has no key for the share yet.
func (s *shareKeysService) GetLatestShareKey(ctx context.Context, shareID string, forceRefresh bool) (models.ShareKey, error) {
	if !forceRefresh {
		key, err := s.repo.GetLatestShareKey(ctx, shareID)
		if err == nil {
			return key, nil
		}
		if !errors.Is(err, store.ErrShareKeyNotFound) {
			return models.ShareKey{}, fmt.Errorf("get cached key of share %s: %w", shareID, err)
		}
	}

	return s.refresh(ctx, shareID)
}

func (s *shareKeysService) refresh(ctx context.Context, shareID string) (models.ShareKey, error) {
	userKey, err := s.getUserKey()
	if err != nil {
		return models.ShareKey{}, err
	}

	keys, err := s.adapter.GetShareKeys(ctx, shareID)
	if err != nil {
		return models.ShareKey{}, fmt.Errorf("fetch keys of share %s: %w", shareID, mapAdapterError(err))
	}

	latest, ok := models.LatestShareKey(keys)
	if !ok {
		return models.ShareKey{}, fmt.Errorf("%w: %s", ErrNoShareKeys, shareID)
	}

	for i := range keys {
		if keys[i].ShareID == "" {
			keys[i].ShareID = shareID
		}
		if _, err = s.keychain.OpenShareKey(keys[i].Key, userKey); err != nil {
			return models.ShareKey{}, fmt.Errorf("%w (share_id=%s, rotation=%d): %w",
				ErrShareKeyUndecryptable, shareID, keys[i].KeyRotation, err)
		}
	}
	latest.ShareID = shareID

	if err = s.repo.SaveShareKeys(ctx, keys); err != nil {
		return models.ShareKey{}, fmt.Errorf("store keys of share %s: %w", shareID, err)
	}

	logger.FromContext(ctx).Debug().
		Str("share_id", shareID).
		Int("keys", len(keys)).
		Int64("latest_rotation", latest.KeyRotation).
		Msg("share keys refreshed")

	return latest, nil
}
