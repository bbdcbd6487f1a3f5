// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqlmockResult(affected int64) driver.Result {
	return sqlmock.NewResult(0, affected)
}

func TestLocalShareKeyRepository_NoKey(t *testing.T) {
	s := newTestStorages(t)

	_, err := s.ShareKeyRepository.GetLatestShareKey(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrShareKeyNotFound)
}

func TestLocalShareKeyRepository_LatestRotationWins(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, s.ShareKeyRepository.SaveShareKeys(ctx, []models.ShareKey{
		{ShareID: "s1", KeyRotation: 1, Key: "k1"},
		{ShareID: "s1", KeyRotation: 3, Key: "k3"},
		{ShareID: "s1", KeyRotation: 2, Key: "k2"},
		{ShareID: "s2", KeyRotation: 9, Key: "other"},
	}))

	got, err := s.ShareKeyRepository.GetLatestShareKey(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.KeyRotation)
	assert.Equal(t, "k3", got.Key)
	assert.Equal(t, "s1", got.ShareID)
}

func TestLocalShareKeyRepository_SaveOverwritesSameRotation(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, s.ShareKeyRepository.SaveShareKeys(ctx, []models.ShareKey{{ShareID: "s1", KeyRotation: 1, Key: "old"}}))
	require.NoError(t, s.ShareKeyRepository.SaveShareKeys(ctx, []models.ShareKey{{ShareID: "s1", KeyRotation: 1, Key: "new"}}))

	got, err := s.ShareKeyRepository.GetLatestShareKey(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Key)
}
