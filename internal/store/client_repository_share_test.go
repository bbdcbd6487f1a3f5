// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalShareRepository_UpsertAndGet(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	shares := []models.Share{
		{ShareID: "s2", VaultID: "v2", KeyRotation: 1, Shared: true, TargetMembers: 3},
		{ShareID: "s1", VaultID: "v1", KeyRotation: 4, Owner: true, Permission: 7, CreatedAt: &created},
	}
	require.NoError(t, s.ShareRepository.UpsertShares(ctx, "user-1", shares))

	got, err := s.ShareRepository.GetShares(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "s1", got[0].ShareID)
	assert.True(t, got[0].Owner)
	assert.Equal(t, int64(7), got[0].Permission)
	require.NotNil(t, got[0].CreatedAt)
	assert.True(t, created.Equal(*got[0].CreatedAt))

	assert.Equal(t, "s2", got[1].ShareID)
	assert.True(t, got[1].Shared)
	assert.Nil(t, got[1].CreatedAt)
}

func TestLocalShareRepository_UpsertReplacesAndKeepsMissing(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, s.ShareRepository.UpsertShares(ctx, "u", []models.Share{
		{ShareID: "s1", KeyRotation: 1},
		{ShareID: "s2", KeyRotation: 1},
	}))
	require.NoError(t, s.ShareRepository.UpsertShares(ctx, "u", []models.Share{
		{ShareID: "s1", KeyRotation: 2},
	}))

	got, err := s.ShareRepository.GetShares(ctx, "u")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].KeyRotation)
	assert.Equal(t, int64(1), got[1].KeyRotation)
}

func TestLocalShareRepository_ScopedByUser(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, s.ShareRepository.UpsertShares(ctx, "alice", []models.Share{{ShareID: "s1"}}))

	got, err := s.ShareRepository.GetShares(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocalShareRepository_UpsertEmptyIsNoop(t *testing.T) {
	s := newTestStorages(t)
	assert.NoError(t, s.ShareRepository.UpsertShares(context.Background(), "u", nil))
}

// ── sqlmock error paths ──────────────────────────────────────────────────────

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &DB{DB: db, logger: logger.Nop()}, mock
}

func TestLocalShareRepository_GetShares_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocalShareRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT share_id").WithArgs("u").WillReturnError(errors.New("disk I/O error"))

	_, err := repo.GetShares(context.Background(), "u")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalShareRepository_UpsertShares_BeginError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocalShareRepository(db, logger.Nop())

	mock.ExpectBegin().WillReturnError(errors.New("locked"))

	err := repo.UpsertShares(context.Background(), "u", []models.Share{{ShareID: "s1"}})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestLocalShareRepository_UpsertShares_ExecErrorRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocalShareRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO shares").WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.UpsertShares(context.Background(), "u", []models.Share{{ShareID: "s1"}})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}
