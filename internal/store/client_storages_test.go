// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStorages opens a migrated sqlite replica in a temp dir.
func newTestStorages(t *testing.T) *ClientStorages {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "nested", "replica.db")
	s, err := NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestNewClientStorages_CreatesFileAndWiresRepositories(t *testing.T) {
	s := newTestStorages(t)

	assert.NotNil(t, s.ShareRepository)
	assert.NotNil(t, s.ShareEventIDRepository)
	assert.NotNil(t, s.ItemRepository)
	assert.NotNil(t, s.ShareKeyRepository)
}

func TestNewClientStorages_EmptyDSN(t *testing.T) {
	_, err := NewClientStorages(context.Background(), config.ClientStorage{}, logger.Nop())
	assert.Error(t, err)
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}

func TestWithPragmas(t *testing.T) {
	assert.Equal(t, ":memory:", withPragmas(":memory:"))
	assert.Equal(t, "file:x.db?mode=ro", withPragmas("file:x.db?mode=ro"))
	assert.Equal(t, "file:data/x.db?_busy_timeout=5000&_journal_mode=WAL", withPragmas("data/x.db"))
}
