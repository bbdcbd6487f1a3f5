// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/eventloop"
	"github.com/MKhiriev/go-pass-sync/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusModel_OpenShareItems(t *testing.T) {
	m, _, _ := newTestStatusModel(t)
	modified := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	m.items.(*fakeItems).items = map[string][]models.Item{
		"s1": {
			{ItemID: "item-a", ShareID: "s1", Revision: 4, State: models.ItemStateActive, ModifiedAt: &modified},
			{ItemID: "item-b", ShareID: "s1", Revision: 1, State: models.ItemStateTrashed},
		},
	}
	m, _ = update(t, m, m.cmdLoadShares()())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, "s1", m.openShare)
	assert.Contains(t, m.View(), "Загрузка записей")

	m, _ = update(t, m, cmd())
	view := m.View()
	assert.Contains(t, view, "item-a")
	assert.Contains(t, view, "активна")
	assert.Contains(t, view, "16.10.2026 09:30:00")
	assert.Contains(t, view, "item-b")
	assert.Contains(t, view, "в корзине")

	// esc возвращает к списку хранилищ
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.openShare)
	assert.Nil(t, m.shareView)
	assert.Contains(t, m.View(), "СИНХРОНИЗАЦИЯ")
}

func TestStatusModel_OpenShareItemsEmptyAndFailed(t *testing.T) {
	m, _, _ := newTestStatusModel(t)
	m, _ = update(t, m, m.cmdLoadShares()())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())
	assert.Contains(t, m.View(), "Нет записей")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "s2", m.openShare)

	m, _ = update(t, m, cmd())
	require.Error(t, m.itemsErr)
	assert.Contains(t, m.View(), "Ошибка")
}

func TestStatusModel_StaleItemsIgnored(t *testing.T) {
	m, _, _ := newTestStatusModel(t)
	m, _ = update(t, m, m.cmdLoadShares()())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// ответ для другого хранилища не должен попасть на экран
	m, _ = update(t, m, itemsLoadedMsg{shareID: "s2", items: []models.Item{{ItemID: "foreign"}}})
	assert.Nil(t, m.shareView)
	assert.NotContains(t, m.View(), "foreign")
}

func TestStatusModel_OpenShareReloadsAfterPass(t *testing.T) {
	m, loop, _ := newTestStatusModel(t)
	m, _ = update(t, m, m.cmdLoadShares()())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, keyPress("r"))
	require.NotNil(t, cmd)
	_, ok := cmd().(itemsLoadedMsg)
	assert.True(t, ok, "s/r re-reads the items instead of forcing a pass")
	assert.Equal(t, int32(0), loop.forceSyncs.Load())

	m, cmd = update(t, m, loopEventMsg{event: eventloop.PassFinished{PassID: "p1"}})
	require.NotNil(t, cmd)
	assert.Equal(t, "s1", m.openShare)
}

func TestStatusModel_EnterWithoutShares(t *testing.T) {
	m, _, _ := newTestStatusModel(t)
	m, _ = update(t, m, sharesLoadedMsg{rows: nil})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Empty(t, m.openShare)
}
