// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-pass-sync/internal/eventloop"
	"github.com/MKhiriev/go-pass-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeLoop struct {
	forceSyncs   atomic.Int32
	observers    []eventloop.Observer
	refreshers   []eventloop.PullToRefreshObserver
	unsubscribed atomic.Int32
}

func (l *fakeLoop) ForceSync() { l.forceSyncs.Add(1) }

func (l *fakeLoop) Subscribe(o eventloop.Observer) func() {
	l.observers = append(l.observers, o)
	return func() { l.unsubscribed.Add(1) }
}

func (l *fakeLoop) SubscribePullToRefresh(o eventloop.PullToRefreshObserver) func() {
	l.refreshers = append(l.refreshers, o)
	return func() { l.unsubscribed.Add(1) }
}

type fakeShares struct {
	shares []models.Share
	err    error
	force  []bool
}

func (s *fakeShares) GetShares(_ context.Context, _ string, forceRefresh bool) ([]models.Share, error) {
	s.force = append(s.force, forceRefresh)
	return s.shares, s.err
}

type fakeItems struct {
	counts map[string]int
	err    map[string]error
	items  map[string][]models.Item
}

func (i *fakeItems) UpsertItems(context.Context, string, []models.Item) error { return nil }

func (i *fakeItems) DeleteItemsLocally(context.Context, string, []string) error { return nil }

func (i *fakeItems) CountItems(_ context.Context, shareID string) (int, error) {
	if err := i.err[shareID]; err != nil {
		return 0, err
	}
	return i.counts[shareID], nil
}

func (i *fakeItems) GetItems(_ context.Context, shareID string) ([]models.Item, error) {
	if err := i.err[shareID]; err != nil {
		return nil, err
	}
	return i.items[shareID], nil
}

type fakeSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
	got  chan struct{}
}

func newFakeSender() *fakeSender {
	return &fakeSender{got: make(chan struct{}, 128)}
}

func (s *fakeSender) Send(msg tea.Msg) {
	s.mu.Lock()
	s.msgs = append(s.msgs, msg)
	s.mu.Unlock()
	s.got <- struct{}{}
}

func (s *fakeSender) all() []tea.Msg {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]tea.Msg(nil), s.msgs...)
}
