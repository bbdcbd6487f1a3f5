// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package eventloop

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/stretchr/testify/require"
)

// fakeBackend implements every data collaborator of the loop and records
// the calls made to it in order.
type fakeBackend struct {
	mu sync.Mutex

	local     []models.Share
	remote    []models.Share
	sharesErr error

	cursors   map[string]string
	cursorErr error

	batches   map[string][]models.SyncEvents
	eventsErr map[string]error
	// eventsHook runs before a batch is returned and may block.
	eventsHook func(ctx context.Context, shareID, cursor string) error

	items     map[string]map[string]models.Item
	upsertErr error
	deleteErr error

	keyErr error
	panics bool

	calls []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		cursors:   make(map[string]string),
		batches:   make(map[string][]models.SyncEvents),
		eventsErr: make(map[string]error),
		items:     make(map[string]map[string]models.Item),
	}
}

func (f *fakeBackend) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeBackend) GetShares(_ context.Context, _ string, forceRefresh bool) ([]models.Share, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("shares:%t", forceRefresh)
	if f.panics {
		panic("share cache corrupted")
	}
	if f.sharesErr != nil {
		return nil, f.sharesErr
	}
	if forceRefresh {
		return f.remote, nil
	}
	return f.local, nil
}

func (f *fakeBackend) GetLastEventID(_ context.Context, _, shareID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("cursor:get:%s", shareID)
	if f.cursorErr != nil {
		return "", f.cursorErr
	}
	return f.cursors[shareID], nil
}

func (f *fakeBackend) UpsertLastEventID(_ context.Context, _, shareID, eventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("cursor:set:%s:%s", shareID, eventID)
	f.cursors[shareID] = eventID
	return nil
}

func (f *fakeBackend) GetEvents(ctx context.Context, shareID, lastEventID string) (models.SyncEvents, error) {
	f.mu.Lock()
	f.record("events:%s:%s", shareID, lastEventID)
	hook := f.eventsHook
	f.mu.Unlock()

	if hook != nil {
		if err := hook(ctx, shareID, lastEventID); err != nil {
			return models.SyncEvents{}, err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.eventsErr[shareID]; err != nil {
		return models.SyncEvents{}, err
	}
	queue := f.batches[shareID]
	if len(queue) == 0 {
		return models.SyncEvents{LatestEventID: lastEventID}, nil
	}
	f.batches[shareID] = queue[1:]
	return queue[0], nil
}

func (f *fakeBackend) UpsertItems(_ context.Context, shareID string, items []models.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("upsert:%s:%d", shareID, len(items))
	if f.upsertErr != nil {
		return f.upsertErr
	}
	if f.items[shareID] == nil {
		f.items[shareID] = make(map[string]models.Item)
	}
	for _, it := range items {
		f.items[shareID][it.ItemID] = it
	}
	return nil
}

func (f *fakeBackend) DeleteItemsLocally(_ context.Context, shareID string, itemIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("delete:%s:%d", shareID, len(itemIDs))
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for _, id := range itemIDs {
		delete(f.items[shareID], id)
	}
	return nil
}

func (f *fakeBackend) GetLatestShareKey(_ context.Context, shareID string, forceRefresh bool) (models.ShareKey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("key:%s:%t", shareID, forceRefresh)
	if f.keyErr != nil {
		return models.ShareKey{}, f.keyErr
	}
	return models.ShareKey{ShareID: shareID, KeyRotation: 1}, nil
}

func (f *fakeBackend) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) countPrefix(prefix string) int {
	n := 0
	for _, c := range f.callLog() {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (f *fakeBackend) cursor(shareID string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cursors[shareID]
}

func (f *fakeBackend) itemCount(shareID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items[shareID])
}

func (f *fakeBackend) collaborators(r Reachability) Collaborators {
	return Collaborators{
		Shares:       f,
		EventIDs:     f,
		Events:       f,
		Items:        f,
		Keys:         f,
		Reachability: r,
	}
}

// fakeReachability is a switchable network state.
type fakeReachability struct {
	reachable atomic.Bool
	startErr  atomic.Pointer[error]
	starts    atomic.Int32
	unsubs    atomic.Int32

	mu   sync.Mutex
	subs []func(bool)
}

func newFakeReachability(reachable bool) *fakeReachability {
	r := &fakeReachability{}
	r.reachable.Store(reachable)
	return r
}

func (r *fakeReachability) Start(context.Context) error {
	r.starts.Add(1)
	if err := r.startErr.Load(); err != nil {
		return *err
	}
	return nil
}

func (r *fakeReachability) IsReachable() bool { return r.reachable.Load() }

func (r *fakeReachability) Subscribe(fn func(bool)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, fn)
	return func() { r.unsubs.Add(1) }
}

func (r *fakeReachability) set(v bool) {
	r.reachable.Store(v)
	r.mu.Lock()
	subs := append([]func(bool){}, r.subs...)
	r.mu.Unlock()
	for _, fn := range subs {
		fn(v)
	}
}

// recorder collects every event emitted by a loop.
type recorder struct {
	mu     sync.Mutex
	events []Event

	spinnerStops atomic.Int32
}

func (r *recorder) Notify(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) PullToRefreshShouldStopRefreshing() {
	r.spinnerStops.Add(1)
}

func (r *recorder) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// outcomes returns PassFinished, PassFailed and PassSkipped events.
func (r *recorder) outcomes() []Event {
	var out []Event
	for _, e := range r.all() {
		switch e.(type) {
		case PassFinished, PassFailed, PassSkipped:
			out = append(out, e)
		}
	}
	return out
}

func (r *recorder) waitOutcomes(t *testing.T, n int) []Event {
	t.Helper()
	require.Eventually(t, func() bool { return len(r.outcomes()) >= n }, 2*time.Second, time.Millisecond)
	return r.outcomes()
}

func newTestLoop(t *testing.T, c Collaborators, opts Options) (*SyncEventLoop, *recorder) {
	t.Helper()
	l := New("user-1", c, opts)
	rec := &recorder{}
	l.Subscribe(rec)
	l.SubscribePullToRefresh(rec)
	t.Cleanup(l.Stop)
	return l, rec
}

// runPass triggers one pass out of band and waits for its outcome. The
// outcome is emitted before the pass handle is released, so it also waits for
// the spinner stop that follows the release.
func runPass(t *testing.T, l *SyncEventLoop, rec *recorder) Event {
	t.Helper()
	before := len(rec.outcomes())
	stopsBefore := rec.spinnerStops.Load()
	l.ForceSync()
	got := rec.waitOutcomes(t, before+1)[before]
	if skip, ok := got.(PassSkipped); !ok || skip.Reason != PreviousLoopNotFinished {
		require.Eventually(t, func() bool { return rec.spinnerStops.Load() > stopsBefore }, 2*time.Second, time.Millisecond)
	}
	return got
}

func shares(ids ...string) []models.Share {
	out := make([]models.Share, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Share{ShareID: id})
	}
	return out
}

func itemsN(prefix string, n int) []models.Item {
	out := make([]models.Item, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Item{ItemID: fmt.Sprintf("%s-%03d", prefix, i)})
	}
	return out
}

func strPtr(s string) *string { return &s }
