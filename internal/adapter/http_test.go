// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is an in-process stand-in for the pass API routes the adapter uses.
type fakeAPI struct {
	shares    []models.Share
	events    map[string]models.SyncEvents // key: shareID + "/" + eventID
	keys      map[string][]models.ShareKey
	status    int
	body      string // error body sent with status
	gotAuth   string
	gotEvents []string
}

func (f *fakeAPI) router() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f.gotAuth = r.Header.Get("Authorization")
			if f.status != 0 {
				body := f.body
				if body == "" {
					body = "forced failure"
				}
				w.WriteHeader(f.status)
				_, _ = w.Write([]byte(body))
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/api/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/api/share", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, sharesResponse{Shares: f.shares})
	})
	r.Get("/api/share/{shareID}/event", func(w http.ResponseWriter, r *http.Request) {
		f.serveEvents(w, chi.URLParam(r, "shareID"), "")
	})
	r.Get("/api/share/{shareID}/event/{eventID}", func(w http.ResponseWriter, r *http.Request) {
		f.serveEvents(w, chi.URLParam(r, "shareID"), chi.URLParam(r, "eventID"))
	})
	r.Get("/api/share/{shareID}/key", func(w http.ResponseWriter, r *http.Request) {
		keys, ok := f.keys[chi.URLParam(r, "shareID")]
		if !ok {
			http.Error(w, "share not found", http.StatusNotFound)
			return
		}
		writeJSON(w, shareKeysResponse{Keys: keys})
	})

	return r
}

func (f *fakeAPI) serveEvents(w http.ResponseWriter, shareID, eventID string) {
	f.gotEvents = append(f.gotEvents, shareID+"/"+eventID)
	ev, ok := f.events[shareID+"/"+eventID]
	if !ok {
		http.Error(w, "share not found", http.StatusNotFound)
		return
	}
	writeJSON(w, ev)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// newTestAdapter builds an httpServerAdapter pointed at a fresh test server.
func newTestAdapter(t *testing.T, api *fakeAPI) *httpServerAdapter {
	t.Helper()
	srv := httptest.NewServer(api.router())
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://pass.example.com/", want: "https://pass.example.com"},
		{in: " http://127.0.0.1:9000 ", want: "http://127.0.0.1:9000"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── token ────────────────────────────────────────────────────────────────────

func TestSetToken_StripsBearerPrefix(t *testing.T) {
	a := newTestAdapter(t, &fakeAPI{})
	a.SetToken("  Bearer abc.def.ghi ")
	assert.Equal(t, "abc.def.ghi", a.Token())
}

// ── Ping ─────────────────────────────────────────────────────────────────────

func TestPing_Success(t *testing.T) {
	a := newTestAdapter(t, &fakeAPI{})
	assert.NoError(t, a.Ping(context.Background()))
}

func TestPing_ServiceUnavailable(t *testing.T) {
	a := newTestAdapter(t, &fakeAPI{status: http.StatusServiceUnavailable})
	assert.ErrorIs(t, a.Ping(context.Background()), ErrServiceUnavailable)
}

// ── ListShares ───────────────────────────────────────────────────────────────

func TestListShares_Success(t *testing.T) {
	api := &fakeAPI{shares: []models.Share{
		{ShareID: "s1", VaultID: "v1", KeyRotation: 1, Owner: true},
		{ShareID: "s2", VaultID: "v2", KeyRotation: 3},
	}}
	a := newTestAdapter(t, api)
	a.SetToken("tok")

	got, err := a.ListShares(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2"}, models.ShareIDs(got))
	assert.Equal(t, "Bearer tok", api.gotAuth)
}

func TestListShares_Unauthorized(t *testing.T) {
	a := newTestAdapter(t, &fakeAPI{status: http.StatusUnauthorized})

	_, err := a.ListShares(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── GetEvents ────────────────────────────────────────────────────────────────

func TestGetEvents_FromBeginning(t *testing.T) {
	api := &fakeAPI{events: map[string]models.SyncEvents{
		"s1/": {LatestEventID: "E1", UpdatedItems: []models.Item{{ItemID: "I1"}, {ItemID: "I2"}}},
	}}
	a := newTestAdapter(t, api)

	got, err := a.GetEvents(context.Background(), "s1", "")
	require.NoError(t, err)
	assert.Equal(t, "E1", got.LatestEventID)
	assert.Len(t, got.UpdatedItems, 2)
	assert.False(t, got.EventsPending)
	assert.Equal(t, []string{"s1/"}, api.gotEvents)
}

func TestGetEvents_WithCursor(t *testing.T) {
	rotation := "R2"
	api := &fakeAPI{events: map[string]models.SyncEvents{
		"s1/E10": {LatestEventID: "E30", EventsPending: true, NewRotationID: &rotation, DeletedItemIDs: []string{"I9"}},
	}}
	a := newTestAdapter(t, api)

	got, err := a.GetEvents(context.Background(), "s1", "E10")
	require.NoError(t, err)
	assert.Equal(t, "E30", got.LatestEventID)
	assert.True(t, got.EventsPending)
	assert.True(t, got.HasNewRotation())
	assert.Equal(t, []string{"I9"}, got.DeletedItemIDs)
}

func TestGetEvents_NotFound(t *testing.T) {
	a := newTestAdapter(t, &fakeAPI{events: map[string]models.SyncEvents{}})

	_, err := a.GetEvents(context.Background(), "gone", "E1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetEvents_ContextCanceled(t *testing.T) {
	a := newTestAdapter(t, &fakeAPI{events: map[string]models.SyncEvents{}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.GetEvents(ctx, "s1", "")
	assert.ErrorIs(t, err, context.Canceled)
}

// ── GetShareKeys ─────────────────────────────────────────────────────────────

func TestGetShareKeys_FillsShareID(t *testing.T) {
	api := &fakeAPI{keys: map[string][]models.ShareKey{
		"s1": {{KeyRotation: 1, Key: "k1"}, {KeyRotation: 2, Key: "k2"}},
	}}
	a := newTestAdapter(t, api)

	got, err := a.GetShareKeys(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "s1", got[0].ShareID)
	assert.Equal(t, int64(2), got[1].KeyRotation)
}

func TestGetShareKeys_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "bad request", status: http.StatusBadRequest, want: ErrBadRequest},
		{name: "forbidden", status: http.StatusForbidden, want: ErrForbidden},
		{name: "conflict", status: http.StatusConflict, want: ErrConflict},
		{name: "too many requests", status: http.StatusTooManyRequests, want: ErrTooManyRequests},
		{name: "internal", status: http.StatusInternalServerError, want: ErrInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway, want: ErrBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, &fakeAPI{status: tt.status})
			_, err := a.GetShareKeys(context.Background(), "s1")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetShareKeys_UnmappedStatus(t *testing.T) {
	a := newTestAdapter(t, &fakeAPI{status: http.StatusTeapot})

	_, err := a.GetShareKeys(context.Background(), "s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
