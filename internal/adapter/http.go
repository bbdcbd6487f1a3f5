package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/utils"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

type sharesResponse struct {
	Shares []models.Share `json:"shares"`
}

type shareKeysResponse struct {
	Keys []models.ShareKey `json:"keys"`
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed,
// "Bearer " prefix removed) for the Authorization header of all subsequent
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Ping implements [ServerAdapter]. GET /api/ping.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/ping")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}
	return mapHTTPError(resp)
}

// ListShares implements [ServerAdapter]. GET /api/share.
func (h *httpServerAdapter) ListShares(ctx context.Context) ([]models.Share, error) {
	resp, err := h.authedRequest(ctx).Get("/api/share")
	if err != nil {
		return nil, fmt.Errorf("list shares request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var sr sharesResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return nil, fmt.Errorf("decode shares response: %w", err)
	}

	return sr.Shares, nil
}

// GetEvents implements [ServerAdapter].
// GET /api/share/{shareID}/event/{lastEventID}, or GET /api/share/{shareID}/event
// when the share was never synced.
func (h *httpServerAdapter) GetEvents(ctx context.Context, shareID, lastEventID string) (models.SyncEvents, error) {
	req := h.authedRequest(ctx).SetPathParam("shareID", shareID)

	path := "/api/share/{shareID}/event"
	if lastEventID != "" {
		req.SetPathParam("eventID", lastEventID)
		path += "/{eventID}"
	}

	resp, err := req.Get(path)
	if err != nil {
		return models.SyncEvents{}, fmt.Errorf("get events request (share_id=%s): %w", shareID, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncEvents{}, err
	}

	var events models.SyncEvents
	if err = json.Unmarshal(resp.Body(), &events); err != nil {
		return models.SyncEvents{}, fmt.Errorf("decode events response: %w", err)
	}

	h.logger.Debug().
		Str("share_id", shareID).
		Str("last_event_id", lastEventID).
		Str("latest_event_id", events.LatestEventID).
		Bool("events_pending", events.EventsPending).
		Dur("took", resp.Time()).
		Msg("fetched share events")

	return events, nil
}

// GetShareKeys implements [ServerAdapter]. GET /api/share/{shareID}/key.
func (h *httpServerAdapter) GetShareKeys(ctx context.Context, shareID string) ([]models.ShareKey, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("shareID", shareID).
		Get("/api/share/{shareID}/key")
	if err != nil {
		return nil, fmt.Errorf("get share keys request (share_id=%s): %w", shareID, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var kr shareKeysResponse
	if err = json.Unmarshal(resp.Body(), &kr); err != nil {
		return nil, fmt.Errorf("decode share keys response: %w", err)
	}

	for i := range kr.Keys {
		if kr.Keys[i].ShareID == "" {
			kr.Keys[i].ShareID = shareID
		}
	}

	return kr.Keys, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
