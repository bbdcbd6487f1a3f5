// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the pass API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer and the sync event loop from the underlying protocol. The package
// ships an HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the pass API.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Ping checks that the API answers. It is used by the reachability
	// monitor and does not require a token.
	Ping(ctx context.Context) error

	// ListShares returns every share the authenticated user has access to.
	ListShares(ctx context.Context) ([]models.Share, error)

	// GetEvents returns the next page of changes of shareID after
	// lastEventID. An empty lastEventID requests events from the beginning.
	// Returns [ErrNotFound] (wrapped) when the share no longer exists.
	GetEvents(ctx context.Context, shareID, lastEventID string) (models.SyncEvents, error)

	// GetShareKeys returns all wrapped keys of shareID, one per rotation.
	GetShareKeys(ctx context.Context, shareID string) ([]models.ShareKey, error)
}
