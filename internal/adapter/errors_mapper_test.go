// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHTTPError_Messages(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    error
		wantMsg string
	}{
		{
			name:    "json error body",
			status:  http.StatusForbidden,
			body:    `{"error":"share access revoked"}`,
			want:    ErrForbidden,
			wantMsg: "forbidden: share access revoked",
		},
		{
			name:    "plain text from proxy",
			status:  http.StatusBadGateway,
			body:    "upstream connect error",
			want:    ErrBadGateway,
			wantMsg: "bad gateway: upstream connect error",
		},
		{
			name:    "json without error field",
			status:  http.StatusConflict,
			body:    `{"code":409}`,
			want:    ErrConflict,
			wantMsg: `conflict: {"code":409}`,
		},
		{
			name:    "blank body falls back to status text",
			status:  http.StatusServiceUnavailable,
			body:    "  ",
			want:    ErrServiceUnavailable,
			wantMsg: "service unavailable: Service Unavailable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, &fakeAPI{status: tt.status, body: tt.body})

			_, err := a.ListShares(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestMapHTTPError_UnmappedJSON(t *testing.T) {
	a := newTestAdapter(t, &fakeAPI{status: http.StatusTeapot, body: `{"error":"short and stout"}`})

	err := a.Ping(context.Background())
	assert.EqualError(t, err, "http 418: short and stout")
}
