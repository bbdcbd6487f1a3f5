// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-pass-sync/internal/eventloop"
	"github.com/MKhiriev/go-pass-sync/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeSyncError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"server unavailable", fmt.Errorf("wrap: %w", service.ErrServerUnavailable), "Отсутствует сеть или Сервер недоступен"},
		{"dial error", errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), "Отсутствует сеть или Сервер недоступен"},
		{"session", service.ErrSessionExpired, "Сессия истекла, обновите токен доступа"},
		{"revoked", service.ErrShareAccessRevoked, "Доступ к хранилищу отозван"},
		{"undecryptable", service.ErrShareKeyUndecryptable, "Не удалось расшифровать ключ хранилища (неверный мастер-пароль?)"},
		{"cursor", &eventloop.PassError{Stage: eventloop.StageCursor, Err: eventloop.ErrCursorDidNotAdvance}, "Сервер вернул некорректную страницу событий"},
		{"other", errors.New("disk full"), "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeSyncError(tt.err))
		})
	}
}
