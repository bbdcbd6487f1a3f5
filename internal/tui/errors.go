// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pass-sync/internal/eventloop"
	"github.com/MKhiriev/go-pass-sync/internal/service"
)

// humanizeSyncError turns a pass failure into a line for the status bar.
func humanizeSyncError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrServerUnavailable):
		return "Отсутствует сеть или Сервер недоступен"
	case errors.Is(err, service.ErrSessionExpired):
		return "Сессия истекла, обновите токен доступа"
	case errors.Is(err, service.ErrShareAccessRevoked):
		return "Доступ к хранилищу отозван"
	case errors.Is(err, service.ErrShareKeyUndecryptable):
		return "Не удалось расшифровать ключ хранилища (неверный мастер-пароль?)"
	case errors.Is(err, eventloop.ErrCursorDidNotAdvance):
		return "Сервер вернул некорректную страницу событий"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}

func skipReasonText(reason eventloop.SkipReason) string {
	switch reason {
	case eventloop.NoInternetConnection:
		return "Нет подключения к сети, синхронизация пропущена"
	case eventloop.PreviousLoopNotFinished:
		return "Синхронизация уже выполняется"
	default:
		return "Синхронизация пропущена"
	}
}
