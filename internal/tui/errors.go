// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-chat-client/internal/adapter"
	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/internal/session"
)

func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrEmptyCredentials):
		return "Имя и пароль обязательны"
	case errors.Is(err, service.ErrWrongCredentials):
		return "Неверное имя или пароль"
	case errors.Is(err, service.ErrNameAlreadyTaken):
		return "Имя уже занято"
	case errors.Is(err, session.ErrNoSession):
		return "Сессия завершена"
	case errors.Is(err, service.ErrStreamClosed):
		return "Соединение с сервером потеряно"
	case errors.Is(err, service.ErrEmptySearch):
		return "Введите имя для поиска"
	case errors.Is(err, service.ErrAlreadyRequested):
		return "Заявка уже отправлена"
	case errors.Is(err, service.ErrRequestReviewed):
		return "Заявка уже рассмотрена"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Сессия истекла, войдите снова"
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
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
