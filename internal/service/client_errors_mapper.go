// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-client/internal/adapter"
)

// mapLoginError translates the adapter's transport error into a login error
// shown to the user.
func mapLoginError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrWrongCredentials
	default:
		return fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}
}

// mapRegisterError translates the adapter's transport error into a
// registration error shown to the user.
func mapRegisterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrConflict):
		return ErrNameAlreadyTaken
	default:
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}
}
