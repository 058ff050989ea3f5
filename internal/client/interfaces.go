// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-chat-client/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive part of the client.
type UI interface {
	// LoginFlow blocks until the user has logged in or quit.
	LoginFlow(ctx context.Context) (models.UserClaims, error)

	// MainLoop blocks until the user quits or logs out; logout reports the
	// latter.
	MainLoop(ctx context.Context, claims models.UserClaims) (logout bool, err error)
}
