// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the chat backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) that also opens the server-sent event stream.
//
// The adapter holds no session state: every authenticated call receives the
// bearer token explicitly, so the token is always whatever the session store
// held when the caller took its snapshot.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-chat-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the chat backend.
type ServerAdapter interface {
	// Login exchanges credentials for a bearer token
	// (POST /token/login). A 401 is returned as [ErrUnauthorized].
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Register creates an account (POST /user/register). A taken name is
	// returned as [ErrConflict].
	Register(ctx context.Context, creds models.Credentials) error

	// RenewToken trades token for a fresh one (PATCH /token/renew).
	RenewToken(ctx context.Context, token string) (string, error)

	// RecentConversations fetches at most limit conversation summaries
	// (GET /user/history/{limit}).
	RecentConversations(ctx context.Context, token string, limit int) ([]models.ConversationSummary, error)

	// History fetches prior messages of the conversation with target
	// (GET /user/{uid}/history or GET /group/{gid}/history).
	History(ctx context.Context, token string, target models.Target) ([]models.HistoryMessage, error)

	// SendMessage posts msg to target
	// (POST /user/{uid}/send or POST /group/{gid}/send).
	SendMessage(ctx context.Context, token string, target models.Target, msg string) error

	// PutReadIndex stores the last read message of a conversation (PUT /ri).
	PutReadIndex(ctx context.Context, token string, update models.ReadIndexUpdate) error

	// Friends lists the user's friends (GET /friend).
	Friends(ctx context.Context, token string) ([]models.Friend, error)

	// FindUsers searches accounts by name (GET /user/find/{name}).
	FindUsers(ctx context.Context, token string, name string) ([]models.Friend, error)

	// SendFriendRequest asks uid to become a friend (POST /friend/req/{uid}).
	SendFriendRequest(ctx context.Context, token string, uid int64) error

	// FriendRequests lists requests addressed to the user (GET /friend/req).
	FriendRequests(ctx context.Context, token string) ([]models.FriendRequest, error)

	// ReviewFriendRequest approves or rejects a request (POST /friend/req).
	ReviewFriendRequest(ctx context.Context, token string, review models.FriendRequestReview) error

	// OpenEventStream opens the long-lived event stream (GET /event/stream)
	// and returns its body. The caller must close it; cancelling ctx also
	// aborts the stream.
	OpenEventStream(ctx context.Context, token string) (io.ReadCloser, error)
}
