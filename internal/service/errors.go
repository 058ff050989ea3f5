package service

import "errors"

var (
	ErrEmptyCredentials = errors.New("name and password are required")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrNameAlreadyTaken = errors.New("name is already taken")
	ErrLoginOnServer    = errors.New("login failed on server")
	ErrRegisterOnServer = errors.New("registration failed on server")
	ErrInvalidToken     = errors.New("server issued an invalid token")

	// ErrSessionChanged is returned by a renewal whose session was cleared or
	// replaced while the request was in flight. The renewed token is dropped.
	ErrSessionChanged = errors.New("session changed during token renewal")

	ErrLoadHistory  = errors.New("unable to load conversation history")
	ErrOpenStream   = errors.New("unable to open event stream")
	ErrStreamClosed = errors.New("event stream closed")
	ErrSendMessage  = errors.New("unable to send message")

	ErrEmptySearch      = errors.New("name to search for is empty")
	ErrAlreadyRequested = errors.New("friend request already sent")
	ErrRequestReviewed  = errors.New("friend request already reviewed")
	ErrFriendRequest    = errors.New("friend request failed")
)
