package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// ErrEmptyToken is returned when the backend answers a login or renewal with
// an empty token.
var ErrEmptyToken = errors.New("server returned an empty token")

// ErrUnknownTarget is returned for a [models.Target] implementation the
// adapter does not know how to address.
var ErrUnknownTarget = errors.New("unknown conversation target")
