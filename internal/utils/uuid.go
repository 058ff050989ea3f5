package utils

import "github.com/google/uuid"

// NewRequestID returns a value for the [RequestIDHeader]. Version 7 ids are
// ordered by creation time, so client and backend logs of one session sort
// the same way. A random id is used if the time-based one cannot be made.
func NewRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
