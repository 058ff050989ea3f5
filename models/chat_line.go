package models

import "time"

// ChatLine is a message prepared for display in the open conversation.
type ChatLine struct {
	Mid     int64
	FromUID int64
	// Sender is the display name of the author; empty when Self is true.
	Sender  string
	Self    bool
	Time    time.Time
	Content string
}
