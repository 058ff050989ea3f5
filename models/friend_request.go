package models

import (
	"encoding/json"
	"fmt"
)

// FriendRequestStatus is the review state of a friend request.
type FriendRequestStatus string

const (
	FriendRequestWait    FriendRequestStatus = "WAIT"
	FriendRequestApprove FriendRequestStatus = "APPROVE"
	FriendRequestReject  FriendRequestStatus = "REJECT"
)

// UnmarshalJSON implements [json.Unmarshaler] and rejects unknown states.
func (s *FriendRequestStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("friend request status must be a string: %w", err)
	}

	switch status := FriendRequestStatus(raw); status {
	case FriendRequestWait, FriendRequestApprove, FriendRequestReject:
		*s = status
		return nil
	default:
		return fmt.Errorf("%w: friend request status %q", ErrUnknownVariant, raw)
	}
}

// Pending reports whether the request still waits for a decision.
func (s FriendRequestStatus) Pending() bool {
	return s == FriendRequestWait
}

// FriendRequest is an entry of GET /friend/req: somebody asking the current
// user to become friends.
type FriendRequest struct {
	ID          int64               `json:"id"`
	RequestID   int64               `json:"request_id"`
	RequestName string              `json:"request_name"`
	CreateTime  Timestamp           `json:"create_time"`
	Reason      *string             `json:"reason"`
	Status      FriendRequestStatus `json:"status"`
}

// FriendRequestReview is the body of POST /friend/req.
type FriendRequestReview struct {
	ID     int64               `json:"id"`
	Status FriendRequestStatus `json:"status"`
}
