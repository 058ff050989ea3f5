package models

import (
	"encoding/json"
	"fmt"
)

// Target identifies the other side of a conversation. It is a closed sum type:
// the only implementations are [UserTarget] and [GroupTarget], and consumers
// are expected to type-switch over both.
type Target interface {
	isTarget()

	// Key returns a stable identifier such as "user:11" or "group:3".
	Key() string
}

// UserTarget addresses a one-to-one conversation with a user.
type UserTarget struct {
	UID int64 `json:"uid"`
}

// GroupTarget addresses a group conversation.
type GroupTarget struct {
	GID int64 `json:"gid"`
}

func (UserTarget) isTarget()  {}
func (GroupTarget) isTarget() {}

// Key implements [Target].
func (t UserTarget) Key() string { return fmt.Sprintf("user:%d", t.UID) }

// Key implements [Target].
func (t GroupTarget) Key() string { return fmt.Sprintf("group:%d", t.GID) }

// DecodeTarget decodes a tagged target such as {"User":{"uid":11}}.
func DecodeTarget(data []byte) (Target, error) {
	tag, body, err := splitTagged(data)
	if err != nil {
		return nil, fmt.Errorf("decode target: %w", err)
	}

	switch tag {
	case "User":
		var t UserTarget
		if err = json.Unmarshal(body, &t); err != nil {
			return nil, fmt.Errorf("decode user target: %w", err)
		}
		return t, nil
	case "Group":
		var t GroupTarget
		if err = json.Unmarshal(body, &t); err != nil {
			return nil, fmt.Errorf("decode group target: %w", err)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("decode target: %w %q", ErrUnknownVariant, tag)
	}
}

// EncodeTarget encodes t in the tagged wire form.
func EncodeTarget(t Target) ([]byte, error) {
	switch v := t.(type) {
	case UserTarget:
		return joinTagged("User", v)
	case GroupTarget:
		return joinTagged("Group", v)
	default:
		return nil, fmt.Errorf("encode target: %w %T", ErrUnknownVariant, t)
	}
}

// SameTarget reports whether a and b address the same conversation.
func SameTarget(a, b Target) bool {
	switch av := a.(type) {
	case UserTarget:
		bv, ok := b.(UserTarget)
		return ok && av.UID == bv.UID
	case GroupTarget:
		bv, ok := b.(GroupTarget)
		return ok && av.GID == bv.GID
	default:
		return false
	}
}
