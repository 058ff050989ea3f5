package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ConversationSummary is one entry of the recent-conversations list. It is a
// closed sum type implemented by [UserConversation] and [GroupConversation];
// the uid/gid discriminant lives in the concrete type, never in nullable
// fields.
type ConversationSummary interface {
	isConversationSummary()
}

// UserConversation summarises a one-to-one conversation.
type UserConversation struct {
	UID      int64     `json:"uid"`
	UserName string    `json:"user_name"`
	Mid      int64     `json:"mid"`
	Msg      string    `json:"msg"`
	MsgTime  Timestamp `json:"msg_time"`
	Unread   *Unread   `json:"unread"`
}

// GroupConversation summarises a group conversation. UID and UserName
// describe the author of the last message.
type GroupConversation struct {
	GID       int64     `json:"gid"`
	GroupName string    `json:"group_name"`
	UID       int64     `json:"uid"`
	UserName  string    `json:"user_name"`
	Mid       int64     `json:"mid"`
	Msg       string    `json:"msg"`
	MsgTime   Timestamp `json:"msg_time"`
	Unread    *Unread   `json:"unread"`
}

func (UserConversation) isConversationSummary()  {}
func (GroupConversation) isConversationSummary() {}

// Unread is an unread-message counter. The backend sends it either as a
// number or as a numeric string.
type Unread int64

// UnmarshalJSON implements [json.Unmarshaler].
func (u *Unread) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if raw == "" {
		*u = 0
		return nil
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("unread count %q: %w", raw, err)
	}
	*u = Unread(n)
	return nil
}

// ConversationTarget returns the target addressed by c.
func ConversationTarget(c ConversationSummary) (Target, error) {
	switch v := c.(type) {
	case UserConversation:
		return UserTarget{UID: v.UID}, nil
	case GroupConversation:
		return GroupTarget{GID: v.GID}, nil
	default:
		return nil, fmt.Errorf("conversation target: %w %T", ErrUnknownVariant, c)
	}
}

// ConversationLastMid returns the id of the last message of c.
func ConversationLastMid(c ConversationSummary) (int64, error) {
	switch v := c.(type) {
	case UserConversation:
		return v.Mid, nil
	case GroupConversation:
		return v.Mid, nil
	default:
		return 0, fmt.Errorf("conversation mid: %w %T", ErrUnknownVariant, c)
	}
}

// ConversationPeer returns the peer to open when c is selected.
func ConversationPeer(c ConversationSummary) (Peer, error) {
	switch v := c.(type) {
	case UserConversation:
		return Peer{Target: UserTarget{UID: v.UID}, Name: v.UserName}, nil
	case GroupConversation:
		return Peer{Target: GroupTarget{GID: v.GID}, Name: v.GroupName}, nil
	default:
		return Peer{}, fmt.Errorf("conversation peer: %w %T", ErrUnknownVariant, c)
	}
}

// DecodeConversations decodes the body of GET /user/history/{n}.
func DecodeConversations(data []byte) ([]ConversationSummary, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("decode conversations: %w", err)
	}

	list := make([]ConversationSummary, 0, len(raws))
	for i, raw := range raws {
		c, err := decodeConversation(raw)
		if err != nil {
			return nil, fmt.Errorf("decode conversation #%d: %w", i, err)
		}
		list = append(list, c)
	}
	return list, nil
}

func decodeConversation(data []byte) (ConversationSummary, error) {
	tag, body, err := splitTagged(data)
	if err != nil {
		return nil, err
	}

	switch tag {
	case "User":
		var c UserConversation
		if err = json.Unmarshal(body, &c); err != nil {
			return nil, err
		}
		return c, nil
	case "Group":
		var c GroupConversation
		if err = json.Unmarshal(body, &c); err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, tag)
	}
}

// EncodeConversations encodes list in the same tagged form the backend uses,
// so that the result can be read back with [DecodeConversations].
func EncodeConversations(list []ConversationSummary) ([]byte, error) {
	out := make([]json.RawMessage, 0, len(list))
	for _, c := range list {
		var (
			b   []byte
			err error
		)
		switch v := c.(type) {
		case UserConversation:
			b, err = joinTagged("User", v)
		case GroupConversation:
			b, err = joinTagged("Group", v)
		default:
			err = fmt.Errorf("%w %T", ErrUnknownVariant, c)
		}
		if err != nil {
			return nil, fmt.Errorf("encode conversations: %w", err)
		}
		out = append(out, b)
	}
	return json.Marshal(out)
}

// Peer is the other side of an open conversation.
type Peer struct {
	Target Target
	Name   string
}

// LastActivity returns the time of the last message of c, or the zero time
// for unknown variants.
func LastActivity(c ConversationSummary) time.Time {
	switch v := c.(type) {
	case UserConversation:
		return v.MsgTime.Time
	case GroupConversation:
		return v.MsgTime.Time
	default:
		return time.Time{}
	}
}
