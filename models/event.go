package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrMalformedEvent is returned by [DecodeInboundEvent] when an SSE payload
// cannot be decoded into a known event.
var ErrMalformedEvent = errors.New("malformed inbound event")

// InboundEvent is a single event delivered over the realtime stream. It is a
// closed sum type implemented by [ChatMessage] and [Heartbeat].
type InboundEvent interface {
	isInboundEvent()
}

// ChatMessage is a chat message pushed by the backend.
type ChatMessage struct {
	// Mid is the backend-assigned message id. Ids grow monotonically within a
	// conversation.
	Mid int64
	// From is the uid of the author.
	From int64
	// CreatedAt is the moment the backend accepted the message.
	CreatedAt time.Time
	// Target is the conversation the message was posted to.
	Target Target
	// Content is the message text.
	Content string
	// ReplyTo holds the mid of the quoted message for replies, nil otherwise.
	ReplyTo *int64
}

// Heartbeat is a liveness signal emitted periodically by the backend. It
// carries no chat content.
type Heartbeat struct {
	Time time.Time
}

func (ChatMessage) isInboundEvent() {}
func (Heartbeat) isInboundEvent()   {}

type chatMessageWire struct {
	Mid     int64 `json:"mid"`
	Payload struct {
		FromUID   int64           `json:"from_uid"`
		CreatedAt Timestamp       `json:"created_at"`
		Target    json.RawMessage `json:"target"`
		Detail    json.RawMessage `json:"detail"`
	} `json:"payload"`
}

type heartbeatWire struct {
	Time Timestamp `json:"time"`
}

type messageContentWire struct {
	Content struct {
		Content string `json:"content"`
	} `json:"content"`
	Mid *int64 `json:"mid,omitempty"`
}

// DecodeInboundEvent decodes the JSON payload of one SSE data field.
func DecodeInboundEvent(data []byte) (InboundEvent, error) {
	tag, body, err := splitTagged(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	switch tag {
	case "ChatMessage":
		return decodeChatMessage(body)
	case "Heartbeat":
		var hb heartbeatWire
		if err = json.Unmarshal(body, &hb); err != nil {
			return nil, fmt.Errorf("%w: heartbeat: %v", ErrMalformedEvent, err)
		}
		return Heartbeat{Time: hb.Time.Time}, nil
	default:
		return nil, fmt.Errorf("%w: %w %q", ErrMalformedEvent, ErrUnknownVariant, tag)
	}
}

func decodeChatMessage(body []byte) (ChatMessage, error) {
	var wire chatMessageWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return ChatMessage{}, fmt.Errorf("%w: chat message: %v", ErrMalformedEvent, err)
	}

	target, err := DecodeTarget(wire.Payload.Target)
	if err != nil {
		return ChatMessage{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	content, replyTo, err := decodeMessageDetail(wire.Payload.Detail)
	if err != nil {
		return ChatMessage{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	return ChatMessage{
		Mid:       wire.Mid,
		From:      wire.Payload.FromUID,
		CreatedAt: wire.Payload.CreatedAt.Time,
		Target:    target,
		Content:   content,
		ReplyTo:   replyTo,
	}, nil
}

// decodeMessageDetail handles {"Normal":{...}} and {"Replay":{"mid":..,...}}.
func decodeMessageDetail(data []byte) (string, *int64, error) {
	tag, body, err := splitTagged(data)
	if err != nil {
		return "", nil, fmt.Errorf("detail: %w", err)
	}

	var detail messageContentWire
	if err = json.Unmarshal(body, &detail); err != nil {
		return "", nil, fmt.Errorf("detail %s: %w", tag, err)
	}

	switch tag {
	case "Normal":
		return detail.Content.Content, nil, nil
	case "Replay":
		return detail.Content.Content, detail.Mid, nil
	default:
		return "", nil, fmt.Errorf("detail: %w %q", ErrUnknownVariant, tag)
	}
}
