package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Decode errors shared by all externally tagged wire types.
var (
	// ErrUnknownVariant is returned when a tagged value names a variant the
	// client does not know.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrMalformedTagged is returned when a tagged value is not an object with
	// exactly one key.
	ErrMalformedTagged = errors.New("malformed tagged value")
)

// splitTagged splits an externally tagged JSON value such as
// {"User":{"uid":1}} into its tag and body.
func splitTagged(data []byte) (string, json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformedTagged, err)
	}
	if len(obj) != 1 {
		return "", nil, fmt.Errorf("%w: expected exactly one key, got %d", ErrMalformedTagged, len(obj))
	}

	for tag, body := range obj {
		return tag, body, nil
	}
	return "", nil, ErrMalformedTagged
}

func joinTagged(tag string, body any) ([]byte, error) {
	return json.Marshal(map[string]any{tag: body})
}
