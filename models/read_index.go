package models

import "fmt"

// ReadIndexUpdate tells the backend the last message the user has seen in a
// conversation. Unread counters on other screens are computed from it.
type ReadIndexUpdate struct {
	Target Target
	Mid    int64
}

type userReadIndexWire struct {
	TargetUID int64 `json:"target_uid"`
	Mid       int64 `json:"mid"`
}

type groupReadIndexWire struct {
	TargetGID int64 `json:"target_gid"`
	Mid       int64 `json:"mid"`
}

// MarshalJSON implements [json.Marshaler] producing
// {"User":{"target_uid":..,"mid":..}} or {"Group":{"target_gid":..,"mid":..}}.
func (u ReadIndexUpdate) MarshalJSON() ([]byte, error) {
	switch t := u.Target.(type) {
	case UserTarget:
		return joinTagged("User", userReadIndexWire{TargetUID: t.UID, Mid: u.Mid})
	case GroupTarget:
		return joinTagged("Group", groupReadIndexWire{TargetGID: t.GID, Mid: u.Mid})
	default:
		return nil, fmt.Errorf("encode read index: %w %T", ErrUnknownVariant, u.Target)
	}
}
