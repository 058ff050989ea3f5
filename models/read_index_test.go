package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadIndexUpdate_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   ReadIndexUpdate
		want string
	}{
		{"user", ReadIndexUpdate{Target: UserTarget{UID: 11}, Mid: 98}, `{"User":{"target_uid":11,"mid":98}}`},
		{"group", ReadIndexUpdate{Target: GroupTarget{GID: 3}, Mid: 120}, `{"Group":{"target_gid":3,"mid":120}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestReadIndexUpdate_MarshalJSON_NoTarget(t *testing.T) {
	_, err := json.Marshal(ReadIndexUpdate{Mid: 1})
	require.Error(t, err)
}

func TestSameTarget(t *testing.T) {
	assert.True(t, SameTarget(UserTarget{UID: 1}, UserTarget{UID: 1}))
	assert.False(t, SameTarget(UserTarget{UID: 1}, UserTarget{UID: 2}))
	assert.False(t, SameTarget(UserTarget{UID: 1}, GroupTarget{GID: 1}))
	assert.True(t, SameTarget(GroupTarget{GID: 4}, GroupTarget{GID: 4}))
	assert.False(t, SameTarget(nil, UserTarget{UID: 1}))
}
