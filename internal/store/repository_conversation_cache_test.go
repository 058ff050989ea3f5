package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cachedPayload = `[{"User":{"uid":11,"user_name":"bob","mid":98,"msg":"hi","msg_time":"2024-09-12T23:15:05Z","unread":"2"}},` +
	`{"Group":{"gid":3,"group_name":"team","uid":12,"user_name":"carol","mid":40,"msg":"coffee?","msg_time":"2024-09-12 22:00:00","unread":null}}]`

func newMockCache(t *testing.T) (ConversationCache, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewConversationCache(&DB{DB: db, logger: logger.Nop()}, logger.Nop()), mock
}

// argContains matches a string argument that contains sub.
type argContains string

func (a argContains) Match(v driver.Value) bool {
	s, ok := v.(string)
	return ok && strings.Contains(s, string(a))
}

func TestConversationCache_Save(t *testing.T) {
	cache, mock := newMockCache(t)

	items := []models.ConversationSummary{
		models.UserConversation{UID: 11, UserName: "bob", Mid: 98, Msg: "hi"},
		models.GroupConversation{GID: 3, GroupName: "team", Mid: 40},
	}

	mock.ExpectExec(`INSERT INTO conversation_cache \(user_id,payload,updated_at\) VALUES \(\?,\?,CURRENT_TIMESTAMP\) ON CONFLICT \(user_id\) DO UPDATE`).
		WithArgs(int64(1), argContains(`{"User":{"uid":11`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, cache.SaveConversations(context.Background(), 1, items))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationCache_Save_Empty(t *testing.T) {
	cache, mock := newMockCache(t)

	mock.ExpectExec(`INSERT INTO conversation_cache`).
		WithArgs(int64(1), "[]").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, cache.SaveConversations(context.Background(), 1, nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationCache_Save_ExecError(t *testing.T) {
	cache, mock := newMockCache(t)

	mock.ExpectExec(`INSERT INTO conversation_cache`).
		WillReturnError(errors.New("database is locked"))

	err := cache.SaveConversations(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationCache_Load(t *testing.T) {
	cache, mock := newMockCache(t)

	mock.ExpectQuery(`SELECT payload FROM conversation_cache WHERE user_id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(cachedPayload))

	items, err := cache.LoadConversations(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 2)

	user, ok := items[0].(models.UserConversation)
	require.True(t, ok)
	assert.Equal(t, int64(11), user.UID)
	assert.Equal(t, "bob", user.UserName)
	assert.Equal(t, int64(98), user.Mid)

	group, ok := items[1].(models.GroupConversation)
	require.True(t, ok)
	assert.Equal(t, int64(3), group.GID)
	assert.Equal(t, int64(40), group.Mid)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationCache_Load_NothingStored(t *testing.T) {
	cache, mock := newMockCache(t)

	mock.ExpectQuery(`SELECT payload FROM conversation_cache`).
		WithArgs(int64(2)).
		WillReturnError(sql.ErrNoRows)

	items, err := cache.LoadConversations(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestConversationCache_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "query fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT payload FROM conversation_cache`).
					WillReturnError(errors.New("disk I/O error"))
			},
			wantErr: ErrScanningRow,
		},
		{
			name: "corrupted payload",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT payload FROM conversation_cache`).
					WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(`[{"Room":{}}]`))
			},
			wantErr: ErrCorruptedSnapshot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache, mock := newMockCache(t)
			tt.setup(mock)

			_, err := cache.LoadConversations(context.Background(), 1)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
