// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	conversationCacheTable = "conversation_cache"

	upsertConversationsSuffix = `ON CONFLICT (user_id) DO UPDATE SET
		payload    = excluded.payload,
		updated_at = excluded.updated_at`
)

// buildSaveConversationsQuery builds an upsert of the serialized list of
// userID.
func buildSaveConversationsQuery(userID int64, payload []byte) (string, []any, error) {
	return sq.Insert(conversationCacheTable).
		Columns("user_id", "payload", "updated_at").
		Values(userID, string(payload), sq.Expr("CURRENT_TIMESTAMP")).
		Suffix(upsertConversationsSuffix).
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildLoadConversationsQuery(userID int64) (string, []any, error) {
	return sq.Select("payload").
		From(conversationCacheTable).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Question).
		ToSql()
}
