package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := writeTempJSONConfig(t, `{
		"app": { "token_sign_key": "abc" },
		"auth": { "name": "alice", "password": "Aa1aaaaa" },
		"adapter": { "http_address": "http://chat.local:3000", "request_timeout": "10s" },
		"workers": { "renew_interval": "30s", "poll_interval": 2000000000, "recent_page_size": 50 },
		"storage": { "db": { "dsn": "cache.db" } }
	}`)

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "abc", cfg.App.TokenSignKey)
	assert.Equal(t, "alice", cfg.Auth.Name)
	assert.Equal(t, "Aa1aaaaa", cfg.Auth.Password)
	assert.Equal(t, "http://chat.local:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Workers.RenewInterval)
	assert.Equal(t, 2*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, 50, cfg.Workers.RecentPageSize)
	assert.Equal(t, "cache.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := writeTempJSONConfig(t, `{"adapter":`)

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := writeTempJSONConfig(t, `{"workers":{"poll_interval":"sometimes"}}`)

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))

	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.Zero(t, d)
}
