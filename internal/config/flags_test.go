package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-a", "http://chat.local:3000",
		"-request-timeout", "15s",
		"-token-sign-key", "abc",
		"-name", "alice",
		"-password", "Aa1aaaaa",
		"-d", "cache.db",
		"-renew-interval", "45s",
		"-poll-interval", "3s",
		"-page-size", "25",
		"-config", "cfg.json",
	}

	cfg, err := parseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "http://chat.local:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "abc", cfg.App.TokenSignKey)
	assert.Equal(t, "alice", cfg.Auth.Name)
	assert.Equal(t, "Aa1aaaaa", cfg.Auth.Password)
	assert.Equal(t, "cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 45*time.Second, cfg.Workers.RenewInterval)
	assert.Equal(t, 3*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, 25, cfg.Workers.RecentPageSize)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := parseFlags([]string{"-poll-interval", "soon"})
	require.Error(t, err)
}
