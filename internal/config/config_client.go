package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// TokenSignKey verifies bearer token signatures when non-empty.
	TokenSignKey string
}

// ClientAuth holds optional startup credentials.
type ClientAuth struct {
	Name     string
	Password string
}

// HasCredentials reports whether startup login was requested.
func (a ClientAuth) HasCredentials() bool {
	return a.Name != ""
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the chat backend.
	HTTPAddress string
	// RequestTimeout is the timeout for regular outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string. Empty disables the cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RenewInterval defines how often the bearer token is renewed.
	RenewInterval time.Duration
	// PollInterval defines how often the conversation list is fetched.
	PollInterval time.Duration
	// RecentPageSize bounds the conversation list fetch.
	RecentPageSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Auth    ClientAuth
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config from environment,
// command-line flags, an optional JSON file and defaults.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			TokenSignKey: cfg.App.TokenSignKey,
		},
		Auth: ClientAuth{
			Name:     cfg.Auth.Name,
			Password: cfg.Auth.Password,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			RenewInterval:  cfg.Workers.RenewInterval,
			PollInterval:   cfg.Workers.PollInterval,
			RecentPageSize: cfg.Workers.RecentPageSize,
		},
	}
}
