package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses command-line configuration flags.
//
// Flags:
//
//	-a chat backend address, e.g. http://localhost:3000
//	-request-timeout request timeout (e.g., "10s")
//	-token-sign-key token verification key
//	-name / -password startup credentials
//	-d local cache database path
//	-renew-interval token renewal period (e.g., "60s")
//	-poll-interval conversation list polling period (e.g., "5s")
//	-page-size number of recent conversations fetched per poll
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		backendAddress string
		requestTimeout time.Duration
		tokenSignKey   string
		name           string
		password       string
		databaseDSN    string
		renewInterval  time.Duration
		pollInterval   time.Duration
		pageSize       int
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("chat-client", flag.ContinueOnError)
	fs.StringVar(&backendAddress, "a", "", "Chat backend address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token verification key")
	fs.StringVar(&name, "name", "", "Login name")
	fs.StringVar(&password, "password", "", "Login password")
	fs.StringVar(&databaseDSN, "d", "", "Local cache database path")
	fs.DurationVar(&renewInterval, "renew-interval", 0, "Token renewal period (e.g., 60s)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Conversation list polling period (e.g., 5s)")
	fs.IntVar(&pageSize, "page-size", 0, "Recent conversations per poll")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
		},
		Auth: Auth{
			Name:     name,
			Password: password,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    backendAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RenewInterval:  renewInterval,
			PollInterval:   pollInterval,
			RecentPageSize: pageSize,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
