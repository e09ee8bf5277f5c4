package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the HTTP endpoint of the solvetrack server.
	// Env: CLIENT_ADDRESS
	BaseURL string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientDB contains local session cache settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path holding the cached session.
	// Env: CLIENT_SESSION_DB
	DSN string `env:"SESSION_DB"`
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB `envPrefix:""`
}

// ClientConfig is the top-level configuration of the command-line client.
// Unlike the server config it is populated from environment variables only;
// per-invocation values come from subcommand flags.
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter `envPrefix:"CLIENT_"`
	// Storage contains the local session cache settings.
	Storage ClientStorage `envPrefix:"CLIENT_"`
}

// GetClientConfig builds and validates the client configuration from the
// environment, applying defaults for everything that is safe to default.
func GetClientConfig() (*ClientConfig, error) {
	clientCfg := &ClientConfig{}
	if err := parseEnv(clientCfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	if clientCfg.Adapter.BaseURL == "" {
		clientCfg.Adapter.BaseURL = "http://localhost:8080"
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = "solvetrack-session.db"
	}

	return clientCfg, clientCfg.validate()
}
