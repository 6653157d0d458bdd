package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// LogLevel is applied to the client's file logger.
	LogLevel string
	// TokenSignKey lets `sitectl token` mint publisher tokens locally.
	TokenSignKey string
	// TokenIssuer and TokenDuration shape locally minted tokens.
	TokenIssuer   string
	TokenDuration time.Duration
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is sent as the Bearer credential of publish requests.
	Token string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// DebounceInterval coalesces file events of the watch command.
	DebounceInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App          ClientApp
	Adapter      ClientAdapter
	Workers      ClientWorkers
	ExtraModules []string
}

// GetClientConfig builds and validates a client-specific config view.
//
// Layers are defaults, .env, environment, the overrides bound to sitectl's
// own flags and finally the JSON file. A nil overrides layer is skipped.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withLayer(overrides).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel:      cfg.App.LogLevel,
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Workers:      ClientWorkers{DebounceInterval: cfg.Workers.DebounceInterval},
		ExtraModules: cfg.Site.ExtraModules,
	}

	return clientCfg, clientCfg.validate()
}
