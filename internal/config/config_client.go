package config

import (
	"fmt"
	"time"
)

const defaultAdapterTimeout = 10 * time.Second

// ClientConfig is the configuration of the command-line client, assembled
// from the same sources as [StructuredConfig] except flags, which belong to
// the client's sub-commands.
type ClientConfig struct {
	// Adapter contains the server address and request timeout.
	Adapter Adapter
}

// GetClientConfig builds and validates the client configuration from the
// .env file and the environment. HTTPAddress falls back to the server's
// default listen address.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{Adapter: cfg.Adapter}
	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = defaultHTTPAddress
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}

	return clientCfg, clientCfg.validate()
}
