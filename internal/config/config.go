// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Storage providers accepted in [Storage.Provider].
const (
	ProviderMemory   = "memory"
	ProviderPostgres = "postgres"
	ProviderSQLite   = "sqlite"
)

// Password hashers accepted in [App.PasswordHasher].
const (
	HasherSHA512   = "sha512"
	HasherArgon2id = "argon2id"
)

// MinTokenSignKeyLength is the minimum accepted length, in bytes, of the
// token signing secret. HS256 keys shorter than the digest size weaken the MAC.
const MinTokenSignKeyLength = 32

const (
	defaultTokenExpiryInDays = 1
	defaultHTTPAddress       = "localhost:8080"
	defaultRequestTimeout    = 30 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// go-pass-auth server. It is populated by merging values from a .env file,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, hashing and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage selects the user store backend and its connection string.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings used by the REST client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// issuance, password hashing and versioning.
type App struct {
	// TokenSignKey is the shared secret used to sign and verify tokens.
	// Required; never hard-coded.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenAudience is the "aud" claim of every issued token.
	// Env: APP_TOKEN_AUDIENCE
	TokenAudience string `env:"TOKEN_AUDIENCE"`

	// TokenExpiryInDays is the token lifetime measured from issuance.
	// Env: APP_TOKEN_EXPIRY_IN_DAYS
	TokenExpiryInDays int `env:"TOKEN_EXPIRY_IN_DAYS"`

	// PasswordHasher selects the password hashing scheme: "sha512" or
	// "argon2id".
	// Env: APP_PASSWORD_HASHER
	PasswordHasher string `env:"PASSWORD_HASHER"`

	// SkipDemoUser disables seeding of the bootstrap "demo" administrator.
	// Env: APP_SKIP_DEMO_USER
	SkipDemoUser bool `env:"SKIP_DEMO_USER"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported by GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// TokenLifetime returns the configured token lifetime as a duration.
func (a App) TokenLifetime() time.Duration {
	return time.Duration(a.TokenExpiryInDays) * 24 * time.Hour
}

// Storage selects and configures the user store.
type Storage struct {
	// Provider is one of "memory", "postgres" or "sqlite".
	// Env: STORAGE_PROVIDER
	Provider string `env:"PROVIDER"`

	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backends.
type DB struct {
	// DSN is the connection string: a PostgreSQL URL for "postgres" or a
	// file path for "sqlite".
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings for the outbound REST client.
type Adapter struct {
	// HTTPAddress is the base address of the server (e.g. "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout applied to every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. .env file (only fills variables not already set)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 1-3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenExpiryInDays == 0 {
		cfg.App.TokenExpiryInDays = defaultTokenExpiryInDays
	}
	if cfg.App.PasswordHasher == "" {
		cfg.App.PasswordHasher = HasherSHA512
	}
	if cfg.Storage.Provider == "" {
		cfg.Storage.Provider = ProviderMemory
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
}
