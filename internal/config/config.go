// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-auth-service application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token signing, public URLs and
	// identity parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the identity store database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for external integrations (the
	// transactional email provider).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control token
// issuance, link building and password hashing.
type App struct {
	// TokenSignKey is the symmetric secret used to sign session tokens and,
	// through per-purpose derivation, confirmation and reset tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// APIBaseURL is the public base URL of this API. It is embedded as the
	// "iss" claim of every session token and prefixes the confirmation link.
	// Env: APP_API_BASE_URL
	APIBaseURL string `env:"API_BASE_URL"`

	// ClientBaseURL is the public base URL of the web client. Password reset
	// links and the post-confirmation redirect point there.
	// Env: APP_CLIENT_BASE_URL
	ClientBaseURL string `env:"CLIENT_BASE_URL"`

	// Name is the application display name used in emails.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// EmailTokenLifespan bounds how long confirmation and reset tokens stay
	// valid after they were minted (e.g. "24h").
	// Env: APP_EMAIL_TOKEN_LIFESPAN
	EmailTokenLifespan time.Duration `env:"EMAIL_TOKEN_LIFESPAN"`

	// PasswordHashCost is the bcrypt cost factor.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Version is the version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response
	// (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the Data Source Name of the identity store. A postgres:// or
	// postgresql:// DSN selects PostgreSQL; sqlite:// or file: selects SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration for external adapter integrations.
type Adapter struct {
	// Mail configures the transactional email provider.
	Mail Mail `envPrefix:"MAIL_"`
}

// Mail holds the SendGrid credentials and sender identity.
type Mail struct {
	// APIKey is the provider API key sent as a bearer token.
	// Env: ADAPTER_MAIL_API_KEY
	APIKey string `env:"API_KEY"`

	// FromAddress is the sender address of every outgoing message.
	// Env: ADAPTER_MAIL_FROM_ADDRESS
	FromAddress string `env:"FROM_ADDRESS"`

	// FromName is the sender display name.
	// Env: ADAPTER_MAIL_FROM_NAME
	FromName string `env:"FROM_NAME"`

	// BaseURL is the provider API root.
	// Env: ADAPTER_MAIL_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single send call.
	// Env: ADAPTER_MAIL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. For every field the first
// source with a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
