// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container of the API.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the deployment phase and the version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Docs holds settings of the OpenAPI document publisher.
	Docs Docs `envPrefix:"DOCS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	JSONFilePath string `env:"CONFIG"`
}

// Phase is the deployment phase the process runs in.
type Phase string

const (
	// PhaseProduction precomputes the API documents to disk at startup and
	// starts the HTTP listener.
	PhaseProduction Phase = "production"

	// PhaseDevelopment keeps the API documents in memory, mounts the
	// interactive docs UI and leaves listening to an external host.
	PhaseDevelopment Phase = "development"
)

// Precomputed reports whether documents are generated once and persisted.
func (p Phase) Precomputed() bool {
	return p == PhaseProduction
}

// App groups application-level settings.
type App struct {
	// Phase selects precomputed (production) or live (development) behavior.
	Phase Phase `env:"PHASE"`

	// TokenSignKey is the HMAC secret used to sign and verify tokens.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is written to and required in the "iss" claim.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the validity window of an issued token.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// SecureCookie marks the token cookie as Secure (HTTPS only).
	SecureCookie bool `env:"SECURE_COOKIE"`

	// Version is reported by the health endpoint and the API document.
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the persistence backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the relational database connection settings.
type DB struct {
	// Driver is either "pgx" (PostgreSQL) or "sqlite3".
	Driver string `env:"DRIVER"`

	// DSN is the data source name passed to sql.Open.
	DSN string `env:"DATABASE_URI"`
}

// Server holds the HTTP server settings.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Docs holds the OpenAPI document publisher settings.
type Docs struct {
	// Dir is where openapi.json and openapi.yaml are written in production.
	Dir string `env:"DIR"`

	// Title is the info.title of the generated document.
	Title string `env:"TITLE"`
}

// Default returns the values used for every field no source has set.
func Default() StructuredConfig {
	return StructuredConfig{
		App: App{
			Phase:         PhaseProduction,
			TokenIssuer:   "restaurant-api",
			TokenDuration: 30 * time.Second,
			Version:       "0.1.0",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Docs: Docs{
			Dir:   os.TempDir(),
			Title: "Restaurant API",
		},
	}
}

// GetStructuredConfig assembles the configuration from the process
// environment, command-line arguments and the optional JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
