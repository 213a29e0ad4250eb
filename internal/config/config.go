// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the daybook
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the build version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the on-device replica database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote holds connection settings for the authoritative backend store.
	Remote Remote `envPrefix:"REMOTE_"`

	// Sync holds tuning knobs for the sync engine itself.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the local replica database settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains local replica connection settings.
type DB struct {
	// DSN is the SQLite file path of the on-device replica.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Remote holds settings of the remote store adapter.
type Remote struct {
	// Backend selects the remote store implementation: "http" (REST API)
	// or "postgres" (direct database connection).
	// Env: REMOTE_BACKEND
	Backend string `env:"BACKEND"`

	// BaseURL is the backend API root for the http backend.
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// AccessToken is the bearer token identifying the signed-in user for
	// the http backend. The identity embedded in the token drives session
	// reset on account switches.
	// Env: REMOTE_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// DSN is the PostgreSQL connection string for the postgres backend.
	// Env: REMOTE_DSN
	DSN string `env:"DSN"`

	// UserID is the identity attributed to pushed records when the
	// postgres backend is used (no token to derive it from).
	// Env: REMOTE_USER_ID
	UserID string `env:"USER_ID"`

	// RequestTimeout is the per-request timeout for remote calls.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds the engine's tuning parameters.
type Sync struct {
	// Interval is the period of the background sync job.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// Debounce is the quiet period after a remote change notification
	// before a sync is scheduled. Each new notification restarts it.
	// Env: SYNC_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`

	// ChunkSize is the maximum number of records per remote upsert call.
	// Env: SYNC_CHUNK_SIZE
	ChunkSize int `env:"CHUNK_SIZE"`
}
