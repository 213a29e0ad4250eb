package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	// BackendHTTP selects the REST adapter for the remote store.
	BackendHTTP = "http"
	// BackendPostgres selects the direct PostgreSQL adapter.
	BackendPostgres = "postgres"
)

// Defaults applied by validate when a value was not provided by any source.
const (
	defaultChunkSize      = 50
	defaultSyncInterval   = 5 * time.Minute
	defaultDebounce       = 2 * time.Second
	defaultRequestTimeout = 15 * time.Second
)

// validate normalises and checks the merged configuration, filling defaults
// where a value is optional. It returns a joined error listing every problem
// found so the operator can fix them all at once.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoLocalDSN)
	}

	if c.Remote.Backend == "" {
		c.Remote.Backend = BackendHTTP
	}
	switch c.Remote.Backend {
	case BackendHTTP:
		if c.Remote.BaseURL == "" {
			errs = append(errs, ErrNoRemoteBaseURL)
		}
	case BackendPostgres:
		if c.Remote.DSN == "" {
			errs = append(errs, ErrNoRemoteDSN)
		}
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownBackend, c.Remote.Backend))
	}

	if c.Remote.RequestTimeout <= 0 {
		c.Remote.RequestTimeout = defaultRequestTimeout
	}
	if c.Sync.ChunkSize <= 0 {
		c.Sync.ChunkSize = defaultChunkSize
	}
	if c.Sync.Interval <= 0 {
		c.Sync.Interval = defaultSyncInterval
	}
	if c.Sync.Debounce <= 0 {
		c.Sync.Debounce = defaultDebounce
	}

	return errors.Join(errs...)
}
