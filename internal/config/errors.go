package config

import "errors"

var (
	// ErrNoLocalDSN is returned when no local replica database path was
	// provided by any configuration source.
	ErrNoLocalDSN = errors.New("local replica DSN is not set")

	// ErrNoRemoteBaseURL is returned when the http backend is selected but
	// no API base URL was provided.
	ErrNoRemoteBaseURL = errors.New("remote base URL is not set")

	// ErrNoRemoteDSN is returned when the postgres backend is selected but
	// no connection string was provided.
	ErrNoRemoteDSN = errors.New("remote postgres DSN is not set")

	// ErrUnknownBackend is returned for an unrecognised Remote.Backend value.
	ErrUnknownBackend = errors.New("unknown remote backend")
)
