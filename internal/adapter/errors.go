package adapter

import "errors"

var (
	// ErrUnauthorized indicates the backend rejected the client's
	// credentials. The affected records stay dirty for the next cycle.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrRemoteRejected indicates the backend refused an otherwise
	// well-formed request (validation, server error).
	ErrRemoteRejected = errors.New("remote store rejected request")

	// ErrUnavailable indicates a transport-level failure; the call may
	// succeed on a later cycle.
	ErrUnavailable = errors.New("remote store unavailable")
)
