package adapter

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// mapPgError folds a pgx driver error into the adapter's taxonomy so the
// engine can treat both backends uniformly: connection-class failures become
// ErrUnavailable (retried next cycle), everything else ErrRemoteRejected.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		// Driver errors without a server code are transport failures.
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}

	switch pgErr.Code {
	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return fmt.Errorf("%w: %s", ErrUnavailable, pgErr.Message)

	// Class 40 — transaction rollback
	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return fmt.Errorf("%w: %s", ErrUnavailable, pgErr.Message)

	// Class 57 — operator intervention
	case pgerrcode.CannotConnectNow:
		return fmt.Errorf("%w: %s", ErrUnavailable, pgErr.Message)

	case pgerrcode.InsufficientPrivilege:
		return fmt.Errorf("%w: %s", ErrUnauthorized, pgErr.Message)
	}

	return fmt.Errorf("%w: %s (%s)", ErrRemoteRejected, pgErr.Message, pgErr.Code)
}

// IsRetryable reports whether err is likely to succeed on a later sync
// cycle. Used by the pull pipeline to pick a log level; the retry itself is
// always deferred to the next cycle.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
