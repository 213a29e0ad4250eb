package service

import (
	"context"
	"time"

	"github.com/daybook-app/daybook/models"
)

// Result summarises one finished (or skipped) sync cycle for UI consumers.
type Result struct {
	// Skipped is true when preconditions (network, identity) short-circuited
	// the cycle before any work happened.
	Skipped bool

	// Err is the failure that ended the cycle, nil on success. Failures are
	// already logged; consumers only need this for display.
	Err error

	StartedAt  time.Time
	FinishedAt time.Time
}

// Orchestrator is the engine's single external surface: one explicit sync
// entry point plus the change-trigger lifecycle.
type Orchestrator interface {
	// Sync runs one full cycle: session reset check, push, pull. A call
	// while a cycle is already running is a no-op. Connectivity and
	// identity preconditions short-circuit silently. The returned error is
	// informational; the engine never needs the caller to handle it.
	Sync(ctx context.Context) error

	// Start subscribes to remote change notifications that schedule
	// debounced syncs. Safe to call once per engine lifetime.
	Start(ctx context.Context) error

	// Stop tears down the change subscription and any pending debounce
	// timer. A cycle already in flight runs to completion.
	Stop()

	// Completions delivers one Result per finished cycle. Slow consumers
	// lose results rather than blocking the engine.
	Completions() <-chan Result
}

// Records is the application-facing write path over the local replica. It
// owns id generation, dirty-status bookkeeping, and validation; callers
// never set sync state themselves.
type Records interface {
	// Create stores a new record with a fresh id (unless the caller
	// supplied one) and StatusCreated. Returns the stored record.
	Create(ctx context.Context, collection models.Collection, rec models.Record) (models.Record, error)

	// Update overwrites the record's content. The sync status becomes
	// StatusUpdated, unless the record was never pushed, then it stays
	// StatusCreated.
	Update(ctx context.Context, collection models.Collection, rec models.Record) (models.Record, error)

	// Delete removes the record and enqueues the remote deletion
	// atomically.
	Delete(ctx context.Context, collection models.Collection, id string) error

	// Get loads one record.
	Get(ctx context.Context, collection models.Collection, id string) (models.Record, error)

	// List returns records matching one queryable envelope field.
	List(ctx context.Context, collection models.Collection, field, value string) ([]models.Record, error)
}

// Job is the periodic sync worker that guarantees eventual convergence even
// if no change notification ever arrives.
type Job interface {
	// Start launches the background goroutine syncing every interval. Any
	// previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}
