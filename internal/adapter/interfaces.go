package adapter

import (
	"context"
	"time"

	"github.com/daybook-app/daybook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Row is one record in remote representation: snake_case column names and
// ISO-8601 string timestamps.
type Row = map[string]any

// StopFunc terminates a change subscription. Safe to call more than once.
type StopFunc func()

// RemoteStore is the narrow contract the sync engine requires from the
// authoritative backend. Implementations: the REST adapter (resty) and the
// direct PostgreSQL adapter (pgx).
type RemoteStore interface {
	// UpsertBatch inserts or fully overwrites the given rows by id in one
	// call. The batch either succeeds or fails as a whole.
	UpsertBatch(ctx context.Context, table string, rows []Row) error

	// DeleteByIDs removes the listed ids. Ids already absent remotely are
	// not an error (idempotent delete).
	DeleteByIDs(ctx context.Context, table string, ids []string) error

	// SelectChangedSince returns every row whose timestampColumn is
	// strictly greater than since.
	SelectChangedSince(ctx context.Context, table, timestampColumn string, since time.Time) ([]Row, error)

	// CurrentIdentity resolves the authenticated principal. A zero identity
	// with nil error means "signed out", which the orchestrator treats as a
	// silent skip, not a failure.
	CurrentIdentity(ctx context.Context) (models.Identity, error)

	// SubscribeToChanges delivers a best-effort stream of table names that
	// changed remotely. Duplicate and missed notifications are acceptable;
	// the periodic sync path guarantees convergence without them.
	SubscribeToChanges(ctx context.Context, tables []string, callback func(table string)) (StopFunc, error)

	// Online reports whether the backend is currently reachable.
	Online(ctx context.Context) bool
}
