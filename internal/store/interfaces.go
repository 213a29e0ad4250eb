package store

import (
	"context"
	"time"

	"github.com/daybook-app/daybook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Replica is the on-device store holding the user's working copy of all
// synchronizable data, plus the sync engine's persisted state: per-collection
// checkpoints, the deletion log, and the last-synced identity.
//
// Compound operations (DeleteAndLog, MarkSynced, ClearDeletions, Wipe) run in
// a single SQL transaction so each step the engine relies on is indivisible
// with respect to concurrent local readers.
type Replica interface {
	// Get loads one record by id. Returns ErrNotFound when absent.
	Get(ctx context.Context, collection models.Collection, id string) (models.Record, error)

	// Put upserts the record, fully overwriting any previous content.
	Put(ctx context.Context, collection models.Collection, rec models.Record) error

	// Delete removes the record without touching the deletion log. Used by
	// the pull pipeline; application deletes go through DeleteAndLog.
	Delete(ctx context.Context, collection models.Collection, id string) error

	// DeleteAndLog removes the record and enqueues a deletion log entry in
	// the same transaction, so a crash between the two cannot occur.
	DeleteAndLog(ctx context.Context, collection models.Collection, id string) error

	// QueryByField returns all records whose envelope column matches value.
	// Queryable fields: parent_id, owner_id, sync_status.
	QueryByField(ctx context.Context, collection models.Collection, field, value string) ([]models.Record, error)

	// QueryChangedSince returns records whose change timestamp is strictly
	// greater than since.
	QueryChangedSince(ctx context.Context, collection models.Collection, since time.Time) ([]models.Record, error)

	// PendingSync returns every record with a dirty sync status.
	PendingSync(ctx context.Context, collection models.Collection) ([]models.Record, error)

	// MarkSynced flips the listed records to StatusSynced in one transaction.
	MarkSynced(ctx context.Context, collection models.Collection, ids []string) error

	// DeletionLog returns all pending remote deletions, oldest first.
	DeletionLog(ctx context.Context) ([]models.DeletionLogEntry, error)

	// ClearDeletions removes the listed entries after a confirmed remote
	// delete. Entries for other collections stay queued.
	ClearDeletions(ctx context.Context, collection models.Collection, ids []string) error

	// Checkpoint returns the collection's pull watermark, or the zero time
	// when no pull has completed yet.
	Checkpoint(ctx context.Context, collection models.Collection) (time.Time, error)

	// SetCheckpoint advances the collection's pull watermark.
	SetCheckpoint(ctx context.Context, collection models.Collection, ts time.Time) error

	// LastIdentity returns the user id of the identity that last synced on
	// this device, or empty when none has.
	LastIdentity(ctx context.Context) (string, error)

	// SetLastIdentity records the identity of the current sync session.
	SetLastIdentity(ctx context.Context, userID string) error

	// Wipe clears every collection, the deletion log, and all checkpoints in
	// one transaction. Run on identity switch before any push.
	Wipe(ctx context.Context) error
}
