package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/models"
)

// timeLayout is a fixed-width RFC 3339 form. Storing UTC timestamps at full
// nanosecond width keeps lexicographic order equal to chronological order,
// which the changed-since queries rely on.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const (
	checkpointKeyPrefix = "checkpoint:"
	lastIdentityKey     = "last_identity"
)

// queryableFields are the envelope columns QueryByField accepts. Payload
// fields are opaque JSON and not indexed.
var queryableFields = map[string]struct{}{
	"parent_id":   {},
	"owner_id":    {},
	"sync_status": {},
}

type sqlReplica struct {
	*DB
	logger *logger.Logger
}

// NewReplica constructs the SQLite-backed Replica over an open, migrated DB.
func NewReplica(db *DB, logger *logger.Logger) Replica {
	return &sqlReplica{
		DB:     db,
		logger: logger,
	}
}

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func decodeTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

func (r *sqlReplica) Get(ctx context.Context, collection models.Collection, id string) (models.Record, error) {
	query, args, err := sq.Select("id", "parent_id", "owner_id", "sync_status", "created_at", "updated_at", "payload").
		From("records").
		Where(sq.Eq{"collection": collection.String(), "id": id}).
		ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("build get query: %w", err)
	}

	row := r.QueryRowContext(ctx, query, args...)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrNotFound
	}
	if err != nil {
		return models.Record{}, fmt.Errorf("get record %s/%s: %w", collection, id, err)
	}

	return rec, nil
}

func (r *sqlReplica) Put(ctx context.Context, collection models.Collection, rec models.Record) error {
	payload, err := json.Marshal(rec.Fields)
	if err != nil {
		return fmt.Errorf("encode record payload %s/%s: %w", collection, rec.ID, err)
	}

	_, err = r.ExecContext(ctx, upsertRecord,
		collection.String(),
		rec.ID,
		rec.ParentID,
		rec.OwnerID,
		string(rec.Status),
		encodeTime(rec.CreatedAt),
		encodeTime(rec.ChangedAt()),
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("put record %s/%s: %w", collection, rec.ID, err)
	}

	return nil
}

func (r *sqlReplica) Delete(ctx context.Context, collection models.Collection, id string) error {
	if _, err := r.ExecContext(ctx, deleteRecord, collection.String(), id); err != nil {
		return fmt.Errorf("delete record %s/%s: %w", collection, id, err)
	}
	return nil
}

func (r *sqlReplica) DeleteAndLog(ctx context.Context, collection models.Collection, id string) error {
	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteRecord, collection.String(), id); err != nil {
		return fmt.Errorf("delete record %s/%s: %w", collection, id, err)
	}

	_, err = tx.ExecContext(ctx, enqueueDeletion,
		collection.String(), id, models.DeletionAction, encodeTime(time.Now()))
	if err != nil {
		return fmt.Errorf("enqueue deletion %s/%s: %w", collection, id, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit delete transaction: %w", err)
	}

	return nil
}

func (r *sqlReplica) QueryByField(ctx context.Context, collection models.Collection, field, value string) ([]models.Record, error) {
	if _, ok := queryableFields[field]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	query, args, err := sq.Select("id", "parent_id", "owner_id", "sync_status", "created_at", "updated_at", "payload").
		From("records").
		Where(sq.Eq{"collection": collection.String(), field: value}).
		OrderBy("updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build field query: %w", err)
	}

	return r.queryRecords(ctx, collection, query, args...)
}

func (r *sqlReplica) QueryChangedSince(ctx context.Context, collection models.Collection, since time.Time) ([]models.Record, error) {
	query, args, err := sq.Select("id", "parent_id", "owner_id", "sync_status", "created_at", "updated_at", "payload").
		From("records").
		Where(sq.Eq{"collection": collection.String()}).
		Where(sq.Gt{"updated_at": encodeTime(since)}).
		OrderBy("updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build changed-since query: %w", err)
	}

	return r.queryRecords(ctx, collection, query, args...)
}

func (r *sqlReplica) PendingSync(ctx context.Context, collection models.Collection) ([]models.Record, error) {
	query, args, err := sq.Select("id", "parent_id", "owner_id", "sync_status", "created_at", "updated_at", "payload").
		From("records").
		Where(sq.Eq{
			"collection":  collection.String(),
			"sync_status": []string{string(models.StatusCreated), string(models.StatusUpdated)},
		}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pending query: %w", err)
	}

	return r.queryRecords(ctx, collection, query, args...)
}

func (r *sqlReplica) MarkSynced(ctx context.Context, collection models.Collection, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sq.Update("records").
		Set("sync_status", string(models.StatusSynced)).
		Where(sq.Eq{"collection": collection.String(), "id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark-synced query: %w", err)
	}

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin mark-synced transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("mark records synced in %s: %w", collection, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit mark-synced transaction: %w", err)
	}

	return nil
}

func (r *sqlReplica) DeletionLog(ctx context.Context) ([]models.DeletionLogEntry, error) {
	rows, err := r.QueryContext(ctx, selectDeletionLog)
	if err != nil {
		return nil, fmt.Errorf("query deletion log: %w", err)
	}
	defer rows.Close()

	var entries []models.DeletionLogEntry
	for rows.Next() {
		var entry models.DeletionLogEntry
		var collection, createdAt string
		if err = rows.Scan(&collection, &entry.RecordID, &entry.Action, &createdAt); err != nil {
			return nil, fmt.Errorf("scan deletion log entry: %w", err)
		}
		entry.Collection = models.Collection(collection)
		if entry.CreatedAt, err = decodeTime(createdAt); err != nil {
			return nil, fmt.Errorf("decode deletion timestamp: %w", err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deletion log: %w", err)
	}

	return entries, nil
}

func (r *sqlReplica) ClearDeletions(ctx context.Context, collection models.Collection, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sq.Delete("deletion_log").
		Where(sq.Eq{"collection": collection.String(), "record_id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build clear-deletions query: %w", err)
	}

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin clear-deletions transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear deletion log for %s: %w", collection, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit clear-deletions transaction: %w", err)
	}

	return nil
}

func (r *sqlReplica) Checkpoint(ctx context.Context, collection models.Collection) (time.Time, error) {
	var value string
	err := r.QueryRowContext(ctx, selectMeta, checkpointKeyPrefix+collection.String()).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("query checkpoint for %s: %w", collection, err)
	}

	ts, err := decodeTime(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode checkpoint for %s: %w", collection, err)
	}

	return ts, nil
}

func (r *sqlReplica) SetCheckpoint(ctx context.Context, collection models.Collection, ts time.Time) error {
	_, err := r.ExecContext(ctx, upsertMeta, checkpointKeyPrefix+collection.String(), encodeTime(ts))
	if err != nil {
		return fmt.Errorf("set checkpoint for %s: %w", collection, err)
	}
	return nil
}

func (r *sqlReplica) LastIdentity(ctx context.Context) (string, error) {
	var value string
	err := r.QueryRowContext(ctx, selectMeta, lastIdentityKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query last identity: %w", err)
	}

	return value, nil
}

func (r *sqlReplica) SetLastIdentity(ctx context.Context, userID string) error {
	if _, err := r.ExecContext(ctx, upsertMeta, lastIdentityKey, userID); err != nil {
		return fmt.Errorf("set last identity: %w", err)
	}
	return nil
}

func (r *sqlReplica) Wipe(ctx context.Context) error {
	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin wipe transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{wipeRecords, wipeDeletions, wipeMeta} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("wipe local replica: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit wipe transaction: %w", err)
	}

	return nil
}

func (r *sqlReplica) queryRecords(ctx context.Context, collection models.Collection, query string, args ...any) ([]models.Record, error) {
	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records in %s: %w", collection, err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record in %s: %w", collection, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records in %s: %w", collection, err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.Record, error) {
	var rec models.Record
	var status, createdAt, updatedAt, payload string

	err := row.Scan(&rec.ID, &rec.ParentID, &rec.OwnerID, &status, &createdAt, &updatedAt, &payload)
	if err != nil {
		return models.Record{}, err
	}

	rec.Status = models.SyncStatus(status)
	if rec.CreatedAt, err = decodeTime(createdAt); err != nil {
		return models.Record{}, fmt.Errorf("decode created_at: %w", err)
	}
	if rec.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return models.Record{}, fmt.Errorf("decode updated_at: %w", err)
	}
	if err = json.Unmarshal([]byte(payload), &rec.Fields); err != nil {
		return models.Record{}, fmt.Errorf("decode payload: %w", err)
	}

	return rec, nil
}
