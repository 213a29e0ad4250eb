package service

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/adapter"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/store"
	"github.com/daybook-app/daybook/internal/validators"
	"github.com/daybook-app/daybook/models"
)

// pushPipeline uploads local changes: queued deletions first, then dirty
// records collection-by-collection in dependency order.
type pushPipeline struct {
	replica   store.Replica
	remote    adapter.RemoteStore
	validator validators.Validator
	chunkSize int
	logger    *logger.Logger
}

func newPushPipeline(replica store.Replica, remote adapter.RemoteStore, chunkSize int, log *logger.Logger) *pushPipeline {
	if chunkSize <= 0 {
		chunkSize = 50
	}

	return &pushPipeline{
		replica:   replica,
		remote:    remote,
		validator: validators.NewRecordValidator(),
		chunkSize: chunkSize,
		logger:    log,
	}
}

// Run executes the push phase for the given identity. Deletions drain before
// any upsert so a record deleted locally can never be resurrected by a later
// push, and no surviving record pushes a reference to a deleted id.
func (p *pushPipeline) Run(ctx context.Context, identity models.Identity) error {
	if err := p.drainDeletions(ctx); err != nil {
		return fmt.Errorf("drain deletion log: %w", err)
	}

	for _, codec := range syncCodecs() {
		if err := p.pushCollection(ctx, codec, identity); err != nil {
			return fmt.Errorf("push %s: %w", codec.collection, err)
		}
	}

	return nil
}

// drainDeletions sends every queued remote deletion, children-side
// collections before the collections they reference. Entries are cleared
// per collection only after the remote confirmed that collection's batch;
// a failure leaves the remainder queued for the next cycle.
func (p *pushPipeline) drainDeletions(ctx context.Context) error {
	entries, err := p.replica.DeletionLog(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	byCollection := make(map[models.Collection][]string, len(entries))
	for _, entry := range entries {
		byCollection[entry.Collection] = append(byCollection[entry.Collection], entry.RecordID)
	}

	// Reverse dependency order: dependents are deleted before the records
	// they reference.
	codecs := syncCodecs()
	for i := len(codecs) - 1; i >= 0; i-- {
		codec := codecs[i]
		ids := byCollection[codec.collection]
		if len(ids) == 0 {
			continue
		}

		if err = p.remote.DeleteByIDs(ctx, codec.remoteTable, ids); err != nil {
			return fmt.Errorf("remote delete in %s: %w", codec.collection, err)
		}

		if err = p.replica.ClearDeletions(ctx, codec.collection, ids); err != nil {
			return fmt.Errorf("clear deletion log for %s: %w", codec.collection, err)
		}

		p.logger.Debug().
			Str("collection", codec.collection.String()).
			Int("count", len(ids)).
			Msg("remote deletions confirmed")
	}

	return nil
}

// pushCollection uploads the collection's dirty records in fixed-size
// chunks. Records are only marked synced after every chunk succeeded, in a
// single local transaction: a failed chunk aborts the remaining chunks and
// leaves the whole collection dirty for retry, so partial success is never
// recorded.
func (p *pushPipeline) pushCollection(ctx context.Context, codec collectionCodec, identity models.Identity) error {
	records, err := p.replica.PendingSync(ctx, codec.collection)
	if err != nil {
		return fmt.Errorf("load dirty records: %w", err)
	}
	if len(records) == 0 {
		return nil
	}

	records = p.dropMalformed(ctx, codec.collection, records)
	if len(records) == 0 {
		return nil
	}

	if codec.collection.SelfReferential() {
		records = orderByParent(records, p.logger)
	}

	pushed := make([]string, 0, len(records))
	for start := 0; start < len(records); start += p.chunkSize {
		end := start + p.chunkSize
		if end > len(records) {
			end = len(records)
		}
		chunk := records[start:end]

		rows := make([]adapter.Row, 0, len(chunk))
		for _, rec := range chunk {
			rows = append(rows, codec.toRemote(rec, identity.UserID))
		}

		if err = p.remote.UpsertBatch(ctx, codec.remoteTable, rows); err != nil {
			return fmt.Errorf("upsert chunk at %d: %w", start, err)
		}

		for _, rec := range chunk {
			pushed = append(pushed, rec.ID)
		}
	}

	if err = p.replica.MarkSynced(ctx, codec.collection, pushed); err != nil {
		return fmt.Errorf("mark synced: %w", err)
	}

	p.logger.Debug().
		Str("collection", codec.collection.String()).
		Int("count", len(pushed)).
		Msg("pushed dirty records")

	return nil
}

// dropMalformed filters out records whose envelope fails validation. A
// malformed record is skipped, not fatal: it stays dirty and is logged every
// cycle, while the rest of the collection keeps syncing.
func (p *pushPipeline) dropMalformed(ctx context.Context, collection models.Collection, records []models.Record) []models.Record {
	valid := records[:0]
	for _, rec := range records {
		if err := p.validator.Validate(ctx, rec, validators.EnvelopeFields()...); err != nil {
			p.logger.Warn().Err(err).
				Str("collection", collection.String()).
				Str("id", rec.ID).
				Msg("skipping malformed record")
			continue
		}
		valid = append(valid, rec)
	}
	return valid
}
