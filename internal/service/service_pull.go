package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daybook-app/daybook/internal/adapter"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/store"
	"github.com/daybook-app/daybook/models"
)

// pullPipeline downloads remote changes per collection, each gated by its
// own persisted checkpoint.
type pullPipeline struct {
	replica store.Replica
	remote  adapter.RemoteStore
	logger  *logger.Logger

	// now allows tests to pin the watermark; defaults to time.Now.
	now func() time.Time
}

func newPullPipeline(replica store.Replica, remote adapter.RemoteStore, log *logger.Logger) *pullPipeline {
	return &pullPipeline{
		replica: replica,
		remote:  remote,
		logger:  log,
		now:     time.Now,
	}
}

// Run executes the pull phase. The watermark is captured once, before the
// first collection, so records written remotely mid-phase are never skipped
// by a later checkpoint.
//
// Collections fail independently: a failed collection is logged, its
// checkpoint stays put (the same window is retried next cycle), and the
// remaining collections still pull. Re-running a pull window is safe because
// applying a remote record is an overwrite, so isolation costs nothing —
// unlike push, where partial success must never be recorded.
func (p *pullPipeline) Run(ctx context.Context) error {
	watermark := p.now().UTC()

	var failures []error
	for _, codec := range syncCodecs() {
		if err := p.pullCollection(ctx, codec, watermark); err != nil {
			level := p.logger.Error()
			if adapter.IsRetryable(err) {
				level = p.logger.Warn()
			}
			level.Err(err).
				Str("collection", codec.collection.String()).
				Msg("pull failed for collection, continuing with next")
			failures = append(failures, fmt.Errorf("pull %s: %w", codec.collection, err))
		}
	}

	return errors.Join(failures...)
}

func (p *pullPipeline) pullCollection(ctx context.Context, codec collectionCodec, watermark time.Time) error {
	since, err := p.replica.Checkpoint(ctx, codec.collection)
	if err != nil {
		return fmt.Errorf("load checkpoint: %w", err)
	}

	rows, err := p.remote.SelectChangedSince(ctx, codec.remoteTable, codec.timestampColumn, since)
	if err != nil {
		return fmt.Errorf("select changed: %w", err)
	}

	for _, row := range rows {
		rec, err := codec.fromRemote(row)
		if err != nil {
			return fmt.Errorf("decode remote row: %w", err)
		}

		// The remote copy is authoritative and by definition already
		// synced; the local record is fully overwritten, never merged.
		rec.Status = models.StatusSynced
		if err = p.replica.Put(ctx, codec.collection, rec); err != nil {
			return fmt.Errorf("apply remote record %s: %w", rec.ID, err)
		}
	}

	if err = p.replica.SetCheckpoint(ctx, codec.collection, watermark); err != nil {
		return fmt.Errorf("advance checkpoint: %w", err)
	}

	if len(rows) > 0 {
		p.logger.Debug().
			Str("collection", codec.collection.String()).
			Int("count", len(rows)).
			Msg("pulled remote changes")
	}

	return nil
}
