package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/daybook-app/daybook/internal/adapter"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/store"
	"github.com/daybook-app/daybook/models"
)

// syncOrchestrator is the engine's state machine: Idle -> Syncing -> Idle.
// The syncing flag is an atomic compare-and-swap so re-entrant Sync calls
// are a no-op even from concurrent goroutines (ticker, change trigger, UI).
type syncOrchestrator struct {
	replica store.Replica
	remote  adapter.RemoteStore
	push    *pushPipeline
	pull    *pullPipeline
	trigger *changeTrigger
	logger  *logger.Logger

	syncing     atomic.Bool
	completions chan Result
}

// NewOrchestrator wires the full engine. chunkSize and debounce come from
// config; zero values fall back to defaults.
func NewOrchestrator(
	replica store.Replica,
	remote adapter.RemoteStore,
	chunkSize int,
	debounce time.Duration,
	log *logger.Logger,
) Orchestrator {
	o := &syncOrchestrator{
		replica:     replica,
		remote:      remote,
		push:        newPushPipeline(replica, remote, chunkSize, log),
		pull:        newPullPipeline(replica, remote, log),
		logger:      log,
		completions: make(chan Result, 8),
	}
	o.trigger = newChangeTrigger(remote, debounce, o.backgroundSync, log)

	return o
}

// Sync implements Orchestrator. Whatever happens inside the cycle — push
// rejection, pull failure, a wiped session — the orchestrator returns to
// Idle; errors are logged and reported through Completions, never panicked.
func (o *syncOrchestrator) Sync(ctx context.Context) error {
	if !o.syncing.CompareAndSwap(false, true) {
		o.logger.Debug().Msg("sync already in flight, ignoring re-entrant call")
		return nil
	}
	defer o.syncing.Store(false)

	startedAt := time.Now()

	if !o.remote.Online(ctx) {
		o.logger.Debug().Msg("remote unreachable, skipping sync cycle")
		o.emit(Result{Skipped: true, StartedAt: startedAt, FinishedAt: time.Now()})
		return nil
	}

	identity, err := o.remote.CurrentIdentity(ctx)
	if err != nil {
		// Treated as connectivity: no identity, no work, no error surfaced.
		o.logger.Warn().Err(err).Msg("cannot resolve identity, skipping sync cycle")
		o.emit(Result{Skipped: true, StartedAt: startedAt, FinishedAt: time.Now()})
		return nil
	}
	if identity.Zero() {
		o.logger.Debug().Msg("no authenticated identity, skipping sync cycle")
		o.emit(Result{Skipped: true, StartedAt: startedAt, FinishedAt: time.Now()})
		return nil
	}

	err = o.runCycle(ctx, identity)
	if err != nil {
		o.logger.Error().Err(err).Msg("sync cycle failed")
	}

	o.emit(Result{Err: err, StartedAt: startedAt, FinishedAt: time.Now()})
	return err
}

// runCycle performs session reset, push, and pull for a resolved identity.
func (o *syncOrchestrator) runCycle(ctx context.Context, identity models.Identity) error {
	lastIdentity, err := o.replica.LastIdentity(ctx)
	if err != nil {
		return fmt.Errorf("load last identity: %w", err)
	}

	if lastIdentity != identity.UserID {
		if err = o.resetSession(ctx, identity, lastIdentity); err != nil {
			return fmt.Errorf("session reset: %w", err)
		}
	}

	// A push failure skips the pull: pulling over records that are still
	// dirty because their push just failed would widen the overwrite
	// hazard, and the next cycle retries both phases anyway.
	if err = o.push.Run(ctx, identity); err != nil {
		return fmt.Errorf("push phase: %w", err)
	}

	if err = o.pull.Run(ctx); err != nil {
		// Collection failures were already isolated and logged inside the
		// pull; the cycle still counts as failed for observers.
		return fmt.Errorf("pull phase: %w", err)
	}

	return nil
}

// resetSession wipes the replica before the first push for a new identity,
// so the previous account's dirty records are never pushed under the new
// account's ownership. Wiping also clears all checkpoints, forcing the
// subsequent pull to fetch from the epoch.
func (o *syncOrchestrator) resetSession(ctx context.Context, identity models.Identity, previous string) error {
	o.logger.Info().
		Str("previous", previous).
		Str("current", identity.UserID).
		Msg("identity changed, wiping local replica")

	if err := o.replica.Wipe(ctx); err != nil {
		return fmt.Errorf("wipe replica: %w", err)
	}

	if err := o.replica.SetLastIdentity(ctx, identity.UserID); err != nil {
		return fmt.Errorf("record identity: %w", err)
	}

	return nil
}

// Start implements Orchestrator.
func (o *syncOrchestrator) Start(ctx context.Context) error {
	return o.trigger.Start(ctx)
}

// Stop implements Orchestrator.
func (o *syncOrchestrator) Stop() {
	o.trigger.Stop()
}

// Completions implements Orchestrator.
func (o *syncOrchestrator) Completions() <-chan Result {
	return o.completions
}

// backgroundSync is what the change trigger fires; its context outlives the
// notification that scheduled it.
func (o *syncOrchestrator) backgroundSync() {
	_ = o.Sync(context.Background())
}

// emit delivers a completion without ever blocking the engine: if no one is
// reading, the oldest result is dropped.
func (o *syncOrchestrator) emit(result Result) {
	for {
		select {
		case o.completions <- result:
			return
		default:
			select {
			case <-o.completions:
			default:
			}
		}
	}
}
