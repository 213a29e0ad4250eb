package service

import (
	"context"
	"sync"
	"time"

	"github.com/daybook-app/daybook/internal/adapter"
	"github.com/daybook-app/daybook/internal/logger"
)

// changeTrigger turns the remote's best-effort change notifications into
// debounced sync calls: each notification restarts the quiet-period timer,
// so a burst of remote writes produces exactly one sync. Correctness never
// depends on it — the periodic job converges without any notification.
type changeTrigger struct {
	remote   adapter.RemoteStore
	debounce time.Duration
	syncFn   func()
	logger   *logger.Logger

	mu    sync.Mutex
	timer *time.Timer
	stop  adapter.StopFunc
}

func newChangeTrigger(remote adapter.RemoteStore, debounce time.Duration, syncFn func(), log *logger.Logger) *changeTrigger {
	if debounce <= 0 {
		debounce = 2 * time.Second
	}

	return &changeTrigger{
		remote:   remote,
		debounce: debounce,
		syncFn:   syncFn,
		logger:   log,
	}
}

// Start subscribes to change notifications for every mapped remote table.
func (t *changeTrigger) Start(ctx context.Context) error {
	stop, err := t.remote.SubscribeToChanges(ctx, remoteTables(), t.notify)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.stop = stop
	t.mu.Unlock()

	t.logger.Debug().Msg("change trigger subscribed")
	return nil
}

// notify restarts the debounce timer. The timer is the only cancellable
// unit: once it fires and a cycle starts, that cycle runs to completion.
func (t *changeTrigger) notify(table string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if collection, ok := collectionForTable(table); ok {
		t.logger.Debug().Str("collection", collection.String()).Msg("remote change notification")
	}

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.debounce, t.syncFn)
}

// Stop ends the subscription and cancels a pending (not yet fired) timer.
func (t *changeTrigger) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop != nil {
		t.stop()
		t.stop = nil
	}
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
