package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyOrchestrator counts Sync calls without doing any work.
type spyOrchestrator struct {
	calls atomic.Int64
	err   error
}

func (s *spyOrchestrator) Sync(context.Context) error {
	s.calls.Add(1)
	return s.err
}

func (s *spyOrchestrator) Start(context.Context) error { return nil }
func (s *spyOrchestrator) Stop()                       {}
func (s *spyOrchestrator) Completions() <-chan Result  { return nil }

func TestSyncJob_TickerCallsSync(t *testing.T) {
	spy := &spyOrchestrator{}
	job := NewSyncJob(spy)
	require.NotNil(t, job)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "expected several ticks, got %d", got)
}

func TestSyncJob_StopEndsGoroutine(t *testing.T) {
	spy := &spyOrchestrator{}
	job := NewSyncJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load())
}

func TestSyncJob_StopBeforeStartNoPanic(t *testing.T) {
	job := NewSyncJob(&spyOrchestrator{})
	assert.NotPanics(t, func() { job.Stop() })
	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_NonPositiveIntervalDefaults(t *testing.T) {
	spy := &spyOrchestrator{}
	job := NewSyncJob(spy)

	// Zero interval falls back to 5 minutes, so nothing fires in 20ms.
	job.Start(context.Background(), 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestSyncJob_RestartStopsPrevious(t *testing.T) {
	spy := &spyOrchestrator{}
	job := NewSyncJob(spy)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	assert.Greater(t, callsBefore, int64(0))

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore)
}

func TestSyncJob_ContextCancelStopsJob(t *testing.T) {
	spy := &spyOrchestrator{}
	job := NewSyncJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestSyncJob_SyncErrorDoesNotStopTicker(t *testing.T) {
	spy := &spyOrchestrator{err: assert.AnError}
	job := NewSyncJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}
