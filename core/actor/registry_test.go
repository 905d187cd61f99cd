package actor

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRegistry_bounded(t *testing.T) {
	r := newRegistry(t.Context(), slog.Default(), 2, "test", nil)

	var (
		running atomic.Int32
		peak    atomic.Int32
	)
	for range 6 {
		require.NoError(t, r.Spawn(func(ctx context.Context) error {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			running.Add(-1)
			return nil
		}))
	}

	r.Close()
	<-r.Drained()
	require.LessOrEqual(t, peak.Load(), int32(2))
	require.Equal(t, 0, r.Inflight())
}

func TestRegistry_closed(t *testing.T) {
	r := newRegistry(t.Context(), slog.Default(), 0, "test", nil)
	r.Close()

	err := r.Spawn(func(ctx context.Context) error { return nil })
	require.ErrorIs(t, err, errRegistryClosed)
	require.Panics(t, r.Close)

	select {
	case <-r.Drained():
	case <-time.After(time.Second):
		t.Fatal("empty registry did not drain")
	}
}

func TestRegistry_failing_tasks(t *testing.T) {
	r := newRegistry(t.Context(), slog.Default(), 0, "test", nil)
	require.NoError(t, r.Spawn(func(ctx context.Context) error { return errors.New("failed") }))
	require.NoError(t, r.Spawn(func(ctx context.Context) error { panic("boom") }))
	r.Close()
	<-r.Drained()
}

func TestRegistry_waiting_task_skipped_after_cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	r := newRegistry(ctx, slog.Default(), 1, "test", nil)

	started := make(chan struct{})
	release := make(chan struct{})
	var ran atomic.Bool
	require.NoError(t, r.Spawn(func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	}))
	<-started
	require.NoError(t, r.Spawn(func(ctx context.Context) error {
		ran.Store(true)
		return nil
	}))

	cancel()
	time.Sleep(10 * time.Millisecond)
	close(release)

	r.Close()
	<-r.Drained()
	require.False(t, ran.Load())
}
