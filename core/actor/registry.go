package actor

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// registry tracks tasks spawned through SpawnFuture. It is closed and
// awaited on graceful shutdown only; on termination its context is
// cancelled and nobody waits.
type registry struct {
	ctx      context.Context
	log      *slog.Logger
	sem      *semaphore.Weighted // nil when unlimited
	inflight atomic.Int32

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup

	actorID string
	metrics ActorMetrics
}

func newRegistry(ctx context.Context, log *slog.Logger, max int, actorID string, metrics ActorMetrics) *registry {
	r := &registry{
		ctx:     ctx,
		log:     log,
		actorID: actorID,
		metrics: metrics,
	}
	if max > 0 {
		r.sem = semaphore.NewWeighted(int64(max))
	}
	if r.metrics == nil {
		r.metrics = NopActorMetrics()
	}
	return r
}

// Spawn starts t on its own goroutine. When the registry is bounded, t waits
// for a free slot; a task still waiting when the actor is terminated never runs.
func (r *registry) Spawn(t Task) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return errRegistryClosed
	}
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()

		if r.sem != nil {
			if err := r.sem.Acquire(r.ctx, 1); err != nil {
				return
			}
			defer r.sem.Release(1)
		}

		count := r.inflight.Add(1)
		r.metrics.TasksInflight(r.actorID, int(count))
		defer func() {
			count := r.inflight.Add(-1)
			r.metrics.TasksInflight(r.actorID, int(count))
		}()

		r.runTask(t)
	}()
	return nil
}

func (r *registry) runTask(t Task) {
	defer r.metrics.TaskDuration().ObserveDuration()

	defer func() {
		if rec := recover(); rec != nil {
			r.metrics.TaskCompleted(false)
			r.log.Error("spawned task panicked", slog.Any("recovered", rec))
		}
	}()

	if err := t(r.ctx); err != nil {
		r.metrics.TaskCompleted(false)
		r.log.Error("spawned task failed", slog.Any("error", err))
		return
	}
	r.metrics.TaskCompleted(true)
}

// Close stops the registry from accepting new tasks. Closing twice is a bug
// in the executor.
func (r *registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		panic("actor: task registry closed twice")
	}
	r.closed = true
}

// Drained is closed once every spawned task has returned.
func (r *registry) Drained() <-chan struct{} {
	ch := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(ch)
	}()
	return ch
}

func (r *registry) Inflight() int { return int(r.inflight.Load()) }
