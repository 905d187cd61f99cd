package actor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// Ref is the handle used to talk to an actor. It is safe for concurrent use,
// and any number of clones may refer to the same actor. A Ref stays valid
// after the actor has stopped; its operations then fail with ErrSendFailure.
//
// Once the Ref returned by New and all of its clones are unreachable, the
// actor is shut down as if Shutdown had been called. This happens only after
// a garbage collection, so a program should not rely on it to stop actors in
// time. An actor that keeps a Ref to itself is never released this way.
type Ref[S, C, R any] struct {
	id      string
	mailbox chan<- envelope[S, C, R]
	cancel  context.CancelCauseFunc
	done    <-chan struct{}

	// shared by all clones; its cleanup releases the actor
	h *handle
}

type handle struct{ id string }

// release is what becomes of an actor once no handle can reach it.
type release[S, C, R any] struct {
	mailbox chan<- envelope[S, C, R]
	done    <-chan struct{}
	log     *slog.Logger
}

func newHandle[S, C, R any](id string, rel release[S, C, R]) *handle {
	h := &handle{id: id}
	runtime.AddCleanup(h, func(rel release[S, C, R]) {
		// cleanups share one goroutine and must not block on a full mailbox
		go func() {
			select {
			case rel.mailbox <- envelope[S, C, R]{kind: envShutdown}:
				rel.log.Debug("all handles released, shutting down")
			case <-rel.done:
			}
		}()
	}, rel)
	return h
}

// ID returns the actor id.
func (r *Ref[S, C, R]) ID() string { return r.id }

// Done is closed once the actor's executor has exited.
func (r *Ref[S, C, R]) Done() <-chan struct{} { return r.done }

// Clone returns a handle sharing the mailbox and termination signal of r.
func (r *Ref[S, C, R]) Clone() *Ref[S, C, R] {
	c := *r
	return &c
}

// Send enqueues a fire-and-forget message. It blocks only while the mailbox
// is full. Errors returned by the handler are never reported back.
func (r *Ref[S, C, R]) Send(ctx context.Context, msg S) error {
	return r.enqueue(ctx, envelope[S, C, R]{kind: envSend, send: msg})
}

// Call enqueues msg and waits for the handler's reply. The returned error is
// about delivery only: ErrSendFailure when the message could not be enqueued,
// ErrReceiveFailure when the actor stopped without answering, or the wrapped
// ctx error. The handler's own error is carried in the Reply.
//
// There is no built-in timeout. Bound the wait through ctx.
func (r *Ref[S, C, R]) Call(ctx context.Context, msg C) (Reply[R], error) {
	reply := make(chan Reply[R], 1)
	err := r.enqueue(ctx, envelope[S, C, R]{
		kind:      envCall,
		call:      msg,
		callerCtx: ctx,
		reply:     reply,
	})
	if err != nil {
		return Reply[R]{}, err
	}

	select {
	case rep := <-reply:
		return rep, nil
	case <-r.done:
		// a reply is always written before done is closed
		select {
		case rep := <-reply:
			return rep, nil
		default:
			return Reply[R]{}, ErrReceiveFailure
		}
	case <-ctx.Done():
		return Reply[R]{}, fmt.Errorf("call failed: %w", ctx.Err())
	}
}

// Ask is Call with delivery and handler errors folded into one error.
func (r *Ref[S, C, R]) Ask(ctx context.Context, msg C) (R, error) {
	rep, err := r.Call(ctx, msg)
	if err != nil {
		var zero R
		return zero, err
	}
	return rep.Get()
}

// Shutdown enqueues a graceful stop. Everything accepted before it is handled
// first; anything enqueued after it is never handled.
func (r *Ref[S, C, R]) Shutdown(ctx context.Context) error {
	return r.enqueue(ctx, envelope[S, C, R]{kind: envShutdown})
}

// Terminate stops the actor as soon as the running hook returns. It is not
// ordered with the mailbox, is idempotent and cannot fail.
func (r *Ref[S, C, R]) Terminate() { r.cancel(ErrTerminated) }

func (r *Ref[S, C, R]) enqueue(ctx context.Context, env envelope[S, C, R]) error {
	select {
	case <-r.done:
		return ErrSendFailure
	default:
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("send failed: %w", ctx.Err())
	case <-r.done:
		return ErrSendFailure
	case r.mailbox <- env:
		return nil
	}
}

// Completion resolves when an actor's executor has exited.
type Completion struct {
	done <-chan struct{}
	err  error
}

// Done is closed when the executor has exited.
func (c *Completion) Done() <-chan struct{} { return c.done }

// Err returns the run result: nil after a graceful shutdown, an error
// matching ErrTerminated otherwise. It returns nil while the actor is running.
func (c *Completion) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}

// Wait blocks until the executor has exited or ctx is done.
func (c *Completion) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return c.err
	case <-ctx.Done():
		return fmt.Errorf("wait failed: %w", ctx.Err())
	}
}

// IsTerminated reports whether err is the result of a terminated run.
func IsTerminated(err error) bool { return errors.Is(err, ErrTerminated) }
