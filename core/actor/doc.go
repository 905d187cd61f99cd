// Package actor is a small in-process actor runtime.
//
// An actor is a value implementing [Actor]. It is owned by an executor
// goroutine that takes envelopes from a bounded mailbox and invokes the
// actor's hooks one at a time, so the actor's state needs no locking.
// Callers talk to it through a [Ref].
//
// # Creating Actors
//
//	type Counter struct {
//	    actor.Base[Increment, GetCount, int]
//	    n int
//	}
//
//	func (c *Counter) HandleSends(hc actor.HandlerCtx, _ Increment) actor.Control {
//	    c.n++
//	    return actor.Ok()
//	}
//
//	func (c *Counter) HandleCalls(hc actor.HandlerCtx, _ GetCount) (actor.Control, int, error) {
//	    return actor.Ok(), c.n, nil
//	}
//
//	ref, done := actor.New[Increment, GetCount, int](&Counter{}, actor.Options{})
//
// # Messaging
//
//   - [Ref.Send] enqueues a fire-and-forget message
//   - [Ref.Call] enqueues a message and waits for the handler's [Reply]
//   - [Ref.Shutdown] enqueues a graceful stop behind everything already accepted
//   - [Ref.Terminate] stops the actor right after the running hook returns
//
// Send and Call block while the mailbox is full. Once the executor has exited
// they fail with [ErrSendFailure]. A call that was accepted but never answered
// fails with [ErrReceiveFailure].
//
// # Control
//
// Every hook returns a [Control]: [Ok], [Shutdown], [Terminate] or
// [SpawnFuture]. A Shutdown returned from a handler is queued behind the
// envelopes already in the mailbox. Terminate takes effect immediately.
// Tasks started with SpawnFuture run concurrently with the actor; they are
// awaited on graceful shutdown and their context is cancelled on termination.
//
// # Completion
//
// [New] returns a [Completion] that resolves when the executor exits, with
// nil after a graceful shutdown and [ErrTerminated] otherwise.
package actor
