package actor

import "errors"

var (
	// ErrSendFailure is returned when an envelope cannot be placed in the
	// mailbox because the executor has already exited.
	ErrSendFailure = errors.New("actor: unable to send, actor has stopped")

	// ErrReceiveFailure is returned by [Ref.Call] when the executor exits
	// without answering, e.g. after Terminate or a shutdown queued ahead of the call.
	ErrReceiveFailure = errors.New("actor: unable to receive reply, actor stopped before answering")

	// ErrHandlerNotImplemented is the call result produced by [Base.HandleCalls].
	ErrHandlerNotImplemented = errors.New("actor: call handler not implemented")

	// ErrTerminated is the completion result of an actor stopped through
	// termination rather than a graceful shutdown.
	ErrTerminated = errors.New("actor: terminated")

	// ErrHandlerPanic is delivered to a caller whose call handler panicked.
	ErrHandlerPanic = errors.New("actor: handler panicked")

	errRegistryClosed = errors.New("actor: task registry closed")
)
