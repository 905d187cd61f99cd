package actor

import "context"

type envelopeKind int

const (
	envSend envelopeKind = iota
	envCall
	envShutdown
)

// Reply carries the actor's own outcome of a call.
type Reply[R any] struct {
	Value R     // value returned by the call handler
	Err   error // error returned by the call handler, if any
}

// Get unpacks the reply.
func (r Reply[R]) Get() (R, error) { return r.Value, r.Err }

// envelope is what travels through the mailbox.
type envelope[S, C, R any] struct {
	kind envelopeKind
	send S
	call C

	// set for calls only
	callerCtx context.Context
	reply     chan Reply[R]
}
