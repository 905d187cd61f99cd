package actor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
)

type step int

const (
	stepContinue step = iota
	stepTerminate
)

// executor owns the actor instance and the receiving side of the mailbox.
// Everything below runs on a single goroutine.
type executor[S, C, R any] struct {
	id       string
	instance Actor[S, C, R]
	mailbox  <-chan envelope[S, C, R]

	ctx    context.Context
	cancel context.CancelCauseFunc
	hc     *handlerCtx
	log    *slog.Logger

	onPanic OnPanic
	metrics ActorMetrics
	tasks   *registry

	// envelopes left to handle before a hook-requested shutdown takes
	// effect, -1 when none is pending
	stopAfter int
}

func (e *executor[S, C, R]) run() error {
	e.log.Debug("actor initializing")

	if e.apply("init", e.initialize()) == stepTerminate {
		return e.terminated()
	}

	e.log.Debug("actor running")

	for {
		if e.stopAfter == 0 {
			return e.shutdown()
		}

		// cancellation wins over a ready envelope
		if e.ctx.Err() != nil {
			return e.terminated()
		}

		var env envelope[S, C, R]
		select {
		case <-e.ctx.Done():
			return e.terminated()
		case env = <-e.mailbox:
		}
		if e.ctx.Err() != nil {
			return e.terminated()
		}

		if e.stopAfter > 0 {
			e.stopAfter--
		}
		e.metrics.MailboxDepth(e.id, len(e.mailbox))

		var next step
		switch env.kind {
		case envShutdown:
			return e.shutdown()
		case envSend:
			next = e.apply("send", e.handleSend(env.send))
		case envCall:
			next = e.apply("call", e.handleCall(env))
		}
		if next == stepTerminate {
			return e.terminated()
		}
	}
}

// apply interprets a Control returned by any hook except OnShutdown.
func (e *executor[S, C, R]) apply(hook string, c Control) step {
	switch c.kind {
	case controlShutdown:
		if e.stopAfter < 0 {
			e.stopAfter = len(e.mailbox)
			e.log.Debug("shutdown requested", slog.String("hook", hook), slog.Int("queued", e.stopAfter))
		}
	case controlTerminate:
		e.log.Debug("termination requested", slog.String("hook", hook))
		e.cancel(ErrTerminated)
		return stepTerminate
	case controlSpawn:
		e.spawn(c.task)
	}
	return stepContinue
}

func (e *executor[S, C, R]) spawn(t Task) {
	if err := e.tasks.Spawn(t); err != nil {
		e.log.Error("failed to spawn task", slog.Any("error", err))
	}
}

func (e *executor[S, C, R]) initialize() (c Control) {
	e.safely("init", nil, func() { c = e.instance.OnInitialization(e.hc) })
	return c
}

func (e *executor[S, C, R]) handleSend(msg S) (c Control) {
	mt := msgTypeOf(msg)
	defer e.metrics.MessageDuration(mt).ObserveDuration()

	if e.safely(mt, msg, func() { c = e.instance.HandleSends(e.hc, msg) }) {
		e.metrics.MessageProcessed(mt, false)
		return Ok()
	}
	e.metrics.MessageProcessed(mt, true)
	return c
}

func (e *executor[S, C, R]) handleCall(env envelope[S, C, R]) (c Control) {
	mt := msgTypeOf(env.call)
	defer e.metrics.MessageDuration(mt).ObserveDuration()

	var (
		val R
		err error
	)
	if e.safely(mt, env.call, func() { c, val, err = e.instance.HandleCalls(e.hc, env.call) }) {
		c, err = Ok(), fmt.Errorf("%w: msg_type=%s", ErrHandlerPanic, mt)
	}
	e.metrics.MessageProcessed(mt, err == nil)
	if err != nil {
		e.log.Debug("call handler returned error", slog.String("msg_type", mt), slog.Any("error", err))
	}

	// the reply goes out before the control is looked at
	if env.callerCtx != nil && env.callerCtx.Err() != nil {
		e.log.Warn("caller gone before reply", slog.String("msg_type", mt))
	}
	env.reply <- Reply[R]{Value: val, Err: err}

	return c
}

// shutdown runs OnShutdown and drains spawned tasks. Whatever OnShutdown
// returns, the actor stops; only a spawned task is honored.
func (e *executor[S, C, R]) shutdown() error {
	e.log.Debug("actor shutting down")

	var c Control
	e.safely("shutdown", nil, func() { c = e.instance.OnShutdown(e.hc) })
	if c.kind == controlSpawn {
		e.spawn(c.task)
	}

	e.tasks.Close()

	e.log.Debug("actor draining", slog.Int("tasks", e.tasks.Inflight()))
	select {
	case <-e.tasks.Drained():
		if e.ctx.Err() != nil {
			return e.terminated()
		}
		return nil
	case <-e.ctx.Done():
		return e.terminated()
	}
}

func (e *executor[S, C, R]) terminated() error {
	cause := context.Cause(e.ctx)
	if cause == nil || errors.Is(cause, ErrTerminated) {
		return ErrTerminated
	}
	return fmt.Errorf("%w: %w", ErrTerminated, cause)
}

func (e *executor[S, C, R]) stopped(err error) {
	reason := "shutdown"
	if err != nil {
		reason = "terminated"
		e.log.Debug("actor terminated", slog.Any("error", err))
	} else {
		e.log.Debug("actor stopped")
	}
	e.metrics.ActorStopped(reason)
}

// safely runs f and contains a panic. It reports whether f panicked.
func (e *executor[S, C, R]) safely(mt string, msg any, f func()) (panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			e.metrics.MessagePanic(mt)
			e.onPanic(r, debug.Stack(), msg)
		}
	}()
	f()
	return false
}
