package actor

import (
	"context"
	"fmt"
	"log/slog"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/Danconnolly/minactor/core/reflector"
)

// DefaultMailboxSize is the mailbox capacity used when Options.MailboxSize is
// not set. Producers block once this many envelopes are waiting.
const DefaultMailboxSize = 10

type (
	// OnPanic is invoked when a hook panics. msg is the message being handled,
	// or nil for lifecycle hooks.
	OnPanic func(recovered any, stack []byte, msg any)

	// Actor is the set of hooks the executor invokes. S is the type of
	// fire-and-forget messages, C the type of call messages and R the reply
	// type. All hooks run on the executor goroutine, one at a time, so an
	// implementation needs no locking for its own state.
	//
	// Embed [Base] to get the default behavior for hooks you do not need.
	Actor[S, C, R any] interface {
		// OnInitialization runs once before any message is handled.
		OnInitialization(hc HandlerCtx) Control
		// HandleSends handles a message sent with [Ref.Send].
		HandleSends(hc HandlerCtx, msg S) Control
		// HandleCalls handles a message sent with [Ref.Call]. The returned value
		// and error are delivered to the caller whatever the Control is.
		HandleCalls(hc HandlerCtx, msg C) (Control, R, error)
		// OnShutdown runs once when a graceful shutdown takes effect.
		OnShutdown(hc HandlerCtx) Control
	}
)

// Options configures an actor. The zero value is usable.
type Options struct {
	// ID identifies the actor in logs and metrics. Defaults to a random id.
	ID string
	// MailboxSize is the mailbox capacity. Defaults to DefaultMailboxSize.
	MailboxSize int
	// Context is the parent of the actor's run context. Cancelling it
	// terminates the actor.
	Context context.Context
	Logger  *slog.Logger
	OnPanic OnPanic
	// MaxConcurrentTasks caps the number of spawned tasks running at once.
	// If 0 or negative, spawning is unlimited.
	MaxConcurrentTasks int
	Metrics            ActorMetrics
}

func (opt Options) withDefaults() Options {
	if opt.ID == "" {
		opt.ID = fmt.Sprintf("actor-%s", gonanoid.Must(8))
	}
	if opt.MailboxSize <= 0 {
		opt.MailboxSize = DefaultMailboxSize
	}
	if opt.Context == nil {
		opt.Context = context.Background()
	}
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	opt.Logger = opt.Logger.With(slog.String("actor", opt.ID))
	if opt.OnPanic == nil {
		log := opt.Logger
		opt.OnPanic = func(recovered any, stack []byte, msg any) {
			log.Error("actor panicked", slog.Any("recovered", recovered), slog.String("stack", string(stack)), slog.Any("msg", msg))
		}
	}
	if opt.Metrics == nil {
		opt.Metrics = NopActorMetrics()
	}
	return opt
}

// New starts an executor for instance and returns a handle to it together
// with the completion of its run.
func New[S, C, R any](instance Actor[S, C, R], opt Options) (*Ref[S, C, R], *Completion) {
	opt = opt.withDefaults()

	ctx, cancel := context.WithCancelCause(opt.Context)
	mailbox := make(chan envelope[S, C, R], opt.MailboxSize)
	done := make(chan struct{})

	ref := &Ref[S, C, R]{
		id:      opt.ID,
		mailbox: mailbox,
		cancel:  cancel,
		done:    done,
		h:       newHandle(opt.ID, release[S, C, R]{mailbox: mailbox, done: done, log: opt.Logger}),
	}
	completion := &Completion{done: done}

	e := &executor[S, C, R]{
		id:       opt.ID,
		instance: instance,
		mailbox:  mailbox,
		ctx:      ctx,
		cancel:   cancel,
		log:      opt.Logger,
		onPanic:  opt.OnPanic,
		metrics:  opt.Metrics,
		hc: &handlerCtx{
			Context: ctx,
			log:     opt.Logger,
			id:      opt.ID,
		},
		tasks:     newRegistry(ctx, opt.Logger, opt.MaxConcurrentTasks, opt.ID, opt.Metrics),
		stopAfter: -1,
	}

	go func() {
		err := e.run()
		cancel(nil)
		completion.err = err
		e.stopped(err)
		close(done)
	}()

	return ref, completion
}

// Base provides the default hooks. Embed it and override what you need.
type Base[S, C, R any] struct{}

func (Base[S, C, R]) OnInitialization(HandlerCtx) Control { return Ok() }

// HandleSends logs the unhandled message and continues.
func (Base[S, C, R]) HandleSends(hc HandlerCtx, msg S) Control {
	hc.Log().Warn("unhandled send message received",
		slog.String("msg_type", msgTypeOf(msg)),
		slog.String("go_type", reflector.TypeInfoOf(msg).FullName),
	)
	return Ok()
}

// HandleCalls answers with ErrHandlerNotImplemented. A caller is blocked on
// the reply, so an unhandled call is never silently dropped.
func (Base[S, C, R]) HandleCalls(_ HandlerCtx, msg C) (Control, R, error) {
	var zero R
	return Ok(), zero, fmt.Errorf("%w: msg_type=%s", ErrHandlerNotImplemented, msgTypeOf(msg))
}

func (Base[S, C, R]) OnShutdown(HandlerCtx) Control { return Ok() }

var _ Actor[any, any, any] = Base[any, any, any]{}
