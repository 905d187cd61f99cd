// Package keyed runs one actor per key, creating each actor on first use.
//
//	counters := keyed.NewGroup(keyed.Options[string, Increment, GetCount, int]{
//	    Name: "counter",
//	    Create: func(key string) (actor.Actor[Increment, GetCount, int], error) {
//	        return &Counter{}, nil
//	    },
//	})
//
//	ref, err := counters.Get("my-counter")
package keyed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/Danconnolly/minactor/core/actor"
	"github.com/Danconnolly/minactor/core/ds"
	"github.com/Danconnolly/minactor/core/sf"
)

// ErrGroupClosed is returned by Get once the group has been shut down or terminated.
var ErrGroupClosed = errors.New("keyed: group closed")

// Factory creates the actor instance for key.
type Factory[K comparable, S, C, R any] func(key K) (actor.Actor[S, C, R], error)

// Options configures a Group.
type Options[K comparable, S, C, R any] struct {
	// Name prefixes actor ids ("<name>-<key>", the key formatted with %+v).
	// Defaults to a random name.
	Name   string
	Create Factory[K, S, C, R]
	// Actor is the template for every actor's options. ID is always
	// replaced; Context defaults to the group's context.
	Actor   actor.Options
	Context context.Context
	Logger  *slog.Logger
}

type entry[S, C, R any] struct {
	ref  *actor.Ref[S, C, R]
	done *actor.Completion
}

func (e *entry[S, C, R]) alive() bool {
	select {
	case <-e.done.Done():
		return false
	default:
		return true
	}
}

// Group owns a set of actors addressed by key.
type Group[K comparable, S, C, R any] struct {
	opts   Options[K, S, C, R]
	log    *slog.Logger
	flight *sf.Singleflight[K, entry[S, C, R]]

	mu      sync.Mutex
	closed  bool
	entries map[K]*entry[S, C, R]
	keys    *ds.Set[K]
}

// NewGroup returns an empty group. Actors are created by Get.
func NewGroup[K comparable, S, C, R any](opts Options[K, S, C, R]) *Group[K, S, C, R] {
	if opts.Name == "" {
		opts.Name = fmt.Sprintf("group-%s", gonanoid.Must(6))
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Actor.Context == nil {
		opts.Actor.Context = opts.Context
	}
	if opts.Actor.Logger == nil {
		opts.Actor.Logger = opts.Logger
	}

	return &Group[K, S, C, R]{
		opts:    opts,
		log:     opts.Logger.With(slog.String("group", opts.Name)),
		flight:  sf.New[K, entry[S, C, R]](),
		entries: make(map[K]*entry[S, C, R]),
		keys:    ds.NewSet[K](),
	}
}

// Get returns the actor for key, creating it if there is none or the
// previous one has stopped. Concurrent Gets for the same key create at most
// one actor.
func (g *Group[K, S, C, R]) Get(key K) (*actor.Ref[S, C, R], error) {
	if e, err := g.lookup(key); err != nil || e != nil {
		if err != nil {
			return nil, err
		}
		return e.ref, nil
	}

	e, err := g.flight.Do(key, func() (*entry[S, C, R], error) {
		// a flight that finished just before this one may have created it
		if e, err := g.lookup(key); err != nil || e != nil {
			return e, err
		}
		return g.create(key)
	})
	if err != nil {
		return nil, err
	}
	return e.ref, nil
}

func (g *Group[K, S, C, R]) lookup(key K) (*entry[S, C, R], error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil, ErrGroupClosed
	}
	if e, ok := g.entries[key]; ok && e.alive() {
		return e, nil
	}
	return nil, nil
}

func (g *Group[K, S, C, R]) create(key K) (*entry[S, C, R], error) {
	inst, err := g.opts.Create(key)
	if err != nil {
		return nil, fmt.Errorf("create actor for key %v: %w", key, err)
	}

	opts := g.opts.Actor
	opts.ID = fmt.Sprintf("%s-%+v", g.opts.Name, key)
	ref, done := actor.New(inst, opts)
	e := &entry[S, C, R]{ref: ref, done: done}

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		ref.Terminate()
		return nil, ErrGroupClosed
	}
	g.entries[key] = e
	// a replaced actor's key moves to the back
	g.keys.Remove(key)
	g.keys.Add(key)
	g.mu.Unlock()

	g.log.Debug("actor created", slog.String("actor", opts.ID))
	return e, nil
}

// Keys returns the keys of every actor created so far, ordered by the
// creation of each key's latest actor.
func (g *Group[K, S, C, R]) Keys() []K {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.keys.Values()
}

// Len returns the number of actors that have not stopped.
func (g *Group[K, S, C, R]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, e := range g.entries {
		if e.alive() {
			n++
		}
	}
	return n
}

// Shutdown closes the group, asks every actor to shut down gracefully and
// waits for all of them. Actors that were terminated are reported through
// the returned error.
func (g *Group[K, S, C, R]) Shutdown(ctx context.Context) error {
	entries := g.close()

	var errs []error
	for _, e := range entries {
		if err := e.ref.Shutdown(ctx); err != nil && !errors.Is(err, actor.ErrSendFailure) {
			errs = append(errs, fmt.Errorf("shutdown %s: %w", e.ref.ID(), err))
		}
	}
	for _, e := range entries {
		if err := e.done.Wait(ctx); err != nil {
			errs = append(errs, fmt.Errorf("actor %s: %w", e.ref.ID(), err))
		}
	}
	return errors.Join(errs...)
}

// Terminate closes the group and terminates every actor without waiting.
func (g *Group[K, S, C, R]) Terminate() {
	for _, e := range g.close() {
		e.ref.Terminate()
	}
}

func (g *Group[K, S, C, R]) close() []*entry[S, C, R] {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	if g.keys.IsEmpty() {
		return nil
	}

	out := make([]*entry[S, C, R], 0, len(g.entries))
	for _, k := range g.keys.Values() {
		if e, ok := g.entries[k]; ok {
			out = append(out, e)
		}
	}
	return out
}
