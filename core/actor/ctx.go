package actor

import (
	"context"
	"log/slog"
)

type (
	// HandlerCtx is passed to every hook. Its context is cancelled when the
	// actor is terminated or has stopped.
	HandlerCtx interface {
		context.Context
		Log() *slog.Logger
		ID() string
	}
)

type handlerCtx struct {
	context.Context
	log *slog.Logger
	id  string
}

func (hc *handlerCtx) Log() *slog.Logger { return hc.log }
func (hc *handlerCtx) ID() string        { return hc.id }

var _ HandlerCtx = (*handlerCtx)(nil)
