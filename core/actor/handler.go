package actor

// Funcs builds an actor out of plain functions. Nil fields fall back to [Base].
//
//	ref, done := actor.New[Ping, Query, int](actor.Funcs[Ping, Query, int]{
//	    Send: func(hc actor.HandlerCtx, p Ping) actor.Control { n++; return actor.Ok() },
//	    Call: func(hc actor.HandlerCtx, q Query) (actor.Control, int, error) { return actor.Ok(), n, nil },
//	}, actor.Options{})
type Funcs[S, C, R any] struct {
	Init     func(hc HandlerCtx) Control
	Send     func(hc HandlerCtx, msg S) Control
	Call     func(hc HandlerCtx, msg C) (Control, R, error)
	Shutdown func(hc HandlerCtx) Control

	base Base[S, C, R]
}

func (f Funcs[S, C, R]) OnInitialization(hc HandlerCtx) Control {
	if f.Init == nil {
		return f.base.OnInitialization(hc)
	}
	return f.Init(hc)
}

func (f Funcs[S, C, R]) HandleSends(hc HandlerCtx, msg S) Control {
	if f.Send == nil {
		return f.base.HandleSends(hc, msg)
	}
	return f.Send(hc, msg)
}

func (f Funcs[S, C, R]) HandleCalls(hc HandlerCtx, msg C) (Control, R, error) {
	if f.Call == nil {
		return f.base.HandleCalls(hc, msg)
	}
	return f.Call(hc, msg)
}

func (f Funcs[S, C, R]) OnShutdown(hc HandlerCtx) Control {
	if f.Shutdown == nil {
		return f.base.OnShutdown(hc)
	}
	return f.Shutdown(hc)
}

var _ Actor[any, any, any] = Funcs[any, any, any]{}
