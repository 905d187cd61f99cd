package actor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type named struct{}

func (named) MsgType() string { return "custom" }

type plain struct{}

func TestMsgTypeOf(t *testing.T) {
	assert.Equal(t, "custom", msgTypeOf(named{}))
	assert.Equal(t, "actor.plain", msgTypeOf(plain{}))
	assert.Equal(t, "actor.plain", msgTypeOf(&plain{}))
	assert.Equal(t, "<nil>", msgTypeOf(nil))
}

func TestFuncs_nil_fields_use_defaults(t *testing.T) {
	ref, done := newTestActor[plain, named, int](t, Funcs[plain, named, int]{}, 0)

	require.NoError(t, ref.Send(t.Context(), plain{}))

	_, err := ref.Ask(t.Context(), named{})
	require.ErrorIs(t, err, ErrHandlerNotImplemented)
	require.Contains(t, err.Error(), "msg_type=custom")

	require.NoError(t, ref.Shutdown(t.Context()))
	require.NoError(t, waitDone(t, done))
}

func TestFuncs_call(t *testing.T) {
	errOdd := errors.New("odd")
	ref, done := newTestActor[struct{}, int, int](t, Funcs[struct{}, int, int]{
		Call: func(hc HandlerCtx, n int) (Control, int, error) {
			if n%2 == 1 {
				return Ok(), 0, errOdd
			}
			return Ok(), n / 2, nil
		},
	}, 0)

	v, err := ref.Ask(t.Context(), 8)
	require.NoError(t, err)
	require.Equal(t, 4, v)

	_, err = ref.Ask(t.Context(), 3)
	require.ErrorIs(t, err, errOdd)

	ref.Terminate()
	require.ErrorIs(t, waitDone(t, done), ErrTerminated)
}
