package actor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type (
	increment struct{}
	getCount  struct{}
)

type counter struct {
	Base[increment, getCount, int]
	n int
}

func (c *counter) HandleSends(HandlerCtx, increment) Control {
	c.n++
	return Ok()
}

func (c *counter) HandleCalls(HandlerCtx, getCount) (Control, int, error) {
	return Ok(), c.n, nil
}

func newTestActor[S, C, R any](t *testing.T, a Actor[S, C, R], mailboxSize int) (*Ref[S, C, R], *Completion) {
	t.Helper()
	return New(a, Options{
		Context:     t.Context(),
		MailboxSize: mailboxSize,
	})
}

// queued waits until n envelopes sit in ref's mailbox.
func queued[S, C, R any](t *testing.T, ref *Ref[S, C, R], n int) {
	t.Helper()
	require.Eventually(t, func() bool { return len(ref.mailbox) == n }, time.Second, time.Millisecond)
}

func waitDone(t *testing.T, c *Completion) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()
	err := c.Wait(ctx)
	select {
	case <-c.Done():
	default:
		t.Fatal("timeout waiting for actor to stop")
	}
	return err
}
