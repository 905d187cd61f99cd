package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Danconnolly/minactor/core/actor"
)

func TestNewActorMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewActorMetrics(reg)

	require.NotNil(t, m)

	timer := m.MessageDuration("Increment")
	assert.NotNil(t, timer)
	timer.ObserveDuration()

	m.MessageProcessed("Increment", true)
	m.MessageProcessed("Increment", false)
	m.MessagePanic("Increment")

	m.MailboxDepth("actor-123", 10)

	m.TasksInflight("actor-123", 5)
	timer = m.TaskDuration()
	assert.NotNil(t, timer)
	timer.ObserveDuration()
	m.TaskCompleted(true)
	m.TaskCompleted(false)

	m.ActorStopped("shutdown")

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)

	names := make(map[string]bool)
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}

	assert.True(t, names["minactor_actor_message_duration_seconds"])
	assert.True(t, names["minactor_actor_messages_total"])
	assert.True(t, names["minactor_actor_mailbox_depth"])
	assert.True(t, names["minactor_actor_tasks_inflight"])
	assert.True(t, names["minactor_actor_stopped_total"])
}

type (
	incr     struct{}
	getCount struct{}
)

func (incr) MsgType() string     { return "incr" }
func (getCount) MsgType() string { return "get_count" }

func TestActorMetrics_wired(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewActorMetrics(reg).(*actorMetrics)

	n := 0
	ref, done := actor.New[incr, getCount, int](actor.Funcs[incr, getCount, int]{
		Send: func(hc actor.HandlerCtx, _ incr) actor.Control {
			n++
			return actor.Ok()
		},
		Call: func(hc actor.HandlerCtx, _ getCount) (actor.Control, int, error) {
			return actor.Ok(), n, nil
		},
	}, actor.Options{Context: t.Context(), Metrics: m})

	for range 3 {
		require.NoError(t, ref.Send(t.Context(), incr{}))
	}
	v, err := ref.Ask(t.Context(), getCount{})
	require.NoError(t, err)
	require.Equal(t, 3, v)

	require.NoError(t, ref.Shutdown(t.Context()))
	require.NoError(t, done.Wait(t.Context()))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.messagesTotal.WithLabelValues("incr", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.messagesTotal.WithLabelValues("get_count", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.stoppedTotal.WithLabelValues("shutdown")))
}

func TestBoolToStr(t *testing.T) {
	assert.Equal(t, "true", boolToStr(true))
	assert.Equal(t, "false", boolToStr(false))
}
