package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Danconnolly/minactor/core/actor"
	"github.com/Danconnolly/minactor/core/metrics"
)

// actorMetrics implements actor.ActorMetrics using Prometheus.
type actorMetrics struct {
	messageDuration *prometheus.HistogramVec
	messagesTotal   *prometheus.CounterVec
	panicTotal      *prometheus.CounterVec
	mailboxDepth    *prometheus.GaugeVec
	tasksInflight   *prometheus.GaugeVec
	taskDuration    prometheus.Histogram
	tasksTotal      *prometheus.CounterVec
	stoppedTotal    *prometheus.CounterVec
}

// NewActorMetrics registers the actor collectors on reg. One instance can be
// shared by any number of actors through actor.Options.Metrics.
func NewActorMetrics(reg prometheus.Registerer) actor.ActorMetrics {
	m := &actorMetrics{
		messageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "actor_message_duration_seconds",
			Help:      "Handler execution time in seconds",
			Buckets:   defaultBuckets,
		}, []string{"message_type"}),

		messagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actor_messages_total",
			Help:      "Total number of messages handled",
		}, []string{"message_type", "success"}),

		panicTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actor_panics_total",
			Help:      "Total number of hook panics",
		}, []string{"message_type"}),

		mailboxDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "actor_mailbox_depth",
			Help:      "Envelopes waiting in the mailbox",
		}, []string{"actor_id"}),

		tasksInflight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "actor_tasks_inflight",
			Help:      "Spawned tasks currently running",
		}, []string{"actor_id"}),

		taskDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "actor_task_duration_seconds",
			Help:      "Spawned task duration in seconds",
			Buckets:   defaultBuckets,
		}),

		tasksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actor_tasks_total",
			Help:      "Total number of spawned tasks completed",
		}, []string{"success"}),

		stoppedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actor_stopped_total",
			Help:      "Total number of actors stopped",
		}, []string{"reason"}),
	}

	reg.MustRegister(
		m.messageDuration,
		m.messagesTotal,
		m.panicTotal,
		m.mailboxDepth,
		m.tasksInflight,
		m.taskDuration,
		m.tasksTotal,
		m.stoppedTotal,
	)

	return m
}

func (m *actorMetrics) MessageDuration(msgType string) metrics.Timer {
	return newTimer(m.messageDuration.WithLabelValues(msgType))
}

func (m *actorMetrics) MessageProcessed(msgType string, success bool) {
	m.messagesTotal.WithLabelValues(msgType, boolToStr(success)).Inc()
}

func (m *actorMetrics) MessagePanic(msgType string) {
	m.panicTotal.WithLabelValues(msgType).Inc()
}

func (m *actorMetrics) MailboxDepth(actorID string, depth int) {
	m.mailboxDepth.WithLabelValues(actorID).Set(float64(depth))
}

func (m *actorMetrics) TasksInflight(actorID string, count int) {
	m.tasksInflight.WithLabelValues(actorID).Set(float64(count))
}

func (m *actorMetrics) TaskDuration() metrics.Timer {
	return newTimer(m.taskDuration)
}

func (m *actorMetrics) TaskCompleted(success bool) {
	m.tasksTotal.WithLabelValues(boolToStr(success)).Inc()
}

func (m *actorMetrics) ActorStopped(reason string) {
	m.stoppedTotal.WithLabelValues(reason).Inc()
}

var _ actor.ActorMetrics = (*actorMetrics)(nil)
