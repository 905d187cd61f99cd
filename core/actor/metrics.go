package actor

import "github.com/Danconnolly/minactor/core/metrics"

// ActorMetrics is the instrumentation port of the executor.
// All methods are thread-safe.
type ActorMetrics interface {
	// Message handling
	MessageDuration(msgType string) metrics.Timer
	MessageProcessed(msgType string, success bool)
	MessagePanic(msgType string)

	// Mailbox
	MailboxDepth(actorID string, depth int)

	// Spawned tasks
	TasksInflight(actorID string, count int)
	TaskDuration() metrics.Timer
	TaskCompleted(success bool)

	// Lifecycle; reason is "shutdown" or "terminated"
	ActorStopped(reason string)
}

type nopActorMetrics struct{}

func (nopActorMetrics) MessageDuration(string) metrics.Timer { return metrics.NopTimer() }
func (nopActorMetrics) MessageProcessed(string, bool)        {}
func (nopActorMetrics) MessagePanic(string)                  {}

func (nopActorMetrics) MailboxDepth(string, int) {}

func (nopActorMetrics) TasksInflight(string, int)   {}
func (nopActorMetrics) TaskDuration() metrics.Timer { return metrics.NopTimer() }
func (nopActorMetrics) TaskCompleted(bool)          {}

func (nopActorMetrics) ActorStopped(string) {}

// NopActorMetrics returns a no-op ActorMetrics implementation.
func NopActorMetrics() ActorMetrics { return nopActorMetrics{} }
