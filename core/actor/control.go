package actor

import "context"

type controlKind int

const (
	controlOk controlKind = iota
	controlShutdown
	controlTerminate
	controlSpawn
)

func (k controlKind) String() string {
	switch k {
	case controlOk:
		return "ok"
	case controlShutdown:
		return "shutdown"
	case controlTerminate:
		return "terminate"
	case controlSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// Task is a unit of background work started through [SpawnFuture]. The
// context is cancelled when the actor is terminated.
type Task func(ctx context.Context) error

// Control tells the executor what to do after a hook returns.
// The zero value is equivalent to [Ok].
type Control struct {
	kind controlKind
	task Task
}

// Ok continues processing.
func Ok() Control { return Control{} }

// Shutdown requests a graceful stop. Envelopes already in the mailbox are
// handled first.
func Shutdown() Control { return Control{kind: controlShutdown} }

// Terminate stops the actor immediately. Queued envelopes are abandoned and
// pending callers fail with [ErrReceiveFailure].
func Terminate() Control { return Control{kind: controlTerminate} }

// SpawnFuture runs task concurrently with the actor. Spawned tasks are awaited
// on graceful shutdown and abandoned on termination. A nil task is treated as Ok.
func SpawnFuture(task Task) Control {
	if task == nil {
		return Control{}
	}
	return Control{kind: controlSpawn, task: task}
}

func (c Control) IsOk() bool        { return c.kind == controlOk }
func (c Control) IsShutdown() bool  { return c.kind == controlShutdown }
func (c Control) IsTerminate() bool { return c.kind == controlTerminate }
func (c Control) IsSpawn() bool     { return c.kind == controlSpawn }

func (c Control) String() string { return c.kind.String() }
