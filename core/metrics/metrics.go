// Package metrics holds the backend-neutral instrument types used by the
// actor runtime's metrics port. Backends such as the Prometheus adapter
// implement them; the runtime itself only ever sees these interfaces.
package metrics

// Timer measures one operation. Create it when the operation starts and call
// ObserveDuration when it ends:
//
//	defer m.MessageDuration("Increment").ObserveDuration()
type Timer interface {
	ObserveDuration()
}

// TimerFunc starts a new Timer.
type TimerFunc func() Timer
