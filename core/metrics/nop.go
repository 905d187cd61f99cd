package metrics

type nopTimer struct{}

func (nopTimer) ObserveDuration() {}

// NopTimer returns a Timer that records nothing.
func NopTimer() Timer { return nopTimer{} }

// NopTimerFunc returns a TimerFunc producing no-op Timers.
func NopTimerFunc() TimerFunc { return func() Timer { return nopTimer{} } }
