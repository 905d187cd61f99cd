// Package prometheus implements the actor runtime's metrics port on top of
// the Prometheus client library.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Danconnolly/minactor/core/metrics"
)

const namespace = "minactor"

// timer observes the elapsed time into a Prometheus histogram.
type timer struct {
	h     prometheus.Observer
	start time.Time
}

func newTimer(h prometheus.Observer) metrics.Timer {
	return &timer{h: h, start: time.Now()}
}

func (t *timer) ObserveDuration() {
	t.h.Observe(time.Since(t.start).Seconds())
}

// Latency buckets in seconds. Handlers are expected to be fast, so the low
// end is finer than the client library's defaults.
var defaultBuckets = []float64{
	.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5,
}

func boolToStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
