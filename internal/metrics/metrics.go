// Package metrics wires a lrmap.Writer's reads, writes, and refreshes into
// Prometheus, in the style of the teacher corpus's promauto-based metric
// vectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lrmap_reads_total",
			Help: "Total number of reads performed against an lrmap instance.",
		},
		[]string{"instance"},
	)

	writes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lrmap_writes_total",
			Help: "Total number of writes performed against an lrmap instance.",
		},
		[]string{"instance"},
	)

	refreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lrmap_refreshes_total",
			Help: "Total number of refresh cycles completed by an lrmap writer.",
		},
		[]string{"instance"},
	)

	refreshDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lrmap_refresh_duration_seconds",
			Help:    "Time spent in Refresh, including any straggler drain wait.",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		},
		[]string{"instance"},
	)
)

// Recorder records lrmap activity for one named instance. The zero value is
// not usable; construct with New.
type Recorder struct {
	instance string
}

// New returns a Recorder that labels every metric it records with
// instance, so multiple lrmap instances in one process stay distinguishable
// in Prometheus.
func New(instance string) *Recorder {
	return &Recorder{instance: instance}
}

// Read records one read.
func (rec *Recorder) Read() {
	reads.WithLabelValues(rec.instance).Inc()
}

// Write records one write.
func (rec *Recorder) Write() {
	writes.WithLabelValues(rec.instance).Inc()
}

// Refresh records one completed refresh cycle and its wall-clock duration.
func (rec *Recorder) Refresh(d time.Duration) {
	refreshes.WithLabelValues(rec.instance).Inc()
	refreshDuration.WithLabelValues(rec.instance).Observe(d.Seconds())
}

// Refreshed runs fn (expected to be a single w.Refresh() call) and records
// its wall-clock duration as a completed refresh cycle.
func (rec *Recorder) Refreshed(fn func()) {
	start := time.Now()
	fn()
	rec.Refresh(time.Since(start))
}
