package metrics

import (
	"sync"
	"time"
)

type loadStats struct {
	calls           int
	errors          int
	rows            int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about data loads and recommendations.
// When built by Setup it also forwards to OpenTelemetry instruments.
type Recorder struct {
	mu     sync.Mutex
	loads  map[string]*loadStats
	labels map[string]int
	otel   *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		loads:  make(map[string]*loadStats),
		labels: make(map[string]int),
		otel:   otel,
	}
}

// RecordDataLoad tracks one load of a table (kind) from a data source.
func (r *Recorder) RecordDataLoad(source, kind string, rows int, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.loads[loadKey(source, kind)]
	if !ok {
		stats = &loadStats{}
		r.loads[loadKey(source, kind)] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	} else {
		stats.rows += rows
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDataLoad(source, kind, rows, duration, err)
	}
}

// RecordRecommendation counts one recommendation outcome by label.
func (r *Recorder) RecordRecommendation(label string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.labels[label]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRecommendation(label)
	}
}

// Recommendations returns how many recommendations resolved to label.
func (r *Recorder) Recommendations(label string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.labels[label]
}

// LoadSnapshot is a copy of the current load stats for one source/kind pair.
type LoadSnapshot struct {
	Calls           int
	Errors          int
	Rows            int
	LastCallLatency time.Duration
}

// Snapshot returns a copy of the current load stats for the source and kind.
func (r *Recorder) Snapshot(source, kind string) LoadSnapshot {
	if r == nil {
		return LoadSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.loads[loadKey(source, kind)]
	if !ok || stats == nil {
		return LoadSnapshot{}
	}
	return LoadSnapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		Rows:            stats.rows,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

func loadKey(source, kind string) string {
	return source + "/" + kind
}
