package metrics

import (
	"sync"
	"time"
)

type resourceStats struct {
	fetches     int
	errors      int
	dropped     int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream fetches
// and normalization, mirrored to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*resourceStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*resourceStats),
		otel:  otel,
	}
}

// RecordFetch increments counters for an upstream fetch and stores the last
// observed latency.
func (r *Recorder) RecordFetch(resource string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(resource)
	stats.fetches++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(resource, duration, err)
	}
}

// RecordDroppedRecords tracks records discarded during normalization for
// missing identity fields.
func (r *Recorder) RecordDroppedRecords(resource string, count int) {
	if r == nil || count <= 0 {
		return
	}

	r.mu.Lock()
	r.ensureStats(resource).dropped += count
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDropped(resource, count)
	}
}

// RecordAggregation tracks one date-window aggregation cycle.
func (r *Recorder) RecordAggregation(duration time.Duration, dates, failures int) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordAggregation(duration, dates, failures)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks refresh cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// Snapshot is a copy of the current stats for one resource.
type Snapshot struct {
	Fetches     int
	Errors      int
	Dropped     int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(resource string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	stats := r.ensureStats(resource)
	return Snapshot{
		Fetches:     stats.fetches,
		Errors:      stats.errors,
		Dropped:     stats.dropped,
		LastLatency: stats.lastLatency,
	}
}

// Fetches returns the total fetch attempts recorded for a resource.
func (r *Recorder) Fetches(resource string) int {
	return r.Snapshot(resource).Fetches
}

// Errors returns the total failed fetches recorded for a resource.
func (r *Recorder) Errors(resource string) int {
	return r.Snapshot(resource).Errors
}

// Dropped returns the total dropped records recorded for a resource.
func (r *Recorder) Dropped(resource string) int {
	return r.Snapshot(resource).Dropped
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(resource string) *resourceStats {
	stats, ok := r.stats[resource]
	if !ok {
		stats = &resourceStats{}
		r.stats[resource] = stats
	}
	return stats
}
