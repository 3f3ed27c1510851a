package metrics

import (
	"sync"
	"time"
)

type endpointStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type sweepStats struct {
	pairs    int
	failures int
	added    int
	skipped  int
	duration time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls and the sweep.
// When built by Setup it also feeds OpenTelemetry instruments.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*endpointStats
	sweep sweepStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*endpointStats),
		otel:  otel,
	}
}

// RecordProviderAttempt counts one upstream call for an endpoint and stores its latency.
func (r *Recorder) RecordProviderAttempt(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(endpoint)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(endpoint, duration, err)
	}
}

// RecordRateLimit tracks a 429 from upstream and the last Retry-After it carried.
func (r *Recorder) RecordRateLimit(endpoint string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(endpoint)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(endpoint, retryAfter)
	}
}

// RecordHTTPResponse tracks the status code of an outbound request.
func (r *Recorder) RecordHTTPResponse(endpoint string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPResponse(endpoint, status, duration)
}

// RecordPair tracks one processed (team, season) pair.
func (r *Recorder) RecordPair(team string, added, skipped int, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.sweep.pairs++
	r.sweep.added += added
	r.sweep.skipped += skipped
	if err != nil {
		r.sweep.failures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPair(team, added, skipped, err)
	}
}

// RecordSweep stores the duration of a completed sweep.
func (r *Recorder) RecordSweep(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.sweep.duration = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSweep(duration, err)
	}
}

// ProviderCalls returns the total attempts recorded for an endpoint.
func (r *Recorder) ProviderCalls(endpoint string) int {
	return r.Snapshot(endpoint).Calls
}

// ProviderErrors returns the total failed attempts recorded for an endpoint.
func (r *Recorder) ProviderErrors(endpoint string) int {
	return r.Snapshot(endpoint).Errors
}

// RateLimitHits returns the number of rate limit events seen for an endpoint.
func (r *Recorder) RateLimitHits(endpoint string) int {
	return r.Snapshot(endpoint).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for an endpoint.
func (r *Recorder) LastRetryAfter(endpoint string) time.Duration {
	return r.Snapshot(endpoint).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for an endpoint.
func (r *Recorder) LastCallLatency(endpoint string) time.Duration {
	return r.Snapshot(endpoint).LastCallLatency
}

// Snapshot is a copy of the stats for one endpoint.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[endpoint]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// SweepSnapshot summarizes the pairs recorded so far.
type SweepSnapshot struct {
	Pairs    int
	Failures int
	Added    int
	Skipped  int
	Duration time.Duration
}

func (r *Recorder) Sweep() SweepSnapshot {
	if r == nil {
		return SweepSnapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return SweepSnapshot{
		Pairs:    r.sweep.pairs,
		Failures: r.sweep.failures,
		Added:    r.sweep.added,
		Skipped:  r.sweep.skipped,
		Duration: r.sweep.duration,
	}
}

// ensureStats must be called with mu held.
func (r *Recorder) ensureStats(endpoint string) *endpointStats {
	stats, ok := r.stats[endpoint]
	if !ok {
		stats = &endpointStats{}
		r.stats[endpoint] = stats
	}
	return stats
}
