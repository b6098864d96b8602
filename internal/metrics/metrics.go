package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type loadStats struct {
	cycles     int
	errors     int
	superseded int
	lastLoad   time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and loads,
// forwarding to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	loads loadStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider, resource string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, resource, duration, err)
	}
}

// RecordLoad tracks one full teams+games load cycle.
func (r *Recorder) RecordLoad(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.loads.cycles++
	r.loads.lastLoad = duration
	if err != nil {
		r.loads.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLoad(duration, err)
	}
}

// RecordSuperseded tracks an interaction whose result was discarded for a newer one.
func (r *Recorder) RecordSuperseded() {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.loads.superseded++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSuperseded()
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// LoadSnapshot is a copy of the load counters.
type LoadSnapshot struct {
	Cycles     int
	Errors     int
	Superseded int
	LastLoad   time.Duration
}

// Loads returns a copy of the load counters.
func (r *Recorder) Loads() LoadSnapshot {
	if r == nil {
		return LoadSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return LoadSnapshot{
		Cycles:     r.loads.cycles,
		Errors:     r.loads.errors,
		Superseded: r.loads.superseded,
		LastLoad:   r.loads.lastLoad,
	}
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
