package metrics

import (
	"sync"
	"time"
)

type sportStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about scoreboard
// fetches and refresh cycles, optionally mirroring them to OpenTelemetry
// instruments when telemetry is enabled.
type Recorder struct {
	mu            sync.Mutex
	stats         map[string]*sportStats
	refreshCycles int
	refreshErrors int
	lastLiveGames int
	otel          *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*sportStats),
		otel:  otel,
	}
}

// RecordFetchAttempt increments counters for one sport's scoreboard
// fetch and stores the last observed latency.
func (r *Recorder) RecordFetchAttempt(sport string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(sport)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetchAttempt(sport, duration, err)
	}
}

// RecordRefreshCycle tracks one whole-scoreboard refresh.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.refreshCycles++
	if err != nil {
		r.refreshErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRefreshCycle(duration, err)
	}
}

// RecordLiveGames stores the live-game count observed after a refresh.
func (r *Recorder) RecordLiveGames(count int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.lastLiveGames = count
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLiveGames(count)
	}
}

// Snapshot is a copy of the per-sport fetch stats.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(sport string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.stats[sport]; ok && stats != nil {
		return Snapshot{
			Calls:           stats.calls,
			Errors:          stats.errors,
			LastCallLatency: stats.lastCallLatency,
		}
	}
	return Snapshot{}
}

// FetchCalls returns the total fetch attempts recorded for a sport.
func (r *Recorder) FetchCalls(sport string) int {
	return r.Snapshot(sport).Calls
}

// FetchErrors returns the total failed fetch attempts for a sport.
func (r *Recorder) FetchErrors(sport string) int {
	return r.Snapshot(sport).Errors
}

// RefreshCycles returns the number of whole-scoreboard refreshes.
func (r *Recorder) RefreshCycles() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshCycles
}

// RefreshErrors returns the number of failed refreshes.
func (r *Recorder) RefreshErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshErrors
}

// LiveGames returns the last recorded live-game count.
func (r *Recorder) LiveGames() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastLiveGames
}

func (r *Recorder) ensureStats(sport string) *sportStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[sport]
	if !ok {
		stats = &sportStats{}
		r.stats[sport] = stats
	}
	return stats
}
