package watch

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"scorewatch/internal/domain/games"
	"scorewatch/internal/logging"
	"scorewatch/internal/metrics"
)

const (
	defaultLiveInterval = 5 * time.Second
	defaultIdleInterval = 60 * time.Second
)

// State is the watcher lifecycle state.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateError   State = "error"
)

// Snapshot is an immutable view of the watcher's current result set.
type Snapshot struct {
	State       State
	Games       []games.Game
	Err         error
	Date        time.Time
	LastUpdated time.Time
}

// Fetcher is the aggregate scoreboard dependency of the watcher.
type Fetcher interface {
	FetchAll(ctx context.Context, date time.Time) ([]games.Game, error)
}

// Config tunes the refresh cadence.
type Config struct {
	// LiveInterval applies while any held game is live; IdleInterval
	// otherwise. The choice is re-evaluated after every completed fetch.
	LiveInterval time.Duration
	IdleInterval time.Duration
}

// Watcher owns the polling cadence for one scoreboard view: fetch on
// start and on date change, then repeat on a timer that shortens while
// any held game is live. At most one fetch is in flight; starting a new
// one cancels and supersedes the previous, whose result is discarded.
type Watcher struct {
	fetcher      Fetcher
	logger       *slog.Logger
	metrics      *metrics.Recorder
	liveInterval time.Duration
	idleInterval time.Duration
	now          func() time.Time
	newCycleID   func() string

	reload chan struct{} // non-silent reload requests (date change, manual)
	kick   chan struct{} // cadence re-evaluation after a completed cycle
	done   chan struct{}

	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	onUpdate func(Snapshot)

	mu          sync.Mutex
	state       State
	games       []games.Game
	err         error
	date        time.Time
	lastUpdated time.Time
	cancel      context.CancelFunc
	generation  uint64
}

// New constructs a Watcher with sane defaults.
func New(fetcher Fetcher, logger *slog.Logger, recorder *metrics.Recorder, cfg Config) *Watcher {
	if cfg.LiveInterval <= 0 {
		cfg.LiveInterval = defaultLiveInterval
	}
	if cfg.IdleInterval <= 0 {
		cfg.IdleInterval = defaultIdleInterval
	}
	return &Watcher{
		fetcher:      fetcher,
		logger:       logger,
		metrics:      recorder,
		liveInterval: cfg.LiveInterval,
		idleInterval: cfg.IdleInterval,
		now:          time.Now,
		newCycleID:   uuid.NewString,
		reload:       make(chan struct{}, 1),
		kick:         make(chan struct{}, 1),
		done:         make(chan struct{}),
		state:        StateIdle,
	}
}

// OnUpdate registers a callback invoked after every state transition.
// Must be called before Start.
func (w *Watcher) OnUpdate(fn func(Snapshot)) {
	w.onUpdate = fn
}

// Start begins watching the given date until the context is cancelled
// or Stop is called. Calling Start twice is a no-op.
func (w *Watcher) Start(ctx context.Context, date time.Time) {
	w.startMu.Lock()
	if w.started {
		w.startMu.Unlock()
		return
	}
	w.started = true
	w.startMu.Unlock()

	w.mu.Lock()
	w.date = date
	w.mu.Unlock()

	go w.run(ctx)
}

// Stop halts the watch loop and cancels any in-flight fetch.
func (w *Watcher) Stop(ctx context.Context) error {
	_ = ctx
	w.stopOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.cancel != nil {
			w.cancel()
		}
		w.mu.Unlock()
	})
	return nil
}

// SetDate switches the watched date and triggers an immediate,
// non-silent reload, superseding any in-flight fetch.
func (w *Watcher) SetDate(date time.Time) {
	w.mu.Lock()
	w.date = date
	w.mu.Unlock()
	w.signal(w.reload)
}

// Refresh triggers an immediate non-silent reload of the current date.
func (w *Watcher) Refresh() {
	w.signal(w.reload)
}

// Snapshot returns the current view of the watcher.
func (w *Watcher) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Watcher) run(ctx context.Context) {
	logging.Info(w.logger, "watcher started",
		slog.Int64("live_interval_ms", w.liveInterval.Milliseconds()),
		slog.Int64("idle_interval_ms", w.idleInterval.Milliseconds()),
	)

	w.load(ctx, false)

	for {
		timer := time.NewTimer(w.currentInterval())
		select {
		case <-ctx.Done():
			timer.Stop()
			logging.Info(w.logger, "watcher stopped")
			return
		case <-w.done:
			timer.Stop()
			logging.Info(w.logger, "watcher stopped")
			return
		case <-w.reload:
			timer.Stop()
			w.load(ctx, false)
		case <-w.kick:
			// A cycle finished; loop to re-arm the timer at the
			// cadence implied by the fresh result set.
			timer.Stop()
		case <-timer.C:
			w.load(ctx, true)
		}
	}
}

// currentInterval picks the refresh cadence from the held result set.
func (w *Watcher) currentInterval() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	if games.AnyLive(w.games) {
		return w.liveInterval
	}
	return w.idleInterval
}

// load starts one fetch cycle. Silent cycles skip the loading
// transition so background refreshes do not flicker the UI; they still
// cancel and supersede any in-flight fetch.
func (w *Watcher) load(parent context.Context, silent bool) {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
	}
	fetchCtx, cancel := context.WithCancel(parent)
	w.cancel = cancel
	w.generation++
	gen := w.generation
	date := w.date
	if !silent {
		w.state = StateLoading
		w.err = nil
	}
	w.mu.Unlock()

	if !silent {
		w.notify()
	}

	cycleID := w.newCycleID()

	go func() {
		defer cancel()
		start := w.now()
		list, err := w.fetcher.FetchAll(fetchCtx, date)
		elapsed := w.now().Sub(start)

		if isCancellation(err) {
			// Superseded or shut down; the result is discarded with no
			// state transition.
			return
		}

		w.metrics.RecordRefreshCycle(elapsed, err)

		w.mu.Lock()
		if gen != w.generation {
			w.mu.Unlock()
			return
		}
		if err != nil {
			w.state = StateError
			w.err = err
			w.games = nil
		} else {
			w.state = StateLoaded
			w.err = nil
			w.games = list
			w.lastUpdated = w.now()
		}
		w.mu.Unlock()

		if err != nil {
			logging.Error(w.logger, "scoreboard refresh failed", err,
				slog.String(logging.FieldCycleID, cycleID),
				slog.Bool(logging.FieldSilent, silent),
				slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			)
		} else {
			live := countLive(list)
			w.metrics.RecordLiveGames(live)
			logging.Info(w.logger, "scoreboard refreshed",
				slog.String(logging.FieldCycleID, cycleID),
				slog.Bool(logging.FieldSilent, silent),
				slog.String(logging.FieldDate, date.Format("2006-01-02")),
				slog.Int(logging.FieldCount, len(list)),
				slog.Int("live", live),
				slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			)
		}

		w.notify()
		w.signal(w.kick)
	}()
}

func (w *Watcher) snapshotLocked() Snapshot {
	list := make([]games.Game, len(w.games))
	copy(list, w.games)
	return Snapshot{
		State:       w.state,
		Games:       list,
		Err:         w.err,
		Date:        w.date,
		LastUpdated: w.lastUpdated,
	}
}

func (w *Watcher) notify() {
	if w.onUpdate == nil {
		return
	}
	w.mu.Lock()
	snap := w.snapshotLocked()
	w.mu.Unlock()
	w.onUpdate(snap)
}

func (w *Watcher) signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func countLive(list []games.Game) int {
	n := 0
	for _, g := range list {
		if g.IsLive() {
			n++
		}
	}
	return n
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
