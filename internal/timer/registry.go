// Package timer keeps the authoritative countdown per user in memory.
//
// Every user has at most one timer. A timer is Running until its trigger
// fires, then Expiring while the completion handler runs, then removed.
// Starting a new timer retracts the previous trigger; a retracted trigger
// can never complete a session because the registry checks entry identity
// under its lock before acting on a fired trigger.
package timer

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	errorvalues "github.com/limbo/sketchstreak/internal/error_values"
	"github.com/limbo/sketchstreak/pkg/entity"
)

var completionTimeout = 10 * time.Second

// CompletionFunc is invoked when a timer expires or is cancelled early.
type CompletionFunc func(ctx context.Context, userID string, reason entity.CompletionReason) error

// Handle is a pending one-shot trigger.
type Handle interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler func(d time.Duration, f func()) Handle

type Option func(*Registry)

// WithScheduler replaces time.AfterFunc.
func WithScheduler(s Scheduler) Option {
	return func(r *Registry) {
		r.schedule = s
	}
}

type state int

const (
	stateRunning state = iota
	stateExpiring
)

type entry struct {
	timer   entity.TimerState
	state   state
	trigger Handle
}

type Registry struct {
	mu         sync.Mutex
	entries    map[string]*entry
	closed     bool
	inflight   sync.WaitGroup
	onComplete CompletionFunc

	now      func() time.Time
	schedule Scheduler
	logger   *slog.Logger
}

func NewRegistry(now func() time.Time, logger *slog.Logger, opts ...Option) *Registry {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{
		entries: make(map[string]*entry),
		now:     now,
		logger:  logger,
		schedule: func(d time.Duration, f func()) Handle {
			return time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetCompletionHandler binds the session completion policy.
func (r *Registry) SetCompletionHandler(fn CompletionFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onComplete = fn
}

// Start installs a new timer for the user, replacing the existing one.
func (r *Registry) Start(userID string, durationMinutes int) (entity.TimerState, error) {
	if durationMinutes <= 0 {
		return entity.TimerState{}, errors.Join(errorvalues.ErrValidation, errors.New("duration must be positive"))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return entity.TimerState{}, errorvalues.ErrRegistryClosed
	}
	if old, ok := r.entries[userID]; ok && old.state == stateRunning {
		old.trigger.Stop()
	}
	duration := time.Duration(durationMinutes) * time.Minute
	start := r.now()
	e := &entry{
		state: stateRunning,
		timer: entity.TimerState{
			UserID:          userID,
			DurationMinutes: durationMinutes,
			StartTime:       start,
			EndTime:         start.Add(duration),
		},
	}
	e.trigger = r.schedule(duration, func() {
		r.expire(userID, e)
	})
	r.entries[userID] = e
	r.logger.Info("timer started",
		slog.String("uid", userID),
		slog.Int("duration_minutes", durationMinutes),
		slog.Time("end_time", e.timer.EndTime),
	)
	return e.timer, nil
}

// Get reports the user's timer. It never triggers completion: a timer past
// its end time is reported as expired until its trigger has run.
func (r *Registry) Get(userID string) (entity.TimerSnapshot, bool) {
	r.mu.Lock()
	e, ok := r.entries[userID]
	r.mu.Unlock()
	if !ok {
		return entity.TimerSnapshot{}, false
	}
	remaining := max(e.timer.EndTime.Sub(r.now()), 0)
	return entity.TimerSnapshot{
		TimerState: e.timer,
		Remaining:  remaining,
		IsExpired:  remaining == 0,
	}, true
}

// Cancel retracts the user's timer and completes the session early. Missing
// timer is not an error. A timer that is already expiring is only removed,
// its completion is in progress.
func (r *Registry) Cancel(ctx context.Context, userID string) error {
	e, ok := r.remove(userID)
	if !ok || e.state != stateRunning {
		return nil
	}
	r.logger.Info("timer cancelled", slog.String("uid", userID))
	r.mu.Lock()
	handler := r.onComplete
	r.mu.Unlock()
	if handler == nil {
		return nil
	}
	return handler(ctx, userID, entity.CompletionEarly)
}

// Stop retracts the user's timer without completing anything. Reports
// whether there was a timer.
func (r *Registry) Stop(userID string) bool {
	_, ok := r.remove(userID)
	if ok {
		r.logger.Info("timer stopped", slog.String("uid", userID))
	}
	return ok
}

// Active returns the number of registered timers.
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Close retracts every pending trigger and waits for running completions.
func (r *Registry) Close() error {
	r.mu.Lock()
	r.closed = true
	for userID, e := range r.entries {
		if e.state == stateRunning {
			e.trigger.Stop()
		}
		delete(r.entries, userID)
	}
	r.mu.Unlock()
	r.inflight.Wait()
	return nil
}

func (r *Registry) remove(userID string) (*entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[userID]
	if !ok {
		return nil, false
	}
	if e.state == stateRunning {
		e.trigger.Stop()
	}
	delete(r.entries, userID)
	return e, true
}

func (r *Registry) expire(userID string, e *entry) {
	r.mu.Lock()
	if r.closed || r.entries[userID] != e || e.state != stateRunning {
		// Retracted or replaced after the trigger fired
		r.mu.Unlock()
		return
	}
	e.state = stateExpiring
	handler := r.onComplete
	r.inflight.Add(1)
	r.mu.Unlock()
	defer r.inflight.Done()

	if handler != nil {
		ctx, cancel := context.WithTimeout(context.Background(), completionTimeout)
		err := handler(ctx, userID, entity.CompletionTimer)
		cancel()
		if err != nil {
			r.logger.Error("timer completion failed", slog.String("uid", userID), slog.String("error", err.Error()))
		}
	}

	r.mu.Lock()
	if r.entries[userID] == e {
		delete(r.entries, userID)
	}
	r.mu.Unlock()
	r.logger.Info("timer expired", slog.String("uid", userID))
}
