package service

import (
	"context"
	"time"

	"github.com/limbo/sketchstreak/internal/timer"
	"github.com/limbo/sketchstreak/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UploadRequest struct {
	DisplayName string `validate:"max=100"`
	MediaRef    string `validate:"required,max=512"`
}

type StartTimerRequest struct {
	DurationMinutes int `validate:"required,min=1"`
}

type StatsServiceI interface {
	// Computes streaks, totals and recent history of the user as of today
	GetStats(ctx context.Context, userID string) (*entity.UserStats, error)
	// Same as GetStats with today fixed by the caller
	GetStatsOn(ctx context.Context, userID string, today time.Time) (*entity.UserStats, error)
}

type SessionServiceI interface {
	// Starts (or restarts) the user's sketch timer
	StartTimer(ctx context.Context, userID string, req StartTimerRequest) (*entity.TimerState, error)
	// Provides remaining time of the user's timer. ErrTimerNotFound if there is none
	GetTimer(ctx context.Context, userID string) (*entity.TimerSnapshot, error)
	// Stops the timer early; the session counts as complete. No timer is not an error
	CancelTimer(ctx context.Context, userID string) error
	// Saves today's upload, completes today's session and stops the timer
	RecordUploadAndComplete(ctx context.Context, userID string, req *UploadRequest) (*entity.UserStats, error)
	// Completes today's session. ErrNoUploadYet if nothing was uploaded today
	MarkDone(ctx context.Context, userID string) (*entity.UserStats, error)
	GetStats(ctx context.Context, userID string) (*entity.UserStats, error)
}

type TimerRegistryI interface {
	Start(userID string, durationMinutes int) (entity.TimerState, error)
	Get(userID string) (entity.TimerSnapshot, bool)
	Cancel(ctx context.Context, userID string) error
	Stop(userID string) bool
	SetCompletionHandler(fn timer.CompletionFunc)
}

type NotifierI interface {
	// Delivers message to the user. Errors are never fatal for callers
	Notify(ctx context.Context, userID string, n entity.Notification) error
}
