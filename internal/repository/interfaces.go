package repository

import (
	"context"
	"time"

	"github.com/limbo/sketchstreak/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// Days passed to and returned from repositories are calendar days at 00:00 UTC.

type UploadsRepositoryI interface {
	// Saves upload record. ID, UserID, MediaRef and UploadDate are necessary
	Create(ctx context.Context, upload *entity.UploadRecord) error
	// Lists days with at least one upload, newest first
	ListDistinctDays(ctx context.Context, userID string) ([]time.Time, error)
	// Counts all uploads of the user
	Count(ctx context.Context, userID string) (int, error)
	// Provides per-day upload counts of the latest limit days with uploads, newest first
	RecentDailyCounts(ctx context.Context, userID string, limit int) ([]entity.DailyCount, error)
	// Inspects if user uploaded anything on the day
	ExistsOnDay(ctx context.Context, userID string, day time.Time) (bool, error)
}

type SessionsRepositoryI interface {
	// Records completed session of the user on the day. Repeated calls change nothing
	MarkComplete(ctx context.Context, userID string, day time.Time) error
	// Inspects if session of the user on the day is completed
	IsComplete(ctx context.Context, userID string, day time.Time) (bool, error)
}
