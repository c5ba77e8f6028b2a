package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/limbo/sketchstreak/internal/repository"
	"github.com/limbo/sketchstreak/internal/streak"
	"github.com/limbo/sketchstreak/pkg/dateutil"
	"github.com/limbo/sketchstreak/pkg/entity"
)

const defaultHistoryDays = 30

type StatsService struct {
	uploads     repository.UploadsRepositoryI
	sessions    repository.SessionsRepositoryI
	calendar    *dateutil.Calendar
	historyDays int
}

func NewStatsService(uploads repository.UploadsRepositoryI, sessions repository.SessionsRepositoryI, calendar *dateutil.Calendar, historyDays int) *StatsService {
	if uploads == nil || sessions == nil {
		log.Fatal("provided nil repository to stats service")
	}
	if calendar == nil {
		calendar = dateutil.NewCalendar(time.UTC, nil)
	}
	if historyDays <= 0 {
		historyDays = defaultHistoryDays
	}
	InitValidator()
	return &StatsService{
		uploads:     uploads,
		sessions:    sessions,
		calendar:    calendar,
		historyDays: historyDays,
	}
}

func (ss *StatsService) GetStats(ctx context.Context, userID string) (*entity.UserStats, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	return ss.GetStatsOn(ctx, userID, ss.calendar.Today())
}

// GetStatsOn builds stats against a fixed today, so callers that already
// mutated state for that day see a consistent picture.
func (ss *StatsService) GetStatsOn(ctx context.Context, userID string, today time.Time) (*entity.UserStats, error) {
	days, err := ss.uploads.ListDistinctDays(ctx, userID)
	if err != nil {
		return nil, errors.New("uploads repository error: " + err.Error())
	}
	total, err := ss.uploads.Count(ctx, userID)
	if err != nil {
		return nil, errors.New("uploads repository error: " + err.Error())
	}
	history, err := ss.uploads.RecentDailyCounts(ctx, userID, ss.historyDays)
	if err != nil {
		return nil, errors.New("uploads repository error: " + err.Error())
	}
	complete, err := ss.sessions.IsComplete(ctx, userID, today)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	if history == nil {
		history = []entity.DailyCount{}
	}

	result := streak.Calculate(days, today)
	return &entity.UserStats{
		UserID:               userID,
		CurrentStreak:        result.CurrentStreak,
		LongestStreak:        result.LongestStreak,
		TotalUploads:         total,
		RecentHistory:        history,
		HasUploadedToday:     result.HasUploadedToday,
		SessionCompleteToday: complete,
	}, nil
}
