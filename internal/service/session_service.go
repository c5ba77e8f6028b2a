package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/sketchstreak/internal/error_values"
	"github.com/limbo/sketchstreak/internal/repository"
	"github.com/limbo/sketchstreak/pkg/dateutil"
	"github.com/limbo/sketchstreak/pkg/entity"
)

const defaultMaxTimerMinutes = 180

type SessionDeps struct {
	Uploads  repository.UploadsRepositoryI
	Sessions repository.SessionsRepositoryI
	Stats    StatsServiceI
	Timers   TimerRegistryI
	Notifier NotifierI
	Calendar *dateutil.Calendar
	Logger   *slog.Logger
	// Upper bound for a timer duration, minutes
	MaxTimerMinutes int
}

// SessionService decides when a day's sketch session is complete. Uploads,
// the explicit "done" action and timers all end up in EnsureSessionComplete.
type SessionService struct {
	uploads         repository.UploadsRepositoryI
	sessions        repository.SessionsRepositoryI
	stats           StatsServiceI
	timers          TimerRegistryI
	notifier        NotifierI
	calendar        *dateutil.Calendar
	logger          *slog.Logger
	maxTimerMinutes int
}

func NewSessionService(deps SessionDeps) *SessionService {
	if deps.Uploads == nil || deps.Sessions == nil {
		log.Fatal("provided nil repository to session service")
	}
	if deps.Stats == nil || deps.Timers == nil || deps.Notifier == nil {
		log.Fatal("provided nil collaborator to session service")
	}
	if deps.Calendar == nil {
		deps.Calendar = dateutil.NewCalendar(time.UTC, nil)
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.MaxTimerMinutes <= 0 {
		deps.MaxTimerMinutes = defaultMaxTimerMinutes
	}
	InitValidator()
	s := &SessionService{
		uploads:         deps.Uploads,
		sessions:        deps.Sessions,
		stats:           deps.Stats,
		timers:          deps.Timers,
		notifier:        deps.Notifier,
		calendar:        deps.Calendar,
		logger:          deps.Logger,
		maxTimerMinutes: deps.MaxTimerMinutes,
	}
	deps.Timers.SetCompletionHandler(s.handleTimerCompletion)
	return s
}

func (s *SessionService) StartTimer(ctx context.Context, userID string, req StartTimerRequest) (*entity.TimerState, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.DurationMinutes > s.maxTimerMinutes {
		return nil, errors.Join(errorvalues.ErrValidation,
			fmt.Errorf("duration must not exceed %d minutes", s.maxTimerMinutes))
	}
	state, err := s.timers.Start(userID, req.DurationMinutes)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *SessionService) GetTimer(ctx context.Context, userID string) (*entity.TimerSnapshot, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	snap, ok := s.timers.Get(userID)
	if !ok {
		return nil, errorvalues.ErrTimerNotFound
	}
	return &snap, nil
}

func (s *SessionService) CancelTimer(ctx context.Context, userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	return s.timers.Cancel(ctx, userID)
}

func (s *SessionService) RecordUploadAndComplete(ctx context.Context, userID string, req *UploadRequest) (*entity.UserStats, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("empty upload"))
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	today := s.calendar.Today()
	upload := entity.UploadRecord{
		ID:          uuid.New(),
		UserID:      userID,
		DisplayName: req.DisplayName,
		MediaRef:    req.MediaRef,
		UploadDate:  today,
		CreatedAt:   s.calendar.Now(),
	}
	if err := s.uploads.Create(ctx, &upload); err != nil {
		if errors.Is(err, errorvalues.ErrUploadExists) {
			return nil, err
		}
		return nil, errors.New("uploads repository error: " + err.Error())
	}
	if err := s.ensureSessionComplete(ctx, userID, today); err != nil {
		return nil, err
	}
	// The upload already completed the session, cancelling would complete it twice
	s.timers.Stop(userID)

	stats, err := s.stats.GetStatsOn(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, userID, entity.Notification{
		Type:    entity.NotificationUploadRecorded,
		Message: fmt.Sprintf("Sketch recorded! Current streak: %d day(s).", stats.CurrentStreak),
		Payload: map[string]int{"current_streak": stats.CurrentStreak},
	})
	return stats, nil
}

func (s *SessionService) MarkDone(ctx context.Context, userID string) (*entity.UserStats, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	today := s.calendar.Today()
	uploaded, err := s.uploads.ExistsOnDay(ctx, userID, today)
	if err != nil {
		return nil, errors.New("uploads repository error: " + err.Error())
	}
	if !uploaded {
		return nil, errorvalues.ErrNoUploadYet
	}
	if err := s.ensureSessionComplete(ctx, userID, today); err != nil {
		return nil, err
	}
	return s.stats.GetStatsOn(ctx, userID, today)
}

func (s *SessionService) GetStats(ctx context.Context, userID string) (*entity.UserStats, error) {
	return s.stats.GetStats(ctx, userID)
}

// EnsureSessionComplete marks today's session of the user as complete.
// Calling it again the same day changes nothing.
func (s *SessionService) EnsureSessionComplete(ctx context.Context, userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	return s.ensureSessionComplete(ctx, userID, s.calendar.Today())
}

func (s *SessionService) ensureSessionComplete(ctx context.Context, userID string, today time.Time) error {
	if err := s.sessions.MarkComplete(ctx, userID, today); err != nil {
		return errors.New("sessions repository error: " + err.Error())
	}
	return nil
}

// handleTimerCompletion is bound to the timer registry.
func (s *SessionService) handleTimerCompletion(ctx context.Context, userID string, reason entity.CompletionReason) error {
	if err := s.ensureSessionComplete(ctx, userID, s.calendar.Today()); err != nil {
		return err
	}
	s.logger.Info("session completed", slog.String("uid", userID), slog.String("reason", string(reason)))

	n := entity.Notification{
		Type:    entity.NotificationTimerFinished,
		Message: "Time is up! Today's sketch session is complete.",
	}
	if reason == entity.CompletionEarly {
		n = entity.Notification{
			Type:    entity.NotificationTimerCancelled,
			Message: "Timer stopped early. Today's sketch session still counts.",
		}
	}
	s.notify(ctx, userID, n)
	return nil
}

func (s *SessionService) notify(ctx context.Context, userID string, n entity.Notification) {
	err := s.notifier.Notify(ctx, userID, n)
	switch {
	case err == nil:
	case errors.Is(err, errorvalues.ErrNoSubscribers):
		s.logger.Debug("notification not delivered, user offline", slog.String("uid", userID))
	default:
		s.logger.Warn("notification failed",
			slog.String("uid", userID),
			slog.String("type", string(n.Type)),
			slog.String("error", err.Error()),
		)
	}
}
