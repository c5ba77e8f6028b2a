package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/sketchstreak/internal/error_values"
	"github.com/limbo/sketchstreak/internal/notify"
	"github.com/limbo/sketchstreak/internal/service"
	"github.com/limbo/sketchstreak/pkg/entity"
	"github.com/limbo/sketchstreak/pkg/httputil"
)

const historyDateLayout = "2006-01-02"

type StartTimerRequest struct {
	DurationMinutes int `json:"duration_minutes"`
}

// Timestamps are unix milliseconds.
type TimerResponse struct {
	DurationMinutes int   `json:"duration_minutes"`
	StartTime       int64 `json:"start_time"`
	EndTime         int64 `json:"end_time"`
	RemainingMs     int64 `json:"remaining_ms"`
	IsExpired       bool  `json:"is_expired"`
}

type UploadRequest struct {
	DisplayName string `json:"display_name"`
	MediaRef    string `json:"media_ref"`
}

type HistoryItem struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type StatsResponse struct {
	UserID               string        `json:"uid"`
	CurrentStreak        int           `json:"current_streak"`
	LongestStreak        int           `json:"longest_streak"`
	TotalUploads         int           `json:"total_uploads"`
	HasUploadedToday     bool          `json:"has_uploaded_today"`
	SessionCompleteToday bool          `json:"session_complete_today"`
	RecentHistory        []HistoryItem `json:"recent_history"`
}

func NewStatsResponse(stats *entity.UserStats) StatsResponse {
	history := make([]HistoryItem, 0, len(stats.RecentHistory))
	for _, dc := range stats.RecentHistory {
		history = append(history, HistoryItem{
			Date:  dc.Date.Format(historyDateLayout),
			Count: dc.Count,
		})
	}
	return StatsResponse{
		UserID:               stats.UserID,
		CurrentStreak:        stats.CurrentStreak,
		LongestStreak:        stats.LongestStreak,
		TotalUploads:         stats.TotalUploads,
		HasUploadedToday:     stats.HasUploadedToday,
		SessionCompleteToday: stats.SessionCompleteToday,
		RecentHistory:        history,
	}
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) StartTimer(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("start timer error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req StartTimerRequest
	defer r.Body.Close()
	err = httputil.DecodeJSON(r.Body, &req)
	if err != nil {
		logger.Error("start timer error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	state, err := s.sessionService.StartTimer(ctx, uid, service.StartTimerRequest{
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		writeServiceError(w, logger, "start timer", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, TimerResponse{
		DurationMinutes: state.DurationMinutes,
		StartTime:       state.StartTime.UnixMilli(),
		EndTime:         state.EndTime.UnixMilli(),
		RemainingMs:     state.EndTime.Sub(state.StartTime).Milliseconds(),
	})
	logger.Info("timer started", slog.Int("duration_minutes", state.DurationMinutes))
}

func (s *Server) GetTimer(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get timer error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	snap, err := s.sessionService.GetTimer(r.Context(), uid)
	if err != nil {
		writeServiceError(w, logger, "get timer", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TimerResponse{
		DurationMinutes: snap.DurationMinutes,
		StartTime:       snap.StartTime.UnixMilli(),
		EndTime:         snap.EndTime.UnixMilli(),
		RemainingMs:     snap.Remaining.Milliseconds(),
		IsExpired:       snap.IsExpired,
	})
}

func (s *Server) CancelTimer(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("cancel timer error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.sessionService.CancelTimer(ctx, uid); err != nil {
		writeServiceError(w, logger, "cancel timer", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusNoContent, nil)
	logger.Info("timer cancelled")
}

func (s *Server) RecordUpload(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("record upload error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UploadRequest
	defer r.Body.Close()
	err = httputil.DecodeJSON(r.Body, &req)
	if err != nil {
		logger.Error("record upload error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.DisplayName == "" {
		req.DisplayName = getDisplayNameFromContext(r)
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	stats, err := s.sessionService.RecordUploadAndComplete(ctx, uid, &service.UploadRequest{
		DisplayName: req.DisplayName,
		MediaRef:    req.MediaRef,
	})
	if err != nil {
		writeServiceError(w, logger, "record upload", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, NewStatsResponse(stats))
	logger.Info("upload recorded", slog.Int("current_streak", stats.CurrentStreak))
}

func (s *Server) MarkDone(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("mark done error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	stats, err := s.sessionService.MarkDone(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "mark done", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, NewStatsResponse(stats))
	logger.Info("session marked done")
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	stats, err := s.sessionService.GetStats(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, NewStatsResponse(stats))
	logger.Info("stats provided")
}

// Subscribe upgrades to a websocket that receives session notifications.
func (s *Server) Subscribe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	token := r.URL.Query().Get("token")
	if token == "" {
		logger.Error("subscribe error: no token")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "token is required", nil)
		return
	}
	claims, err := s.authorize(token)
	if err != nil {
		logger.Error("subscribe error: auth failed", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
		return
	}
	conn, err := notify.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied
		logger.Error("subscribe error: upgrade failed", slog.String("error", err.Error()))
		return
	}
	s.hub.ServeWS(conn, claims.UserID)
}

func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: invalid request", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrNoUploadYet):
		logger.Error(op + " error: no upload today")
		httputil.WriteErrorResponse(w, http.StatusConflict, "upload today's sketch first", nil)
	case errors.Is(err, errorvalues.ErrUploadExists):
		logger.Error(op + " error: duplicated upload")
		httputil.WriteErrorResponse(w, http.StatusConflict, "upload already recorded", nil)
	case errors.Is(err, errorvalues.ErrTimerNotFound):
		logger.Error(op + " error: no active timer")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "no active timer", nil)
	case errors.Is(err, errorvalues.ErrRegistryClosed):
		logger.Error(op + " error: shutting down")
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "service is shutting down", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}
