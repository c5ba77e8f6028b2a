package entity

import (
	"time"

	"github.com/google/uuid"
)

// UploadRecord is a single sketch photo upload. UploadDate is a calendar day
// normalized to 00:00 UTC.
type UploadRecord struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"uid"`
	DisplayName string    `json:"display_name"`
	MediaRef    string    `json:"media_ref"`
	UploadDate  time.Time `json:"upload_date"`
	CreatedAt   time.Time `json:"created_at"`
}

type StreakResult struct {
	CurrentStreak    int  `json:"current_streak"`
	LongestStreak    int  `json:"longest_streak"`
	HasUploadedToday bool `json:"has_uploaded_today"`
}

type DailyCount struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

type UserStats struct {
	UserID               string       `json:"uid"`
	CurrentStreak        int          `json:"current_streak"`
	LongestStreak        int          `json:"longest_streak"`
	TotalUploads         int          `json:"total_uploads"`
	RecentHistory        []DailyCount `json:"recent_history"`
	HasUploadedToday     bool         `json:"has_uploaded_today"`
	SessionCompleteToday bool         `json:"session_complete_today"`
}

type TimerState struct {
	UserID          string    `json:"uid"`
	DurationMinutes int       `json:"duration_minutes"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
}

type TimerSnapshot struct {
	TimerState
	Remaining time.Duration `json:"remaining"`
	IsExpired bool          `json:"is_expired"`
}

// CompletionReason tells what closed a day's session.
type CompletionReason string

const (
	CompletionUpload CompletionReason = "upload"
	CompletionManual CompletionReason = "manual"
	CompletionTimer  CompletionReason = "timer"
	CompletionEarly  CompletionReason = "early"
)

type NotificationType string

const (
	NotificationTimerFinished  NotificationType = "timer_finished"
	NotificationTimerCancelled NotificationType = "timer_cancelled"
	NotificationUploadRecorded NotificationType = "upload_recorded"
)

type Notification struct {
	Type    NotificationType `json:"type"`
	Message string           `json:"message"`
	Payload any              `json:"payload,omitempty"`
}
