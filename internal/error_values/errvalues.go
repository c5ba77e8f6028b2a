package errorvalues

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrNoUploadYet    = errors.New("no upload for today yet")
	ErrTimerNotFound  = errors.New("no active timer")
	ErrRegistryClosed = errors.New("timer registry is closed")
	ErrUploadExists   = errors.New("upload with such id already exists")
	ErrNoSubscribers  = errors.New("user has no live subscriptions")
	ErrInvalidToken   = errors.New("invalid token")
)
