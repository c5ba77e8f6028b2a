package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/sketchstreak/internal/error_values"
	"github.com/limbo/sketchstreak/pkg/httputil"
)

type ctxKey string

var (
	requestIDKContextKey  ctxKey = "Request-ID"
	loggerContextKey      ctxKey = "Logger"
	uidContextKey         ctxKey = "User-ID"
	displayNameContextKey ctxKey = "Display-Name"
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", reqID)
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDKContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		userID, ok := r.Context().Value(uidContextKey).(string)
		if ok && userID != "" {
			logger = logger.With(slog.String("uid", userID))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		// Getting token from header
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("auth failed: invalid token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		claims, err := s.authorize(tokenString)
		if err != nil {
			logger.Error("auth failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		r = r.WithContext(WithUser(r.Context(), claims.UserID, claims.DisplayName))
		next.ServeHTTP(w, r)
	})
}

// authorize parses the token and checks it is alive.
func (s *Server) authorize(tokenString string) (*JWTClaims, error) {
	claims, err := s.jwtService.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	// Assuring if token is alive
	now := time.Now()
	if (claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(now)) ||
		(claims.NotBefore != nil && claims.NotBefore.Time.After(now)) {
		return nil, errors.New("token expired or not ready")
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return nil, errors.New("empty uid in token claims")
	}
	return claims, nil
}

// WithUser stores the authenticated user in ctx.
func WithUser(ctx context.Context, userID, displayName string) context.Context {
	ctx = context.WithValue(ctx, uidContextKey, userID)
	return context.WithValue(ctx, displayNameContextKey, displayName)
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func GetUIDFromContext(r *http.Request) (string, error) {
	uid, ok := r.Context().Value(uidContextKey).(string)
	if !ok || uid == "" {
		return "", errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}

func getDisplayNameFromContext(r *http.Request) string {
	name, _ := r.Context().Value(displayNameContextKey).(string)
	return name
}
