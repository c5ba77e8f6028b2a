package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/sketchstreak/internal/service"
)

type Server struct {
	mx             *chi.Mux
	srv            *http.Server
	sessionService service.SessionServiceI
	jwtService     JWTServiceI
	hub            HubI
}

type ServicesList struct {
	SessionService service.SessionServiceI
	JwtService     JWTServiceI
	Hub            HubI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		sessionService: servicesOptions.SessionService,
		jwtService:     servicesOptions.JwtService,
		hub:            servicesOptions.Hub,
	}
	s.srv = &http.Server{
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/health", s.Health)
	s.mx.Route("/api/v1", func(r chi.Router) {
		// Browsers can't set headers on websocket handshakes, token goes in query
		r.Get("/ws", s.Subscribe)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Post("/timer", s.StartTimer)
			r.Get("/timer", s.GetTimer)
			r.Delete("/timer", s.CancelTimer)
			r.Post("/uploads", s.RecordUpload)
			r.Post("/sessions/done", s.MarkDone)
			r.Get("/stats", s.GetStats)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run blocks until the server is shut down.
func (s *Server) Run(addr string) error {
	s.srv.Addr = addr
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
