package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/limbo/sketchstreak/internal/api"
	"github.com/limbo/sketchstreak/internal/notify"
	"github.com/limbo/sketchstreak/internal/repository"
	"github.com/limbo/sketchstreak/internal/repository/sqlitestore"
	"github.com/limbo/sketchstreak/internal/service"
	"github.com/limbo/sketchstreak/internal/timer"
	"github.com/limbo/sketchstreak/pkg/cleanup"
	"github.com/limbo/sketchstreak/pkg/config"
	"github.com/limbo/sketchstreak/pkg/dateutil"
	jwtservice "github.com/limbo/sketchstreak/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	setUpLogger(cfg.GetStringOr("LOG_LEVEL", "info"))

	loc, err := cfg.GetLocation("TIMEZONE")
	if err != nil {
		log.Fatal("loading timezone error: " + err.Error())
	}
	calendar := dateutil.NewCalendar(loc, time.Now)

	uploads, sessions := setUpStorage(cfg)

	timers := timer.NewRegistry(calendar.Now, slog.Default().With(slog.String("component", "timer")))
	cleanup.Register(&cleanup.Job{
		Name: "closing timer registry",
		F:    timers.Close,
	})
	hub := notify.NewHub(slog.Default().With(slog.String("component", "notify")))
	cleanup.Register(&cleanup.Job{
		Name: "closing notification hub",
		F:    hub.Close,
	})

	statsService := service.NewStatsService(uploads, sessions, calendar, cfg.GetInt("RECENT_HISTORY_DAYS", 30))
	sessionService := service.NewSessionService(service.SessionDeps{
		Uploads:         uploads,
		Sessions:        sessions,
		Stats:           statsService,
		Timers:          timers,
		Notifier:        hub,
		Calendar:        calendar,
		Logger:          slog.Default().With(slog.String("component", "session")),
		MaxTimerMinutes: cfg.GetInt("MAX_TIMER_MINUTES", 180),
	})
	serv := api.New(&api.ServicesList{
		SessionService: sessionService,
		JwtService:     jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", 24*time.Hour)),
		Hub:            hub,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		addr := cfg.GetStringOr("API_ADDRESS", ":8080")
		slog.Info("server started", slog.String("address", addr))
		errCh <- serv.Run(addr)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			slog.Error("server error", slog.String("error", err.Error()))
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetDuration("SHUTDOWN_TIMEOUT", 15*time.Second))
		if err = serv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", slog.String("error", err.Error()))
		}
		cancel()
	}
	cleanup.CleanUp()
}

func setUpLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}

func setUpStorage(cfg *config.Config) (repository.UploadsRepositoryI, repository.SessionsRepositoryI) {
	switch driver := cfg.GetStringOr("STORAGE_DRIVER", "postgres"); driver {
	case "sqlite":
		store, err := sqlitestore.Open(cfg.GetStringOr("SQLITE_PATH", "./sketchstreak.db"))
		if err != nil {
			log.Fatal("opening sqlite store error: " + err.Error())
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing sqlite store",
			F:    store.Close,
		})
		return store, store
	case "postgres":
		dbCfg := repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
			SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
		}
		if dir := cfg.GetString("MIGRATIONS_DIR"); dir != "" {
			if err := repository.Migrate(&dbCfg, dir); err != nil {
				log.Fatal(err)
			}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pool, err := repository.NewPool(ctx, &dbCfg)
		if err != nil {
			log.Fatal(err)
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing pgxpool",
			F: func() error {
				pool.Close()
				return nil
			},
		})
		return repository.NewUploadsRepo(pool), repository.NewSessionsRepo(pool)
	default:
		log.Fatal("unknown STORAGE_DRIVER: " + driver)
		return nil, nil
	}
}
