package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/OscarMG4/space-booking-app/internal/api"
	"github.com/OscarMG4/space-booking-app/internal/api/handler"
	"github.com/OscarMG4/space-booking-app/internal/api/metrics"
	"github.com/OscarMG4/space-booking-app/internal/backend"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
	"github.com/OscarMG4/space-booking-app/internal/core/service"
	"github.com/OscarMG4/space-booking-app/internal/infrastructure/config"
	"github.com/OscarMG4/space-booking-app/internal/infrastructure/db/memory"
	"github.com/OscarMG4/space-booking-app/internal/infrastructure/db/redis"
	"github.com/OscarMG4/space-booking-app/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Session stores: Redis when configured, in-memory otherwise.
	var (
		tokens     ports.TokenStore
		identities ports.IdentityStore
		rdb        *goredis.Client
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		tokens = redis.NewTokenStore(rdb, cfg.Session.TTL)
		identities = redis.NewIdentityStore(rdb, cfg.Session.TTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("sessions stored in redis")
	} else {
		tokens = memory.NewTokenStore()
		identities = memory.NewIdentityStore()
		log.Warn().Msg("REDIS_ADDR not set, sessions stored in memory")
	}

	// The backend transport invalidates sessions on credential rejection.
	// The session service is built after the client, so the callback is
	// bound late.
	var sessions *service.SessionService
	invalidate := func(ctx context.Context, sid, reason string) {
		metrics.SessionInvalidationsTotal.WithLabelValues(reason).Inc()
		if sessions != nil {
			sessions.Invalidate(ctx, sid, reason)
		}
	}

	client := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, invalidate, log)
	authAPI := backend.NewAuthAPI(client)
	bookingAPI := backend.NewBookingAPI(client)
	spaceAPI := backend.NewSpaceAPI(client)
	reviewAPI := backend.NewReviewAPI(client)
	userAPI := backend.NewUserAPI(client)

	sessions = service.NewSessionService(authAPI, tokens, identities, log)
	bookings := service.NewBookingService(bookingAPI, log)
	spaces := service.NewSpaceService(spaceAPI, log)
	reviews := service.NewReviewService(reviewAPI, bookingAPI, log)
	users := service.NewUserService(userAPI, log)

	e := api.NewRouter(api.Deps{
		Sessions: sessions,
		Bookings: bookings,
		Spaces:   spaces,
		Reviews:  reviews,
		Users:    users,
		Cookie: handler.CookieOptions{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
			TTL:    cfg.Session.TTL,
		},
		Redis:  rdb,
		Logger: log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.BaseURL).Msg("gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
