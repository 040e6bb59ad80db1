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
	"github.com/redis/go-redis/v9"

	"github.com/registrydesk/object-service/internal/api"
	"github.com/registrydesk/object-service/internal/core/ports"
	"github.com/registrydesk/object-service/internal/core/service"
	"github.com/registrydesk/object-service/internal/infrastructure/config"
	"github.com/registrydesk/object-service/internal/infrastructure/db/postgres"
	redisdb "github.com/registrydesk/object-service/internal/infrastructure/db/redis"
	"github.com/registrydesk/object-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "object-service",
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Postgres ---
	db, err := postgres.Connect(ctx, postgres.Config{
		URL:             cfg.Postgres.URL,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer db.Close()

	if err := postgres.RunMigrations(cfg.Postgres.URL); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}
	if err := postgres.Seed(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	// --- Redis (advisory: the service runs without it) ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, stats cache disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(postgres.NewUserRepository(db), tokenService, cfg.TokenTTL, log)
	objectService := service.NewObjectService(postgres.NewObjectRepository(db), log)
	taskService := service.NewTaskService(postgres.NewTaskRepository(db), log)
	employeeService := service.NewEmployeeService(postgres.NewEmployeeRepository(db), log)

	statsService := service.NewStatsService(postgres.NewStatsRepository(db), statsCache(rdb), log)

	e := api.NewRouter(api.Dependencies{
		Auth:      authService,
		Verifier:  tokenService,
		Objects:   objectService,
		Tasks:     taskService,
		Employees: employeeService,
		Stats:     statsService,
		DB:        db,
		Redis:     rdb,
		Logger:    log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

// statsCache keeps a nil client from becoming a non-nil interface holding a
// nil pointer.
func statsCache(rdb *redis.Client) ports.StatsCache {
	if rdb == nil {
		return nil
	}
	return redisdb.NewStatsCache(rdb)
}
