// @title Peachie Glow API
// @description Habit ledger, glow score and achievements for the Peachie Glow skincare app
// @BasePath /api/v1
// @schemes http
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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	_ "github.com/peachieglow/glow/docs"
	"github.com/peachieglow/glow/internal/api"
	"github.com/peachieglow/glow/internal/metrics"
	"github.com/peachieglow/glow/internal/progression"
	"github.com/peachieglow/glow/internal/repository"
	"github.com/peachieglow/glow/internal/service"
	"github.com/peachieglow/glow/pkg/cleanup"
	"github.com/peachieglow/glow/pkg/config"
	"github.com/peachieglow/glow/pkg/keylock"
)

func init() {
	service.InitValidator()
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}

// unlockIndexHolder is implemented by both backends.
type unlockIndexHolder interface {
	repository.Storage
	SetUnlockIndex(idx repository.UnlockIndexI)
}

func setupStorage(cfg *config.Config) unlockIndexHolder {
	switch backend := strings.ToLower(cfg.GetStringOr("STORAGE_BACKEND", "memory")); backend {
	case "postgres":
		dbCfg := repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		}
		if cfg.GetBool("RUN_MIGRATIONS", true) {
			if err := repository.RunMigrations(dbCfg.MigrationURL()); err != nil {
				log.Fatal(err)
			}
			slog.Info("migrations applied")
		}
		return repository.NewPostgresStorage(&dbCfg)
	case "memory":
		storage := repository.NewMemoryStorage()
		if cfg.GetBool("SEED_DEMO_USER", true) {
			storage.SeedDemoUser(time.Now().UTC())
			slog.Info("demo user seeded", slog.String("uid", "user-1"))
		}
		return storage
	default:
		log.Fatal("unknown STORAGE_BACKEND: " + backend)
		return nil
	}
}

func setupRedisIndex(cfg *config.Config, storage unlockIndexHolder) {
	addr := cfg.GetString("REDIS_ADDRESS")
	if addr == "" {
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.GetString("REDIS_PASSWORD"),
		DB:       cfg.GetInt("REDIS_DB", 0),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("pinging redis error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	storage.SetUnlockIndex(repository.NewRedisUnlockIndex(client))
	slog.Info("unlock index backed by redis", slog.String("addr", addr))
}

func main() {
	cfg := config.New()
	setupLogger(cfg.GetStringOr("LOG_LEVEL", "info"))
	defer cleanup.CleanUp()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	backend := setupStorage(cfg)
	setupRedisIndex(cfg, backend)
	policy := repository.DefaultRetryPolicy()
	policy.InitialInterval = cfg.GetDuration("STORE_RETRY_INITIAL", policy.InitialInterval)
	policy.MaxElapsedTime = cfg.GetDuration("STORE_RETRY_MAX_ELAPSED", policy.MaxElapsedTime)
	policy.DegradedCooldown = cfg.GetDuration("STORE_DEGRADED_COOLDOWN", policy.DegradedCooldown)
	storage := repository.NewResilientStorage(backend, policy, collector)

	catalog := progression.NewCatalog(progression.DefaultAchievements())
	locks := keylock.New()
	opts := []service.Option{service.WithMetrics(collector)}
	achievementsService := service.NewAchievementsService(storage, catalog, locks, opts...)
	habitsService := service.NewHabitsService(storage, achievementsService, locks, opts...)
	userService := service.NewUserService(storage, catalog, locks, opts...)

	limiterCfg := api.DefaultRateLimiterConfig()
	limiterCfg.Rate = rate.Limit(cfg.GetFloat("RATE_LIMIT_RPS", float64(limiterCfg.Rate)))
	limiterCfg.Burst = cfg.GetInt("RATE_LIMIT_BURST", limiterCfg.Burst)
	limiter := api.NewRateLimiter(limiterCfg, collector)

	serv := api.New(&api.ServicesList{
		HabitsService:       habitsService,
		AchievementsService: achievementsService,
		UserService:         userService,
		Health:              storage,
		Metrics:             collector,
		MetricsHandler:      metrics.Handler(registry),
		RateLimiter:         limiter,
		RequestTimeout:      cfg.GetDuration("REQUEST_TIMEOUT", 10*time.Second),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return serv.Run(gctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	})
	// Storage and client teardown stays in cleanup, after the server drained.
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutdown requested, stopping rate limiter sweep")
		limiter.Stop()
		return nil
	})
	if err := g.Wait(); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}
