package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PavaniTiago/advisor-api/internal/application/usecases"
	"github.com/PavaniTiago/advisor-api/internal/config"
	"github.com/PavaniTiago/advisor-api/internal/domain/advisory"
	"github.com/PavaniTiago/advisor-api/internal/domain/repositories"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/analytics"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/cache"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/database"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/memory"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/seed"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/session"
	"github.com/PavaniTiago/advisor-api/internal/interfaces/http/middleware"
	"github.com/PavaniTiago/advisor-api/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := repositories.Clock(time.Now)
	repos, err := setupRepositories(cfg, clock, log)
	if err != nil {
		log.Fatal("error setting up repositories", "error", err)
	}

	var (
		sessions session.Store
		sink     analytics.Sink
		feed     analytics.Feed
	)
	if cfg.UsesRedis() {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("redis unreachable", "addr", cfg.RedisAddr, "error", err)
		}
		sessions = session.NewRedisStore(rdb, cfg.SessionTTL)
		stream := analytics.NewRedisStream(rdb, cfg.AnalyticsStream, 0)
		sink, feed = stream, stream
		log.Info("using redis for sessions and analytics", "addr", cfg.RedisAddr, "stream", cfg.AnalyticsStream)
	} else {
		sessions = session.NewMemoryStore(cfg.SessionTTL)
		queue := analytics.NewMemoryQueue(cfg.AnalyticsBuffer)
		sink, feed = queue, queue
	}

	useCases := usecases.New(usecases.Deps{
		Repos:         repos,
		Sessions:      sessions,
		Tracker:       analytics.NewTracker(sink, log.With("component", "analytics")),
		Feed:          feed,
		Conversations: cache.New[*advisory.Conversation](ctx, time.Minute),
		ChatTTL:       cfg.ChatTTL,
		Clock:         clock,
		InvestURL:     cfg.InvestURL,
	})

	// Configure Fiber for better performance
	app := fiber.New(fiber.Config{
		Concurrency: 256 * 1024,
		// Desabilitado modo Prefork pois causa instabilidade no container
		Prefork:      false,
		BodyLimit:    1 * 1024 * 1024,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	middleware.SetupMiddlewares(app, middleware.Config{AllowOrigins: cfg.CORSOrigins, Log: log})
	routes.SetupRoutes(app, useCases, log)

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("shutdown failed", "error", err)
		}
	}()

	log.Info("server is running", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}

// setupRepositories escolhe o banco (DATABASE_URL) ou o store em memória a partir do seed
func setupRepositories(cfg config.Config, clock repositories.Clock, log *logger.Logger) (repositories.Registry, error) {
	if cfg.UsesDatabase() {
		db, err := database.SetupDatabase(cfg)
		if err != nil {
			return repositories.Registry{}, err
		}
		log.Info("using database backend", "driver", cfg.DatabaseDriver)
		return repositories.NewRegistry(db, clock), nil
	}

	ds, err := seed.Load()
	if err != nil {
		return repositories.Registry{}, err
	}
	store := memory.New(ds,
		memory.WithLatency(memory.Latency{Read: cfg.StoreReadLatency, Write: cfg.StoreWriteLatency}),
		memory.WithClock(clock),
	)
	log.Info("using in-memory backend", "read_latency", cfg.StoreReadLatency, "write_latency", cfg.StoreWriteLatency)
	return store.Registry(), nil
}
