package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/solagora/agentmarket/internal/api"
	"github.com/solagora/agentmarket/internal/config"
	"github.com/solagora/agentmarket/internal/domain"
	"github.com/solagora/agentmarket/internal/store"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	if err := config.Load(); err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx := context.Background()

	agents, cleanup, err := openStore(ctx, logger)
	if err != nil {
		logger.Fatal("failed to open agent store", zap.Error(err))
	}
	defer cleanup()

	if redisURL := config.RedisURL(); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			logger.Fatal("invalid REDIS_URL", zap.Error(err))
		}
		rdb := redis.NewClient(opts)
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		agents = store.NewCachedAgentStore(agents, rdb)
		logger.Info("directory page cache enabled")
	}

	app := api.NewApp(agents, logger)

	addr := config.ServerAddr()
	srv := &http.Server{
		Addr:    addr,
		Handler: app.Router,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}

// openStore picks the store backend from config: postgres when a
// DATABASE_URL is configured, sqlite for single-binary deployments.
func openStore(ctx context.Context, logger *zap.Logger) (domain.AgentStore, func(), error) {
	switch driver := config.StoreDriver(); driver {
	case "postgres":
		pool, err := pgxpool.New(ctx, config.DatabaseURL())
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		agents := store.NewAgentStore(pool)
		if err := agents.InitSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("connected to postgres")
		return agents, pool.Close, nil

	case "sqlite":
		agents, err := store.NewSQLiteAgentStore(ctx, config.SQLitePath())
		if err != nil {
			return nil, nil, err
		}
		logger.Info("opened sqlite store", zap.String("path", config.SQLitePath()))
		return agents, func() { _ = agents.Close() }, nil

	default:
		logger.Fatal("unknown STORE_DRIVER", zap.String("driver", driver))
		return nil, nil, nil
	}
}
