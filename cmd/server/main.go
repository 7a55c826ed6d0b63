package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"

	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/aggregate"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/alert"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/config"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/logging"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/sentiment"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/server"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/source"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/stream"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// setupRedis connects when REDIS_URL is set. Without it, alert history runs
// in memory.
func setupRedis(ctx context.Context, cfg *config.Config) *goredis.Client {
	if cfg.RedisURL == "" {
		return nil
	}

	opts, err := goredis.ParseURL(cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to parse Redis URL", "error", err)
		os.Exit(1)
	}

	client := goredis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
}

func setupAlertStore(redisClient *goredis.Client) alert.Store {
	if redisClient != nil {
		slog.Info("Alert history backed by Redis")
		return alert.NewRedisStore(redisClient)
	}
	slog.Info("Alert history kept in memory")
	return alert.NewMemoryStore()
}

func runGracefulShutdown(srv *server.Server, coordinator *stream.Coordinator, redisClient *goredis.Client) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		coordinator.Stop()

		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close Redis client", "error", err)
			}
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	redisClient := setupRedis(context.Background(), cfg)

	classifier := sentiment.NewClassifier(
		sentiment.NewLexiconScorer(),
		sentiment.StrategyByName(cfg.EmotionMode),
	)
	simulator := source.NewSimulator(clock, 0)
	postSource := source.NewBreaker(simulator)

	aggregator := aggregate.New(clock, cfg.EmotionMode)
	alerts := alert.NewEngine(setupAlertStore(redisClient), clock, cfg.SpikeThreshold, cfg.SuddenChangeDelta)

	coordinator := stream.NewCoordinator(stream.Pipeline{
		Source:     postSource,
		Crisis:     simulator,
		Classifier: classifier,
		Aggregator: aggregator,
		Alerts:     alerts,
	}, clock)

	srv := server.NewServer(cfg, server.Deps{
		Classifier:  classifier,
		Source:      postSource,
		Aggregator:  aggregator,
		Alerts:      alerts,
		Coordinator: coordinator,
		RedisClient: redisClient,
		Clock:       clock,
	})

	done := runGracefulShutdown(srv, coordinator, redisClient)

	slog.Info("Server starting", "port", cfg.Port, "default_keyword", cfg.StreamKeyword)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.WithError(err).Error("Server error")
		os.Exit(1)
	}

	<-done
}
