// cmd/worker-manager/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"idea-match-workers/internal/common/aws"
	"idea-match-workers/internal/common/camunda"
	"idea-match-workers/internal/common/config"
	"idea-match-workers/internal/common/database"
	"idea-match-workers/internal/common/logger"
	"idea-match-workers/internal/common/observability"
	"idea-match-workers/internal/common/profiles"
	"idea-match-workers/internal/matching"
	setdecisionmode "idea-match-workers/internal/workers/decision/set-decision-mode"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "console").Fatal("config load failed", zap.Error(err))
	}

	zapLog, err := logger.NewFromConfig(cfg.Logging)
	if err != nil {
		logger.New("info", "console").Fatal("logger init failed", zap.Error(err))
	}
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting worker manager",
		zap.String("app", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	obs, err := observability.New(cfg.App.Name)
	if err != nil {
		zapLog.Fatal("observability init failed", zap.Error(err))
	}

	ctx := context.Background()

	// --- Zeebe ---
	var zeebe *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebe, err = camunda.NewClientWithConfig(camunda.ConfigFrom(cfg.Camunda))
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	logTopology(ctx, zeebe, zapLog)

	// --- PostgreSQL ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		if pg, err = database.NewPostgres(cfg.Database.Postgres); err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()

	applied, err := pg.Migrate(ctx)
	if err != nil {
		zapLog.Fatal("postgres migration failed", zap.Error(err))
	}
	if len(applied) > 0 {
		zapLog.Info("applied migrations", zap.Strings("files", applied))
	}

	// --- Elasticsearch ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		if esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch); err != nil {
			return err
		}
		return esClient.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	if err := esClient.EnsureIndex(ctx, cfg.Search.SavedIdeasIndex, database.SavedIdeasMapping); err != nil {
		zapLog.Fatal("saved ideas index setup failed", zap.Error(err))
	}

	// --- Redis ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		if redis, err = database.NewRedis(cfg.Database.Redis); err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()

	// --- Decision events ---
	var publisher setdecisionmode.DecisionPublisher
	if cfg.Events.Enabled {
		snsClient, err := aws.NewSNSClient(ctx, cfg.Events.Region)
		if err != nil {
			zapLog.Fatal("sns client init failed", zap.Error(err))
		}
		publisher = aws.NewEventPublisher(snsClient, cfg.Events.DecisionTopicARN)
	} else {
		zapLog.Info("decision events disabled")
	}

	deps := &dependencies{
		cfg:       cfg,
		db:        pg.DB,
		es:        esClient,
		profiles:  profiles.NewRepository(pg.DB, redis.Client, cfg.Cache, log),
		matcher:   matching.DefaultMatcher(),
		publisher: publisher,
		log:       log,
	}

	var workers []*camunda.CamundaWorker
	for _, reg := range registrations(deps) {
		if !config.IsWorkerEnabled(cfg, reg.taskType) {
			zapLog.Info("worker disabled", zap.String("taskType", reg.taskType))
			continue
		}
		workers = append(workers, camunda.NewWorker(
			zeebe.GetClient(),
			reg.taskType,
			config.GetWorkerConfig(cfg, reg.taskType),
			reg.handler,
			obs,
			zapLog,
		))
	}
	zapLog.Info("workers started", zap.Int("count", len(workers)))

	// --- Health / metrics ---
	server := &http.Server{
		Addr: cfg.Server.Address,
		Handler: newServeMux(map[string]readinessCheck{
			"zeebe":         zeebe.HealthCheck,
			"postgres":      pg.Ping,
			"redis":         redis.Ping,
			"elasticsearch": esClient.Ping,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		zapLog.Info("health/metrics server listening", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Error("health/metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("shutdown signal received, stopping workers")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Stop()
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("error stopping health server", zap.Error(err))
	}
	if err := obs.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("error flushing metrics", zap.Error(err))
	}
	if err := zeebe.Close(); err != nil {
		zapLog.Error("error closing Zeebe client", zap.Error(err))
	}
	log.Info("redis pool at shutdown", redis.PoolStats())

	zapLog.Info("worker manager stopped")
}

func logTopology(ctx context.Context, zeebe *camunda.Client, log *zap.Logger) {
	topology, err := zeebe.Topology(ctx)
	if err != nil {
		log.Warn("topology request failed", zap.Error(err))
		return
	}
	log.Info("connected to zeebe",
		zap.Int("brokers", topology.Brokers),
		zap.Int("partitions", topology.Partitions),
		zap.String("gatewayVersion", topology.GatewayVersion),
	)
}
