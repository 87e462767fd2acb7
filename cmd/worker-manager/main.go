// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"esg-workers/internal/common/camunda"
	"esg-workers/internal/common/config"
	"esg-workers/internal/common/database"
	"esg-workers/internal/common/logger"
	"esg-workers/internal/common/observability"

	// Assessment Workers (5)
	ccf "esg-workers/internal/workers/assessment/calculate-carbon-footprint"
	ces "esg-workers/internal/workers/assessment/calculate-esg-score"
	cfc "esg-workers/internal/workers/assessment/check-framework-compliance"
	ga "esg-workers/internal/workers/assessment/generate-assessment"
	ved "esg-workers/internal/workers/assessment/validate-esg-data"

	// Reporting Workers (1)
	srn "esg-workers/internal/workers/reporting/send-report-notification"
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
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	tracing := observability.NewTracing("worker-manager", cfg.Tracing.JaegerEndpoint)
	defer tracing.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var zeebeClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      10 * time.Second,
			RequestTimeout:         time.Duration(cfg.Camunda.RequestTimeout) * time.Millisecond,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Init Redis with retry ---
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redisClient.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redisClient.Close()
	zapLog.Info("Redis connected successfully")

	// --- Register Workers ---

	// --- 1. Assessment Engine Workers (5) ---
	if cfg.Workers[ved.TaskType].Enabled {
		handler := ved.NewHandler(
			&ved.Config{
				EstablishedYearCutoff: cfg.Assessment.EstablishedYearCutoff,
				Timeout:               time.Duration(cfg.Workers[ved.TaskType].Timeout) * time.Millisecond,
			},
			log,
		)
		startWorker(zeebeClient, ved.TaskType, cfg.Workers[ved.TaskType], handler.Handle, obs, tracing, zapLog)
	}

	if cfg.Workers[ces.TaskType].Enabled {
		handler, err := ces.NewHandler(
			&ces.Config{
				Timeout: time.Duration(cfg.Workers[ces.TaskType].Timeout) * time.Millisecond,
			},
			log,
		)
		if err != nil {
			zapLog.Fatal("failed to create calculate-esg-score handler", zap.Error(err))
		}
		startWorker(zeebeClient, ces.TaskType, cfg.Workers[ces.TaskType], handler.Handle, obs, tracing, zapLog)
	}

	if cfg.Workers[ccf.TaskType].Enabled {
		handler, err := ccf.NewHandler(
			&ccf.Config{
				FactorOverrides: cfg.Assessment.EmissionFactorOverrides,
				Timeout:         time.Duration(cfg.Workers[ccf.TaskType].Timeout) * time.Millisecond,
			},
			log,
		)
		if err != nil {
			zapLog.Fatal("failed to create calculate-carbon-footprint handler", zap.Error(err))
		}
		startWorker(zeebeClient, ccf.TaskType, cfg.Workers[ccf.TaskType], handler.Handle, obs, tracing, zapLog)
	}

	if cfg.Workers[cfc.TaskType].Enabled {
		handler := cfc.NewHandler(
			&cfc.Config{
				Timeout: time.Duration(cfg.Workers[cfc.TaskType].Timeout) * time.Millisecond,
			},
			log,
		)
		startWorker(zeebeClient, cfc.TaskType, cfg.Workers[cfc.TaskType], handler.Handle, obs, tracing, zapLog)
	}

	if cfg.Workers[ga.TaskType].Enabled {
		handler, err := ga.NewHandler(
			&ga.Config{
				EstablishedYearCutoff: cfg.Assessment.EstablishedYearCutoff,
				FactorOverrides:       cfg.Assessment.EmissionFactorOverrides,
				ResultIndex:           cfg.Assessment.ResultIndex,
				CacheTTL:              time.Duration(cfg.Assessment.CacheTTL) * time.Second,
				Timeout:               time.Duration(cfg.Workers[ga.TaskType].Timeout) * time.Millisecond,
			},
			pg.DB, redisClient.Client, esClient.Client, log,
		)
		if err != nil {
			zapLog.Fatal("failed to create generate-assessment handler", zap.Error(err))
		}
		startWorker(zeebeClient, ga.TaskType, cfg.Workers[ga.TaskType], handler.Handle, obs, tracing, zapLog)
	}

	// --- 2. Reporting Workers (1) ---
	if cfg.Workers[srn.TaskType].Enabled {
		handler, err := srn.NewHandler(
			&srn.Config{
				EmailEnabled: cfg.Notifications.Email.Enabled,
				SNSEnabled:   cfg.Notifications.SNS.Enabled,
				FromEmail:    cfg.Notifications.Email.FromEmail,
				TopicARN:     cfg.Notifications.SNS.TopicARN,
				AWSRegion:    cfg.Notifications.AWS.Region,
				Timeout:      time.Duration(cfg.Workers[srn.TaskType].Timeout) * time.Millisecond,
			},
			log,
		)
		if err != nil {
			zapLog.Fatal("failed to create send-report-notification handler", zap.Error(err))
		}
		startWorker(zeebeClient, srn.TaskType, cfg.Workers[srn.TaskType], handler.Handle, obs, tracing, zapLog)
	}

	zapLog.Info("All workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := zeebeClient.HealthCheck(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "not ready",
					"error":  err.Error(),
				})
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")

	for _, w := range runningWorkers {
		w.Stop()
	}
	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

var runningWorkers []*camunda.Worker

func startWorker(client *camunda.Client, taskType string, wcfg config.WorkerConfig, handler camunda.JobHandler, obs *observability.Observability, tracing *observability.Tracing, log *zap.Logger) {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return
	}

	instrumented := func(jobClient worker.JobClient, job entities.Job) {
		ctx, span := tracing.StartJobSpan(context.Background(), taskType, job.Key)
		defer span.End()

		start := time.Now()
		handler(jobClient, job)
		obs.RecordJobDuration(ctx, time.Since(start), taskType)
		obs.RecordJobProcessed(ctx, taskType)
	}

	w := client.NewWorker(taskType, instrumented, camunda.WorkerOptions{
		MaxJobsActive: wcfg.MaxJobsActive,
		Timeout:       time.Duration(wcfg.Timeout) * time.Millisecond,
	}, log)
	runningWorkers = append(runningWorkers, w)
}
