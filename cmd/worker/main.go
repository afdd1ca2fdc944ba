package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sumaiyashah27/caseflow-ai/internal/bootstrap"
	"github.com/sumaiyashah27/caseflow-ai/internal/config"
	"github.com/sumaiyashah27/caseflow-ai/internal/observability/logging"
	"github.com/sumaiyashah27/caseflow-ai/internal/observability/metrics"
)

func main() {
	cfg := config.Load()
	logger := logging.NewJSONLogger("caseflow-worker", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		logger.Error("bootstrap_failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	if app.Queue == nil {
		logger.Error("reindex_queue_required", "url", cfg.NATSURL)
		os.Exit(1)
	}

	workerMetrics := metrics.NewWorkerMetrics("caseflow-worker")
	metricsServer := &http.Server{
		Addr:    ":" + cfg.WorkerMetricsPort,
		Handler: workerMetrics.Handler(),
	}
	go func() {
		logger.Info("worker_metrics_listening", "port", cfg.WorkerMetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("worker_metrics_server_failed", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	logger.Info("worker_subscribed", "subject", cfg.NATSSubject)
	err = app.Queue.SubscribeReindex(ctx, func(handlerCtx context.Context, documentID int64) error {
		workerMetrics.ReplayStarted()
		defer workerMetrics.ReplayFinished()

		start := time.Now()
		replayCtx, cancel := context.WithTimeout(handlerCtx, 30*time.Second)
		defer cancel()

		replayErr := app.ReindexUC.ReindexByID(replayCtx, documentID)
		status := "ok"
		if replayErr != nil {
			status = "error"
			logger.Error("reindex_replay_failed", "document_id", documentID, "error", replayErr)
		} else {
			logger.Info("reindex_replay_done", "document_id", documentID)
		}
		workerMetrics.ObserveReplay("caseflow-worker", status, time.Since(start))
		return replayErr
	})
	if err != nil {
		logger.Error("worker_subscribe_failed", "error", err)
		os.Exit(1)
	}
}
