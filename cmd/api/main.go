package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/sumaiyashah27/caseflow-ai/internal/adapters/http"
	"github.com/sumaiyashah27/caseflow-ai/internal/bootstrap"
	"github.com/sumaiyashah27/caseflow-ai/internal/config"
	"github.com/sumaiyashah27/caseflow-ai/internal/observability/logging"
	"github.com/sumaiyashah27/caseflow-ai/internal/observability/metrics"
)

func main() {
	cfg := config.Load()
	logger := logging.NewJSONLogger("caseflow-api", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		logger.Error("bootstrap_failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	appMetrics := metrics.NewHTTPServerMetrics("caseflow-api")
	router := httpadapter.NewRouter(
		app.IngestUC,
		app.ListUC,
		app.SearchUC,
		app.AnalyzeUC,
		app.AuthUC,
		app.CaseUC,
		appMetrics,
		cfg,
	).Handler()

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("api_listening", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("api_server_failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("api_shutdown_failed", "error", err)
	}
}
