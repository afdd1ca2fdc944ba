package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sumaiyashah27/caseflow-ai/internal/config"
	"github.com/sumaiyashah27/caseflow-ai/internal/core/ports"
	"github.com/sumaiyashah27/caseflow-ai/internal/core/usecase"
	"github.com/sumaiyashah27/caseflow-ai/internal/infrastructure/classifier/offline"
	openaiclassifier "github.com/sumaiyashah27/caseflow-ai/internal/infrastructure/classifier/openai"
	"github.com/sumaiyashah27/caseflow-ai/internal/infrastructure/queue/nats"
	"github.com/sumaiyashah27/caseflow-ai/internal/infrastructure/repository/postgres"
	"github.com/sumaiyashah27/caseflow-ai/internal/infrastructure/resilience"
	"github.com/sumaiyashah27/caseflow-ai/internal/infrastructure/search/elastic"
)

type App struct {
	Config config.Config

	Queue ports.ReindexQueue

	IngestUC  ports.DocumentIngestor
	ListUC    ports.DocumentReader
	SearchUC  ports.DocumentSearcher
	AnalyzeUC ports.ContentAnalyzer
	AuthUC    ports.Authenticator
	CaseUC    ports.CaseService
	ReindexUC ports.DocumentReindexer

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	if cfg.JWTSecret == config.InsecureDefaultJWTSecret {
		slog.Warn("jwt_secret_default_in_use", "hint", "set JWT_SECRET before exposing the api")
	}

	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	if err := postgres.SeedIfEmpty(ctx, db, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed database: %w", err)
	}

	docRepo := postgres.NewDocumentRepository(db)
	caseRepo := postgres.NewCaseRepository(db)
	userRepo := postgres.NewUserRepository(db)

	mirror := elastic.New(cfg.ElasticsearchURL, cfg.ElasticsearchIndex)
	if err := mirror.EnsureIndex(ctx); err != nil {
		// The mirror is a secondary store. Search degrades until it is back.
		slog.Warn("mirror_index_unavailable", "error", err)
	}

	var classifier ports.ContentClassifier
	if cfg.OpenAIAPIKey != "" {
		executor := resilience.NewExecutor(resilience.DefaultConfig())
		classifier = openaiclassifier.NewClassifier(cfg.OpenAIAPIKey, cfg.OpenAIModel, executor)
		slog.Info("classifier_selected", "variant", "hosted", "model", cfg.OpenAIModel)
	} else {
		classifier = offline.New()
		slog.Info("classifier_selected", "variant", "offline")
	}

	var queue ports.ReindexQueue
	natsQueue, err := nats.New(cfg.NATSURL, cfg.NATSSubject)
	if err != nil {
		slog.Warn("reindex_queue_unavailable", "error", err)
	} else {
		queue = natsQueue
	}

	classifierTimeout := time.Duration(cfg.ClassifierTimeoutSeconds) * time.Second
	mirrorTimeout := time.Duration(cfg.MirrorTimeoutSeconds) * time.Second

	ingestUC := usecase.NewIngestDocumentUseCase(docRepo, classifier, mirror, queue, classifierTimeout, mirrorTimeout)
	listUC := usecase.NewListDocumentsUseCase(docRepo)
	searchUC := usecase.NewSearchUseCase(mirror)
	analyzeUC := usecase.NewAnalyzeUseCase(classifier, classifierTimeout)
	authUC := usecase.NewAuthUseCase(userRepo, cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	caseUC := usecase.NewCaseUseCase(caseRepo)
	reindexUC := usecase.NewReindexUseCase(docRepo, mirror, mirrorTimeout)

	return &App{
		Config: cfg,
		Queue:  queue,

		IngestUC:  ingestUC,
		ListUC:    listUC,
		SearchUC:  searchUC,
		AnalyzeUC: analyzeUC,
		AuthUC:    authUC,
		CaseUC:    caseUC,
		ReindexUC: reindexUC,

		closeFn: func() {
			if natsQueue != nil {
				natsQueue.Close()
			}
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
