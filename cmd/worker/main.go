package main

import (
	"context"
	"log"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/RISHABH72git/SkillBridge/internal/config"
	"github.com/RISHABH72git/SkillBridge/internal/events"
	"github.com/RISHABH72git/SkillBridge/internal/inference"
	"github.com/RISHABH72git/SkillBridge/internal/ingest"
	"github.com/RISHABH72git/SkillBridge/internal/observability"
	"github.com/RISHABH72git/SkillBridge/internal/persistence"
	"github.com/RISHABH72git/SkillBridge/internal/repository"
	"github.com/RISHABH72git/SkillBridge/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	resumeStore, err := storage.NewResumeStore(cfg.Upload.Dir)
	if err != nil {
		logger.Fatal("failed to init resume store", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()
	events.NewAuditLogger(logger).RegisterHandlers(dispatcher)

	handler := ingest.NewHandler(
		resumeStore,
		ingest.NewPDFExtractor(),
		inference.NewClient(cfg.Inference),
		repository.NewUserRepository(pg.PoolHandle()),
		dispatcher,
		logger,
	)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.Handle(ingest.TypeResumeIngest, handler)

	logger.Info("ingestion worker starting")
	if err := srv.Run(mux); err != nil {
		logger.Fatal("asynq server", zap.Error(err))
	}
}
