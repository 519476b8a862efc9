package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	httptransport "github.com/RISHABH72git/SkillBridge/internal/api/http"
	"github.com/RISHABH72git/SkillBridge/internal/api/http/handlers"
	"github.com/RISHABH72git/SkillBridge/internal/auth"
	"github.com/RISHABH72git/SkillBridge/internal/config"
	"github.com/RISHABH72git/SkillBridge/internal/events"
	"github.com/RISHABH72git/SkillBridge/internal/ingest"
	"github.com/RISHABH72git/SkillBridge/internal/observability"
	"github.com/RISHABH72git/SkillBridge/internal/persistence"
	"github.com/RISHABH72git/SkillBridge/internal/repository"
	"github.com/RISHABH72git/SkillBridge/internal/service"
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

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	resumeStore, err := storage.NewResumeStore(cfg.Upload.Dir)
	if err != nil {
		logger.Fatal("failed to init resume store", zap.Error(err))
	}

	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer queueClient.Close()

	dispatcher := events.NewInMemoryDispatcher()
	events.NewAuditLogger(logger).RegisterHandlers(dispatcher)

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	applicationRepo := repository.NewApplicationRepository(pool)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	jobService := service.NewJobService(service.JobDependencies{
		JobRepo:         jobRepo,
		ApplicationRepo: applicationRepo,
		Dispatcher:      dispatcher,
	})
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Jobs:           handlers.NewJobsHandler(jobService),
		Uploads:        handlers.NewUploadsHandler(resumeStore, ingest.NewEnqueuer(queueClient)),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
