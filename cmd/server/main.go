package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/KwonOil/easyplanner/api/handler"
	"github.com/KwonOil/easyplanner/internal/config"
	"github.com/KwonOil/easyplanner/internal/infrastructure/monitor"
	"github.com/KwonOil/easyplanner/internal/infrastructure/outbox"
	pgInfra "github.com/KwonOil/easyplanner/internal/infrastructure/postgres"
	redisInfra "github.com/KwonOil/easyplanner/internal/infrastructure/redis"
	"github.com/KwonOil/easyplanner/internal/middleware"
	"github.com/KwonOil/easyplanner/internal/router"
	"github.com/KwonOil/easyplanner/internal/services"
	"github.com/KwonOil/easyplanner/internal/services/lifecycle"
	"github.com/KwonOil/easyplanner/pkg/httpcontext"
	"github.com/KwonOil/easyplanner/pkg/logger"
	"github.com/KwonOil/easyplanner/repository/postgres"
	redisRepo "github.com/KwonOil/easyplanner/repository/redis"
	authUC "github.com/KwonOil/easyplanner/usecase/auth"
	commentUC "github.com/KwonOil/easyplanner/usecase/comment"
	projectUC "github.com/KwonOil/easyplanner/usecase/project"
	taskUC "github.com/KwonOil/easyplanner/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	outboxStore, err := outbox.Open(cfg.Outbox.Path, "outbox")
	if err != nil {
		zapLogger.Fatal("failed to open outbox store", zap.Error(err))
	}
	manager.Register("outbox", func(ctx context.Context) error {
		return outboxStore.Close()
	})

	mon := monitor.New(pool, redisClient, outboxStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)
	sessionRepo := redisRepo.NewSessionRepository(redisClient, cfg.Session.TTL)

	notifier := services.NewNotifier(
		outboxStore,
		&services.LogDeliverer{Logger: zapLogger},
		zapLogger,
		services.NotifierConfig{
			Interval:   cfg.Outbox.SyncInterval,
			BatchSize:  50,
			MaxRetries: cfg.Outbox.MaxRetry,
		},
	)
	notifier.Start()
	manager.Register("notifier", func(ctx context.Context) error {
		notifier.Stop(ctx)
		return nil
	})

	authUseCase := authUC.New(userRepo, sessionRepo, cfg.Session.Secret, cfg.Session.TTL, zapLogger)
	projectUseCase := projectUC.New(projectRepo, taskRepo, userRepo, notifier, zapLogger)
	taskUseCase := taskUC.New(taskRepo, projectRepo, userRepo, zapLogger)
	commentUseCase := commentUC.New(commentRepo, taskRepo, projectRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:    apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Project: apiHandler.NewProjectHandler(projectUseCase, ctxAdapter, zapLogger),
		Task:    apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Comment: apiHandler.NewCommentHandler(commentUseCase, ctxAdapter, zapLogger),
		Health:  apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.SessionAuth(authUseCase, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
