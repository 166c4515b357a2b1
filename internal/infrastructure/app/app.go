package app

import (
	"errors"
	"fmt"
	"net/http"

	"tasklist/internal/adapters/input/rest"
	"tasklist/internal/adapters/output/memory"
	"tasklist/internal/adapters/output/postgres"
	"tasklist/internal/audit"
	"tasklist/internal/auth"
	"tasklist/internal/cache"
	"tasklist/internal/config"
	"tasklist/internal/core/ports"
	"tasklist/internal/core/service"
	dbinfra "tasklist/internal/infrastructure/db"
	"tasklist/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config     *config.Config
	Log        *zap.Logger
	HTTPServer *http.Server
	close      func()
}

func Init() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config load error: %w", err)
	}

	log, err := logger.Init(cfg.Logger.Env)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	if cfg.Logger.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	taskRepo, userRepo, auditRepo, closeStore, err := initStorage(cfg, log)
	if err != nil {
		log.Error("failed to init storage", zap.Error(err))
		_ = log.Sync()
		return nil, err
	}

	snapshots := cache.New(cfg.Cache.TTL)
	auditSink := audit.NewSink(auditRepo, log)

	tokens, err := auth.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
	if err != nil {
		log.Error("failed to init token manager", zap.Error(err))
		closeStore()
		_ = log.Sync()
		return nil, err
	}

	taskService, err := service.NewTaskService(taskRepo, snapshots, auditSink, auditRepo, log)
	if err != nil {
		log.Error("failed to init task service", zap.Error(err))
		closeStore()
		_ = log.Sync()
		return nil, err
	}

	authService, err := service.NewAuthService(userRepo, tokens, log)
	if err != nil {
		log.Error("failed to init auth service", zap.Error(err))
		closeStore()
		_ = log.Sync()
		return nil, err
	}

	server := rest.NewServer(taskService, authService, tokens, log)

	return &App{
		Config: cfg,
		Log:    log,
		HTTPServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
			Handler: server.Handler(),
		},
		close: func() {
			closeStore()
			_ = log.Sync()
		},
	}, nil
}

func initStorage(cfg *config.Config, log *zap.Logger) (
	ports.TaskRepository,
	ports.UserRepository,
	ports.AuditRepository,
	func(),
	error,
) {
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := dbinfra.ConnectToDB(cfg.GetDSN(), log)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		return postgres.NewTaskRepository(pool, log),
			postgres.NewUserRepository(pool, log),
			postgres.NewAuditRepository(pool, log),
			pool.Close,
			nil
	case "memory":
		log.Warn("storage driver is memory, data will not survive restarts")
		return memory.NewTaskRepository(),
			memory.NewUserRepository(),
			memory.NewAuditRepository(),
			func() {},
			nil
	default:
		return nil, nil, nil, nil, errors.New("unknown storage driver: " + cfg.Storage.Driver)
	}
}

func (a *App) Close() {
	if a == nil || a.close == nil {
		return
	}
	a.close()
}
