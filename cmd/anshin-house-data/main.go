package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"anshin-house-data/internal/config"
	"anshin-house-data/internal/database"
	"anshin-house-data/internal/export"
	httpapi "anshin-house-data/internal/http"
	"anshin-house-data/internal/importer"
	"anshin-house-data/internal/logging"
	"anshin-house-data/internal/repository"
	"anshin-house-data/internal/service"
	"anshin-house-data/internal/store"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, "anshin-house-data")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// ストレージ: DB 未接続時はメモリ実装にフォールバックする（開発用）
	var (
		db                *sql.DB
		consultationsRepo repository.ConsultationsRepository
		eventsRepo        repository.EventsRepository
		usersRepo         repository.UsersRepository
		plansRepo         repository.SupportPlansRepository
		staffRepo         repository.StaffRepository
	)
	if cfg.DBEnabled {
		if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
			db = d
			logger.Info("postgres connected", zap.String("db", cfg.Database.Database))
		} else {
			logger.Warn("DB enabled but connection failed, falling back to memory repositories", zap.Error(err))
		}
	}
	if db != nil {
		consultationsRepo = repository.NewPostgresConsultationsRepository(db)
		eventsRepo = repository.NewPostgresEventsRepository(db)
		usersRepo = repository.NewPostgresUsersRepository(db)
		plansRepo = repository.NewPostgresSupportPlansRepository(db)
		staffRepo = repository.NewPostgresStaffRepository(db)
	} else {
		memConsultations := repository.NewMemoryConsultationsRepo()
		consultationsRepo = memConsultations
		eventsRepo = repository.NewMemoryEventsRepo(memConsultations)
		usersRepo = repository.NewMemoryUsersRepo()
		plansRepo = repository.NewMemorySupportPlansRepo()
		staffRepo = repository.NewMemoryStaffRepo()
	}

	// ビューキャッシュ: Redis 未接続時はメモリKV
	var kv store.KV
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warn("redis unavailable, falling back to memory cache", zap.Error(err))
			_ = redisClient.Close()
			redisClient = nil
		}
	}
	if redisClient != nil {
		kv = store.NewRedisKV(redisClient)
	} else {
		kv = store.NewMemoryKV()
	}
	views := store.NewViewCache(kv, time.Duration(cfg.Cache.ViewTTLSeconds)*time.Second, logger)

	engine := export.NewEngine(cfg.Templates)

	consultationService := service.NewConsultationService(consultationsRepo, eventsRepo, views, logger)
	userService := service.NewUserService(usersRepo, consultationsRepo, views, logger)
	planService := service.NewSupportPlanService(plansRepo, usersRepo, logger)
	staffService := service.NewStaffService(staffRepo, logger)
	analyticsService := service.NewAnalyticsService(consultationsRepo, usersRepo, logger)
	exportService := service.NewExportService(consultationsRepo, staffRepo, engine, logger)
	importService := service.NewImportService(importer.New(usersRepo, logger), views, logger)

	router := httpapi.NewRouter(logger)
	router.RegisterRoutes(&httpapi.Handlers{
		Consultations: httpapi.NewConsultationHandler(consultationService, views, logger),
		Users:         httpapi.NewUserHandler(userService, planService, logger),
		SupportPlans:  httpapi.NewSupportPlanHandler(planService, logger),
		Staff:         httpapi.NewStaffHandler(staffService, logger),
		Analytics:     httpapi.NewAnalyticsHandler(analyticsService, logger),
		Export:        httpapi.NewExportHandler(exportService, logger),
		Import:        httpapi.NewImportHandler(importService, logger),
	})

	srv := httpapi.NewServer(cfg.HTTP.Addr, router, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			logger.Error("server exited", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if db != nil {
		_ = db.Close()
	}
}
