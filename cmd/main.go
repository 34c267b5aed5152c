package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gohire/recruitment-service/config"
	"github.com/gohire/recruitment-service/db"
	"github.com/gohire/recruitment-service/internal/eventlog"
	"github.com/gohire/recruitment-service/internal/logger"
	"github.com/gohire/recruitment-service/internal/metrics"
	"github.com/gohire/recruitment-service/internal/recruitment/handler"
	repo "github.com/gohire/recruitment-service/internal/recruitment/repository/postgres"
	sessionstore "github.com/gohire/recruitment-service/internal/recruitment/repository/redis"
	"github.com/gohire/recruitment-service/internal/recruitment/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zapLog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL, cfg.DBMaxConns)
	if err != nil {
		zapLog.Fatal("postgres connection failed", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := sessionstore.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer redisClient.Close()
	sessionStore := sessionstore.NewSessionStore(redisClient)
	if err := sessionStore.Ping(ctx); err != nil {
		zapLog.Fatal("redis connection failed", zap.Error(err))
	}

	events := eventlog.NewFileLog(cfg.LogDir)
	recruitmentRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.SessionSecret, cfg.SessionTTLMinutes)
	sessionService := service.NewSessionService(sessionStore, tokenService)
	personService := service.NewPersonService(recruitmentRepo, recruitmentRepo, events)
	recruitmentHandler := handler.NewRecruitmentHandler(personService, sessionService, cfg.CookieSecure)

	errorHandler := handler.NewErrorHandler(events, log)
	app := fiber.New(fiber.Config{
		AppName:      "gohire",
		ErrorHandler: errorHandler,
	})
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(metrics.Middleware(errorHandler))
	app.Use(recover.New())
	handler.RegisterRoutes(app, recruitmentHandler)

	go func() {
		log.Info("http server starting", map[string]interface{}{"port": cfg.Port, "env": cfg.Env})
		if err := app.Listen(":" + cfg.Port); err != nil {
			zapLog.Fatal("http server stopped", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received", nil)
	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.WithError(err).Error("http server shutdown failed", nil)
	}
}
