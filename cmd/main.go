// Package main wires the HTTP server for the tournament roster service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/al-redowan/freefire-group-maker/internal/transport/http/server/handlers-fiber"
	"github.com/al-redowan/freefire-group-maker/internal/usecase"
	"github.com/al-redowan/freefire-group-maker/internal/usecase/domain"

	"github.com/al-redowan/freefire-group-maker/config"
	"github.com/al-redowan/freefire-group-maker/internal/analyzer"
	"github.com/al-redowan/freefire-group-maker/internal/repository"
	"github.com/al-redowan/freefire-group-maker/internal/transport/http/middleware"
	"github.com/al-redowan/freefire-group-maker/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(ctx, "jsonfile", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	var ai domain.Analyzer
	if gem, err := analyzer.NewGemini(ctx, log, cfg.Gemini); err != nil {
		log.Warnw("analyzer disabled", "error", err)
	} else {
		ai = gem
	}

	uc := usecase.New(log, ctx, repo, ai, cfg)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
		BodyLimit:    int(cfg.Upload.MaxFileSize) * 2,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(cors.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	tokens := middleware.NewTokenStore(cfg.Admin.TokenTTL, nil)
	uploadLimit := middleware.RateLimit(middleware.NewLimiter(cfg.RateLimit.UploadRequests, cfg.RateLimit.Window, nil))
	manualLimit := middleware.RateLimit(middleware.NewLimiter(cfg.RateLimit.ManualRequests, cfg.RateLimit.Window, nil))

	h := handlers_fiber.NewHandler(log, uc, cfg, tokens)
	h.RegisterRoutes(serv, uploadLimit, manualLimit)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
