package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlog "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/DarshanCHMSR/search-engine/config"
	"github.com/DarshanCHMSR/search-engine/db"
	authhandler "github.com/DarshanCHMSR/search-engine/internal/auth/handler"
	authrepo "github.com/DarshanCHMSR/search-engine/internal/auth/repository/postgres"
	authservice "github.com/DarshanCHMSR/search-engine/internal/auth/service"
	"github.com/DarshanCHMSR/search-engine/internal/logging"
	searchhandler "github.com/DarshanCHMSR/search-engine/internal/search/handler"
	searchrepo "github.com/DarshanCHMSR/search-engine/internal/search/repository/postgres"
	searchservice "github.com/DarshanCHMSR/search-engine/internal/search/service"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.Env)
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Error(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, cfg.DBURL); err != nil {
		log.Error(ctx, "failed to run migrations", "error", err)
		os.Exit(1)
	}

	userRepo := authrepo.NewUserRepository(pool)
	historyRepo := searchrepo.NewHistoryRepository(pool)

	creds := authservice.NewCredentialStore(cfg.BcryptCost)
	tokens := authservice.NewTokenService(cfg.Secret, time.Duration(cfg.TokenExpiryHours)*time.Hour)
	userService := authservice.NewUserService(userRepo, creds, tokens)
	historyService := searchservice.NewHistoryService(historyRepo, cfg.HistoryDefaultLimit, cfg.HistoryMaxLimit)

	gate := authhandler.NewAuthGate(tokens, userRepo, log)
	authHandler := authhandler.NewAuthHandler(userService, tokens, cfg.IsDevelopment())
	userHandler := authhandler.NewUserHandler(userService, cfg.IsDevelopment())
	historyHandler := searchhandler.NewHistoryHandler(historyService, cfg.IsDevelopment())

	app := fiber.New(fiber.Config{AppName: "search-engine"})

	app.Use(recover.New())
	if cfg.IsDevelopment() {
		app.Use(fiberlog.New())
	}
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowCredentials: true,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: time.Duration(cfg.RateLimitWindowMS) * time.Millisecond,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":    "unhealthy",
				"database":  "disconnected",
				"timestamp": time.Now().UTC(),
			})
		}
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"database":  "connected",
			"timestamp": time.Now().UTC(),
		})
	})

	authhandler.RegisterRoutes(app, authHandler, userHandler, gate)
	searchhandler.RegisterRoutes(app, historyHandler, gate)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error(ctx, "server stopped", "error", err)
			os.Exit(1)
		}
	}()

	log.Info(ctx, "server started", "port", cfg.Port, "env", cfg.Env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error(ctx, "shutdown error", "error", err)
	}
}
