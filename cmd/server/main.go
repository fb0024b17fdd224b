package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/projectify/backend/internal/config"
	"github.com/projectify/backend/internal/database"
	"github.com/projectify/backend/internal/handlers"
	"github.com/projectify/backend/internal/logging"
	"github.com/projectify/backend/internal/mailer"
	"github.com/projectify/backend/internal/middleware"
	"github.com/projectify/backend/internal/notify"
	"github.com/projectify/backend/internal/routes"
	"github.com/projectify/backend/internal/services"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Outbound email. Without SMTP config the dispatcher still runs and
	// records outcomes; delivery is logged instead of sent.
	var sender mailer.Sender
	if cfg.SMTPHost != "" {
		smtpSender, err := mailer.NewSMTPSender(cfg)
		if err != nil {
			slog.Error("smtp client setup failed", "error", err)
			os.Exit(1)
		}
		sender = smtpSender
	} else {
		slog.Warn("SMTP_HOST not set, email delivery disabled")
		sender = mailer.LogSender{}
	}

	// Notification dispatch (fire-and-forget queue + worker)
	dispatcher := notify.NewDispatcher(db, sender, cfg.NotifyQueueSize)

	// Notification log retention (30 days)
	cleanupDone := make(chan struct{})
	notify.StartCleanup(db, cleanupDone)

	// Services
	authService := services.NewAuthService(db, cfg, dispatcher)
	projectService := services.NewProjectService(db, dispatcher)
	applicationService := services.NewApplicationService(db, dispatcher)
	analyticsService := services.NewAnalyticsService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	healthHandler := handlers.NewHealthHandler(db)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, db, authHandler, projectHandler, applicationHandler, analyticsHandler, healthHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	dispatcher.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
