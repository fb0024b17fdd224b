package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/projectify/backend/internal/config"
	"github.com/projectify/backend/internal/handlers"
	"github.com/projectify/backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	projectHandler *handlers.ProjectHandler,
	applicationHandler *handlers.ApplicationHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)

	admin := middleware.AdminRequired(db)

	// Projects — list/read for any authenticated caller (visibility gated by
	// role inside the service); everything else admin-only.
	projects := api.Group("/projects", middleware.JWTProtected(cfg))
	projects.Get("/", projectHandler.List)
	projects.Post("/", admin, projectHandler.Create)
	projects.Get("/:id", projectHandler.Get)
	projects.Put("/:id/approve", admin, projectHandler.Approve)
	projects.Put("/:id/reject", admin, projectHandler.Reject)
	projects.Delete("/:id", admin, projectHandler.Delete)

	// Applications
	applications := api.Group("/applications", middleware.JWTProtected(cfg))
	applications.Post("/", applicationHandler.Create)
	applications.Get("/my", applicationHandler.ListMine)
	applications.Get("/", admin, applicationHandler.List)
	applications.Put("/:id/approve", admin, applicationHandler.Approve)
	applications.Put("/:id/reject", admin, applicationHandler.Reject)

	// Analytics — admin dashboards
	analytics := api.Group("/analytics", middleware.JWTProtected(cfg), admin)
	analytics.Get("/dashboard", analyticsHandler.Dashboard)
	analytics.Get("/projects-by-status", analyticsHandler.ProjectsByStatus)
	analytics.Get("/applications-by-status", analyticsHandler.ApplicationsByStatus)
	analytics.Get("/recent-activity", analyticsHandler.RecentActivity)
}
