package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/trailconnect/web-gateway/internal/api/handler"
	"github.com/trailconnect/web-gateway/internal/api/middleware"
	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
	"github.com/trailconnect/web-gateway/internal/core/service"
	"github.com/trailconnect/web-gateway/internal/infrastructure/backend"
	"github.com/trailconnect/web-gateway/internal/infrastructure/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, client *backend.Client, rdb *redis.Client, cache ports.DirectoryCache, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("trailconnect"))

	// --- Dependencies ---
	authAPI := backend.NewAuthAPI(client)
	guideAPI := backend.NewGuideAPI(client)
	trekAPI := backend.NewTrekAPI(client)
	userAPI := backend.NewUserAPI(client)

	sessions := service.NewSessionService(authAPI, cfg.JWTSecret, cfg.SessionTTL, log)
	directory := service.NewGuideService(guideAPI, cache, log)
	catalog := service.NewTrekService(trekAPI, cache, log)
	accounts := service.NewAccountService(userAPI, log)
	estimator := service.NewPricingService(guideAPI)

	policy := handler.NewImagePolicy(cfg.Images.AllowedHosts)

	authHandler := handler.NewAuthHandler(sessions, policy, cfg.SessionTTL, cfg.Env == "production")
	guideHandler := handler.NewGuideHandler(directory, sessions, policy)
	trekHandler := handler.NewTrekHandler(catalog)
	userHandler := handler.NewUserHandler(accounts, sessions, policy)
	bookingHandler := handler.NewBookingHandler(estimator)

	sessionMiddleware := middleware.Session(cfg.JWTSecret, sessions)
	e.Use(sessionMiddleware)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/profile", authHandler.Profile)

	// --- Guide directory ---
	e.GET("/guides", guideHandler.List)
	e.GET("/guides/:id", guideHandler.Get)
	e.PATCH("/guides/:id/availability", guideHandler.UpdateAvailability, middleware.RequireRole(domain.RoleGuide))
	e.POST("/guides/:id/verify", guideHandler.Verify, middleware.RequireRole(domain.RoleAdmin))
	e.POST("/guides/:id/reject", guideHandler.Reject, middleware.RequireRole(domain.RoleAdmin))

	// --- Trek catalog (reads public, writes admin) ---
	e.GET("/treks/templates", trekHandler.ListTemplates)
	e.POST("/treks/templates", trekHandler.CreateTemplate, middleware.RequireRole(domain.RoleAdmin))
	e.PUT("/treks/templates/:id", trekHandler.UpdateTemplate, middleware.RequireRole(domain.RoleAdmin))
	e.DELETE("/treks/templates/:id", trekHandler.DeleteTemplate, middleware.RequireRole(domain.RoleAdmin))
	e.GET("/treks/regions", trekHandler.ListRegions)
	e.POST("/treks/regions", trekHandler.CreateRegion, middleware.RequireRole(domain.RoleAdmin))
	e.DELETE("/treks/regions/:id", trekHandler.DeleteRegion, middleware.RequireRole(domain.RoleAdmin))

	// --- Account ---
	e.PATCH("/users/:id", userHandler.Update, middleware.RequireAuth())

	// --- Booking intents ---
	e.GET("/bookings/services", bookingHandler.Services)
	e.POST("/bookings/estimate", bookingHandler.Estimate)

	// --- Dashboard ---
	dashboardHandler := handler.NewDashboardHandler(directory, catalog, policy)
	e.GET("/dashboard", dashboardHandler.Get, middleware.RequireAuth())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(rdb, client)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
