package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/eventhub/event-management-api/docs"
	"github.com/eventhub/event-management-api/internal/api/handler"
	"github.com/eventhub/event-management-api/internal/api/middleware"
	"github.com/eventhub/event-management-api/internal/core/domain"
	"github.com/eventhub/event-management-api/internal/core/service"
	"github.com/eventhub/event-management-api/internal/infrastructure/config"
	mongodb "github.com/eventhub/event-management-api/internal/infrastructure/db/mongo"
	redisdb "github.com/eventhub/event-management-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with every route registered and all
// dependencies wired.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("eventapi"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	eventCache := redisdb.NewEventCache(rdb)

	tokens := service.NewTokenService(
		cfg.Auth.JWTSecret,
		cfg.Auth.JWTRefreshSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)
	hasher := service.NewPasswordHasher(cfg.Auth.BcryptCost)

	authService := service.NewAuthService(userRepo, tokens, hasher, log)
	userService := service.NewUserService(userRepo, log)
	adminService := service.NewAdminService(adminRepo, log)
	eventService := service.NewEventService(eventRepo, eventCache, log)

	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction(), cfg.Auth.RefreshTokenTTL)
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(adminService)
	eventHandler := handler.NewEventHandler(eventService)

	authenticated := middleware.Authorize(tokens)
	adminOnly := middleware.Authorize(tokens, domain.RoleAdmin, domain.RoleSuperAdmin)
	superAdminOnly := middleware.Authorize(tokens, domain.RoleSuperAdmin)

	v1 := e.Group("/api/v1")

	// --- Auth routes ---
	auth := v1.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh-token", authHandler.Refresh)
	auth.PATCH("/change-password", authHandler.ChangePassword, authenticated)
	auth.POST("/logout", authHandler.Logout, authenticated)

	// --- User routes ---
	user := v1.Group("/user")
	user.GET("/profile", userHandler.GetProfile, authenticated)
	user.PATCH("/profile", userHandler.UpdateProfile, authenticated)
	user.GET("/get-all", userHandler.GetAll, adminOnly)
	user.GET("/:id", userHandler.GetByID)
	user.PATCH("/:id", userHandler.Update, adminOnly)
	user.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Admin routes ---
	admin := v1.Group("/admin", superAdminOnly)
	admin.GET("", adminHandler.List)
	admin.POST("/make-admin", adminHandler.MakeAdmin)
	admin.PATCH("/:id", adminHandler.Update)
	admin.DELETE("/:id", adminHandler.Delete)

	// --- Event routes ---
	events := v1.Group("/events")
	events.POST("", eventHandler.Create, authenticated)
	events.GET("", eventHandler.List)
	events.GET("/my-events", eventHandler.MyEvents, authenticated)
	events.GET("/:id", eventHandler.Get)
	events.PATCH("/:id", eventHandler.Update, authenticated)
	events.DELETE("/:id", eventHandler.Delete, authenticated)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
