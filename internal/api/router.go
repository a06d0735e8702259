package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/picode11/user-admin-api/internal/api/handler"
	"github.com/picode11/user-admin-api/internal/api/middleware"
	"github.com/picode11/user-admin-api/internal/core/domain"
	"github.com/picode11/user-admin-api/internal/core/service"
	"github.com/picode11/user-admin-api/internal/infrastructure/config"
	mongodb "github.com/picode11/user-admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/picode11/user-admin-api/internal/infrastructure/db/redis"
	"github.com/picode11/user-admin-api/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// Payload ceiling sits upstream of every handler, uploads included.
	e.Use(echomiddleware.BodyLimit(cfg.Upload.MaxSize))
	e.Use(echoprometheus.NewMiddleware("useradmin"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	sessions := redisdb.NewSessionStore(rdb, cfg.SessionTTL)
	images := storage.NewLocalStore(cfg.Upload.Dir)

	authService := service.NewAuthService(userRepo, sessions, cfg.SessionSecret, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.Env == "production")
	userHandler := handler.NewUserHandler(userService, images)
	adminHandler := handler.NewAdminHandler(userService, images)

	requireSession := middleware.Session(authService)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Self-profile routes (any authenticated principal) ---
	me := e.Group("/me", requireSession)
	me.GET("", userHandler.Profile)
	me.POST("/photo", userHandler.UploadPhoto)

	// --- Admin routes ---
	admin := e.Group("/admin", requireSession, middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/users", adminHandler.List)
	admin.POST("/users", adminHandler.Create)
	admin.GET("/users/:id", adminHandler.Get)
	admin.PUT("/users/:id", adminHandler.Update)
	admin.DELETE("/users/:id", adminHandler.Delete)

	// --- Uploaded images ---
	e.Static("/uploads", cfg.Upload.Dir)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
