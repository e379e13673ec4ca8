package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/taskhive/todo-api/docs"
	"github.com/taskhive/todo-api/internal/api/handler"
	"github.com/taskhive/todo-api/internal/api/middleware"
	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
	"github.com/taskhive/todo-api/internal/core/service"
	"github.com/taskhive/todo-api/internal/infrastructure/config"
	mongodb "github.com/taskhive/todo-api/internal/infrastructure/db/mongo"
	redisdb "github.com/taskhive/todo-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case login throttling is disabled.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditRecorder, policy domain.Policy, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("todoapi"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	todoRepo := mongodb.NewTodoRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)

	var throttle service.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginLimiter(rdb, cfg.Login.MaxFailures, time.Duration(cfg.Login.WindowMinutes)*time.Minute)
	}

	authService := service.NewAuthService(userRepo, tokens, throttle, audit, log)
	todoService := service.NewTodoService(todoRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	todoHandler := handler.NewTodoHandler(todoService, policy)
	adminHandler := handler.NewAdminHandler(todoService, policy)

	authRequired := middleware.Auth(tokens)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/", authHandler.Register)
	auth.POST("/token", authHandler.Token)

	// --- Todo routes ---
	todos := e.Group("/api/todos", authRequired)
	todos.GET("/", todoHandler.List)
	todos.GET("/:id", todoHandler.Get)
	todos.POST("/create", todoHandler.Create)
	todos.PUT("/update/:id", todoHandler.Update)
	todos.DELETE("/delete/:id", todoHandler.Delete)

	// --- User self-service ---
	users := e.Group("/api/user", authRequired)
	users.GET("/", userHandler.Profile)
	users.PUT("/change_password", userHandler.ChangePassword)

	// --- Admin routes ---
	admin := e.Group("/api/admin", authRequired, middleware.RequireRole(string(domain.RoleAdmin)))
	admin.GET("/todos", adminHandler.List)
	admin.DELETE("/todo/delete/:id", adminHandler.Delete)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
