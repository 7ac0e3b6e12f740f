package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/presensia/employee-system/internal/api/handler"
	"github.com/presensia/employee-system/internal/api/middleware"
	"github.com/presensia/employee-system/internal/core/domain"
	"github.com/presensia/employee-system/internal/core/service"
	"github.com/presensia/employee-system/internal/infrastructure/config"
	"github.com/presensia/employee-system/internal/infrastructure/db/postgres"
	healthhandlers "github.com/presensia/employee-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("employee"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	employeeService := service.NewEmployeeService(employeeRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/signup", authHandler.Signup, authMiddleware, adminOnly)

	// --- Employee routes (admin only) ---
	employees := e.Group("/employee", authMiddleware, adminOnly)
	employees.GET("", employeeHandler.List)
	employees.GET("/:nik", employeeHandler.Get)
	employees.POST("", employeeHandler.Create)
	employees.PUT("/:nik", employeeHandler.Update)
	employees.DELETE("/:nik", employeeHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(pool)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
