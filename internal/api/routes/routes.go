package routes

import (
	"net/http"

	"cvparse-utils/internal/api/handlers"
	"cvparse-utils/internal/api/middleware"
	"cvparse-utils/internal/config"
	"cvparse-utils/internal/parser"
	"cvparse-utils/internal/predictor"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, orchestrator *parser.Orchestrator, predictorManager *predictor.Manager) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.TimeoutConfig(cfg.Server.ReadTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(predictorManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		v1.POST("/parse", handlers.ParseHandler(orchestrator))
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "CV Parse Utils",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
