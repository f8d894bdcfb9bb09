package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/pankajg09/data-dictionary-system/controllers"
)

func SetupRoutes(e *echo.Echo, healthController *controllers.HealthController, analysisController *controllers.AnalysisController) {
	// Health check route
	e.GET("/health", healthController.HealthCheck)

	// API routes
	api := e.Group("/api")

	// Code / SQL analysis endpoints
	api.POST("/analysis/analyze", analysisController.AnalyzeCode)
	api.POST("/databases/analyze-sql", analysisController.AnalyzeSQL)
}
