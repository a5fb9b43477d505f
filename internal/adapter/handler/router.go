package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/talksense/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	analysisHandler *Analysis
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, analysisHandler *Analysis) *Router {
	return &Router{
		cfg:             cfg,
		analysisHandler: analysisHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAnalysisRoutes(v1)
}

// setupAnalysisRoutes configures analysis and session routes
func (rt *Router) setupAnalysisRoutes(g *echo.Group) {
	if rt.analysisHandler != nil {
		g.POST("/analyze", rt.analysisHandler.AnalyzeAudio)
		g.POST("/analyze/segments", rt.analysisHandler.AnalyzeSegments)

		sessions := g.Group("/sessions")
		sessions.GET("/:id", rt.analysisHandler.GetSession)
		sessions.GET("/:id/patterns", rt.analysisHandler.GetPatterns)
	} else {
		// Placeholder routes when handler is not initialized
		g.POST("/analyze", rt.notImplemented)
		g.POST("/analyze/segments", rt.notImplemented)
		g.GET("/sessions/:id", rt.notImplemented)
		g.GET("/sessions/:id/patterns", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
