package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/minutes-agent/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	minutesHandler *MinutesHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, minutesHandler *MinutesHandler) *Router {
	return &Router{
		cfg:            cfg,
		minutesHandler: minutesHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")
	rt.setupMinutesRoutes(v1)
}

// setupMinutesRoutes configures minutes generation routes
func (rt *Router) setupMinutesRoutes(g *echo.Group) {
	if rt.minutesHandler == nil {
		g.POST("/minutes", rt.notImplemented)
		g.POST("/minutes/render", rt.notImplemented)
		return
	}

	g.POST("/minutes", rt.minutesHandler.Generate)
	g.POST("/minutes/render", rt.minutesHandler.Render)
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":  "This endpoint is not yet implemented",
		"path":   c.Request().URL.Path,
		"method": c.Request().Method,
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "development"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
	})
}
