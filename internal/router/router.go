// Package router defines how HTTP routes are registered for the
// two applications. Each app gets its own registration function;
// shared plumbing (health check, session middleware) lives here.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/minhvo/retail-suite/internal/config"
	"github.com/minhvo/retail-suite/internal/handler"
	"github.com/minhvo/retail-suite/internal/middleware"
	"github.com/minhvo/retail-suite/internal/session"
)

// RegisterRoutes registers the routes shared by both applications
// and installs the session middleware. Every request passes
// through SessionAuth so handlers can always read a session from
// the context; routes needing an identity add their own guards.
func RegisterRoutes(e *echo.Echo, cfg config.Config, mgr *session.Manager) {
	e.Use(middleware.SessionAuth(cfg.JWTSecret, mgr))
	// health endpoint for load balancers and monitoring
	e.GET("/healthz", handler.Health)
}
