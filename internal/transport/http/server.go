// Package http provides the HTTP server for the aibot backend.
package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	v1 "github.com/devmishra/aibot-backend/internal/transport/http/v1"
)

// NewServer creates and configures the echo server with the standard
// middleware chain and the v1 routes.
func NewServer(h *v1.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	h.RegisterRoutes(e)

	return e
}
