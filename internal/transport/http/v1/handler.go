// Package v1 contains the HTTP handlers for the aibot API.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devmishra/aibot-backend/internal/authclient"
	"github.com/devmishra/aibot-backend/internal/logging"
	"github.com/devmishra/aibot-backend/internal/service"
)

// Handler holds the HTTP handlers for the aibot API.
type Handler struct {
	svc  *service.Service
	auth *authclient.Client
	log  *logging.Logger
}

// NewHandler creates a new Handler.
func NewHandler(svc *service.Service, auth *authclient.Client, log *logging.Logger) *Handler {
	return &Handler{svc: svc, auth: auth, log: log}
}

// RegisterRoutes registers all aibot routes on the echo instance.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/aibot")
	api.POST("/chat", h.Chat, h.OptionalAuth)
	api.GET("/chat-sidebar", h.ChatSidebar, h.RequireAuth)
	api.POST("/chat-detail", h.ChatDetail, h.RequireAuth)
	api.POST("/del-aichat", h.ChatDelete, h.RequireAuth)
	api.GET("/user-profile", h.UserProfile, h.RequireAuth)

	e.GET("/health", h.Health)
}

// Health reports liveness.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
