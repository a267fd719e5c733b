package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devmishra/aibot-backend/internal/domain"
)

type chatIDRequest struct {
	ChatID *int64 `json:"chat_id"`
}

// ChatSidebar lists the authenticated user's chats.
// GET /api/aibot/chat-sidebar
func (h *Handler) ChatSidebar(c echo.Context) error {
	auth := authFrom(c)

	chats, err := h.svc.Sidebar(c.Request().Context(), auth.Profile.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("sidebar listing failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string][]domain.SidebarEntry{"chats": chats})
}

// ChatDetail returns the v2 view of one chat.
// POST /api/aibot/chat-detail
func (h *Handler) ChatDetail(c echo.Context) error {
	auth := authFrom(c)

	var req chatIDRequest
	if err := c.Bind(&req); err != nil || req.ChatID == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "chat_id required"})
	}

	detail, err := h.svc.Detail(c.Request().Context(), *req.ChatID, auth.Profile.ID)
	if err != nil {
		h.log.Error().Err(err).Int64("chat_id", *req.ChatID).Msg("detail fetch failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	if detail == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Chat not found"})
	}

	return c.JSON(http.StatusOK, detail)
}

// ChatDelete removes a whole chat session.
// POST /api/aibot/del-aichat
func (h *Handler) ChatDelete(c echo.Context) error {
	auth := authFrom(c)

	var req chatIDRequest
	if err := c.Bind(&req); err != nil || req.ChatID == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "chat_id required"})
	}

	deleted, err := h.svc.DeleteChat(c.Request().Context(), *req.ChatID, auth.Profile.ID)
	if err != nil {
		h.log.Error().Err(err).Int64("chat_id", *req.ChatID).Msg("chat deletion failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Chat not found"})
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
