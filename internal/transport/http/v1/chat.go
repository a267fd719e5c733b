package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devmishra/aibot-backend/internal/domain"
	"github.com/devmishra/aibot-backend/internal/service"
)

// Chat handles a turn submission.
// POST /api/aibot/chat
func (h *Handler) Chat(c echo.Context) error {
	var req domain.TurnRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Message is required"})
	}

	result, err := h.svc.HandleTurn(c.Request().Context(), authFrom(c), req, c.RealIP())
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Message is required"})
		}
		h.log.Error().Err(err).Msg("chat turn failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, result)
}
