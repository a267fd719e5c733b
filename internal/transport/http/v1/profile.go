package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// UserProfile returns the profile payload attached to the validated token.
// No additional network calls: the data comes straight from the token cache.
// GET /api/aibot/user-profile
func (h *Handler) UserProfile(c echo.Context) error {
	p := authFrom(c).Profile

	fullName := p.FullName
	if fullName == "" {
		fullName = "Unknown"
	}
	email := p.User.Email
	if email == "" {
		email = "Unknown"
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"full_name": fullName,
		"avatar":    p.Avatar,
		"username":  p.Username(),
		"email":     email,
		"user_id":   p.ID,
	})
}
