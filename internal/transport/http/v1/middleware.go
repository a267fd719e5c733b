package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devmishra/aibot-backend/internal/authclient"
	"github.com/devmishra/aibot-backend/internal/service"
)

const authContextKey = "aibot.auth"

// OptionalAuth attaches an auth context when the request carries a valid
// bearer token. Invalid or missing credentials fall through as guest.
func (h *Handler) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := authclient.ParseBearer(c.Request().Header.Get("Authorization")); ok {
			if p, err := h.auth.Validate(c.Request().Context(), token); err == nil {
				c.Set(authContextKey, &service.AuthContext{Token: token, Profile: p})
			}
		}
		return next(c)
	}
}

// RequireAuth validates the bearer token and halts with 401 when it is
// missing or rejected.
func (h *Handler) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := authclient.ParseBearer(c.Request().Header.Get("Authorization"))
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"detail": authclient.ErrMissingAuth.Error()})
		}

		p, err := h.auth.Validate(c.Request().Context(), token)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"detail": err.Error()})
		}

		c.Set(authContextKey, &service.AuthContext{Token: token, Profile: p})
		return next(c)
	}
}

// authFrom returns the auth context attached by the middleware, or nil for
// guest requests.
func authFrom(c echo.Context) *service.AuthContext {
	if v, ok := c.Get(authContextKey).(*service.AuthContext); ok {
		return v
	}
	return nil
}
