package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"crefinso-portal/internal/infrastructure/session"
)

// Header carrying the opaque gateway session id minted at login.
const SessionHeader = "X-Session-Id"

// Session extracts the session id and threads it through the request context
// so the remote adapter can resolve the bearer token. Requests without one
// are turned away before any handler runs; whether the session actually holds
// a token is checked by the resource fetcher itself.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := strings.TrimSpace(c.Request().Header.Get(SessionHeader))
			if sid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + SessionHeader})
			}
			if !reHex32.MatchString(sid) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid " + SessionHeader})
			}
			req := c.Request()
			c.SetRequest(req.WithContext(session.WithID(req.Context(), sid)))
			return next(c)
		}
	}
}
