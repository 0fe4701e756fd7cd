package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

// Health reports gateway liveness only; it says nothing about the remote API.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "crefinso-portal",
		"time":    time.Now().UTC().Format(time.RFC3339Nano),
	})
}
