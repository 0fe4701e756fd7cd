package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"crefinso-portal/internal/usecase/dashboard"
)

type DashboardHandler struct{ uc *dashboard.Usecase }

func NewDashboardHandler(uc *dashboard.Usecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) Overview(c echo.Context) error {
	ov, err := h.uc.Overview(c.Request().Context())
	if err != nil {
		return writeRemoteError(c, err)
	}
	return c.JSON(http.StatusOK, ov)
}

func (h *DashboardHandler) FullPayment(c echo.Context) error {
	pid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment id"})
	}
	full, err := h.uc.FullPayment(c.Request().Context(), pid)
	if err != nil {
		return writeRemoteError(c, err)
	}
	return c.JSON(http.StatusOK, full)
}
