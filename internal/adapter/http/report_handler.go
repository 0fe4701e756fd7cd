package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"crefinso-portal/internal/adapter/remote"
	"crefinso-portal/internal/usecase/report"
	"crefinso-portal/pkg/dateonly"
)

type ReportHandler struct{ uc *report.Usecase }

func NewReportHandler(uc *report.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

type rangeReportQuery struct {
	Start string `query:"start" validate:"required,dateonly"`
	End   string `query:"end" validate:"required,dateonly"`
}

func (h *ReportHandler) Range(c echo.Context) error {
	var q rangeReportQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query"})
	}
	if err := c.Validate(q); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	start, _ := dateonly.Parse(q.Start)
	end, _ := dateonly.Parse(q.End)

	rep, err := h.uc.Range(c.Request().Context(), start, end)
	if err != nil {
		if remote.KindOf(err) != 0 {
			return writeRemoteError(c, err)
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, rep)
}

type weeklyReportQuery struct {
	WeekStart string `query:"weekStart" validate:"required,dateonly"`
}

func (h *ReportHandler) Weekly(c echo.Context) error {
	var q weeklyReportQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query"})
	}
	if err := c.Validate(q); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	weekStart, _ := dateonly.Parse(q.WeekStart)

	rep, err := h.uc.Weekly(c.Request().Context(), weekStart)
	if err != nil {
		return writeRemoteError(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

func (h *ReportHandler) Monthly(c echo.Context) error {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil || year < 1 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid year"})
	}
	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil || month < 1 || month > 12 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid month"})
	}

	rep, err := h.uc.Monthly(c.Request().Context(), year, time.Month(month))
	if err != nil {
		return writeRemoteError(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}
