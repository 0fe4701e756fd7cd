package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"crefinso-portal/internal/domain/employment"
)

type EmploymentHandler struct{ repo employment.Repository }

func NewEmploymentHandler(repo employment.Repository) *EmploymentHandler {
	return &EmploymentHandler{repo: repo}
}

func (h *EmploymentHandler) List(c echo.Context) error {
	out, err := h.repo.List(c.Request().Context())
	if err != nil {
		return writeRemoteError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *EmploymentHandler) Get(c echo.Context) error {
	eid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid employment id"})
	}
	out, err := h.repo.Get(c.Request().Context(), eid)
	if err != nil {
		return writeRemoteError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *EmploymentHandler) Create(c echo.Context) error {
	var e employment.Employment
	if err := c.Bind(&e); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.repo.Create(c.Request().Context(), &e); err != nil {
		return writeRemoteError(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *EmploymentHandler) Update(c echo.Context) error {
	eid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid employment id"})
	}
	var e employment.Employment
	if err := c.Bind(&e); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	e.EmpleoID = eid
	if err := h.repo.Update(c.Request().Context(), &e); err != nil {
		return writeRemoteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EmploymentHandler) Delete(c echo.Context) error {
	eid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid employment id"})
	}
	if err := h.repo.Delete(c.Request().Context(), eid); err != nil {
		return writeRemoteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
