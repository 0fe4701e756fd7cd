package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"crefinso-portal/internal/domain/loan"
)

type LoanHandler struct{ repo loan.Repository }

func NewLoanHandler(repo loan.Repository) *LoanHandler { return &LoanHandler{repo: repo} }

func (h *LoanHandler) List(c echo.Context) error {
	out, err := h.repo.List(c.Request().Context())
	if err != nil {
		return writeRemoteError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Get(c echo.Context) error {
	lid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id"})
	}
	out, err := h.repo.Get(c.Request().Context(), lid)
	if err != nil {
		return writeRemoteError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Create(c echo.Context) error {
	var l loan.Loan
	if err := c.Bind(&l); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.repo.Create(c.Request().Context(), &l); err != nil {
		return writeRemoteError(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *LoanHandler) Update(c echo.Context) error {
	lid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id"})
	}
	var l loan.Loan
	if err := c.Bind(&l); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	l.PrestamoID = lid
	if err := h.repo.Update(c.Request().Context(), &l); err != nil {
		return writeRemoteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LoanHandler) Delete(c echo.Context) error {
	lid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id"})
	}
	if err := h.repo.Delete(c.Request().Context(), lid); err != nil {
		return writeRemoteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
