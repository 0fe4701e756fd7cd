package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"crefinso-portal/internal/domain/request"
)

type RequestHandler struct{ repo request.Repository }

func NewRequestHandler(repo request.Repository) *RequestHandler {
	return &RequestHandler{repo: repo}
}

func (h *RequestHandler) List(c echo.Context) error {
	out, err := h.repo.List(c.Request().Context())
	if err != nil {
		return writeRemoteError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RequestHandler) Get(c echo.Context) error {
	rid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request id"})
	}
	out, err := h.repo.Get(c.Request().Context(), rid)
	if err != nil {
		return writeRemoteError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RequestHandler) Create(c echo.Context) error {
	var r request.Request
	if err := c.Bind(&r); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.repo.Create(c.Request().Context(), &r); err != nil {
		return writeRemoteError(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *RequestHandler) Update(c echo.Context) error {
	rid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request id"})
	}
	var r request.Request
	if err := c.Bind(&r); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	r.SolicitudID = rid
	if err := h.repo.Update(c.Request().Context(), &r); err != nil {
		return writeRemoteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *RequestHandler) Delete(c echo.Context) error {
	rid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request id"})
	}
	if err := h.repo.Delete(c.Request().Context(), rid); err != nil {
		return writeRemoteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
