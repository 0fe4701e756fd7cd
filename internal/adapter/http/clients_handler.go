package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"crefinso-portal/internal/domain/client"
)

type ClientHandler struct{ repo client.Repository }

func NewClientHandler(repo client.Repository) *ClientHandler { return &ClientHandler{repo: repo} }

func (h *ClientHandler) List(c echo.Context) error {
	out, err := h.repo.List(c.Request().Context())
	if err != nil {
		return writeRemoteError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ClientHandler) Get(c echo.Context) error {
	cid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid client id"})
	}
	out, err := h.repo.Get(c.Request().Context(), cid)
	if err != nil {
		return writeRemoteError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ClientHandler) Create(c echo.Context) error {
	var cl client.Client
	if err := c.Bind(&cl); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.repo.Create(c.Request().Context(), &cl); err != nil {
		return writeRemoteError(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *ClientHandler) Update(c echo.Context) error {
	cid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid client id"})
	}
	var cl client.Client
	if err := c.Bind(&cl); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	cl.ClienteID = cid
	if err := h.repo.Update(c.Request().Context(), &cl); err != nil {
		return writeRemoteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ClientHandler) Delete(c echo.Context) error {
	cid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid client id"})
	}
	if err := h.repo.Delete(c.Request().Context(), cid); err != nil {
		return writeRemoteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
