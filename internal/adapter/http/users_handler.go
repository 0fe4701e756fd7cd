package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"crefinso-portal/internal/domain/user"
)

type UserHandler struct{ repo user.Repository }

func NewUserHandler(repo user.Repository) *UserHandler { return &UserHandler{repo: repo} }

func (h *UserHandler) List(c echo.Context) error {
	out, err := h.repo.List(c.Request().Context())
	if err != nil {
		return writeRemoteError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Get(c echo.Context) error {
	uid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}
	out, err := h.repo.Get(c.Request().Context(), uid)
	if err != nil {
		return writeRemoteError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type userReq struct {
	UserName     string `json:"userName" validate:"required"`
	UserPassword string `json:"userPassword" validate:"required"`
	UserRole     string `json:"userRole" validate:"required"`
	Name         string `json:"name" validate:"required"`
}

func (h *UserHandler) Create(c echo.Context) error {
	var req userReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	in := user.Input{
		UserName:     req.UserName,
		UserPassword: req.UserPassword,
		UserRole:     req.UserRole,
		Name:         req.Name,
	}
	if err := h.repo.Create(c.Request().Context(), &in); err != nil {
		return writeRemoteError(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *UserHandler) Update(c echo.Context) error {
	uid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}
	var req userReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	in := user.Input{
		UserID:       uid,
		UserName:     req.UserName,
		UserPassword: req.UserPassword,
		UserRole:     req.UserRole,
		Name:         req.Name,
	}
	if err := h.repo.Update(c.Request().Context(), &in); err != nil {
		return writeRemoteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) Delete(c echo.Context) error {
	uid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}
	if err := h.repo.Delete(c.Request().Context(), uid); err != nil {
		return writeRemoteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
