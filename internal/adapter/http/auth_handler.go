package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"crefinso-portal/internal/adapter/remote"
	"crefinso-portal/internal/infrastructure/session"
	"crefinso-portal/pkg/id"
)

type AuthHandler struct {
	auth     *remote.AuthService
	sessions *session.Store
}

func NewAuthHandler(auth *remote.AuthService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

type loginReq struct {
	UserName     string `json:"userName" validate:"required"`
	UserPassword string `json:"userPassword" validate:"required"`
}

type loginResp struct {
	SessionID string `json:"sessionId"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Name      string `json:"name"`
}

// Login exchanges credentials for a remote token, parks the token in the
// session store and hands the browser an opaque session id. The token itself
// never leaves the gateway.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	res, err := h.auth.Login(c.Request().Context(), remote.Credentials{
		UserName:     req.UserName,
		UserPassword: req.UserPassword,
	})
	if err != nil {
		return writeRemoteError(c, err)
	}
	if !session.Valid(res.Token) {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "el token recibido es inválido o está vencido"})
	}

	sid := id.NewID32()
	if err := h.sessions.Save(c.Request().Context(), sid, res.Token); err != nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "session store unavailable"})
	}
	return c.JSON(http.StatusOK, loginResp{
		SessionID: sid,
		Username:  res.Username,
		Role:      res.Role,
		Name:      res.Name,
	})
}

// Logout drops the stored token for the session named in X-Session-Id.
func (h *AuthHandler) Logout(c echo.Context) error {
	sid, ok := session.IDFrom(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing session"})
	}
	if err := h.sessions.Delete(c.Request().Context(), sid); err != nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "session store unavailable"})
	}
	return c.NoContent(http.StatusNoContent)
}
