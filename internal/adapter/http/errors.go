package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"crefinso-portal/internal/adapter/remote"
)

// writeRemoteError translates the remote error taxonomy onto our own wire.
// Rejections keep the upstream status so the browser sees what the API said;
// everything else becomes a gateway-side status.
func writeRemoteError(c echo.Context, err error) error {
	var re *remote.Error
	if !errors.As(err, &re) {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	switch re.Kind {
	case remote.KindUnauthenticated:
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "sesión inválida, iniciar sesión"})
	case remote.KindTimeout:
		return c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: "la API remota no respondió a tiempo"})
	case remote.KindTransport:
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "no se pudo contactar la API remota"})
	case remote.KindRemoteRejected:
		return c.JSON(re.Status, ErrorResponse{Error: re.Body})
	case remote.KindDeserialization:
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "respuesta inesperada de la API remota"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
