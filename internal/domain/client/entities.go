package client

import "crefinso-portal/pkg/dateonly"

const (
	EstadoActivo   = "Activo"
	EstadoInactivo = "Inactivo"
)

// Client is a borrower as served by the remote API. The record is flat: the
// owning user is referenced by id only.
type Client struct {
	ClienteID       int           `json:"clienteId"`
	Nombre          string        `json:"nombre"`
	FechaNacimiento dateonly.Date `json:"fechaNacimiento"`
	DUI             string        `json:"dui"`
	NIT             string        `json:"nit"`
	Direccion       string        `json:"direccion"`
	TelefonoCelular string        `json:"telefonoCelular"`
	TelefonoFijo    string        `json:"telefonoFijo"`
	UserID          int           `json:"userId"`
	Estado          string        `json:"estado"`
}
