package employment

import (
	"github.com/shopspring/decimal"

	"crefinso-portal/pkg/dateonly"
)

// Employment is a client's job record, kept for underwriting context.
type Employment struct {
	EmpleoID         int             `json:"empleoId"`
	ClienteID        int             `json:"clienteId"`
	LugarTrabajo     string          `json:"lugarTrabajo"`
	Cargo            string          `json:"cargo"`
	SueldoBase       decimal.Decimal `json:"sueldoBase"`
	FechaIngreso     dateonly.Date   `json:"fechaIngreso"`
	TelefonoTrabajo  string          `json:"telefonoTrabajo"`
	DireccionTrabajo string          `json:"direccionTrabajo"`
}
