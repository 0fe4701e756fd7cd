package loan

import (
	"github.com/shopspring/decimal"

	"crefinso-portal/pkg/dateonly"
)

const (
	EstadoActivo    = "Activo"
	EstadoCancelado = "Cancelado"
	EstadoMoroso    = "Moroso"
)

// Loan is an approved, amortizing credit line derived from a request.
// TasaInteres is an annual percentage (12.0 means 12% a year).
type Loan struct {
	PrestamoID       int             `json:"prestamoId"`
	SolicitudID      int             `json:"solicitudId"`
	MontoAprobado    decimal.Decimal `json:"montoAprobado"`
	TasaInteres      decimal.Decimal `json:"tasaInteres"`
	FechaInicio      dateonly.Date   `json:"fechaInicio"`
	FechaVencimiento dateonly.Date   `json:"fechaVencimiento"`
	Estado           string          `json:"estado"`
}
