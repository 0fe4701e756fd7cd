package request

import (
	"github.com/shopspring/decimal"

	"crefinso-portal/pkg/dateonly"
)

const (
	EstadoPendiente = "Pendiente"
	EstadoAprobada  = "Aprobada"
	EstadoRechazada = "Rechazada"
)

// Request is a loan application prior to approval.
type Request struct {
	SolicitudID     int             `json:"solicitudId"`
	ClienteID       int             `json:"clienteId"`
	FechaSolicitud  dateonly.Date   `json:"fechaSolicitud"`
	MontoSolicitado decimal.Decimal `json:"montoSolicitado"`
	Destino         string          `json:"destino"`
	Estado          string          `json:"estado"`
	FechaAnalisis   dateonly.Date   `json:"fechaAnalisis"`
	UserID          int             `json:"userId"`
}
