package payment

import (
	"github.com/shopspring/decimal"

	"crefinso-portal/pkg/dateonly"
)

const (
	EstadoPendiente = "Pendiente"
	EstadoPagado    = "Pagado"
	EstadoVencido   = "Vencido"
)

// Payment is one installment event against a loan. This is the canonical
// schema: older backend revisions dropped InteresPagado/CapitalPagado or sent
// SaldoAcumulado as a string; this layer only speaks the full typed shape.
type Payment struct {
	PagoID        int             `json:"pagoId"`
	PrestamoID    int             `json:"prestamoId"`
	FechaPago     dateonly.Date   `json:"fechaPago"`
	MontoAPagar   decimal.Decimal `json:"montoAPagar"`
	MontoPagado   decimal.Decimal `json:"montoPagado"`
	InteresPagado decimal.Decimal `json:"interesPagado"`
	CapitalPagado decimal.Decimal `json:"capitalPagado"`
	SaldoRestante decimal.Decimal `json:"saldoRestante"`
	Estado        string          `json:"estado"`
	ClienteID     int             `json:"clienteId"`
}

// Upcoming is the shape of /api/pagos/futuros rows: a pending installment
// already enriched server-side with the borrower's name.
type Upcoming struct {
	PagoID        int             `json:"pagoId"`
	PrestamoID    int             `json:"prestamoId"`
	FechaPago     dateonly.Date   `json:"fechaPago"`
	MontoAPagar   decimal.Decimal `json:"montoAPagar"`
	MontoPagado   decimal.Decimal `json:"montoPagado"`
	InteresPagado decimal.Decimal `json:"interesPagado"`
	CapitalPagado decimal.Decimal `json:"capitalPagado"`
	SaldoRestante decimal.Decimal `json:"saldoRestante"`
	Estado        string          `json:"estado"`
	ClienteNombre string          `json:"clienteNombre"`
	PuedePagar    bool            `json:"puedePagar"`
}
