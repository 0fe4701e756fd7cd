// Package report aggregates payment collections over calendar-date ranges.
// Sums are exact decimal arithmetic; the range filter itself runs server-side.
package report

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"crefinso-portal/internal/domain/payment"
	"crefinso-portal/pkg/dateonly"
)

type Usecase struct {
	payments payment.Repository
}

func NewUsecase(p payment.Repository) *Usecase { return &Usecase{payments: p} }

type Report struct {
	FechaInicio      dateonly.Date     `json:"fechaInicio"`
	FechaFin         dateonly.Date     `json:"fechaFin"`
	TotalPagos       int               `json:"totalPagos"`
	TotalMontoPagado decimal.Decimal   `json:"totalMontoPagado"`
	Pagos            []payment.Payment `json:"pagos"`
}

// Range fetches the payments with fechaPago in [start, end] inclusive and
// totals what was actually paid.
func (u *Usecase) Range(ctx context.Context, start, end dateonly.Date) (*Report, error) {
	if end.Before(start.Time) {
		return nil, errors.New("end date before start date")
	}
	pagos, err := u.payments.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, p := range pagos {
		total = total.Add(p.MontoPagado)
	}
	return &Report{
		FechaInicio:      start,
		FechaFin:         end,
		TotalPagos:       len(pagos),
		TotalMontoPagado: total,
		Pagos:            pagos,
	}, nil
}

// Weekly covers weekStart plus the following six days.
func (u *Usecase) Weekly(ctx context.Context, weekStart dateonly.Date) (*Report, error) {
	return u.Range(ctx, weekStart, weekStart.AddDays(6))
}

// Monthly covers the whole calendar month.
func (u *Usecase) Monthly(ctx context.Context, year int, month time.Month) (*Report, error) {
	first := dateonly.New(year, month, 1)
	last := dateonly.New(year, month+1, 1).AddDays(-1)
	return u.Range(ctx, first, last)
}
