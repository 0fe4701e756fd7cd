// Package payment carries the installment-side operations that are more than
// a straight passthrough: the amortization preview shown before registering a
// payment, and the best-effort automatic processing trigger.
package payment

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"crefinso-portal/internal/domain/loan"
	domain "crefinso-portal/internal/domain/payment"
	"crefinso-portal/pkg/amortization"
)

type Usecase struct {
	loans    loan.Repository
	payments domain.Repository
}

func NewUsecase(l loan.Repository, p domain.Repository) *Usecase {
	return &Usecase{loans: l, payments: p}
}

// Preview is the split of one candidate payment against the loan's current
// balance.
type Preview struct {
	PrestamoID  int             `json:"prestamoId"`
	SaldoActual decimal.Decimal `json:"saldoActual"`
	MontoPago   decimal.Decimal `json:"montoPago"`
	Interes     decimal.Decimal `json:"interes"`
	Capital     decimal.Decimal `json:"capital"`
	NuevoSaldo  decimal.Decimal `json:"nuevoSaldo"`
}

// Preview computes interest, capital and the post-payment balance for the
// loan's next period. The current balance is the remaining balance of the
// nearest upcoming installment, or the approved amount when none exist yet.
func (u *Usecase) Preview(ctx context.Context, loanID int, amount decimal.Decimal) (*Preview, error) {
	l, err := u.loans.Get(ctx, loanID)
	if err != nil {
		return nil, err
	}
	upcoming, err := u.payments.ListUpcoming(ctx, loanID)
	if err != nil {
		return nil, err
	}

	balance := l.MontoAprobado
	if len(upcoming) > 0 {
		balance = upcoming[0].SaldoRestante
	}

	interes := amortization.Interest(balance, l.TasaInteres, 1)
	capital := amortization.Capital(balance, amount, l.TasaInteres)
	return &Preview{
		PrestamoID:  loanID,
		SaldoActual: balance,
		MontoPago:   amount,
		Interes:     interes,
		Capital:     capital,
		NuevoSaldo:  amortization.NewBalance(balance, capital),
	}, nil
}

// TriggerAutomatic kicks the backend's automatic payment run. Failures are
// logged and dropped, never surfaced to the caller.
func (u *Usecase) TriggerAutomatic(ctx context.Context) {
	if err := u.payments.ProcessAutomatic(ctx); err != nil {
		log.Printf("procesar-automaticos: %v", err)
	}
}
