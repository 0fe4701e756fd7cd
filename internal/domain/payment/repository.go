package payment

import (
	"context"

	"crefinso-portal/pkg/dateonly"
)

type Repository interface {
	List(ctx context.Context) ([]Payment, error)
	Get(ctx context.Context, id int) (*Payment, error)
	Create(ctx context.Context, p *Payment) error
	Update(ctx context.Context, p *Payment) error
	Delete(ctx context.Context, id int) error

	// ListUpcoming returns the pending installments of one loan, nearest first.
	ListUpcoming(ctx context.Context, loanID int) ([]Upcoming, error)
	// ListOverdue returns every installment past due across all loans.
	ListOverdue(ctx context.Context) ([]Payment, error)
	// ListByDateRange is constrained server-side to fechaPago in [start, end].
	ListByDateRange(ctx context.Context, start, end dateonly.Date) ([]Payment, error)
	// ProcessAutomatic triggers the backend's automatic payment run.
	ProcessAutomatic(ctx context.Context) error
}
