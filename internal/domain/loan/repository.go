package loan

import "context"

type Repository interface {
	List(ctx context.Context) ([]Loan, error)
	Get(ctx context.Context, id int) (*Loan, error)
	Create(ctx context.Context, l *Loan) error
	Update(ctx context.Context, l *Loan) error
	Delete(ctx context.Context, id int) error
}
