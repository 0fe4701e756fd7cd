package employment

import "context"

type Repository interface {
	List(ctx context.Context) ([]Employment, error)
	Get(ctx context.Context, id int) (*Employment, error)
	Create(ctx context.Context, e *Employment) error
	Update(ctx context.Context, e *Employment) error
	Delete(ctx context.Context, id int) error
}
