package request

import "context"

type Repository interface {
	List(ctx context.Context) ([]Request, error)
	Get(ctx context.Context, id int) (*Request, error)
	Create(ctx context.Context, r *Request) error
	Update(ctx context.Context, r *Request) error
	Delete(ctx context.Context, id int) error
}
