package user

import "context"

type Repository interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int) (*User, error)
	Create(ctx context.Context, in *Input) error
	Update(ctx context.Context, in *Input) error
	Delete(ctx context.Context, id int) error
}
