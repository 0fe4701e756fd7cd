package remote

import (
	"context"
	"fmt"
	"net/http"

	"crefinso-portal/internal/domain/user"
)

type UserService struct{ c *Client }

func NewUserService(c *Client) *UserService { return &UserService{c: c} }

func (s *UserService) List(ctx context.Context) ([]user.User, error) {
	var out []user.User
	if err := s.c.getJSON(ctx, "/api/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id int) (*user.User, error) {
	var out user.User
	if err := s.c.getJSON(ctx, fmt.Sprintf("/api/users/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UserService) Create(ctx context.Context, in *user.Input) error {
	return s.c.send(ctx, http.MethodPost, "/api/users", in)
}

func (s *UserService) Update(ctx context.Context, in *user.Input) error {
	return s.c.send(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", in.UserID), in)
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil)
}
