package remote

import (
	"context"
	"fmt"
	"net/http"

	"crefinso-portal/internal/domain/employment"
)

type EmploymentService struct{ c *Client }

func NewEmploymentService(c *Client) *EmploymentService { return &EmploymentService{c: c} }

func (s *EmploymentService) List(ctx context.Context) ([]employment.Employment, error) {
	var out []employment.Employment
	if err := s.c.getJSON(ctx, "/api/empleos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EmploymentService) Get(ctx context.Context, id int) (*employment.Employment, error) {
	var out employment.Employment
	if err := s.c.getJSON(ctx, fmt.Sprintf("/api/empleos/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *EmploymentService) Create(ctx context.Context, e *employment.Employment) error {
	return s.c.send(ctx, http.MethodPost, "/api/empleos", e)
}

func (s *EmploymentService) Update(ctx context.Context, e *employment.Employment) error {
	return s.c.send(ctx, http.MethodPut, fmt.Sprintf("/api/empleos/%d", e.EmpleoID), e)
}

func (s *EmploymentService) Delete(ctx context.Context, id int) error {
	return s.c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/empleos/%d", id), nil)
}
