package remote

import (
	"context"
	"fmt"
	"net/http"

	"crefinso-portal/internal/domain/request"
)

type RequestService struct{ c *Client }

func NewRequestService(c *Client) *RequestService { return &RequestService{c: c} }

func (s *RequestService) List(ctx context.Context) ([]request.Request, error) {
	var out []request.Request
	if err := s.c.getJSON(ctx, "/api/solicitudes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RequestService) Get(ctx context.Context, id int) (*request.Request, error) {
	var out request.Request
	if err := s.c.getJSON(ctx, fmt.Sprintf("/api/solicitudes/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RequestService) Create(ctx context.Context, r *request.Request) error {
	return s.c.send(ctx, http.MethodPost, "/api/solicitudes", r)
}

func (s *RequestService) Update(ctx context.Context, r *request.Request) error {
	return s.c.send(ctx, http.MethodPut, fmt.Sprintf("/api/solicitudes/%d", r.SolicitudID), r)
}

func (s *RequestService) Delete(ctx context.Context, id int) error {
	return s.c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/solicitudes/%d", id), nil)
}
