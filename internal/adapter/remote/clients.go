package remote

import (
	"context"
	"fmt"
	"net/http"

	"crefinso-portal/internal/domain/client"
)

type ClientService struct{ c *Client }

func NewClientService(c *Client) *ClientService { return &ClientService{c: c} }

func (s *ClientService) List(ctx context.Context) ([]client.Client, error) {
	var out []client.Client
	if err := s.c.getJSON(ctx, "/api/clientes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ClientService) Get(ctx context.Context, id int) (*client.Client, error) {
	var out client.Client
	if err := s.c.getJSON(ctx, fmt.Sprintf("/api/clientes/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClientService) Create(ctx context.Context, cl *client.Client) error {
	return s.c.send(ctx, http.MethodPost, "/api/clientes", cl)
}

func (s *ClientService) Update(ctx context.Context, cl *client.Client) error {
	return s.c.send(ctx, http.MethodPut, fmt.Sprintf("/api/clientes/%d", cl.ClienteID), cl)
}

func (s *ClientService) Delete(ctx context.Context, id int) error {
	return s.c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/clientes/%d", id), nil)
}
