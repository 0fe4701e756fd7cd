package client

import "context"

type Repository interface {
	List(ctx context.Context) ([]Client, error)
	Get(ctx context.Context, id int) (*Client, error)
	Create(ctx context.Context, c *Client) error
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id int) error
}
