package remote

import "context"

// Credentials is the login payload for POST /api/users/login.
type Credentials struct {
	UserName     string `json:"userName"`
	UserPassword string `json:"userPassword"`
}

// LoginResult is what the API hands back on a successful login. Token is
// opaque to this layer beyond its expiration claim.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

type AuthService struct{ c *Client }

func NewAuthService(c *Client) *AuthService { return &AuthService{c: c} }

func (s *AuthService) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	var out LoginResult
	if err := s.c.postJSON(ctx, "/api/users/login", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
