package remote

import (
	"context"
	"fmt"
	"net/http"

	"crefinso-portal/internal/domain/loan"
)

type LoanService struct{ c *Client }

func NewLoanService(c *Client) *LoanService { return &LoanService{c: c} }

func (s *LoanService) List(ctx context.Context) ([]loan.Loan, error) {
	var out []loan.Loan
	if err := s.c.getJSON(ctx, "/api/prestamos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LoanService) Get(ctx context.Context, id int) (*loan.Loan, error) {
	var out loan.Loan
	if err := s.c.getJSON(ctx, fmt.Sprintf("/api/prestamos/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *LoanService) Create(ctx context.Context, l *loan.Loan) error {
	return s.c.send(ctx, http.MethodPost, "/api/prestamos", l)
}

func (s *LoanService) Update(ctx context.Context, l *loan.Loan) error {
	return s.c.send(ctx, http.MethodPut, fmt.Sprintf("/api/prestamos/%d", l.PrestamoID), l)
}

func (s *LoanService) Delete(ctx context.Context, id int) error {
	return s.c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/prestamos/%d", id), nil)
}
