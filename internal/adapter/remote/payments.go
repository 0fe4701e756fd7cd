package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"crefinso-portal/internal/domain/payment"
	"crefinso-portal/pkg/dateonly"
)

type PaymentService struct{ c *Client }

func NewPaymentService(c *Client) *PaymentService { return &PaymentService{c: c} }

func (s *PaymentService) List(ctx context.Context) ([]payment.Payment, error) {
	var out []payment.Payment
	if err := s.c.getJSON(ctx, "/api/pagos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PaymentService) Get(ctx context.Context, id int) (*payment.Payment, error) {
	var out payment.Payment
	if err := s.c.getJSON(ctx, fmt.Sprintf("/api/pagos/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PaymentService) Create(ctx context.Context, p *payment.Payment) error {
	return s.c.send(ctx, http.MethodPost, "/api/pagos", p)
}

func (s *PaymentService) Update(ctx context.Context, p *payment.Payment) error {
	return s.c.send(ctx, http.MethodPut, fmt.Sprintf("/api/pagos/%d", p.PagoID), p)
}

func (s *PaymentService) Delete(ctx context.Context, id int) error {
	return s.c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/pagos/%d", id), nil)
}

func (s *PaymentService) ListUpcoming(ctx context.Context, loanID int) ([]payment.Upcoming, error) {
	var out []payment.Upcoming
	if err := s.c.getJSON(ctx, fmt.Sprintf("/api/pagos/futuros/%d", loanID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PaymentService) ListOverdue(ctx context.Context) ([]payment.Payment, error) {
	var out []payment.Payment
	if err := s.c.getJSON(ctx, "/api/pagos/vencidos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PaymentService) ListByDateRange(ctx context.Context, start, end dateonly.Date) ([]payment.Payment, error) {
	q := url.Values{}
	q.Set("startDate", start.String())
	q.Set("endDate", end.String())
	var out []payment.Payment
	if err := s.c.getJSON(ctx, "/api/pagos?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PaymentService) ProcessAutomatic(ctx context.Context) error {
	return s.c.send(ctx, http.MethodPost, "/api/pagos/procesar-automaticos", nil)
}
