// Package repomock holds function-backed mocks for the remote-backed
// repository interfaces. Only the methods a test sets are live; the rest
// return context.Canceled so an unexpected call fails loudly.
package repomock

import (
	"context"

	"crefinso-portal/internal/domain/client"
	"crefinso-portal/internal/domain/employment"
	"crefinso-portal/internal/domain/loan"
	"crefinso-portal/internal/domain/payment"
	"crefinso-portal/internal/domain/request"
	"crefinso-portal/internal/domain/user"
	"crefinso-portal/pkg/dateonly"
)

type Clients struct {
	ListFn   func(ctx context.Context) ([]client.Client, error)
	GetFn    func(ctx context.Context, id int) (*client.Client, error)
	CreateFn func(ctx context.Context, c *client.Client) error
	UpdateFn func(ctx context.Context, c *client.Client) error
	DeleteFn func(ctx context.Context, id int) error
}

func (m *Clients) List(ctx context.Context) ([]client.Client, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}
func (m *Clients) Get(ctx context.Context, id int) (*client.Client, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Clients) Create(ctx context.Context, c *client.Client) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}
func (m *Clients) Update(ctx context.Context, c *client.Client) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, c)
	}
	return nil
}
func (m *Clients) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type Requests struct {
	ListFn   func(ctx context.Context) ([]request.Request, error)
	GetFn    func(ctx context.Context, id int) (*request.Request, error)
	CreateFn func(ctx context.Context, r *request.Request) error
	UpdateFn func(ctx context.Context, r *request.Request) error
	DeleteFn func(ctx context.Context, id int) error
}

func (m *Requests) List(ctx context.Context) ([]request.Request, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}
func (m *Requests) Get(ctx context.Context, id int) (*request.Request, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Requests) Create(ctx context.Context, r *request.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *Requests) Update(ctx context.Context, r *request.Request) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, r)
	}
	return nil
}
func (m *Requests) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type Loans struct {
	ListFn   func(ctx context.Context) ([]loan.Loan, error)
	GetFn    func(ctx context.Context, id int) (*loan.Loan, error)
	CreateFn func(ctx context.Context, l *loan.Loan) error
	UpdateFn func(ctx context.Context, l *loan.Loan) error
	DeleteFn func(ctx context.Context, id int) error
}

func (m *Loans) List(ctx context.Context) ([]loan.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}
func (m *Loans) Get(ctx context.Context, id int) (*loan.Loan, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Loans) Create(ctx context.Context, l *loan.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}
func (m *Loans) Update(ctx context.Context, l *loan.Loan) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, l)
	}
	return nil
}
func (m *Loans) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type Payments struct {
	ListFn            func(ctx context.Context) ([]payment.Payment, error)
	GetFn             func(ctx context.Context, id int) (*payment.Payment, error)
	CreateFn          func(ctx context.Context, p *payment.Payment) error
	UpdateFn          func(ctx context.Context, p *payment.Payment) error
	DeleteFn          func(ctx context.Context, id int) error
	ListUpcomingFn    func(ctx context.Context, loanID int) ([]payment.Upcoming, error)
	ListOverdueFn     func(ctx context.Context) ([]payment.Payment, error)
	ListByDateRangeFn func(ctx context.Context, start, end dateonly.Date) ([]payment.Payment, error)
	ProcessAutoFn     func(ctx context.Context) error
}

func (m *Payments) List(ctx context.Context) ([]payment.Payment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}
func (m *Payments) Get(ctx context.Context, id int) (*payment.Payment, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Payments) Create(ctx context.Context, p *payment.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *Payments) Update(ctx context.Context, p *payment.Payment) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, p)
	}
	return nil
}
func (m *Payments) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
func (m *Payments) ListUpcoming(ctx context.Context, loanID int) ([]payment.Upcoming, error) {
	if m.ListUpcomingFn != nil {
		return m.ListUpcomingFn(ctx, loanID)
	}
	return nil, context.Canceled
}
func (m *Payments) ListOverdue(ctx context.Context) ([]payment.Payment, error) {
	if m.ListOverdueFn != nil {
		return m.ListOverdueFn(ctx)
	}
	return nil, context.Canceled
}
func (m *Payments) ListByDateRange(ctx context.Context, start, end dateonly.Date) ([]payment.Payment, error) {
	if m.ListByDateRangeFn != nil {
		return m.ListByDateRangeFn(ctx, start, end)
	}
	return nil, context.Canceled
}
func (m *Payments) ProcessAutomatic(ctx context.Context) error {
	if m.ProcessAutoFn != nil {
		return m.ProcessAutoFn(ctx)
	}
	return nil
}

type Users struct {
	ListFn   func(ctx context.Context) ([]user.User, error)
	GetFn    func(ctx context.Context, id int) (*user.User, error)
	CreateFn func(ctx context.Context, in *user.Input) error
	UpdateFn func(ctx context.Context, in *user.Input) error
	DeleteFn func(ctx context.Context, id int) error
}

func (m *Users) List(ctx context.Context) ([]user.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}
func (m *Users) Get(ctx context.Context, id int) (*user.User, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Users) Create(ctx context.Context, in *user.Input) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, in)
	}
	return nil
}
func (m *Users) Update(ctx context.Context, in *user.Input) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, in)
	}
	return nil
}
func (m *Users) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type Employments struct {
	ListFn   func(ctx context.Context) ([]employment.Employment, error)
	GetFn    func(ctx context.Context, id int) (*employment.Employment, error)
	CreateFn func(ctx context.Context, e *employment.Employment) error
	UpdateFn func(ctx context.Context, e *employment.Employment) error
	DeleteFn func(ctx context.Context, id int) error
}

func (m *Employments) List(ctx context.Context) ([]employment.Employment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}
func (m *Employments) Get(ctx context.Context, id int) (*employment.Employment, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Employments) Create(ctx context.Context, e *employment.Employment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}
func (m *Employments) Update(ctx context.Context, e *employment.Employment) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, e)
	}
	return nil
}
func (m *Employments) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
