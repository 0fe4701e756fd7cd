// Package dashboard joins the flat collections served by the remote API into
// the enriched views the portal's landing page needs. Everything is fetched
// once and indexed by id; no per-row sub-fetches.
package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"crefinso-portal/internal/domain/client"
	"crefinso-portal/internal/domain/loan"
	"crefinso-portal/internal/domain/payment"
	"crefinso-portal/internal/domain/request"
	"crefinso-portal/internal/domain/user"
	"crefinso-portal/pkg/dateonly"
)

// Fallback label when a foreign key does not resolve. Rows are kept, never
// dropped.
const unknownName = "Desconocido"

const topN = 3

type Usecase struct {
	clients  client.Repository
	requests request.Repository
	loans    loan.Repository
	payments payment.Repository
	users    user.Repository

	now func() time.Time
}

func NewUsecase(c client.Repository, r request.Repository, l loan.Repository, p payment.Repository, u user.Repository) *Usecase {
	return &Usecase{clients: c, requests: r, loans: l, payments: p, users: u, now: time.Now}
}

type LoanSummary struct {
	loan.Loan
	ClienteNombre string `json:"clienteNombre"`
}

type PaymentSummary struct {
	payment.Payment
	ClienteNombre string `json:"clienteNombre"`
}

type Overview struct {
	ActiveClients    int              `json:"activeClients"`
	ActiveLoans      int              `json:"activeLoans"`
	PendingRequests  int              `json:"pendingRequests"`
	DelinquencyRate  decimal.Decimal  `json:"delinquencyRate"`
	RecentLoans      []LoanSummary    `json:"recentLoans"`
	UpcomingPayments []PaymentSummary `json:"upcomingPayments"`
	RecentPayments   []PaymentSummary `json:"recentPayments"`
}

// FullPayment is one installment with its whole ownership chain resolved:
// Payment → Loan → Request → Client, plus the analyst user on the request.
// Missing hops leave the object nil and the name "Desconocido".
type FullPayment struct {
	Pago          payment.Payment  `json:"pago"`
	Prestamo      *loan.Loan       `json:"prestamo"`
	Solicitud     *request.Request `json:"solicitud"`
	Cliente       *client.Client   `json:"cliente"`
	Usuario       *user.User       `json:"usuario"`
	ClienteNombre string           `json:"clienteNombre"`
}

// index holds the id-keyed lookups built once per aggregation.
type index struct {
	loans    map[int]loan.Loan
	requests map[int]request.Request
	clients  map[int]client.Client
	users    map[int]user.User
}

func buildIndex(loans []loan.Loan, requests []request.Request, clients []client.Client, users []user.User) index {
	ix := index{
		loans:    make(map[int]loan.Loan, len(loans)),
		requests: make(map[int]request.Request, len(requests)),
		clients:  make(map[int]client.Client, len(clients)),
		users:    make(map[int]user.User, len(users)),
	}
	for _, l := range loans {
		ix.loans[l.PrestamoID] = l
	}
	for _, r := range requests {
		ix.requests[r.SolicitudID] = r
	}
	for _, c := range clients {
		ix.clients[c.ClienteID] = c
	}
	for _, u := range users {
		ix.users[u.UserID] = u
	}
	return ix
}

// clientNameForLoan walks Loan → Request → Client.
func (ix index) clientNameForLoan(l loan.Loan) string {
	r, ok := ix.requests[l.SolicitudID]
	if !ok {
		return unknownName
	}
	c, ok := ix.clients[r.ClienteID]
	if !ok {
		return unknownName
	}
	return c.Nombre
}

// clientNameForPayment walks Payment → Loan → Request → Client.
func (ix index) clientNameForPayment(p payment.Payment) string {
	l, ok := ix.loans[p.PrestamoID]
	if !ok {
		return unknownName
	}
	return ix.clientNameForLoan(l)
}

func (u *Usecase) Overview(ctx context.Context) (*Overview, error) {
	clients, err := u.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := u.requests.List(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := u.payments.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}
	overdue, err := u.payments.ListOverdue(ctx)
	if err != nil {
		return nil, err
	}

	ix := buildIndex(loans, requests, clients, users)
	today := dateonly.FromTime(u.now())

	pending := 0
	for _, r := range requests {
		if r.Estado == request.EstadoPendiente {
			pending++
		}
	}

	return &Overview{
		ActiveClients:    len(clients),
		ActiveLoans:      len(loans),
		PendingRequests:  pending,
		DelinquencyRate:  delinquencyRate(loans, overdue),
		RecentLoans:      recentLoans(loans, ix),
		UpcomingPayments: upcomingPayments(payments, ix, today),
		RecentPayments:   recentPayments(payments, ix),
	}, nil
}

// recentLoans: newest start date first, top 3. Ties keep fetch order (stable
// sort; no secondary key is defined).
func recentLoans(loans []loan.Loan, ix index) []LoanSummary {
	sorted := make([]loan.Loan, len(loans))
	copy(sorted, loans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FechaInicio.After(sorted[j].FechaInicio.Time)
	})
	out := make([]LoanSummary, 0, topN)
	for _, l := range sorted {
		if len(out) == topN {
			break
		}
		out = append(out, LoanSummary{Loan: l, ClienteNombre: ix.clientNameForLoan(l)})
	}
	return out
}

// upcomingPayments: due today or later, nearest first, top 3.
func upcomingPayments(payments []payment.Payment, ix index, today dateonly.Date) []PaymentSummary {
	due := make([]payment.Payment, 0, len(payments))
	for _, p := range payments {
		if !p.FechaPago.Before(today.Time) {
			due = append(due, p)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].FechaPago.Before(due[j].FechaPago.Time)
	})
	out := make([]PaymentSummary, 0, topN)
	for _, p := range due {
		if len(out) == topN {
			break
		}
		out = append(out, PaymentSummary{Payment: p, ClienteNombre: ix.clientNameForPayment(p)})
	}
	return out
}

// recentPayments: settled installments, newest first, top 3.
func recentPayments(payments []payment.Payment, ix index) []PaymentSummary {
	paid := make([]payment.Payment, 0, len(payments))
	for _, p := range payments {
		if p.Estado == payment.EstadoPagado {
			paid = append(paid, p)
		}
	}
	sort.SliceStable(paid, func(i, j int) bool {
		return paid[i].FechaPago.After(paid[j].FechaPago.Time)
	})
	out := make([]PaymentSummary, 0, topN)
	for _, p := range paid {
		if len(out) == topN {
			break
		}
		out = append(out, PaymentSummary{Payment: p, ClienteNombre: ix.clientNameForPayment(p)})
	}
	return out
}

// delinquencyRate = distinct overdue loans / total loans * 100, 2 decimals.
// Zero loans means zero, not a division error.
func delinquencyRate(loans []loan.Loan, overdue []payment.Payment) decimal.Decimal {
	if len(loans) == 0 {
		return decimal.Zero
	}
	distinct := make(map[int]struct{}, len(overdue))
	for _, p := range overdue {
		distinct[p.PrestamoID] = struct{}{}
	}
	return decimal.NewFromInt(int64(len(distinct))).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(len(loans)))).
		Round(2)
}

func (u *Usecase) FullPayment(ctx context.Context, paymentID int) (*FullPayment, error) {
	p, err := u.payments.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	loans, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := u.requests.List(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := u.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}
	ix := buildIndex(loans, requests, clients, users)

	full := &FullPayment{Pago: *p, ClienteNombre: unknownName}
	l, ok := ix.loans[p.PrestamoID]
	if !ok {
		return full, nil
	}
	full.Prestamo = &l
	r, ok := ix.requests[l.SolicitudID]
	if !ok {
		return full, nil
	}
	full.Solicitud = &r
	if usr, ok := ix.users[r.UserID]; ok {
		full.Usuario = &usr
	}
	c, ok := ix.clients[r.ClienteID]
	if !ok {
		return full, nil
	}
	full.Cliente = &c
	full.ClienteNombre = c.Nombre
	return full, nil
}
