package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"crefinso-portal/internal/domain/payment"
	"crefinso-portal/internal/testutil/repomock"
	"crefinso-portal/internal/usecase/report"
	"crefinso-portal/pkg/dateonly"
)

func reportGet(e *echo.Echo, path string, query url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path+"?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestReportRange(t *testing.T) {
	payments := &repomock.Payments{
		ListByDateRangeFn: func(ctx context.Context, start, end dateonly.Date) ([]payment.Payment, error) {
			if start.String() != "2024-01-01" || end.String() != "2024-01-31" {
				t.Fatalf("range = %s..%s", start, end)
			}
			return []payment.Payment{
				{PagoID: 1, MontoPagado: decimal.RequireFromString("100.50")},
				{PagoID: 2, MontoPagado: decimal.RequireFromString("49.50")},
			}, nil
		},
	}
	h := NewReportHandler(report.NewUsecase(payments))
	e := echo.New()
	e.Validator = NewValidator()

	c, rec := reportGet(e, "/reports/range", url.Values{"start": {"2024-01-01"}, "end": {"2024-01-31"}})
	if err := h.Range(c); err != nil {
		t.Fatalf("Range() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var rep struct {
		TotalPagos       int    `json:"totalPagos"`
		TotalMontoPagado string `json:"totalMontoPagado"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rep.TotalPagos != 2 || rep.TotalMontoPagado != "150" {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

func TestReportRange_BadDates(t *testing.T) {
	h := NewReportHandler(report.NewUsecase(&repomock.Payments{}))
	e := echo.New()
	e.Validator = NewValidator()

	c, rec := reportGet(e, "/reports/range", url.Values{"start": {"01/01/2024"}, "end": {"2024-01-31"}})
	if err := h.Range(c); err != nil {
		t.Fatalf("Range() error = %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestReportRange_EndBeforeStart(t *testing.T) {
	h := NewReportHandler(report.NewUsecase(&repomock.Payments{}))
	e := echo.New()
	e.Validator = NewValidator()

	c, rec := reportGet(e, "/reports/range", url.Values{"start": {"2024-02-01"}, "end": {"2024-01-01"}})
	if err := h.Range(c); err != nil {
		t.Fatalf("Range() error = %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestReportWeekly(t *testing.T) {
	var gotStart, gotEnd string
	payments := &repomock.Payments{
		ListByDateRangeFn: func(ctx context.Context, start, end dateonly.Date) ([]payment.Payment, error) {
			gotStart, gotEnd = start.String(), end.String()
			return nil, nil
		},
	}
	h := NewReportHandler(report.NewUsecase(payments))
	e := echo.New()
	e.Validator = NewValidator()

	c, rec := reportGet(e, "/reports/weekly", url.Values{"weekStart": {"2024-01-01"}})
	if err := h.Weekly(c); err != nil {
		t.Fatalf("Weekly() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if gotStart != "2024-01-01" || gotEnd != "2024-01-07" {
		t.Fatalf("week = %s..%s", gotStart, gotEnd)
	}
}

func TestReportMonthly_InvalidMonth(t *testing.T) {
	h := NewReportHandler(report.NewUsecase(&repomock.Payments{}))
	e := echo.New()
	e.Validator = NewValidator()

	c, rec := reportGet(e, "/reports/monthly", url.Values{"year": {"2024"}, "month": {"13"}})
	if err := h.Monthly(c); err != nil {
		t.Fatalf("Monthly() error = %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestReportMonthly(t *testing.T) {
	var gotStart, gotEnd string
	payments := &repomock.Payments{
		ListByDateRangeFn: func(ctx context.Context, start, end dateonly.Date) ([]payment.Payment, error) {
			gotStart, gotEnd = start.String(), end.String()
			return nil, nil
		},
	}
	h := NewReportHandler(report.NewUsecase(payments))
	e := echo.New()
	e.Validator = NewValidator()

	c, rec := reportGet(e, "/reports/monthly", url.Values{"year": {"2024"}, "month": {"2"}})
	if err := h.Monthly(c); err != nil {
		t.Fatalf("Monthly() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if gotStart != "2024-02-01" || gotEnd != "2024-02-29" {
		t.Fatalf("month = %s..%s", gotStart, gotEnd)
	}
}
