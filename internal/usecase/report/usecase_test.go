package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"crefinso-portal/internal/domain/payment"
	"crefinso-portal/internal/testutil/repomock"
	"crefinso-portal/pkg/dateonly"
)

func dec(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestRange_ExactDecimalSum(t *testing.T) {
	rows := []payment.Payment{
		{PagoID: 1, MontoPagado: dec("0.10")},
		{PagoID: 2, MontoPagado: dec("0.20")},
		{PagoID: 3, MontoPagado: dec("0.30")},
	}
	u := NewUsecase(&repomock.Payments{
		ListByDateRangeFn: func(ctx context.Context, start, end dateonly.Date) ([]payment.Payment, error) {
			return rows, nil
		},
	})

	rep, err := u.Range(context.Background(), dateonly.New(2024, 1, 1), dateonly.New(2024, 1, 31))
	if err != nil {
		t.Fatalf("Range err: %v", err)
	}
	if rep.TotalPagos != 3 {
		t.Fatalf("count = %d, want 3", rep.TotalPagos)
	}
	// 0.10+0.20+0.30 must be exactly 0.60, no binary-float drift.
	if !rep.TotalMontoPagado.Equal(dec("0.60")) {
		t.Fatalf("total = %s, want 0.60", rep.TotalMontoPagado)
	}
}

func TestRange_RejectsInvertedBounds(t *testing.T) {
	u := NewUsecase(&repomock.Payments{})
	if _, err := u.Range(context.Background(), dateonly.New(2024, 2, 1), dateonly.New(2024, 1, 1)); err == nil {
		t.Fatal("expected error for end before start")
	}
}

func TestWeekly_CoversSevenDaysInclusive(t *testing.T) {
	var gotStart, gotEnd dateonly.Date
	u := NewUsecase(&repomock.Payments{
		ListByDateRangeFn: func(ctx context.Context, start, end dateonly.Date) ([]payment.Payment, error) {
			gotStart, gotEnd = start, end
			return nil, nil
		},
	})

	rep, err := u.Weekly(context.Background(), dateonly.New(2024, time.January, 1))
	if err != nil {
		t.Fatalf("Weekly err: %v", err)
	}
	if gotStart.String() != "2024-01-01" || gotEnd.String() != "2024-01-07" {
		t.Fatalf("bounds = %s..%s, want 2024-01-01..2024-01-07", gotStart, gotEnd)
	}
	if rep.TotalPagos != 0 || !rep.TotalMontoPagado.IsZero() {
		t.Fatalf("empty report = %+v", rep)
	}
}

func TestMonthly_Bounds(t *testing.T) {
	var gotStart, gotEnd dateonly.Date
	u := NewUsecase(&repomock.Payments{
		ListByDateRangeFn: func(ctx context.Context, start, end dateonly.Date) ([]payment.Payment, error) {
			gotStart, gotEnd = start, end
			return nil, nil
		},
	})

	// February of a leap year.
	if _, err := u.Monthly(context.Background(), 2024, time.February); err != nil {
		t.Fatalf("Monthly err: %v", err)
	}
	if gotStart.String() != "2024-02-01" || gotEnd.String() != "2024-02-29" {
		t.Fatalf("bounds = %s..%s, want 2024-02-01..2024-02-29", gotStart, gotEnd)
	}

	// December wraps the year for the exclusive upper bound.
	if _, err := u.Monthly(context.Background(), 2023, time.December); err != nil {
		t.Fatalf("Monthly err: %v", err)
	}
	if gotStart.String() != "2023-12-01" || gotEnd.String() != "2023-12-31" {
		t.Fatalf("bounds = %s..%s, want 2023-12-01..2023-12-31", gotStart, gotEnd)
	}
}
