package amortization

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestInterest_MonthlyFraction(t *testing.T) {
	// 1000 at 12% annual over one month = 1000 * 0.01 = 10.00
	got := Interest(dec("1000"), dec("12"), 1)
	if !got.Equal(dec("10")) {
		t.Fatalf("Interest = %s, want 10", got)
	}
}

func TestInterest_MultiplePeriods(t *testing.T) {
	// 2500 at 18% annual over 3 months = 2500 * 0.015 * 3 = 112.50
	got := Interest(dec("2500"), dec("18"), 3)
	if !got.Equal(dec("112.50")) {
		t.Fatalf("Interest = %s, want 112.50", got)
	}
}

func TestInterest_ZeroPeriods(t *testing.T) {
	if got := Interest(dec("1000"), dec("12"), 0); !got.IsZero() {
		t.Fatalf("Interest with 0 periods = %s, want 0", got)
	}
}

func TestInterest_RoundsHalfAwayFromZero(t *testing.T) {
	// 1234.56 * 7.5 / 1200 = 7.716 → 7.72
	got := Interest(dec("1234.56"), dec("7.5"), 1)
	if !got.Equal(dec("7.72")) {
		t.Fatalf("Interest = %s, want 7.72", got)
	}
}

func TestCapital_PlusInterestEqualsPayment(t *testing.T) {
	cases := []struct{ balance, payment, rate string }{
		{"1000", "150", "12"},
		{"987.65", "210.40", "24.5"},
		{"5000", "450.33", "36"},
	}
	tolerance := dec("0.01")
	for _, tc := range cases {
		b, p, r := dec(tc.balance), dec(tc.payment), dec(tc.rate)
		sum := Capital(b, p, r).Add(Interest(b, r, 1))
		if sum.Sub(p).Abs().GreaterThan(tolerance) {
			t.Fatalf("capital+interest = %s, want %s (±0.01)", sum, p)
		}
	}
}

func TestNewBalance(t *testing.T) {
	b := dec("1000")
	cap := Capital(b, dec("150"), dec("12")) // 150 - 10 = 140
	if !cap.Equal(dec("140")) {
		t.Fatalf("Capital = %s, want 140", cap)
	}
	nb := NewBalance(b, cap)
	if !nb.Equal(dec("860")) {
		t.Fatalf("NewBalance = %s, want 860", nb)
	}
}

func TestNewBalance_NegativePassesThrough(t *testing.T) {
	got := NewBalance(dec("-50"), dec("25"))
	if !got.Equal(dec("-75")) {
		t.Fatalf("NewBalance = %s, want -75", got)
	}
}
