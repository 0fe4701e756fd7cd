// Package amortization holds the installment arithmetic for a single payment
// period. Rates arrive as annual percentages (12.0 means 12% a year) and are
// converted to a monthly fraction; every result is rounded to 2 decimal places,
// half away from zero.
package amortization

import "github.com/shopspring/decimal"

var twelveHundred = decimal.NewFromInt(1200)

// Interest returns the interest owed on balance over the given number of
// monthly periods: balance * rate/1200 * periods.
func Interest(balance, annualRatePct decimal.Decimal, periods int) decimal.Decimal {
	return balance.
		Mul(annualRatePct).
		Mul(decimal.NewFromInt(int64(periods))).
		Div(twelveHundred).
		Round(2)
}

// Capital returns the portion of a payment that amortizes principal after one
// period's interest is taken out.
func Capital(balance, payment, annualRatePct decimal.Decimal) decimal.Decimal {
	return payment.Sub(Interest(balance, annualRatePct, 1)).Round(2)
}

// NewBalance returns the remaining balance after applying a capital payment.
// Negative balances pass through untouched; keeping loans positive is the
// caller's job.
func NewBalance(balance, capital decimal.Decimal) decimal.Decimal {
	return balance.Sub(capital).Round(2)
}
