package refund

import (
	"time"

	"github.com/shopspring/decimal"
)

// Refund percentage tiers by whole days between now and the service date.
var (
	rateFull = decimal.NewFromInt(1)             // >= 7 days out
	rateNear = decimal.RequireFromString("0.90") // 3-6 days out
	rateLate = decimal.RequireFromString("0.80") // < 3 days out
)

const (
	fullRefundDays = 7
	nearRefundDays = 3
)

// Compute returns the refund owed for cancelling a paid reservation scheduled
// at serviceDate, as of now. Pure function: no I/O, no side effects. The
// result is rounded half-up to 2 decimal places.
func Compute(now, serviceDate time.Time, paymentAmount decimal.Decimal) decimal.Decimal {
	days := wholeDaysUntil(now, serviceDate)

	var rate decimal.Decimal
	switch {
	case days >= fullRefundDays:
		rate = rateFull
	case days >= nearRefundDays:
		rate = rateNear
	default:
		rate = rateLate
	}

	return paymentAmount.Mul(rate).Round(2)
}

func wholeDaysUntil(now, serviceDate time.Time) int {
	diff := serviceDate.Sub(now)
	if diff < 0 {
		return 0
	}
	return int(diff / (24 * time.Hour))
}
