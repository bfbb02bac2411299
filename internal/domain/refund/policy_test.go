//go:build unit

package refund_test

import (
	"testing"
	"time"

	"courtbook/internal/domain/refund"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	amount := decimal.NewFromInt(50000)

	tests := []struct {
		name        string
		serviceDate time.Time
		amount      decimal.Decimal
		want        string
	}{
		{
			name:        "ten days out refunds everything",
			serviceDate: now.Add(10 * 24 * time.Hour),
			amount:      amount,
			want:        "50000.00",
		},
		{
			name:        "exactly seven days out refunds everything",
			serviceDate: now.Add(7 * 24 * time.Hour),
			amount:      amount,
			want:        "50000.00",
		},
		{
			name:        "just under seven days drops to ninety percent",
			serviceDate: now.Add(7*24*time.Hour - time.Minute),
			amount:      amount,
			want:        "45000.00",
		},
		{
			name:        "five days out refunds ninety percent",
			serviceDate: now.Add(5 * 24 * time.Hour),
			amount:      amount,
			want:        "45000.00",
		},
		{
			name:        "exactly three days out refunds ninety percent",
			serviceDate: now.Add(3 * 24 * time.Hour),
			amount:      amount,
			want:        "45000.00",
		},
		{
			name:        "two days out refunds eighty percent",
			serviceDate: now.Add(2 * 24 * time.Hour),
			amount:      amount,
			want:        "40000.00",
		},
		{
			name:        "same day refunds eighty percent",
			serviceDate: now.Add(2 * time.Hour),
			amount:      amount,
			want:        "40000.00",
		},
		{
			name:        "service date already passed still refunds eighty percent",
			serviceDate: now.Add(-24 * time.Hour),
			amount:      amount,
			want:        "40000.00",
		},
		{
			name:        "result is rounded to two places",
			serviceDate: now.Add(24 * time.Hour),
			amount:      decimal.RequireFromString("99.99"),
			want:        "79.99",
		},
		{
			name:        "zero amount refunds zero",
			serviceDate: now.Add(24 * time.Hour),
			amount:      decimal.Zero,
			want:        "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := refund.Compute(now, tt.serviceDate, tt.amount)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}
