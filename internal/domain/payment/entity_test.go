//go:build unit

package payment_test

import (
	"testing"
	"time"

	"courtbook/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailsValidate(t *testing.T) {
	card := payment.Details{
		CardNumber: "4111111111111111",
		CardHolder: "A N Other",
		CardExpiry: "12/27",
		CardCVV:    "123",
	}

	tests := []struct {
		name    string
		method  payment.Method
		details payment.Details
		errIs   error
	}{
		{name: "card with all fields", method: payment.MethodCard, details: card},
		{name: "card missing number", method: payment.MethodCard,
			details: payment.Details{CardHolder: "A", CardExpiry: "12/27", CardCVV: "123"},
			errIs:   payment.ErrMissingCardFields},
		{name: "card with blank cvv", method: payment.MethodCard,
			details: payment.Details{CardNumber: "4111", CardHolder: "A", CardExpiry: "12/27", CardCVV: "  "},
			errIs:   payment.ErrMissingCardFields},
		{name: "wallet with email", method: payment.MethodDigitalWallet,
			details: payment.Details{WalletEmail: "pay@example.com"}},
		{name: "wallet without email", method: payment.MethodDigitalWallet,
			details: payment.Details{},
			errIs:   payment.ErrMissingWalletID},
		{name: "bank transfer needs nothing", method: payment.MethodBankTransfer,
			details: payment.Details{}},
		{name: "unknown method", method: payment.Method("crypto"),
			details: card,
			errIs:   payment.ErrInvalidMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.details.Validate(tt.method)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewApproved(t *testing.T) {
	now := time.Now()
	cost := decimal.NewFromInt(5000)

	t.Run("approved payment records capture and approval time", func(t *testing.T) {
		p, err := payment.NewApproved(uuid.New(), uuid.New(), cost, cost, payment.MethodCard, "sim-ref", now)
		require.NoError(t, err)

		assert.Equal(t, payment.StatusApproved, p.Status())
		assert.True(t, p.IsApproved())
		assert.Equal(t, now, p.CapturedAt())
		require.NotNil(t, p.ApprovedAt())
	})

	t.Run("amount must match the reservation cost exactly", func(t *testing.T) {
		_, err := payment.NewApproved(uuid.New(), uuid.New(),
			decimal.NewFromInt(4999), cost, payment.MethodCard, "sim-ref", now)
		assert.ErrorIs(t, err, payment.ErrAmountMismatch)
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		neg := decimal.NewFromInt(-1)
		_, err := payment.NewApproved(uuid.New(), uuid.New(), neg, neg, payment.MethodCard, "sim-ref", now)
		assert.ErrorIs(t, err, payment.ErrNegativeAmount)
	})

	t.Run("unknown method is rejected", func(t *testing.T) {
		_, err := payment.NewApproved(uuid.New(), uuid.New(), cost, cost, payment.Method("crypto"), "sim-ref", now)
		assert.ErrorIs(t, err, payment.ErrInvalidMethod)
	})
}

func TestMarkRefunded(t *testing.T) {
	now := time.Now()
	cost := decimal.NewFromInt(5000)

	t.Run("approved payment can be refunded once", func(t *testing.T) {
		p, err := payment.NewApproved(uuid.New(), uuid.New(), cost, cost, payment.MethodCard, "sim-ref", now)
		require.NoError(t, err)

		require.NoError(t, p.MarkRefunded())
		assert.Equal(t, payment.StatusRefunded, p.Status())
	})

	t.Run("refunding twice is an error not a silent success", func(t *testing.T) {
		p, err := payment.NewApproved(uuid.New(), uuid.New(), cost, cost, payment.MethodCard, "sim-ref", now)
		require.NoError(t, err)
		require.NoError(t, p.MarkRefunded())

		assert.ErrorIs(t, p.MarkRefunded(), payment.ErrAlreadyRefunded)
	})

	t.Run("a declined payment cannot be refunded", func(t *testing.T) {
		p := payment.Reconstruct(uuid.New(), uuid.New(), cost, payment.MethodCard,
			payment.StatusDeclined, "sim-ref", now, nil, now, now)

		assert.ErrorIs(t, p.MarkRefunded(), payment.ErrNotApproved)
	})
}
