//go:build unit

package builder

import (
	"time"

	dompayment "courtbook/internal/domain/payment"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentBuilder struct {
	ID              uuid.UUID
	ReservationID   uuid.UUID
	Amount          decimal.Decimal
	ReservationCost decimal.Decimal
	Method          dompayment.Method
	Status          dompayment.Status
	GatewayRef      string
	Now             time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		ID:              uuid.New(),
		ReservationID:   uuid.New(),
		Amount:          decimal.NewFromInt(5000),
		ReservationCost: decimal.NewFromInt(5000),
		Method:          dompayment.MethodCard,
		Status:          dompayment.StatusApproved,
		GatewayRef:      "sim-test-ref",
		Now:             time.Now(),
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

func (b *PaymentBuilder) BuildDomain() (*dompayment.Payment, error) {
	return dompayment.NewApproved(
		b.ID, b.ReservationID, b.Amount, b.ReservationCost, b.Method, b.GatewayRef, b.Now,
	)
}

func (b *PaymentBuilder) BuildSnapshot() *shared.PaymentSnapshot {
	return &shared.PaymentSnapshot{
		ID:            b.ID,
		ReservationID: b.ReservationID,
		Amount:        b.Amount,
		Method:        b.Method,
		Status:        b.Status,
	}
}

func ValidCardDetails() dompayment.Details {
	return dompayment.Details{
		CardNumber: "4111111111111111",
		CardHolder: "A N Other",
		CardExpiry: "12/27",
		CardCVV:    "123",
	}
}
