package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount  = errors.New("payment amount cannot be negative")
	ErrNotApproved     = errors.New("payment is not approved")
	ErrAlreadyRefunded = errors.New("payment has already been refunded")
	ErrAmountMismatch  = errors.New("payment amount does not match reservation cost")
)

// Payment is 1:1 with a reservation for the reservation's lifetime. Its amount
// must equal the reservation's cost snapshot at capture time.
type Payment struct {
	id            uuid.UUID
	reservationID uuid.UUID
	amount        decimal.Decimal
	method        Method
	status        Status
	gatewayRef    string
	capturedAt    time.Time
	approvedAt    *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// NewApproved builds a payment that the gateway already approved. The
// simulated gateway approves anything structurally valid, so payments enter
// the store in APPROVED state.
func NewApproved(
	id, reservationID uuid.UUID,
	amount, reservationCost decimal.Decimal,
	method Method,
	gatewayRef string,
	now time.Time,
) (*Payment, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	if !amount.Equal(reservationCost) {
		return nil, ErrAmountMismatch
	}

	approvedAt := now
	return &Payment{
		id:            id,
		reservationID: reservationID,
		amount:        amount,
		method:        method,
		status:        StatusApproved,
		gatewayRef:    gatewayRef,
		capturedAt:    now,
		approvedAt:    &approvedAt,
	}, nil
}

func Reconstruct(
	id, reservationID uuid.UUID,
	amount decimal.Decimal,
	method Method,
	status Status,
	gatewayRef string,
	capturedAt time.Time,
	approvedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		reservationID: reservationID,
		amount:        amount,
		method:        method,
		status:        status,
		gatewayRef:    gatewayRef,
		capturedAt:    capturedAt,
		approvedAt:    approvedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// MarkRefunded moves APPROVED to REFUNDED. Refunding twice is an error, not a
// silent success.
func (p *Payment) MarkRefunded() error {
	switch p.status {
	case StatusRefunded:
		return ErrAlreadyRefunded
	case StatusApproved:
		p.status = StatusRefunded
		return nil
	default:
		return ErrNotApproved
	}
}

func (p *Payment) IsApproved() bool {
	return p.status == StatusApproved
}

func (p *Payment) ID() uuid.UUID            { return p.id }
func (p *Payment) ReservationID() uuid.UUID { return p.reservationID }
func (p *Payment) Amount() decimal.Decimal  { return p.amount }
func (p *Payment) Method() Method           { return p.method }
func (p *Payment) Status() Status           { return p.status }
func (p *Payment) GatewayRef() string       { return p.gatewayRef }
func (p *Payment) CapturedAt() time.Time    { return p.capturedAt }
func (p *Payment) ApprovedAt() *time.Time   { return p.approvedAt }
func (p *Payment) CreatedAt() time.Time     { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time     { return p.updatedAt }
