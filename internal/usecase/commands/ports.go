package commands

import (
	"context"

	"courtbook/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Gateway is the pluggable payment capability. The call is bounded by a
// timeout; a timeout counts as a decline and the reservation stays PENDING.
type Gateway interface {
	Capture(ctx context.Context, req CaptureRequest) (*CaptureResult, error)
}

type CaptureRequest struct {
	ReservationID uuid.UUID
	Amount        decimal.Decimal
	Method        payment.Method
	Details       payment.Details
}

type CaptureResult struct {
	Approved bool
	Ref      string
}

// Notifier is the fire-and-forget outbound to the notification collaborator.
// Implementations must never fail the calling operation; delivery errors are
// theirs to log and swallow.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, category, title, body string)
}

// Notification categories emitted by the booking core.
const (
	NotifyReservationCreated = "reservation_created"
	NotifyReservationStatus  = "reservation_status"
	NotifyRefundDecision     = "refund_decision"
)
