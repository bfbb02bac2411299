package refund

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyReason    = errors.New("cancellation reason cannot be empty")
	ErrAlreadyDecided = errors.New("refund request has already been decided")
)

// RequestState is the adjudication state of a refund request.
type RequestState string

const (
	StateRequested RequestState = "requested"
	StateApproved  RequestState = "approved"
	StateRejected  RequestState = "rejected"
)

func (s RequestState) String() string {
	return string(s)
}

// Request records a monetary return owed to a client after cancelling a paid
// reservation. 1:1 with the reservation.
type Request struct {
	id            uuid.UUID
	reservationID uuid.UUID
	amount        decimal.Decimal
	reason        string
	state         RequestState
	decidedAt     *time.Time
	reviewerID    *uuid.UUID
	adminNotes    string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewRequest(id, reservationID uuid.UUID, amount decimal.Decimal, reason string) (*Request, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyReason
	}

	return &Request{
		id:            id,
		reservationID: reservationID,
		amount:        amount,
		reason:        reason,
		state:         StateRequested,
	}, nil
}

func ReconstructRequest(
	id, reservationID uuid.UUID,
	amount decimal.Decimal,
	reason string,
	state RequestState,
	decidedAt *time.Time,
	reviewerID *uuid.UUID,
	adminNotes string,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:            id,
		reservationID: reservationID,
		amount:        amount,
		reason:        reason,
		state:         state,
		decidedAt:     decidedAt,
		reviewerID:    reviewerID,
		adminNotes:    adminNotes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Request) Approve(reviewerID uuid.UUID, notes string, now time.Time) error {
	return r.decide(StateApproved, reviewerID, notes, now)
}

func (r *Request) Reject(reviewerID uuid.UUID, notes string, now time.Time) error {
	return r.decide(StateRejected, reviewerID, notes, now)
}

func (r *Request) decide(state RequestState, reviewerID uuid.UUID, notes string, now time.Time) error {
	if r.state != StateRequested {
		return ErrAlreadyDecided
	}
	r.state = state
	r.reviewerID = &reviewerID
	r.adminNotes = strings.TrimSpace(notes)
	r.decidedAt = &now
	return nil
}

func (r *Request) ID() uuid.UUID           { return r.id }
func (r *Request) ReservationID() uuid.UUID { return r.reservationID }
func (r *Request) Amount() decimal.Decimal { return r.amount }
func (r *Request) Reason() string          { return r.reason }
func (r *Request) State() RequestState     { return r.state }
func (r *Request) DecidedAt() *time.Time   { return r.decidedAt }
func (r *Request) ReviewerID() *uuid.UUID  { return r.reviewerID }
func (r *Request) AdminNotes() string      { return r.adminNotes }
func (r *Request) CreatedAt() time.Time    { return r.createdAt }
func (r *Request) UpdatedAt() time.Time    { return r.updatedAt }
