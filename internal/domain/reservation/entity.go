package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrDateNotFuture     = errors.New("reservation date must be in the future")
	ErrNegativeCost      = errors.New("total cost cannot be negative")
	ErrNoteTooLong       = errors.New("note is too long (max 500 characters)")
	ErrInvalidTransition = errors.New("invalid reservation state transition")
	ErrNotProvider       = errors.New("actor is not the owning provider")
	ErrNotClient         = errors.New("actor is not the owning client")
	ErrNotYetDelivered   = errors.New("service date has not passed yet")
)

const MaxNoteLength = 500

// Reservation is one client's claim on one unit of a service slot's capacity.
// TotalCost is snapshotted from the service price at booking time and never
// changes afterwards. SlotID points at the exact slot whose capacity was
// consumed, so releases never have to re-derive the covering slot.
type Reservation struct {
	id          uuid.UUID
	clientID    uuid.UUID
	serviceID   uuid.UUID
	providerID  uuid.UUID
	slotID      uuid.UUID
	scheduledAt time.Time
	status      Status
	totalCost   decimal.Decimal
	note        string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewReservation(
	id, clientID, serviceID, providerID, slotID uuid.UUID,
	scheduledAt time.Time,
	totalCost decimal.Decimal,
	note string,
	now time.Time,
) (*Reservation, error) {
	if !scheduledAt.After(now) {
		return nil, ErrDateNotFuture
	}
	if totalCost.IsNegative() {
		return nil, ErrNegativeCost
	}
	note = strings.TrimSpace(note)
	if len(note) > MaxNoteLength {
		return nil, ErrNoteTooLong
	}

	return &Reservation{
		id:          id,
		clientID:    clientID,
		serviceID:   serviceID,
		providerID:  providerID,
		slotID:      slotID,
		scheduledAt: scheduledAt,
		status:      StatusPending,
		totalCost:   totalCost,
		note:        note,
	}, nil
}

func Reconstruct(
	id, clientID, serviceID, providerID, slotID uuid.UUID,
	scheduledAt time.Time,
	status Status,
	totalCost decimal.Decimal,
	note string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		clientID:    clientID,
		serviceID:   serviceID,
		providerID:  providerID,
		slotID:      slotID,
		scheduledAt: scheduledAt,
		status:      status,
		totalCost:   totalCost,
		note:        note,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Reservation) transitionTo(next Status) error {
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	return nil
}

// Confirm moves PENDING to CONFIRMED. Only the owning provider may confirm.
func (r *Reservation) Confirm(providerID uuid.UUID) error {
	if r.providerID != providerID {
		return ErrNotProvider
	}
	return r.transitionTo(StatusConfirmed)
}

// Reject moves PENDING to REJECTED; the consumed capacity must be released by
// the caller.
func (r *Reservation) Reject(providerID uuid.UUID) error {
	if r.providerID != providerID {
		return ErrNotProvider
	}
	return r.transitionTo(StatusRejected)
}

// Cancel moves PENDING or CONFIRMED to CANCELLED. Only the owning client may
// cancel; capacity release and any refund request are the caller's job.
func (r *Reservation) Cancel(clientID uuid.UUID) error {
	if r.clientID != clientID {
		return ErrNotClient
	}
	return r.transitionTo(StatusCancelled)
}

// Expire is the sweeper's cancel: same transition, no ownership gate.
func (r *Reservation) Expire() error {
	return r.transitionTo(StatusCancelled)
}

// Finalize moves CONFIRMED to FINALIZED once the service date has passed.
// Both the provider and the scheduler are valid callers.
func (r *Reservation) Finalize(now time.Time) error {
	if now.Before(r.scheduledAt) {
		return ErrNotYetDelivered
	}
	return r.transitionTo(StatusFinalized)
}

func (r *Reservation) IsConfirmed() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) IsPending() bool {
	return r.status == StatusPending
}

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) ClientID() uuid.UUID       { return r.clientID }
func (r *Reservation) ServiceID() uuid.UUID      { return r.serviceID }
func (r *Reservation) ProviderID() uuid.UUID     { return r.providerID }
func (r *Reservation) SlotID() uuid.UUID         { return r.slotID }
func (r *Reservation) ScheduledAt() time.Time    { return r.scheduledAt }
func (r *Reservation) Status() Status            { return r.status }
func (r *Reservation) TotalCost() decimal.Decimal { return r.totalCost }
func (r *Reservation) Note() string              { return r.note }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time      { return r.updatedAt }
