package commands

import (
	"context"
	"time"

	"courtbook/internal/domain/payment"
	"courtbook/internal/domain/refund"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/domain/user"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound      = errs.New("client not found")
	ErrServiceNotFound     = errs.New("service not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrClientInactive      = errs.New("client account is not active")
	ErrNotAClient          = errs.New("actor is not a client account")
	ErrServiceNotPublished = errs.New("service is not published")
	ErrDateNotFuture       = errs.New("reservation date must be in the future")
	ErrSlotUnavailable     = errs.New("no capacity available for the requested slot")
	ErrForbidden           = errs.New("actor does not own this reservation")
	ErrInvalidState        = errs.New("reservation is not in an eligible state")
	ErrDomainValidation    = errs.New("domain validation error")
	ErrStorageFailure      = errs.New("database operation failed")
)

const serviceStatusPublished = "published"

type CreateReservationParams struct {
	ClientID    uuid.UUID
	ServiceID   uuid.UUID
	ScheduledAt time.Time
	Note        string
}

type ReservationCommands interface {
	Create(ctx context.Context, p CreateReservationParams) (uuid.UUID, error)
	Confirm(ctx context.Context, reservationID, providerID uuid.UUID) error
	Reject(ctx context.Context, reservationID, providerID uuid.UUID, reason string) error
	Cancel(ctx context.Context, reservationID, clientID uuid.UUID, reason string) error
	// Finalize accepts the owning provider or the scheduler (actorID ==
	// uuid.Nil) as caller; both are gated by the same state precondition.
	Finalize(ctx context.Context, reservationID, actorID uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
	clock    clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, notifier Notifier, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, p CreateReservationParams) (uuid.UUID, error) {
	reads := c.uow.CommandReads()

	client, err := reads.UserByID(ctx, p.ClientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrClientNotFound)
		}
		return uuid.Nil, errs.Mark(err, ErrStorageFailure)
	}
	if client.Role != user.RoleClient.String() {
		return uuid.Nil, errs.Mark(errs.Newf("user %s has role %s", client.ID, client.Role), ErrNotAClient)
	}
	if !client.Active {
		return uuid.Nil, errs.Mark(errs.Newf("client %s is suspended", client.ID), ErrClientInactive)
	}

	svc, err := reads.ServiceByID(ctx, p.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrServiceNotFound)
		}
		return uuid.Nil, errs.Mark(err, ErrStorageFailure)
	}
	if svc.Status != serviceStatusPublished {
		return uuid.Nil, errs.Mark(errs.Newf("service %s is in state %s", svc.ID, svc.Status), ErrServiceNotPublished)
	}

	now := c.clock.Now()
	if !p.ScheduledAt.After(now) {
		return uuid.Nil, errs.Mark(errs.Newf("requested date %s is not in the future", p.ScheduledAt), ErrDateNotFuture)
	}

	var reservationID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Capacity check and decrement are one atomic statement; losing the
		// race surfaces here as a conflict, never as a negative count.
		slotID, err := tx.Slots().AcquireCapacity(ctx, tx.DB(), p.ServiceID, p.ScheduledAt)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrSlotUnavailable)
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		entity, err := reservation.NewReservation(
			uuid.New(), p.ClientID, p.ServiceID, svc.ProviderID, slotID,
			p.ScheduledAt, svc.Price, p.Note, now,
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		reservationID, err = tx.Reservations().Create(ctx, tx.DB(), entity)
		if err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.notifier.Notify(ctx, svc.ProviderID, NotifyReservationCreated,
		"New reservation request", "A client requested one of your published slots.")

	return reservationID, nil
}

func (c *reservationCommandsImpl) Confirm(ctx context.Context, reservationID, providerID uuid.UUID) error {
	snap, err := c.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if snap.ProviderID != providerID {
		return errs.Mark(errs.Newf("reservation %s belongs to provider %s", snap.ID, snap.ProviderID), ErrForbidden)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return c.transition(ctx, tx, snap.ID, []reservation.Status{reservation.StatusPending}, reservation.StatusConfirmed)
	})
	if err != nil {
		return err
	}

	c.notifier.Notify(ctx, snap.ClientID, NotifyReservationStatus,
		"Reservation confirmed", "Your reservation was confirmed by the provider.")
	return nil
}

func (c *reservationCommandsImpl) Reject(ctx context.Context, reservationID, providerID uuid.UUID, reason string) error {
	snap, err := c.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if snap.ProviderID != providerID {
		return errs.Mark(errs.Newf("reservation %s belongs to provider %s", snap.ID, snap.ProviderID), ErrForbidden)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.transition(ctx, tx, snap.ID, []reservation.Status{reservation.StatusPending}, reservation.StatusRejected); err != nil {
			return err
		}
		// The slot must become bookable again.
		if err := tx.Slots().ReleaseCapacity(ctx, tx.DB(), snap.SlotID); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.notifier.Notify(ctx, snap.ClientID, NotifyReservationStatus,
		"Reservation rejected", "The provider declined your reservation: "+reason)
	return nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, reservationID, clientID uuid.UUID, reason string) error {
	snap, err := c.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if snap.ClientID != clientID {
		return errs.Mark(errs.Newf("reservation %s belongs to client %s", snap.ID, snap.ClientID), ErrForbidden)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return c.cancelWithinTx(ctx, tx, snap, reason)
	})
	if err != nil {
		return err
	}

	c.notifier.Notify(ctx, snap.ProviderID, NotifyReservationStatus,
		"Reservation cancelled", "The client cancelled a reservation.")
	return nil
}

// cancelWithinTx is the single cancel transition used by client cancellation
// and by the expiry sweeper, so both paths keep identical invariants: status
// change, capacity release and any refund request commit as one unit.
func (c *reservationCommandsImpl) cancelWithinTx(ctx context.Context, tx shared.Tx, snap *shared.ReservationSnapshot, reason string) error {
	if !snap.Status.CanTransitionTo(reservation.StatusCancelled) {
		return errs.Mark(errs.Newf("reservation %s is %s", snap.ID, snap.Status), ErrInvalidState)
	}

	// Refund is computed from the reservation date before the transition so
	// "days until service" is measured against the booked slot.
	if snap.Status == reservation.StatusConfirmed {
		if err := c.createRefundRequest(ctx, tx, snap, reason); err != nil {
			return err
		}
	}

	if err := c.transition(ctx, tx, snap.ID, []reservation.Status{snap.Status}, reservation.StatusCancelled); err != nil {
		return err
	}

	if err := tx.Slots().ReleaseCapacity(ctx, tx.DB(), snap.SlotID); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func (c *reservationCommandsImpl) createRefundRequest(ctx context.Context, tx shared.Tx, snap *shared.ReservationSnapshot, reason string) error {
	pay, err := tx.Reads().PaymentByReservationID(ctx, snap.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil // confirmed but unpaid; nothing to refund
		}
		return errs.Mark(err, ErrStorageFailure)
	}
	if pay.Status != payment.StatusApproved {
		return nil
	}

	amount := refund.Compute(c.clock.Now(), snap.ScheduledAt, pay.Amount)
	req, err := refund.NewRequest(uuid.New(), snap.ID, amount, reason)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	if _, err := tx.Refunds().Create(ctx, tx.DB(), req); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func (c *reservationCommandsImpl) Finalize(ctx context.Context, reservationID, actorID uuid.UUID) error {
	snap, err := c.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if actorID != uuid.Nil && snap.ProviderID != actorID {
		return errs.Mark(errs.Newf("reservation %s belongs to provider %s", snap.ID, snap.ProviderID), ErrForbidden)
	}
	if c.clock.Now().Before(snap.ScheduledAt) {
		return errs.Mark(errs.Newf("service date %s has not passed", snap.ScheduledAt), ErrInvalidState)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.transition(ctx, tx, snap.ID, []reservation.Status{reservation.StatusConfirmed}, reservation.StatusFinalized); err != nil {
			return err
		}
		if err := tx.Providers().IncrementCompletedCount(ctx, tx.DB(), snap.ProviderID); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
}

func (c *reservationCommandsImpl) findReservation(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	snap, err := c.uow.CommandReads().ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return snap, nil
}

func (c *reservationCommandsImpl) transition(
	ctx context.Context,
	tx shared.Tx,
	id uuid.UUID,
	from []reservation.Status,
	to reservation.Status,
) error {
	err := tx.Reservations().TransitionStatus(ctx, tx.DB(), id, from, to)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(errs.Wrapf(err, "reservation %s cannot move to %s", id, to), ErrInvalidState)
		}
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}
