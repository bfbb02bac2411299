package commands

import (
	"context"
	"fmt"
	"strings"

	"courtbook/internal/domain/payment"
	"courtbook/internal/domain/refund"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound    = errs.New("payment not found")
	ErrDuplicatePayment   = errs.New("reservation already has a payment")
	ErrPaymentInvalid     = errs.New("payment details are invalid")
	ErrPaymentDeclined    = errs.New("payment was declined by the gateway")
	ErrPaymentNotApproved = errs.New("payment is not approved")
	ErrAlreadyRefunded    = errs.New("payment has already been refunded")
	ErrRefundNotFound     = errs.New("refund request not found")
	ErrRefundDecided      = errs.New("refund request has already been decided")
)

type SubmitPaymentParams struct {
	ReservationID uuid.UUID
	ClientID      uuid.UUID
	Method        payment.Method
	Details       payment.Details
}

type PaymentCommands interface {
	// Submit captures a payment and confirms the reservation as a single
	// coupled effect; any failure leaves the reservation PENDING.
	Submit(ctx context.Context, p SubmitPaymentParams) (uuid.UUID, error)
	// Refund moves an approved payment to REFUNDED and, when the client's
	// cancellation left a refund request, records the reviewer's approval on
	// it in the same transaction.
	Refund(ctx context.Context, paymentID, reviewerID uuid.UUID) error
	// RejectRefund declines the pending refund request for the payment's
	// reservation; the payment itself stays approved.
	RejectRefund(ctx context.Context, paymentID, reviewerID uuid.UUID, notes string) error
	IssueReceipt(ctx context.Context, paymentID uuid.UUID) (*shared.ReceiptSnapshot, error)
}

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	gateway  Gateway
	notifier Notifier
	clock    clock.Clock
}

func NewPaymentCommands(uow shared.UnitOfWork, gw Gateway, notifier Notifier, clk clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{
		uow:      uow,
		gateway:  gw,
		notifier: notifier,
		clock:    clk,
	}
}

func (c *paymentCommandsImpl) Submit(ctx context.Context, p SubmitPaymentParams) (uuid.UUID, error) {
	reads := c.uow.CommandReads()

	snap, err := reads.ReservationByID(ctx, p.ReservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrReservationNotFound)
		}
		return uuid.Nil, errs.Mark(err, ErrStorageFailure)
	}
	if snap.ClientID != p.ClientID {
		return uuid.Nil, errs.Mark(errs.Newf("reservation %s belongs to client %s", snap.ID, snap.ClientID), ErrForbidden)
	}
	if snap.Status != reservation.StatusPending {
		return uuid.Nil, errs.Mark(errs.Newf("reservation %s is %s, expected %s", snap.ID, snap.Status, reservation.StatusPending), ErrInvalidState)
	}

	if _, err := reads.PaymentByReservationID(ctx, p.ReservationID); err == nil {
		return uuid.Nil, errs.Mark(errs.Newf("reservation %s already paid", snap.ID), ErrDuplicatePayment)
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, errs.Mark(err, ErrStorageFailure)
	}

	if err := p.Details.Validate(p.Method); err != nil {
		return uuid.Nil, errs.Mark(err, ErrPaymentInvalid)
	}

	// The gateway call is bounded by its own timeout; a timeout counts as a
	// decline and never leaves the reservation half-confirmed.
	capture, err := c.gateway.Capture(ctx, CaptureRequest{
		ReservationID: p.ReservationID,
		Amount:        snap.TotalCost,
		Method:        p.Method,
		Details:       p.Details,
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrPaymentDeclined)
	}
	if !capture.Approved {
		return uuid.Nil, errs.Mark(errs.Newf("gateway declined payment for reservation %s", snap.ID), ErrPaymentDeclined)
	}

	entity, err := payment.NewApproved(
		uuid.New(), snap.ID, snap.TotalCost, snap.TotalCost, p.Method, capture.Ref, c.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var paymentID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		paymentID, err = tx.Payments().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicatePayment)
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		// Coupled confirmation: if the transition loses a race the payment
		// insert rolls back with it.
		err = tx.Reservations().TransitionStatus(ctx, tx.DB(), snap.ID,
			[]reservation.Status{reservation.StatusPending}, reservation.StatusConfirmed)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(errs.Wrapf(err, "reservation %s left pending state", snap.ID), ErrInvalidState)
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.notifier.Notify(ctx, snap.ClientID, NotifyReservationStatus,
		"Payment approved", "Your payment was approved and the reservation is confirmed.")

	return paymentID, nil
}

func (c *paymentCommandsImpl) Refund(ctx context.Context, paymentID, reviewerID uuid.UUID) error {
	snap, err := c.findPayment(ctx, paymentID)
	if err != nil {
		return err
	}

	switch snap.Status {
	case payment.StatusRefunded:
		return errs.Mark(errs.Newf("payment %s is already refunded", snap.ID), ErrAlreadyRefunded)
	case payment.StatusApproved:
	default:
		return errs.Mark(errs.Newf("payment %s is %s, expected %s", snap.ID, snap.Status, payment.StatusApproved), ErrPaymentNotApproved)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Payments().UpdateStatus(ctx, tx.DB(), snap.ID, payment.StatusApproved, payment.StatusRefunded)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(errs.Wrapf(err, "payment %s left approved state", snap.ID), ErrAlreadyRefunded)
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		// A refund request exists when the client cancelled a paid
		// reservation; issuing the refund is its approval.
		req, err := tx.Refunds().FindByReservationID(ctx, tx.DB(), snap.ReservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		if req.State() != refund.StateRequested {
			return nil
		}
		if err := req.Approve(reviewerID, "", c.clock.Now()); err != nil {
			return errs.Mark(err, ErrRefundDecided)
		}
		if err := tx.Refunds().SaveDecision(ctx, tx.DB(), req); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrRefundDecided)
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
	if err != nil {
		return err
	}

	reservationSnap, err := c.uow.CommandReads().ReservationByID(ctx, snap.ReservationID)
	if err == nil {
		c.notifier.Notify(ctx, reservationSnap.ClientID, NotifyRefundDecision,
			"Refund issued", "Your payment has been refunded.")
	}
	return nil
}

func (c *paymentCommandsImpl) RejectRefund(ctx context.Context, paymentID, reviewerID uuid.UUID, notes string) error {
	snap, err := c.findPayment(ctx, paymentID)
	if err != nil {
		return err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Refunds().FindByReservationID(ctx, tx.DB(), snap.ReservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRefundNotFound)
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		if err := req.Reject(reviewerID, notes, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrRefundDecided)
		}
		if err := tx.Refunds().SaveDecision(ctx, tx.DB(), req); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrRefundDecided)
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if reservationSnap, err := c.uow.CommandReads().ReservationByID(ctx, snap.ReservationID); err == nil {
		c.notifier.Notify(ctx, reservationSnap.ClientID, NotifyRefundDecision,
			"Refund declined", "Your refund request was reviewed and declined.")
	}
	return nil
}

func (c *paymentCommandsImpl) IssueReceipt(ctx context.Context, paymentID uuid.UUID) (*shared.ReceiptSnapshot, error) {
	snap, err := c.findPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if snap.Status != payment.StatusApproved {
		return nil, errs.Mark(errs.Newf("payment %s is %s, expected %s", snap.ID, snap.Status, payment.StatusApproved), ErrPaymentNotApproved)
	}

	var receipt *shared.ReceiptSnapshot
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		receipt, err = tx.Receipts().CreateIfAbsent(ctx, tx.DB(), snap.ID, receiptNumber(snap.ID), snap.Amount, c.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func (c *paymentCommandsImpl) findPayment(ctx context.Context, id uuid.UUID) (*shared.PaymentSnapshot, error) {
	snap, err := c.uow.CommandReads().PaymentByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrPaymentNotFound)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return snap, nil
}

func receiptNumber(paymentID uuid.UUID) string {
	compact := strings.ReplaceAll(paymentID.String(), "-", "")
	return fmt.Sprintf("RCP-%s", strings.ToUpper(compact[:12]))
}
