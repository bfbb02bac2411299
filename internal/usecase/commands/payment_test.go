//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"courtbook/internal/domain/payment"
	"courtbook/internal/domain/refund"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/shared"
	"courtbook/tests/common/builder"
	"courtbook/tests/common/fake"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	uow      *fake.UnitOfWork
	gateway  *fake.Gateway
	notifier *fake.Notifier
	clk      *clock.MockClock
	commands commands.PaymentCommands

	clientID      uuid.UUID
	providerID    uuid.UUID
	reservationID uuid.UUID
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	f := &paymentFixture{
		uow:      fake.NewUnitOfWork(),
		gateway:  fake.ApprovingGateway(),
		notifier: fake.NewNotifier(),
		clk:      clock.NewMockClock(fixedNow),
	}
	f.commands = commands.NewPaymentCommands(f.uow, f.gateway, f.notifier, f.clk)

	f.clientID = f.uow.SeedUser("client", true)
	f.providerID = f.uow.SeedUser("provider", true)

	f.reservationID = uuid.New()
	f.uow.SeedReservation(shared.ReservationSnapshot{
		ID:          f.reservationID,
		ClientID:    f.clientID,
		ProviderID:  f.providerID,
		ServiceID:   uuid.New(),
		SlotID:      uuid.New(),
		ScheduledAt: fixedNow.Add(5 * 24 * time.Hour),
		Status:      reservation.StatusPending,
		TotalCost:   decimal.NewFromInt(5000),
		CreatedAt:   fixedNow.Add(-time.Hour),
	})

	return f
}

func (f *paymentFixture) submitParams() commands.SubmitPaymentParams {
	return commands.SubmitPaymentParams{
		ReservationID: f.reservationID,
		ClientID:      f.clientID,
		Method:        payment.MethodCard,
		Details:       builder.ValidCardDetails(),
	}
}

func (f *paymentFixture) seedApprovedPayment() uuid.UUID {
	id := uuid.New()
	f.uow.SeedPayment(shared.PaymentSnapshot{
		ID:            id,
		ReservationID: f.reservationID,
		Amount:        decimal.NewFromInt(5000),
		Method:        payment.MethodCard,
		Status:        payment.StatusApproved,
	})
	return id
}

func (f *paymentFixture) seedRefundRequest(t *testing.T) *refund.Request {
	t.Helper()
	req, err := refund.NewRequest(uuid.New(), f.reservationID, decimal.NewFromInt(4500), "schedule conflict")
	require.NoError(t, err)
	f.uow.Refunds[f.reservationID] = req
	return req
}

func TestSubmitPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("approved capture stores the payment and confirms the reservation", func(t *testing.T) {
		f := newPaymentFixture(t)

		id, err := f.commands.Submit(ctx, f.submitParams())
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, id)

		stored, ok := f.uow.Payments[id]
		require.True(t, ok)
		assert.Equal(t, payment.StatusApproved, stored.Status)
		assert.Equal(t, reservation.StatusConfirmed, f.uow.Reservations[f.reservationID].Status)

		require.Len(t, f.gateway.Requests, 1)
		assert.True(t, decimal.NewFromInt(5000).Equal(f.gateway.Requests[0].Amount),
			"gateway is charged the reservation cost")

		require.Len(t, f.notifier.SentTo(f.clientID), 1)
	})

	t.Run("declined capture leaves the reservation pending", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.gateway.Approved = false

		_, err := f.commands.Submit(ctx, f.submitParams())
		assert.ErrorIs(t, err, commands.ErrPaymentDeclined)

		assert.Empty(t, f.uow.Payments)
		assert.Equal(t, reservation.StatusPending, f.uow.Reservations[f.reservationID].Status)
	})

	t.Run("gateway timeout counts as a decline", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.gateway.Err = errs.New("gateway deadline exceeded")

		_, err := f.commands.Submit(ctx, f.submitParams())
		assert.ErrorIs(t, err, commands.ErrPaymentDeclined)
		assert.Equal(t, reservation.StatusPending, f.uow.Reservations[f.reservationID].Status)
	})

	t.Run("invalid details never reach the gateway", func(t *testing.T) {
		f := newPaymentFixture(t)
		p := f.submitParams()
		p.Details = payment.Details{}

		_, err := f.commands.Submit(ctx, p)
		assert.ErrorIs(t, err, commands.ErrPaymentInvalid)
		assert.Empty(t, f.gateway.Requests)
	})

	t.Run("second payment for the reservation is refused", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.seedApprovedPayment()

		_, err := f.commands.Submit(ctx, f.submitParams())
		assert.ErrorIs(t, err, commands.ErrDuplicatePayment)
		assert.Empty(t, f.gateway.Requests)
	})

	t.Run("only the owning client may pay", func(t *testing.T) {
		f := newPaymentFixture(t)
		p := f.submitParams()
		p.ClientID = uuid.New()

		_, err := f.commands.Submit(ctx, p)
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("confirmed reservation cannot be paid again", func(t *testing.T) {
		f := newPaymentFixture(t)
		snap := f.uow.Reservations[f.reservationID]
		snap.Status = reservation.StatusConfirmed
		f.uow.Reservations[f.reservationID] = snap

		_, err := f.commands.Submit(ctx, f.submitParams())
		assert.ErrorIs(t, err, commands.ErrInvalidState)
	})

	t.Run("losing the confirm race rolls back the payment insert", func(t *testing.T) {
		f := newPaymentFixture(t)
		// A competing writer moves the reservation out of PENDING while the
		// gateway round trip is in flight.
		f.gateway.OnCapture = func() {
			snap := f.uow.Reservations[f.reservationID]
			snap.Status = reservation.StatusCancelled
			f.uow.Reservations[f.reservationID] = snap
		}

		_, err := f.commands.Submit(ctx, f.submitParams())
		assert.ErrorIs(t, err, commands.ErrInvalidState)
		assert.Empty(t, f.uow.Payments, "coupled transaction rolled back")
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newPaymentFixture(t)
		p := f.submitParams()
		p.ReservationID = uuid.New()

		_, err := f.commands.Submit(ctx, p)
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}

func TestRefundPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("approved payment becomes refunded", func(t *testing.T) {
		f := newPaymentFixture(t)
		id := f.seedApprovedPayment()
		adminID := f.uow.SeedUser("admin", true)

		require.NoError(t, f.commands.Refund(ctx, id, adminID))

		assert.Equal(t, payment.StatusRefunded, f.uow.Payments[id].Status)
		require.Len(t, f.notifier.SentTo(f.clientID), 1)
		assert.Equal(t, commands.NotifyRefundDecision, f.notifier.SentTo(f.clientID)[0].Category)
	})

	t.Run("issuing the refund approves the pending refund request", func(t *testing.T) {
		f := newPaymentFixture(t)
		id := f.seedApprovedPayment()
		f.seedRefundRequest(t)
		adminID := f.uow.SeedUser("admin", true)

		require.NoError(t, f.commands.Refund(ctx, id, adminID))

		req := f.uow.Refunds[f.reservationID]
		assert.Equal(t, refund.StateApproved, req.State())
		require.NotNil(t, req.ReviewerID())
		assert.Equal(t, adminID, *req.ReviewerID())
		require.NotNil(t, req.DecidedAt())
		assert.Equal(t, fixedNow, *req.DecidedAt())
	})

	t.Run("refunding without a refund request still succeeds", func(t *testing.T) {
		f := newPaymentFixture(t)
		id := f.seedApprovedPayment()

		require.NoError(t, f.commands.Refund(ctx, id, uuid.New()))
		assert.Equal(t, payment.StatusRefunded, f.uow.Payments[id].Status)
	})

	t.Run("refunding twice is refused", func(t *testing.T) {
		f := newPaymentFixture(t)
		id := f.seedApprovedPayment()
		adminID := f.uow.SeedUser("admin", true)
		require.NoError(t, f.commands.Refund(ctx, id, adminID))

		assert.ErrorIs(t, f.commands.Refund(ctx, id, adminID), commands.ErrAlreadyRefunded)
	})

	t.Run("declined payment cannot be refunded", func(t *testing.T) {
		f := newPaymentFixture(t)
		id := uuid.New()
		f.uow.SeedPayment(shared.PaymentSnapshot{
			ID:            id,
			ReservationID: f.reservationID,
			Amount:        decimal.NewFromInt(5000),
			Method:        payment.MethodCard,
			Status:        payment.StatusDeclined,
		})

		assert.ErrorIs(t, f.commands.Refund(ctx, id, uuid.New()), commands.ErrPaymentNotApproved)
	})

	t.Run("unknown payment", func(t *testing.T) {
		f := newPaymentFixture(t)
		assert.ErrorIs(t, f.commands.Refund(ctx, uuid.New(), uuid.New()), commands.ErrPaymentNotFound)
	})
}

func TestRejectRefund(t *testing.T) {
	ctx := context.Background()

	t.Run("pending request is rejected and the payment stays approved", func(t *testing.T) {
		f := newPaymentFixture(t)
		id := f.seedApprovedPayment()
		f.seedRefundRequest(t)
		adminID := f.uow.SeedUser("admin", true)

		require.NoError(t, f.commands.RejectRefund(ctx, id, adminID, "outside the cancellation window"))

		req := f.uow.Refunds[f.reservationID]
		assert.Equal(t, refund.StateRejected, req.State())
		assert.Equal(t, "outside the cancellation window", req.AdminNotes())
		require.NotNil(t, req.ReviewerID())
		assert.Equal(t, adminID, *req.ReviewerID())
		assert.Equal(t, payment.StatusApproved, f.uow.Payments[id].Status)
		require.Len(t, f.notifier.SentTo(f.clientID), 1)
	})

	t.Run("no refund request on the reservation", func(t *testing.T) {
		f := newPaymentFixture(t)
		id := f.seedApprovedPayment()

		assert.ErrorIs(t, f.commands.RejectRefund(ctx, id, uuid.New(), "nothing to decide"),
			commands.ErrRefundNotFound)
	})

	t.Run("deciding twice is refused", func(t *testing.T) {
		f := newPaymentFixture(t)
		id := f.seedApprovedPayment()
		f.seedRefundRequest(t)
		adminID := f.uow.SeedUser("admin", true)
		require.NoError(t, f.commands.RejectRefund(ctx, id, adminID, "first decision"))

		assert.ErrorIs(t, f.commands.RejectRefund(ctx, id, adminID, "second decision"),
			commands.ErrRefundDecided)
	})

	t.Run("unknown payment", func(t *testing.T) {
		f := newPaymentFixture(t)
		assert.ErrorIs(t, f.commands.RejectRefund(ctx, uuid.New(), uuid.New(), "notes"),
			commands.ErrPaymentNotFound)
	})
}

func TestIssueReceipt(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a numbered receipt for an approved payment", func(t *testing.T) {
		f := newPaymentFixture(t)
		id := f.seedApprovedPayment()

		receipt, err := f.commands.IssueReceipt(ctx, id)
		require.NoError(t, err)

		assert.Equal(t, id, receipt.PaymentID)
		assert.True(t, strings.HasPrefix(receipt.Number, "RCP-"))
		assert.True(t, decimal.NewFromInt(5000).Equal(receipt.Amount))
		assert.Equal(t, fixedNow, receipt.IssuedAt)
	})

	t.Run("reissuing returns the original receipt", func(t *testing.T) {
		f := newPaymentFixture(t)
		id := f.seedApprovedPayment()

		first, err := f.commands.IssueReceipt(ctx, id)
		require.NoError(t, err)

		f.clk.Advance(time.Hour)
		second, err := f.commands.IssueReceipt(ctx, id)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.Number, second.Number)
		assert.Equal(t, first.IssuedAt, second.IssuedAt)
	})

	t.Run("refunded payment has no receipt", func(t *testing.T) {
		f := newPaymentFixture(t)
		id := f.seedApprovedPayment()
		require.NoError(t, f.commands.Refund(ctx, id, uuid.New()))

		_, err := f.commands.IssueReceipt(ctx, id)
		assert.ErrorIs(t, err, commands.ErrPaymentNotApproved)
	})
}
