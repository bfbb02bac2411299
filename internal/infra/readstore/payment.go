package readstore

import (
	"context"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(dbtx db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: dbtx}
}

const paymentViewSQL = `
SELECT id, reservation_id, amount, method, status, gateway_ref, created_at
FROM payments
WHERE reservation_id = $1`

func (r *PaymentReadStore) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*queries.PaymentView, error) {
	var view queries.PaymentView
	err := r.db.QueryRow(ctx, paymentViewSQL, reservationID).Scan(
		&view.ID, &view.ReservationID, &view.Amount, &view.Method, &view.Status,
		&view.GatewayRef, &view.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found for reservation", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by reservation ID", err)
	}
	return &view, nil
}

const receiptViewSQL = `
SELECT id, payment_id, receipt_number, amount, issued_at
FROM receipts
WHERE payment_id = $1`

func (r *PaymentReadStore) FindReceiptByPaymentID(ctx context.Context, paymentID uuid.UUID) (*queries.ReceiptView, error) {
	var view queries.ReceiptView
	err := r.db.QueryRow(ctx, receiptViewSQL, paymentID).Scan(
		&view.ID, &view.PaymentID, &view.Number, &view.Amount, &view.IssuedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("receipt not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find receipt by payment ID", err)
	}
	return &view, nil
}

const refundViewSQL = `
SELECT id, reservation_id, amount, reason, state, reviewer_id, admin_notes, decided_at, created_at
FROM refund_requests
WHERE reservation_id = $1`

func (r *PaymentReadStore) FindRefundByReservationID(ctx context.Context, reservationID uuid.UUID) (*queries.RefundView, error) {
	var view queries.RefundView
	err := r.db.QueryRow(ctx, refundViewSQL, reservationID).Scan(
		&view.ID, &view.ReservationID, &view.Amount, &view.Reason, &view.State,
		&view.ReviewerID, &view.AdminNotes, &view.DecidedAt, &view.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("refund request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find refund request by reservation ID", err)
	}
	return &view, nil
}
