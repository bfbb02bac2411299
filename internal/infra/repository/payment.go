package repository

import (
	"context"

	"courtbook/internal/domain/payment"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

// The unique index on reservation_id enforces at most one payment per
// reservation for its lifetime.
const createPaymentSQL = `
INSERT INTO payments (id, reservation_id, amount, method, status, gateway_ref, captured_at, approved_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

func (r *PaymentRepository) Create(ctx context.Context, dbtx db.DBTX, p *payment.Payment) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createPaymentSQL,
		p.ID(), p.ReservationID(), p.Amount(), p.Method().String(), p.Status().String(),
		p.GatewayRef(), p.CapturedAt(), p.ApprovedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err)
	}
	return id, nil
}

const updatePaymentStatusSQL = `
UPDATE payments
SET status = $3, updated_at = now()
WHERE id = $1
  AND status = $2
RETURNING id`

func (r *PaymentRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to payment.Status) error {
	var updatedID uuid.UUID
	err := dbtx.QueryRow(ctx, updatePaymentStatusSQL, id, from.String(), to.String()).Scan(&updatedID)
	if err != nil {
		if infra.IsNoRows(err) {
			return infra.WrapRepoErr("payment is not in an eligible state", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	return nil
}
