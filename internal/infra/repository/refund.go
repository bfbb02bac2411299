package repository

import (
	"context"
	"time"

	"courtbook/internal/domain/refund"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RefundRepository struct{}

func NewRefundRepository() *RefundRepository {
	return &RefundRepository{}
}

const createRefundRequestSQL = `
INSERT INTO refund_requests (id, reservation_id, amount, reason, state)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *RefundRepository) Create(ctx context.Context, dbtx db.DBTX, req *refund.Request) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createRefundRequestSQL,
		req.ID(), req.ReservationID(), req.Amount(), req.Reason(), req.State().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create refund request", err)
	}
	return id, nil
}

const findRefundRequestSQL = `
SELECT id, reservation_id, amount, reason, state, reviewer_id, admin_notes, decided_at, created_at, updated_at
FROM refund_requests
WHERE reservation_id = $1`

func (r *RefundRepository) FindByReservationID(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) (*refund.Request, error) {
	var (
		id, resID  uuid.UUID
		amount     decimal.Decimal
		reason     string
		state      string
		reviewerID *uuid.UUID
		adminNotes string
		decidedAt  *time.Time
		createdAt  time.Time
		updatedAt  time.Time
	)
	err := dbtx.QueryRow(ctx, findRefundRequestSQL, reservationID).Scan(
		&id, &resID, &amount, &reason, &state, &reviewerID, &adminNotes, &decidedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("refund request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find refund request", err)
	}
	return refund.ReconstructRequest(
		id, resID, amount, reason, refund.RequestState(state),
		decidedAt, reviewerID, adminNotes, createdAt, updatedAt,
	), nil
}

// Racing decisions resolve like status transitions: the first commit wins and
// the loser matches zero rows.
const saveRefundDecisionSQL = `
UPDATE refund_requests
SET state = $2, reviewer_id = $3, admin_notes = $4, decided_at = $5, updated_at = now()
WHERE id = $1
  AND state = 'requested'
RETURNING id`

func (r *RefundRepository) SaveDecision(ctx context.Context, dbtx db.DBTX, req *refund.Request) error {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, saveRefundDecisionSQL,
		req.ID(), req.State().String(), req.ReviewerID(), req.AdminNotes(), req.DecidedAt(),
	).Scan(&id)
	if err != nil {
		if infra.IsNoRows(err) {
			return infra.WrapRepoErr("refund request already decided", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to save refund decision", err)
	}
	return nil
}
