package repository

import (
	"context"

	"courtbook/internal/domain/reservation"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const createReservationSQL = `
INSERT INTO reservations (id, client_id, service_id, provider_id, slot_id, scheduled_at, status, total_cost, note)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

func (r *ReservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createReservationSQL,
		res.ID(), res.ClientID(), res.ServiceID(), res.ProviderID(), res.SlotID(),
		res.ScheduledAt(), res.Status().String(), res.TotalCost(), res.Note(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

// The status guard makes concurrent transitions race cleanly: whichever
// commits first wins and the loser sees zero rows.
const transitionStatusSQL = `
UPDATE reservations
SET status = $2, updated_at = now()
WHERE id = $1
  AND status = ANY($3)
RETURNING id`

func (r *ReservationRepository) TransitionStatus(
	ctx context.Context,
	dbtx db.DBTX,
	id uuid.UUID,
	from []reservation.Status,
	to reservation.Status,
) error {
	fromStrs := make([]string, len(from))
	for i, s := range from {
		fromStrs[i] = s.String()
	}

	var updatedID uuid.UUID
	err := dbtx.QueryRow(ctx, transitionStatusSQL, id, to.String(), fromStrs).Scan(&updatedID)
	if err != nil {
		if infra.IsNoRows(err) {
			return infra.WrapRepoErr("reservation is not in an eligible state", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to transition reservation status", err)
	}
	return nil
}
