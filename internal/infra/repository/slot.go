package repository

import (
	"context"
	"time"

	"courtbook/internal/domain/slot"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

type SlotRepository struct{}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

const insertSlotSQL = `
INSERT INTO service_slots (id, service_id, slot_date, start_at, end_at, total_capacity, remaining_capacity, active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *SlotRepository) Insert(ctx context.Context, dbtx db.DBTX, s *slot.ServiceSlot) error {
	_, err := dbtx.Exec(ctx, insertSlotSQL,
		s.ID(), s.ServiceID(), s.Date(), s.StartAt(), s.EndAt(), s.Total(), s.Remaining(), s.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to insert service slot", err)
	}
	return nil
}

// The subquery picks the covering slot; the outer conditional update is the
// atomic check-then-act. remaining_capacity never goes below zero and the
// slot deactivates when the last unit is taken.
const acquireCapacitySQL = `
UPDATE service_slots
SET remaining_capacity = remaining_capacity - 1,
    active             = remaining_capacity - 1 > 0,
    updated_at         = now()
WHERE id = (
    SELECT id
    FROM service_slots
    WHERE service_id = $1
      AND slot_date = $2::date
      AND start_at <= $3
      AND end_at > $3
      AND active
    ORDER BY start_at
    LIMIT 1
)
  AND remaining_capacity > 0
RETURNING id`

func (r *SlotRepository) AcquireCapacity(ctx context.Context, dbtx db.DBTX, serviceID uuid.UUID, at time.Time) (uuid.UUID, error) {
	var slotID uuid.UUID
	err := dbtx.QueryRow(ctx, acquireCapacitySQL, serviceID, at, at).Scan(&slotID)
	if err != nil {
		if infra.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("no bookable slot covers the requested time", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to acquire slot capacity", err)
	}
	return slotID, nil
}

const releaseCapacitySQL = `
UPDATE service_slots
SET remaining_capacity = remaining_capacity + 1,
    active             = TRUE,
    updated_at         = now()
WHERE id = $1
  AND remaining_capacity < total_capacity
RETURNING id`

func (r *SlotRepository) ReleaseCapacity(ctx context.Context, dbtx db.DBTX, slotID uuid.UUID) error {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, releaseCapacitySQL, slotID).Scan(&id)
	if err != nil {
		if infra.IsNoRows(err) {
			return infra.WrapRepoErr("slot is already at full capacity", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to release slot capacity", err)
	}
	return nil
}
