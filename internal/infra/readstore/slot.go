package readstore

import (
	"context"
	"time"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

const slotsByServiceDateSQL = `
SELECT id, service_id, slot_date, start_at, end_at, total_capacity, remaining_capacity, active
FROM service_slots
WHERE service_id = $1
  AND slot_date = $2::date
ORDER BY start_at`

func (r *SlotReadStore) FindByServiceAndDate(ctx context.Context, serviceID uuid.UUID, date time.Time) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx, slotsByServiceDateSQL, serviceID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	var result []*queries.SlotView
	for rows.Next() {
		var view queries.SlotView
		if err := rows.Scan(
			&view.ID, &view.ServiceID, &view.SlotDate, &view.StartAt, &view.EndAt,
			&view.Total, &view.Remaining, &view.Active,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot rows", err)
	}
	return result, nil
}

// Same predicates as the booking-side acquire so the availability check and
// the booking path resolve the covering slot identically: an exhausted earlier
// window must not shadow a later active one.
const coveringSlotSQL = `
SELECT id, service_id, slot_date, start_at, end_at, total_capacity, remaining_capacity, active
FROM service_slots
WHERE service_id = $1
  AND start_at <= $2
  AND end_at > $2
  AND active
  AND remaining_capacity > 0
ORDER BY start_at
LIMIT 1`

func (r *SlotReadStore) FindCovering(ctx context.Context, serviceID uuid.UUID, at time.Time) (*queries.SlotView, error) {
	var view queries.SlotView
	err := r.db.QueryRow(ctx, coveringSlotSQL, serviceID, at).Scan(
		&view.ID, &view.ServiceID, &view.SlotDate, &view.StartAt, &view.EndAt,
		&view.Total, &view.Remaining, &view.Active,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no slot covers the requested time", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find covering slot", err)
	}
	return &view, nil
}
