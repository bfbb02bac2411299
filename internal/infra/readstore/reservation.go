package readstore

import (
	"context"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationViewSQL = `
SELECT r.id, r.service_id, s.title, r.client_id, r.provider_id, r.slot_id,
       r.scheduled_at, r.status, r.total_cost, r.note, r.created_at, r.updated_at
FROM reservations r
JOIN services s ON s.id = r.service_id
WHERE r.id = $1`

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var view queries.ReservationView
	err := r.db.QueryRow(ctx, reservationViewSQL, id).Scan(
		&view.ID, &view.ServiceID, &view.ServiceTitle, &view.ClientID, &view.ProviderID, &view.SlotID,
		&view.ScheduledAt, &view.Status, &view.TotalCost, &view.Note, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return &view, nil
}

const reservationsByClientSQL = `
SELECT r.id, r.service_id, s.title, r.scheduled_at, r.status, r.total_cost, r.created_at
FROM reservations r
JOIN services s ON s.id = r.service_id
WHERE r.client_id = $1
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2`

func (r *ReservationReadStore) FindByClientID(ctx context.Context, clientID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	return r.list(ctx, reservationsByClientSQL, clientID, limit)
}

const reservationsByProviderSQL = `
SELECT r.id, r.service_id, s.title, r.scheduled_at, r.status, r.total_cost, r.created_at
FROM reservations r
JOIN services s ON s.id = r.service_id
WHERE r.provider_id = $1
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2`

func (r *ReservationReadStore) FindByProviderID(ctx context.Context, providerID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	return r.list(ctx, reservationsByProviderSQL, providerID, limit)
}

func (r *ReservationReadStore) list(ctx context.Context, sql string, ownerID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, sql, ownerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		var item queries.ReservationListItem
		if err := rows.Scan(
			&item.ID, &item.ServiceID, &item.ServiceTitle,
			&item.ScheduledAt, &item.Status, &item.TotalCost, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}
