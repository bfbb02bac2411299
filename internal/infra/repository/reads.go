package repository

import (
	"context"
	"time"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads serves the minimal validation reads the command side needs,
// against whatever DBTX it is bound to (pool or open transaction).
type CommandReads struct {
	dbtx db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{dbtx: dbtx}
}

const userByIDSQL = `
SELECT id, role, active
FROM users
WHERE id = $1`

func (r *CommandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	var snap shared.UserSnapshot
	err := r.dbtx.QueryRow(ctx, userByIDSQL, id).Scan(&snap.ID, &snap.Role, &snap.Active)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &snap, nil
}

const serviceByIDSQL = `
SELECT id, provider_id, status, price
FROM services
WHERE id = $1`

func (r *CommandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	var snap shared.ServiceSnapshot
	err := r.dbtx.QueryRow(ctx, serviceByIDSQL, id).Scan(&snap.ID, &snap.ProviderID, &snap.Status, &snap.Price)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return &snap, nil
}

const reservationByIDSQL = `
SELECT id, client_id, service_id, provider_id, slot_id, scheduled_at, status, total_cost, created_at
FROM reservations
WHERE id = $1`

func (r *CommandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	var snap shared.ReservationSnapshot
	err := r.dbtx.QueryRow(ctx, reservationByIDSQL, id).Scan(
		&snap.ID, &snap.ClientID, &snap.ServiceID, &snap.ProviderID, &snap.SlotID,
		&snap.ScheduledAt, &snap.Status, &snap.TotalCost, &snap.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return &snap, nil
}

const paymentByIDSQL = `
SELECT id, reservation_id, amount, method, status
FROM payments
WHERE id = $1`

func (r *CommandReads) PaymentByID(ctx context.Context, id uuid.UUID) (*shared.PaymentSnapshot, error) {
	var snap shared.PaymentSnapshot
	err := r.dbtx.QueryRow(ctx, paymentByIDSQL, id).Scan(
		&snap.ID, &snap.ReservationID, &snap.Amount, &snap.Method, &snap.Status,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by ID", err)
	}
	return &snap, nil
}

const paymentByReservationSQL = `
SELECT id, reservation_id, amount, method, status
FROM payments
WHERE reservation_id = $1`

func (r *CommandReads) PaymentByReservationID(ctx context.Context, reservationID uuid.UUID) (*shared.PaymentSnapshot, error) {
	var snap shared.PaymentSnapshot
	err := r.dbtx.QueryRow(ctx, paymentByReservationSQL, reservationID).Scan(
		&snap.ID, &snap.ReservationID, &snap.Amount, &snap.Method, &snap.Status,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found for reservation", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by reservation ID", err)
	}
	return &snap, nil
}

const pendingBeforeSQL = `
SELECT id, client_id, service_id, provider_id, slot_id, scheduled_at, status, total_cost, created_at
FROM reservations
WHERE status = 'pending'
  AND created_at < $1
ORDER BY created_at
LIMIT $2`

func (r *CommandReads) PendingReservationsBefore(ctx context.Context, cutoff time.Time, limit int32) ([]shared.ReservationSnapshot, error) {
	rows, err := r.dbtx.Query(ctx, pendingBeforeSQL, cutoff, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending reservations", err)
	}
	defer rows.Close()

	var result []shared.ReservationSnapshot
	for rows.Next() {
		var snap shared.ReservationSnapshot
		if err := rows.Scan(
			&snap.ID, &snap.ClientID, &snap.ServiceID, &snap.ProviderID, &snap.SlotID,
			&snap.ScheduledAt, &snap.Status, &snap.TotalCost, &snap.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending reservation", err)
		}
		result = append(result, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pending reservations", err)
	}
	return result, nil
}
