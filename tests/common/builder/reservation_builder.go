//go:build unit

package builder

import (
	"time"

	domreservation "courtbook/internal/domain/reservation"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	ServiceID   uuid.UUID
	ProviderID  uuid.UUID
	SlotID      uuid.UUID
	ScheduledAt time.Time
	Status      domreservation.Status
	TotalCost   decimal.Decimal
	Note        string
	Now         time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		ID:          uuid.New(),
		ClientID:    uuid.New(),
		ServiceID:   uuid.New(),
		ProviderID:  uuid.New(),
		SlotID:      uuid.New(),
		ScheduledAt: now.Add(10 * 24 * time.Hour),
		Status:      domreservation.StatusPending,
		TotalCost:   decimal.NewFromInt(5000),
		Note:        "bring two rackets",
		Now:         now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	return domreservation.NewReservation(
		b.ID, b.ClientID, b.ServiceID, b.ProviderID, b.SlotID,
		b.ScheduledAt, b.TotalCost, b.Note, b.Now,
	)
}

func (b *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:          b.ID,
		ClientID:    b.ClientID,
		ServiceID:   b.ServiceID,
		ProviderID:  b.ProviderID,
		SlotID:      b.SlotID,
		ScheduledAt: b.ScheduledAt,
		Status:      b.Status,
		TotalCost:   b.TotalCost,
		CreatedAt:   b.Now,
	}
}
