package queries

import (
	"context"
	"time"

	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrViewNotFound  = errs.New("record not found")
	ErrViewForbidden = errs.New("actor may not read this record")
	ErrViewFailure   = errs.New("read query failed")
)

// Read models (DTO for read side)
type ReservationView struct {
	ID           uuid.UUID       `json:"id"`
	ServiceID    uuid.UUID       `json:"service_id"`
	ServiceTitle string          `json:"service_title"`
	ClientID     uuid.UUID       `json:"client_id"`
	ProviderID   uuid.UUID       `json:"provider_id"`
	SlotID       uuid.UUID       `json:"slot_id"`
	ScheduledAt  time.Time       `json:"scheduled_at"`
	Status       string          `json:"status"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	Note         *string         `json:"note,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type ReservationListItem struct {
	ID           uuid.UUID       `json:"id"`
	ServiceID    uuid.UUID       `json:"service_id"`
	ServiceTitle string          `json:"service_title"`
	ScheduledAt  time.Time       `json:"scheduled_at"`
	Status       string          `json:"status"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	CreatedAt    time.Time       `json:"created_at"`
}

type ReservationQueries interface {
	// GetByID returns the view only to the reservation's client or provider.
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*ReservationView, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByClientID(ctx context.Context, clientID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByProviderID(ctx context.Context, providerID uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

const defaultListLimit = 50

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrViewNotFound)
		}
		return nil, errs.Mark(err, ErrViewFailure)
	}
	if view.ClientID != actorID && view.ProviderID != actorID {
		return nil, errs.Mark(errs.Newf("reservation %s is not visible to %s", id, actorID), ErrViewForbidden)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByClient(ctx context.Context, clientID uuid.UUID, limit int32) ([]*ReservationListItem, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	items, err := q.repo.FindByClientID(ctx, clientID, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrViewFailure)
	}
	return items, nil
}

func (q *reservationQueriesImpl) ListByProvider(ctx context.Context, providerID uuid.UUID, limit int32) ([]*ReservationListItem, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	items, err := q.repo.FindByProviderID(ctx, providerID, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrViewFailure)
	}
	return items, nil
}
