package queries

import (
	"context"
	"time"

	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type SlotView struct {
	ID        uuid.UUID `json:"id"`
	ServiceID uuid.UUID `json:"service_id"`
	SlotDate  time.Time `json:"slot_date"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Total     int32     `json:"total_capacity"`
	Remaining int32     `json:"remaining_capacity"`
	Active    bool      `json:"active"`
}

// CapacityView answers "can this service take a booking at t" without
// consuming anything.
type CapacityView struct {
	Available bool       `json:"available"`
	SlotID    *uuid.UUID `json:"slot_id,omitempty"`
	Remaining int32      `json:"remaining_capacity"`
}

type SlotQueries interface {
	ListByService(ctx context.Context, serviceID uuid.UUID, date time.Time) ([]*SlotView, error)
	CheckCapacity(ctx context.Context, serviceID uuid.UUID, at time.Time) (*CapacityView, error)
}

type SlotViewRepo interface {
	FindByServiceAndDate(ctx context.Context, serviceID uuid.UUID, date time.Time) ([]*SlotView, error)
	// FindCovering returns the active slot whose window covers at, or
	// KindNotFound when none does.
	FindCovering(ctx context.Context, serviceID uuid.UUID, at time.Time) (*SlotView, error)
}

type slotQueriesImpl struct {
	repo SlotViewRepo
}

func NewSlotQueries(repo SlotViewRepo) SlotQueries {
	return &slotQueriesImpl{repo: repo}
}

func (q *slotQueriesImpl) ListByService(ctx context.Context, serviceID uuid.UUID, date time.Time) ([]*SlotView, error) {
	views, err := q.repo.FindByServiceAndDate(ctx, serviceID, date)
	if err != nil {
		return nil, errs.Mark(err, ErrViewFailure)
	}
	return views, nil
}

func (q *slotQueriesImpl) CheckCapacity(ctx context.Context, serviceID uuid.UUID, at time.Time) (*CapacityView, error) {
	view, err := q.repo.FindCovering(ctx, serviceID, at)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &CapacityView{Available: false}, nil
		}
		return nil, errs.Mark(err, ErrViewFailure)
	}
	return &CapacityView{
		Available: view.Active && view.Remaining > 0,
		SlotID:    &view.ID,
		Remaining: view.Remaining,
	}, nil
}
