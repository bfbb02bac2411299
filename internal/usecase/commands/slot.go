package commands

import (
	"context"
	"time"

	"courtbook/internal/domain/slot"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNotServiceProvider = errs.New("actor does not own this service")
	ErrInvalidSlot        = errs.New("invalid slot definition")
)

type SlotParams struct {
	StartAt  time.Time
	EndAt    time.Time
	Capacity int32
}

type SlotCommands interface {
	// AddSlots publishes provider-authored capacity; all slots in the batch
	// are validated and inserted together or not at all.
	AddSlots(ctx context.Context, providerID, serviceID uuid.UUID, params []SlotParams) ([]uuid.UUID, error)
}

type slotCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSlotCommands(uow shared.UnitOfWork, clk clock.Clock) SlotCommands {
	return &slotCommandsImpl{uow: uow, clock: clk}
}

func (c *slotCommandsImpl) AddSlots(ctx context.Context, providerID, serviceID uuid.UUID, params []SlotParams) ([]uuid.UUID, error) {
	svc, err := c.uow.CommandReads().ServiceByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrServiceNotFound)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	if svc.ProviderID != providerID {
		return nil, errs.Mark(errs.Newf("service %s belongs to provider %s", svc.ID, svc.ProviderID), ErrNotServiceProvider)
	}

	now := c.clock.Now()
	ids := make([]uuid.UUID, 0, len(params))

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, p := range params {
			entity, err := slot.NewServiceSlot(uuid.New(), serviceID, p.StartAt, p.EndAt, p.Capacity, now)
			if err != nil {
				return errs.Mark(err, ErrInvalidSlot)
			}
			if err := tx.Slots().Insert(ctx, tx.DB(), entity); err != nil {
				return errs.Mark(err, ErrStorageFailure)
			}
			ids = append(ids, entity.ID())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
