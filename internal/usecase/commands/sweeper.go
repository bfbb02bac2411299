package commands

import (
	"context"
	"log/slog"
	"time"

	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// SweepReport summarizes one expiry pass.
type SweepReport struct {
	Candidates int
	Swept      int
	Failed     []uuid.UUID
}

type SweeperCommands interface {
	// Sweep force-cancels every reservation still PENDING whose creation
	// timestamp is older than cutoff, releasing its slot capacity. A failure
	// on one reservation is logged and skipped so the batch completes.
	Sweep(ctx context.Context, cutoff time.Time) (*SweepReport, error)
}

type sweeperCommandsImpl struct {
	uow       shared.UnitOfWork
	res       *reservationCommandsImpl
	notifier  Notifier
	batchSize int32
}

func NewSweeperCommands(uow shared.UnitOfWork, reservations ReservationCommands, notifier Notifier, batchSize int32) SweeperCommands {
	// The sweeper reuses the in-transaction cancel, which only the
	// implementation built by NewReservationCommands carries. Failing here
	// beats a nil dereference on the first sweep.
	impl, ok := reservations.(*reservationCommandsImpl)
	if !ok {
		panic("sweeper requires the reservation commands built by NewReservationCommands")
	}
	return &sweeperCommandsImpl{
		uow:       uow,
		res:       impl,
		notifier:  notifier,
		batchSize: batchSize,
	}
}

func (c *sweeperCommandsImpl) Sweep(ctx context.Context, cutoff time.Time) (*SweepReport, error) {
	candidates, err := c.uow.CommandReads().PendingReservationsBefore(ctx, cutoff, c.batchSize)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	report := &SweepReport{Candidates: len(candidates)}

	for i := range candidates {
		snap := candidates[i]

		// Same transition as a client cancel, so the sweeper cannot diverge
		// from the state machine.
		err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return c.res.cancelWithinTx(ctx, tx, &snap, "expired: pending past grace window")
		})
		if err != nil {
			report.Failed = append(report.Failed, snap.ID)
			slog.Warn("sweep failed for reservation",
				"reservation_id", snap.ID.String(),
				"error", err.Error())
			continue
		}

		report.Swept++
		c.notifier.Notify(ctx, snap.ClientID, NotifyReservationStatus,
			"Reservation expired", "Your reservation was cancelled because payment was not completed in time.")
	}

	return report, nil
}
