//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"courtbook/internal/domain/reservation"
	"courtbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusPending, actual.Status())
		assert.Equal(t, b.ClientID, actual.ClientID())
		assert.Equal(t, b.SlotID, actual.SlotID())
		assert.True(t, b.TotalCost.Equal(actual.TotalCost()))
	})

	t.Run("date must be in the future", func(t *testing.T) {
		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ScheduledAt = b.Now
		})
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, reservation.ErrDateNotFuture)
	})

	t.Run("cost cannot be negative", func(t *testing.T) {
		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.TotalCost = decimal.NewFromInt(-1)
		})
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, reservation.ErrNegativeCost)
	})

	t.Run("note is trimmed", func(t *testing.T) {
		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Note = "  indoor court please  "
		})
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "indoor court please", actual.Note())
	})

	t.Run("note length boundary", func(t *testing.T) {
		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Note = strings.Repeat("a", reservation.MaxNoteLength)
		})
		_, err := b.BuildDomain()
		require.NoError(t, err)

		b = builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Note = strings.Repeat("a", reservation.MaxNoteLength+1)
		})
		_, err = b.BuildDomain()
		assert.ErrorIs(t, err, reservation.ErrNoteTooLong)
	})
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from reservation.Status
		to   reservation.Status
		ok   bool
	}{
		{reservation.StatusPending, reservation.StatusConfirmed, true},
		{reservation.StatusPending, reservation.StatusRejected, true},
		{reservation.StatusPending, reservation.StatusCancelled, true},
		{reservation.StatusPending, reservation.StatusFinalized, false},
		{reservation.StatusConfirmed, reservation.StatusFinalized, true},
		{reservation.StatusConfirmed, reservation.StatusCancelled, true},
		{reservation.StatusConfirmed, reservation.StatusRejected, false},
		{reservation.StatusConfirmed, reservation.StatusPending, false},
		{reservation.StatusFinalized, reservation.StatusCancelled, false},
		{reservation.StatusRejected, reservation.StatusPending, false},
		{reservation.StatusCancelled, reservation.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestConfirm(t *testing.T) {
	t.Run("owning provider confirms a pending reservation", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, res.Confirm(b.ProviderID))
		assert.True(t, res.IsConfirmed())
	})

	t.Run("another provider may not confirm", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, res.Confirm(uuid.New()), reservation.ErrNotProvider)
		assert.True(t, res.IsPending())
	})

	t.Run("a confirmed reservation cannot be confirmed again", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, res.Confirm(b.ProviderID))

		assert.ErrorIs(t, res.Confirm(b.ProviderID), reservation.ErrInvalidTransition)
	})
}

func TestCancel(t *testing.T) {
	t.Run("owning client cancels a pending reservation", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, res.Cancel(b.ClientID))
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("owning client cancels a confirmed reservation", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, res.Confirm(b.ProviderID))

		require.NoError(t, res.Cancel(b.ClientID))
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("another client may not cancel", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, res.Cancel(uuid.New()), reservation.ErrNotClient)
	})
}

func TestFinalize(t *testing.T) {
	t.Run("confirmed reservation finalizes after the service date", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, res.Confirm(b.ProviderID))

		require.NoError(t, res.Finalize(b.ScheduledAt.Add(time.Hour)))
		assert.Equal(t, reservation.StatusFinalized, res.Status())
	})

	t.Run("cannot finalize before the service date", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, res.Confirm(b.ProviderID))

		assert.ErrorIs(t, res.Finalize(b.ScheduledAt.Add(-time.Hour)), reservation.ErrNotYetDelivered)
	})

	t.Run("cannot finalize a pending reservation", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, res.Finalize(b.ScheduledAt.Add(time.Hour)), reservation.ErrInvalidTransition)
	})
}

func TestExpire(t *testing.T) {
	b := builder.NewReservationBuilder()
	res, err := b.BuildDomain()
	require.NoError(t, err)

	require.NoError(t, res.Expire())
	assert.Equal(t, reservation.StatusCancelled, res.Status())

	assert.ErrorIs(t, res.Expire(), reservation.ErrInvalidTransition)
}
