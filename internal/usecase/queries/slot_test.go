//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/queries"
	queriesmock "courtbook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCheckCapacity(t *testing.T) {
	ctx := context.Background()
	serviceID := uuid.New()
	at := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)

	t.Run("a bookable covering slot reports available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockSlotViewRepo(ctrl)
		q := queries.NewSlotQueries(repo)

		slotID := uuid.New()
		repo.EXPECT().FindCovering(ctx, serviceID, at).Return(&queries.SlotView{
			ID:        slotID,
			ServiceID: serviceID,
			StartAt:   at.Add(-30 * time.Minute),
			EndAt:     at.Add(30 * time.Minute),
			Total:     4,
			Remaining: 3,
			Active:    true,
		}, nil)

		view, err := q.CheckCapacity(ctx, serviceID, at)
		require.NoError(t, err)

		assert.True(t, view.Available)
		require.NotNil(t, view.SlotID)
		assert.Equal(t, slotID, *view.SlotID)
		assert.Equal(t, int32(3), view.Remaining)
	})

	t.Run("an exhausted earlier window does not shadow a later active slot", func(t *testing.T) {
		// FindCovering only returns bookable slots, so when an exhausted
		// window overlaps the same instant the repo hands back the active
		// one and the check must report it available.
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockSlotViewRepo(ctrl)
		q := queries.NewSlotQueries(repo)

		laterID := uuid.New()
		repo.EXPECT().FindCovering(ctx, serviceID, at).Return(&queries.SlotView{
			ID:        laterID,
			ServiceID: serviceID,
			StartAt:   at.Add(-10 * time.Minute),
			EndAt:     at.Add(50 * time.Minute),
			Total:     2,
			Remaining: 2,
			Active:    true,
		}, nil)

		view, err := q.CheckCapacity(ctx, serviceID, at)
		require.NoError(t, err)

		assert.True(t, view.Available)
		require.NotNil(t, view.SlotID)
		assert.Equal(t, laterID, *view.SlotID)
	})

	t.Run("no covering slot means unavailable, not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockSlotViewRepo(ctrl)
		q := queries.NewSlotQueries(repo)

		repo.EXPECT().FindCovering(ctx, serviceID, at).
			Return(nil, infra.WrapRepoErr("no slot covers the requested time", errs.New("no rows"), infra.KindNotFound))

		view, err := q.CheckCapacity(ctx, serviceID, at)
		require.NoError(t, err)

		assert.False(t, view.Available)
		assert.Nil(t, view.SlotID)
		assert.Zero(t, view.Remaining)
	})

	t.Run("a store failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockSlotViewRepo(ctrl)
		q := queries.NewSlotQueries(repo)

		repo.EXPECT().FindCovering(ctx, serviceID, at).
			Return(nil, infra.WrapRepoErr("failed to find covering slot", errs.New("connection reset")))

		view, err := q.CheckCapacity(ctx, serviceID, at)
		require.ErrorIs(t, err, queries.ErrViewFailure)
		assert.Nil(t, view)
	})
}
