package repository

import (
	"context"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

type ProviderRepository struct{}

func NewProviderRepository() *ProviderRepository {
	return &ProviderRepository{}
}

// Completed-reservation counter read by the reporting layer.
const incrementCompletedSQL = `
UPDATE provider_profiles
SET completed_reservations = completed_reservations + 1, updated_at = now()
WHERE user_id = $1
RETURNING user_id`

func (r *ProviderRepository) IncrementCompletedCount(ctx context.Context, dbtx db.DBTX, providerID uuid.UUID) error {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, incrementCompletedSQL, providerID).Scan(&id)
	if err != nil {
		if infra.IsNoRows(err) {
			return infra.WrapRepoErr("provider profile not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to increment completed reservations", err)
	}
	return nil
}
