package repository

import (
	"context"
	"time"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReceiptRepository struct{}

func NewReceiptRepository() *ReceiptRepository {
	return &ReceiptRepository{}
}

const insertReceiptSQL = `
INSERT INTO receipts (id, payment_id, receipt_number, amount, issued_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (payment_id) DO NOTHING`

const selectReceiptByPaymentSQL = `
SELECT id, payment_id, receipt_number, amount, issued_at
FROM receipts
WHERE payment_id = $1`

// CreateIfAbsent makes receipt issuance idempotent by return value: the first
// call inserts, every later call returns the stored receipt unchanged.
func (r *ReceiptRepository) CreateIfAbsent(
	ctx context.Context,
	dbtx db.DBTX,
	paymentID uuid.UUID,
	number string,
	amount decimal.Decimal,
	issuedAt time.Time,
) (*shared.ReceiptSnapshot, error) {
	_, err := dbtx.Exec(ctx, insertReceiptSQL, uuid.New(), paymentID, number, amount, issuedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert receipt", err)
	}

	var snap shared.ReceiptSnapshot
	err = dbtx.QueryRow(ctx, selectReceiptByPaymentSQL, paymentID).
		Scan(&snap.ID, &snap.PaymentID, &snap.Number, &snap.Amount, &snap.IssuedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read receipt", err)
	}
	return &snap, nil
}
