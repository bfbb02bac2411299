package notifier

import (
	"context"
	"log/slog"

	"courtbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StoreNotifier persists notification rows for the external delivery layer
// (push/email). It runs on its own pool connection, outside any unit of work:
// a delivery-side failure must never roll back a booking.
type StoreNotifier struct {
	pool *pgxpool.Pool
}

func NewStoreNotifier(pool *pgxpool.Pool) commands.Notifier {
	return &StoreNotifier{pool: pool}
}

const insertNotificationSQL = `
INSERT INTO notifications (id, user_id, category, title, body, status)
VALUES ($1, $2, $3, $4, $5, 'queued')`

func (n *StoreNotifier) Notify(ctx context.Context, userID uuid.UUID, category, title, body string) {
	_, err := n.pool.Exec(ctx, insertNotificationSQL, uuid.New(), userID, category, title, body)
	if err != nil {
		slog.Warn("failed to enqueue notification",
			"user_id", userID.String(),
			"category", category,
			"error", err.Error())
	}
}
