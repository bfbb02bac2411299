package shared

import (
	"context"
	"time"

	"courtbook/internal/domain/payment"
	"courtbook/internal/domain/refund"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/domain/slot"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitOfWork groups every write of one operation into a single transaction:
// slot decrement, reservation write and any coupled payment or refund write
// commit together or roll back together.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: validation reads outside transactions.
	CommandReads() CommandReads
}

type Tx interface {
	Slots() SlotRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Refunds() RefundRepository
	Receipts() ReceiptRepository
	Providers() ProviderRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	PaymentByID(ctx context.Context, id uuid.UUID) (*PaymentSnapshot, error)
	PaymentByReservationID(ctx context.Context, reservationID uuid.UUID) (*PaymentSnapshot, error)
	PendingReservationsBefore(ctx context.Context, cutoff time.Time, limit int32) ([]ReservationSnapshot, error)
}

// Minimal snapshots for command-side validation reads.

type UserSnapshot struct {
	ID     uuid.UUID
	Role   string
	Active bool
}

type ServiceSnapshot struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
	Status     string
	Price      decimal.Decimal
}

type ReservationSnapshot struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	ServiceID   uuid.UUID
	ProviderID  uuid.UUID
	SlotID      uuid.UUID
	ScheduledAt time.Time
	Status      reservation.Status
	TotalCost   decimal.Decimal
	CreatedAt   time.Time
}

type PaymentSnapshot struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Amount        decimal.Decimal
	Method        payment.Method
	Status        payment.Status
}

type ReceiptSnapshot struct {
	ID        uuid.UUID
	PaymentID uuid.UUID
	Number    string
	Amount    decimal.Decimal
	IssuedAt  time.Time
}

type SlotRepository interface {
	Insert(ctx context.Context, db db.DBTX, s *slot.ServiceSlot) error
	// AcquireCapacity atomically finds the active slot covering (serviceID,
	// at), decrements its remaining capacity and returns its ID. The check
	// and the decrement are one statement so two concurrent bookings against
	// a slot with one unit left cannot both succeed. Zero matching rows maps
	// to KindConflict.
	AcquireCapacity(ctx context.Context, db db.DBTX, serviceID uuid.UUID, at time.Time) (uuid.UUID, error)
	// ReleaseCapacity reverses one AcquireCapacity on the slot the
	// reservation recorded. At most once per reservation release.
	ReleaseCapacity(ctx context.Context, db db.DBTX, slotID uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, db db.DBTX, r *reservation.Reservation) (uuid.UUID, error)
	// TransitionStatus updates the status only when the current status is in
	// from; a raced transition yields KindConflict, never a silent overwrite.
	TransitionStatus(ctx context.Context, db db.DBTX, id uuid.UUID, from []reservation.Status, to reservation.Status) error
}

type PaymentRepository interface {
	Create(ctx context.Context, db db.DBTX, p *payment.Payment) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, db db.DBTX, id uuid.UUID, from, to payment.Status) error
}

type RefundRepository interface {
	Create(ctx context.Context, db db.DBTX, r *refund.Request) (uuid.UUID, error)
	FindByReservationID(ctx context.Context, db db.DBTX, reservationID uuid.UUID) (*refund.Request, error)
	// SaveDecision persists the adjudication fields of a decided request. The
	// REQUESTED guard in the update makes racing decisions yield KindConflict.
	SaveDecision(ctx context.Context, db db.DBTX, r *refund.Request) error
}

type ReceiptRepository interface {
	// CreateIfAbsent inserts a receipt unless one already exists for the
	// payment, then returns the stored row either way.
	CreateIfAbsent(ctx context.Context, db db.DBTX, paymentID uuid.UUID, number string, amount decimal.Decimal, issuedAt time.Time) (*ReceiptSnapshot, error)
}

type ProviderRepository interface {
	IncrementCompletedCount(ctx context.Context, db db.DBTX, providerID uuid.UUID) error
}
