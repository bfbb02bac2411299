package queries

import (
	"context"
	"time"

	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentView struct {
	ID            uuid.UUID       `json:"id"`
	ReservationID uuid.UUID       `json:"reservation_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
	GatewayRef    string          `json:"gateway_ref"`
	CreatedAt     time.Time       `json:"created_at"`
}

type ReceiptView struct {
	ID        uuid.UUID       `json:"id"`
	PaymentID uuid.UUID       `json:"payment_id"`
	Number    string          `json:"number"`
	Amount    decimal.Decimal `json:"amount"`
	IssuedAt  time.Time       `json:"issued_at"`
}

type RefundView struct {
	ID            uuid.UUID       `json:"id"`
	ReservationID uuid.UUID       `json:"reservation_id"`
	Amount        decimal.Decimal `json:"amount"`
	Reason        string          `json:"reason"`
	State         string          `json:"state"`
	ReviewerID    *uuid.UUID      `json:"reviewer_id,omitempty"`
	AdminNotes    string          `json:"admin_notes,omitempty"`
	DecidedAt     *time.Time      `json:"decided_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type PaymentQueries interface {
	GetByReservation(ctx context.Context, actorID, reservationID uuid.UUID) (*PaymentView, error)
	GetReceipt(ctx context.Context, paymentID uuid.UUID) (*ReceiptView, error)
	GetRefundByReservation(ctx context.Context, actorID, reservationID uuid.UUID) (*RefundView, error)
}

type PaymentViewRepo interface {
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*PaymentView, error)
	FindReceiptByPaymentID(ctx context.Context, paymentID uuid.UUID) (*ReceiptView, error)
	FindRefundByReservationID(ctx context.Context, reservationID uuid.UUID) (*RefundView, error)
}

// ReservationOwnership resolves who may read payment records for a
// reservation.
type ReservationOwnership interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type paymentQueriesImpl struct {
	repo   PaymentViewRepo
	owners ReservationOwnership
}

func NewPaymentQueries(repo PaymentViewRepo, owners ReservationOwnership) PaymentQueries {
	return &paymentQueriesImpl{repo: repo, owners: owners}
}

func (q *paymentQueriesImpl) GetByReservation(ctx context.Context, actorID, reservationID uuid.UUID) (*PaymentView, error) {
	res, err := q.owners.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrViewNotFound)
		}
		return nil, errs.Mark(err, ErrViewFailure)
	}
	if res.ClientID != actorID && res.ProviderID != actorID {
		return nil, errs.Mark(errs.Newf("reservation %s is not visible to %s", reservationID, actorID), ErrViewForbidden)
	}

	view, err := q.repo.FindByReservationID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrViewNotFound)
		}
		return nil, errs.Mark(err, ErrViewFailure)
	}
	return view, nil
}

func (q *paymentQueriesImpl) GetReceipt(ctx context.Context, paymentID uuid.UUID) (*ReceiptView, error) {
	view, err := q.repo.FindReceiptByPaymentID(ctx, paymentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrViewNotFound)
		}
		return nil, errs.Mark(err, ErrViewFailure)
	}
	return view, nil
}

func (q *paymentQueriesImpl) GetRefundByReservation(ctx context.Context, actorID, reservationID uuid.UUID) (*RefundView, error) {
	res, err := q.owners.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrViewNotFound)
		}
		return nil, errs.Mark(err, ErrViewFailure)
	}
	if res.ClientID != actorID && res.ProviderID != actorID {
		return nil, errs.Mark(errs.Newf("reservation %s is not visible to %s", reservationID, actorID), ErrViewForbidden)
	}

	view, err := q.repo.FindRefundByReservationID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrViewNotFound)
		}
		return nil, errs.Mark(err, ErrViewFailure)
	}
	return view, nil
}
