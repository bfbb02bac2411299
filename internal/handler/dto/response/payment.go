package response

import (
	"time"

	"courtbook/internal/usecase/queries"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservationId"`
	Amount        string    `json:"amount"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ReceiptResponse struct {
	ID        uuid.UUID `json:"id"`
	PaymentID uuid.UUID `json:"paymentId"`
	Number    string    `json:"number"`
	Amount    string    `json:"amount"`
	IssuedAt  time.Time `json:"issuedAt"`
}

type RefundResponse struct {
	ID            uuid.UUID  `json:"id"`
	ReservationID uuid.UUID  `json:"reservationId"`
	Amount        string     `json:"amount"`
	Reason        string     `json:"reason"`
	State         string     `json:"state"`
	AdminNotes    string     `json:"adminNotes,omitempty"`
	DecidedAt     *time.Time `json:"decidedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func FromPaymentView(rm *queries.PaymentView) *PaymentResponse {
	return &PaymentResponse{
		ID:            rm.ID,
		ReservationID: rm.ReservationID,
		Amount:        rm.Amount.StringFixed(2),
		Method:        rm.Method,
		Status:        rm.Status,
		CreatedAt:     rm.CreatedAt,
	}
}

func FromReceiptView(rm *queries.ReceiptView) *ReceiptResponse {
	return &ReceiptResponse{
		ID:        rm.ID,
		PaymentID: rm.PaymentID,
		Number:    rm.Number,
		Amount:    rm.Amount.StringFixed(2),
		IssuedAt:  rm.IssuedAt,
	}
}

func FromReceiptSnapshot(s *shared.ReceiptSnapshot) *ReceiptResponse {
	return &ReceiptResponse{
		ID:        s.ID,
		PaymentID: s.PaymentID,
		Number:    s.Number,
		Amount:    s.Amount.StringFixed(2),
		IssuedAt:  s.IssuedAt,
	}
}

func FromRefundView(rm *queries.RefundView) *RefundResponse {
	return &RefundResponse{
		ID:            rm.ID,
		ReservationID: rm.ReservationID,
		Amount:        rm.Amount.StringFixed(2),
		Reason:        rm.Reason,
		State:         rm.State,
		AdminNotes:    rm.AdminNotes,
		DecidedAt:     rm.DecidedAt,
		CreatedAt:     rm.CreatedAt,
	}
}
