package request

import (
	"courtbook/internal/domain/payment"

	"github.com/google/uuid"
)

type SubmitPaymentRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	Method        string    `json:"method" binding:"required"`
	CardNumber    string    `json:"card_number,omitempty"`
	CardHolder    string    `json:"card_holder,omitempty"`
	CardExpiry    string    `json:"card_expiry,omitempty"`
	CardCVV       string    `json:"card_cvv,omitempty"`
	WalletEmail   string    `json:"wallet_email,omitempty"`
}

type RejectRefundRequest struct {
	Notes string `json:"notes" binding:"required"`
}

func (r SubmitPaymentRequest) ToDetails() payment.Details {
	return payment.Details{
		CardNumber:  r.CardNumber,
		CardHolder:  r.CardHolder,
		CardExpiry:  r.CardExpiry,
		CardCVV:     r.CardCVV,
		WalletEmail: r.WalletEmail,
	}
}
