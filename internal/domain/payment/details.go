package payment

import (
	"errors"
	"strings"
)

var (
	ErrInvalidMethod     = errors.New("unknown payment method")
	ErrMissingCardFields = errors.New("card payments require number, holder, expiry and cvv")
	ErrMissingWalletID   = errors.New("digital wallet payments require an account email")
)

// Details carries the method-specific fields submitted with a payment. Which
// fields are required depends on the method; bank transfers need none.
type Details struct {
	CardNumber  string
	CardHolder  string
	CardExpiry  string
	CardCVV     string
	WalletEmail string
}

func (d Details) Validate(method Method) error {
	switch method {
	case MethodCard:
		if isBlank(d.CardNumber) || isBlank(d.CardHolder) || isBlank(d.CardExpiry) || isBlank(d.CardCVV) {
			return ErrMissingCardFields
		}
		return nil
	case MethodDigitalWallet:
		if isBlank(d.WalletEmail) {
			return ErrMissingWalletID
		}
		return nil
	case MethodBankTransfer:
		return nil
	default:
		return ErrInvalidMethod
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
