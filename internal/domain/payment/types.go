package payment

// Status is the payment lifecycle state.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
	StatusRefunded Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined, StatusRefunded:
		return true
	default:
		return false
	}
}

// Method is how the client pays.
type Method string

const (
	MethodCard          Method = "card"
	MethodDigitalWallet Method = "digital_wallet"
	MethodBankTransfer  Method = "bank_transfer"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodCard, MethodDigitalWallet, MethodBankTransfer:
		return true
	default:
		return false
	}
}
