package booking

type FulfillmentStatus string

const (
	FulfillmentPending   FulfillmentStatus = "pending"
	FulfillmentConfirmed FulfillmentStatus = "confirmed"
	FulfillmentCompleted FulfillmentStatus = "completed"
	FulfillmentCancelled FulfillmentStatus = "cancelled"
)

func (s FulfillmentStatus) String() string {
	return string(s)
}

func (s FulfillmentStatus) IsValid() bool {
	switch s {
	case FulfillmentPending, FulfillmentConfirmed, FulfillmentCompleted, FulfillmentCancelled:
		return true
	default:
		return false
	}
}

// HoldsRange is true while the booking occupies its nights on the ledger.
func (s FulfillmentStatus) HoldsRange() bool {
	return s == FulfillmentPending || s == FulfillmentConfirmed
}

func (s FulfillmentStatus) IsTerminal() bool {
	return s == FulfillmentCompleted || s == FulfillmentCancelled
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentUnpaid, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	default:
		return false
	}
}

func ParseFulfillmentStatus(s string) (FulfillmentStatus, error) {
	st := FulfillmentStatus(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	st := PaymentStatus(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
