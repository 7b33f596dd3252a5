package ledger

import "github.com/shopspring/decimal"

type MovementType string

const (
	TypeCharge     MovementType = "CHARGE"
	TypePayment    MovementType = "PAYMENT"
	TypeAdjustment MovementType = "ADJUSTMENT"
)

func (t MovementType) IsValid() bool {
	switch t {
	case TypeCharge, TypePayment, TypeAdjustment:
		return true
	default:
		return false
	}
}

// Signed applies the sign convention: charges add to the balance, payments
// subtract, adjustments already carry their sign.
func (t MovementType) Signed(amount decimal.Decimal) decimal.Decimal {
	if t == TypePayment {
		return amount.Neg()
	}
	return amount
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusReversed  Status = "REVERSED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusReversed:
		return true
	default:
		return false
	}
}
