package payment

import (
	"bytes"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoDebt      = errors.New("client has no outstanding debt")
	ErrExceedsDebt = errors.New("amount exceeds the total outstanding debt")
)

// Debt is an unpaid invoice considered by a settlement.
type Debt struct {
	InvoiceID   uuid.UUID
	Outstanding decimal.Decimal
	IssuedAt    time.Time
}

type Allocation struct {
	InvoiceID uuid.UUID
	Amount    decimal.Decimal
}

// PlanSettlement pays down debts oldest-issued first, applying
// min(remaining, outstanding) to each. A remainder left after every debt is
// covered is rejected rather than kept as credit.
func PlanSettlement(debts []Debt, amount decimal.Decimal) ([]Allocation, error) {
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	ordered := slices.Clone(debts)
	slices.SortStableFunc(ordered, func(a, b Debt) int {
		if c := a.IssuedAt.Compare(b.IssuedAt); c != 0 {
			return c
		}
		return bytes.Compare(a.InvoiceID[:], b.InvoiceID[:])
	})

	total := decimal.Zero
	for _, d := range ordered {
		if d.Outstanding.IsPositive() {
			total = total.Add(d.Outstanding)
		}
	}
	if total.IsZero() {
		return nil, ErrNoDebt
	}
	if amount.GreaterThan(total) {
		return nil, ErrExceedsDebt
	}

	remaining := amount
	allocations := make([]Allocation, 0, len(ordered))
	for _, d := range ordered {
		if !remaining.IsPositive() {
			break
		}
		if !d.Outstanding.IsPositive() {
			continue
		}
		applied := decimal.Min(remaining, d.Outstanding)
		allocations = append(allocations, Allocation{InvoiceID: d.InvoiceID, Amount: applied})
		remaining = remaining.Sub(applied)
	}
	return allocations, nil
}
