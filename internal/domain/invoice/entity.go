package invoice

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidNights        = errors.New("an invoice needs at least one night")
	ErrNegativeNightlyPrice = errors.New("nightly price cannot be negative")
	ErrNonPositiveAmount    = errors.New("payment amount must be greater than zero")
	ErrAmountPrecision      = errors.New("payment amount cannot have more than 2 decimal places")
	ErrOverpayment          = errors.New("payment exceeds the outstanding balance")
	ErrInvoiceCancelled     = errors.New("invoice is cancelled")
	ErrInvoiceAlreadyPaid   = errors.New("invoice is already paid")
	ErrCannotCancel         = errors.New("only unpaid pending invoices can be cancelled")
	ErrCancelReasonRequired = errors.New("cancellation reason is required")
)

type Invoice struct {
	id                 uuid.UUID
	number             string
	reservationID      uuid.UUID
	clientID           uuid.UUID
	subtotal           decimal.Decimal
	taxRate            TaxRate
	taxAmount          decimal.Decimal
	total              decimal.Decimal
	amountPaid         decimal.Decimal
	status             Status
	issuedAt           time.Time
	dueDate            time.Time
	cancellationReason *string
	createdAt          time.Time
	updatedAt          time.Time
}

type IssueParams struct {
	ReservationID uuid.UUID
	ClientID      uuid.UUID
	NightlyPrice  decimal.Decimal
	Nights        int
	TaxRate       TaxRate
	IssuedAt      time.Time
	GracePeriod   time.Duration
}

// Issue prices a stay: subtotal = nightly price × nights, tax = round2(subtotal × rate).
func Issue(p IssueParams) (*Invoice, error) {
	if p.Nights <= 0 {
		return nil, ErrInvalidNights
	}
	if p.NightlyPrice.IsNegative() {
		return nil, ErrNegativeNightlyPrice
	}

	subtotal := p.NightlyPrice.Mul(decimal.NewFromInt(int64(p.Nights))).Round(2)
	tax := p.TaxRate.TaxOn(subtotal)
	id := uuid.New()

	inv := &Invoice{
		id:            id,
		number:        GenerateNumber(id, p.IssuedAt),
		reservationID: p.ReservationID,
		clientID:      p.ClientID,
		subtotal:      subtotal,
		taxRate:       p.TaxRate,
		taxAmount:     tax,
		total:         subtotal.Add(tax),
		amountPaid:    decimal.Zero,
		issuedAt:      p.IssuedAt,
		dueDate:       p.IssuedAt.Add(p.GracePeriod),
		createdAt:     p.IssuedAt,
		updatedAt:     p.IssuedAt,
	}
	inv.recomputeStatus()
	return inv, nil
}

type Record struct {
	ID                 uuid.UUID
	Number             string
	ReservationID      uuid.UUID
	ClientID           uuid.UUID
	Subtotal           decimal.Decimal
	TaxRatePercent     decimal.Decimal
	TaxAmount          decimal.Decimal
	Total              decimal.Decimal
	AmountPaid         decimal.Decimal
	Status             Status
	IssuedAt           time.Time
	DueDate            time.Time
	CancellationReason *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func ReconstructInvoice(rec Record) *Invoice {
	return &Invoice{
		id:                 rec.ID,
		number:             rec.Number,
		reservationID:      rec.ReservationID,
		clientID:           rec.ClientID,
		subtotal:           rec.Subtotal,
		taxRate:            TaxRate{percent: rec.TaxRatePercent},
		taxAmount:          rec.TaxAmount,
		total:              rec.Total,
		amountPaid:         rec.AmountPaid,
		status:             rec.Status,
		issuedAt:           rec.IssuedAt,
		dueDate:            rec.DueDate,
		cancellationReason: rec.CancellationReason,
		createdAt:          rec.CreatedAt,
		updatedAt:          rec.UpdatedAt,
	}
}

// Outstanding is total - amountPaid, never negative.
func (i *Invoice) Outstanding() decimal.Decimal {
	out := i.total.Sub(i.amountPaid)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// ApplyPayment records amount against the invoice and returns the part that
// reduced the outstanding balance. With allowOverpayment the surplus is
// accepted but amountPaid stops at total.
func (i *Invoice) ApplyPayment(amount decimal.Decimal, allowOverpayment bool, now time.Time) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrNonPositiveAmount
	}
	if !amount.Equal(amount.Round(2)) {
		return decimal.Zero, ErrAmountPrecision
	}
	switch i.status {
	case StatusCancelled:
		return decimal.Zero, ErrInvoiceCancelled
	case StatusPaid:
		return decimal.Zero, ErrInvoiceAlreadyPaid
	}

	outstanding := i.Outstanding()
	if amount.GreaterThan(outstanding) && !allowOverpayment {
		return decimal.Zero, ErrOverpayment
	}

	applied := decimal.Min(amount, outstanding)
	i.amountPaid = i.amountPaid.Add(applied)
	i.recomputeStatus()
	i.updatedAt = now
	return applied, nil
}

func (i *Invoice) Cancel(reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrCancelReasonRequired
	}
	if i.status != StatusPending || !i.amountPaid.IsZero() {
		return ErrCannotCancel
	}
	i.status = StatusCancelled
	i.cancellationReason = &reason
	i.updatedAt = now
	return nil
}

func (i *Invoice) recomputeStatus() {
	if i.status == StatusCancelled {
		return
	}
	switch {
	case i.amountPaid.GreaterThanOrEqual(i.total):
		i.status = StatusPaid
	case i.amountPaid.IsZero():
		i.status = StatusPending
	default:
		i.status = StatusPartial
	}
}

func (i *Invoice) ID() uuid.UUID { return i.id }
func (i *Invoice) Number() string { return i.number }
func (i *Invoice) ReservationID() uuid.UUID { return i.reservationID }
func (i *Invoice) ClientID() uuid.UUID { return i.clientID }
func (i *Invoice) Subtotal() decimal.Decimal { return i.subtotal }
func (i *Invoice) TaxRate() TaxRate { return i.taxRate }
func (i *Invoice) TaxAmount() decimal.Decimal { return i.taxAmount }
func (i *Invoice) Total() decimal.Decimal { return i.total }
func (i *Invoice) AmountPaid() decimal.Decimal { return i.amountPaid }
func (i *Invoice) Status() Status { return i.status }
func (i *Invoice) IssuedAt() time.Time { return i.issuedAt }
func (i *Invoice) DueDate() time.Time { return i.dueDate }
func (i *Invoice) CancellationReason() *string { return i.cancellationReason }
func (i *Invoice) CreatedAt() time.Time { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time { return i.updatedAt }

func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.status.IsOpen() && now.After(i.dueDate)
}

// GenerateNumber derives INV-YYYYMM-XXXXXXXX from the invoice id.
func GenerateNumber(id uuid.UUID, issuedAt time.Time) string {
	return fmt.Sprintf("INV-%s-%s", issuedAt.Format("200601"), strings.ToUpper(hex.EncodeToString(id[:4])))
}
