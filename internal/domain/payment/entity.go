package payment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxReferenceLength = 100

var (
	ErrNonPositiveAmount = errors.New("payment amount must be greater than zero")
	ErrAmountPrecision   = errors.New("payment amount cannot have more than 2 decimal places")
	ErrReferenceTooLong  = errors.New("payment reference is too long")
	ErrInvalidTransition = errors.New("invalid payment status transition")
)

// ValidateAmount accepts positive amounts expressed in whole cents.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if !amount.Equal(amount.Round(2)) {
		return ErrAmountPrecision
	}
	return nil
}

type Payment struct {
	id        uuid.UUID
	invoiceID uuid.UUID
	clientID  uuid.UUID
	amount    decimal.Decimal
	method    Method
	status    Status
	reference *string
	paidAt    time.Time
	createdAt time.Time
}

type NewParams struct {
	InvoiceID uuid.UUID
	ClientID  uuid.UUID
	Amount    decimal.Decimal
	Method    Method
	Reference *string
}

// Record creates a payment for an outcome already confirmed by the payer.
func Record(p NewParams, now time.Time) (*Payment, error) {
	if err := ValidateAmount(p.Amount); err != nil {
		return nil, err
	}
	if !p.Method.IsValid() {
		return nil, ErrInvalidMethod
	}
	var ref *string
	if p.Reference != nil {
		r := strings.TrimSpace(*p.Reference)
		if len(r) > MaxReferenceLength {
			return nil, ErrReferenceTooLong
		}
		if r != "" {
			ref = &r
		}
	}

	return &Payment{
		id:        uuid.New(),
		invoiceID: p.InvoiceID,
		clientID:  p.ClientID,
		amount:    p.Amount.Round(2),
		method:    p.Method,
		status:    StatusCompleted,
		reference: ref,
		paidAt:    now,
		createdAt: now,
	}, nil
}

func ReconstructPayment(
	id, invoiceID, clientID uuid.UUID,
	amount decimal.Decimal,
	method Method,
	status Status,
	reference *string,
	paidAt, createdAt time.Time,
) *Payment {
	return &Payment{
		id:        id,
		invoiceID: invoiceID,
		clientID:  clientID,
		amount:    amount,
		method:    method,
		status:    status,
		reference: reference,
		paidAt:    paidAt,
		createdAt: createdAt,
	}
}

func (p *Payment) TransitionTo(target Status) error {
	if !p.status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	p.status = target
	return nil
}

// ReferenceOr returns the payment reference, or fallback when none was given.
func (p *Payment) ReferenceOr(fallback string) string {
	if p.reference == nil {
		return fallback
	}
	return *p.reference
}

func (p *Payment) ID() uuid.UUID { return p.id }
func (p *Payment) InvoiceID() uuid.UUID { return p.invoiceID }
func (p *Payment) ClientID() uuid.UUID { return p.clientID }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) Method() Method { return p.method }
func (p *Payment) Status() Status { return p.status }
func (p *Payment) Reference() *string { return p.reference }
func (p *Payment) PaidAt() time.Time { return p.paidAt }
func (p *Payment) CreatedAt() time.Time { return p.createdAt }
