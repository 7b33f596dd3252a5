package commands

import (
	"context"

	"hotel-core/internal/domain/invoice"
	"hotel-core/internal/domain/ledger"
	"hotel-core/internal/domain/payment"
	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RegisterPaymentInput struct {
	InvoiceID uuid.UUID
	ClientID  uuid.UUID
	Amount    decimal.Decimal
	Method    payment.Method
	Reference *string
}

type SettleDebtInput struct {
	ClientID uuid.UUID
	Amount   decimal.Decimal
	Method   payment.Method
}

type PaymentCommands interface {
	RegisterPayment(ctx context.Context, in RegisterPaymentInput) (*payment.Payment, error)
	SettleDebt(ctx context.Context, in SettleDebtInput) ([]*payment.Payment, error)
}

// paymentApplier records externally confirmed payments against invoices and
// mirrors each one as a PAYMENT movement.
type paymentApplier struct {
	uow    shared.UnitOfWork
	ledger *AccountLedger
	policy BillingPolicy
	clock  clock.Clock
}

func NewPaymentUseCase(uow shared.UnitOfWork, accountLedger *AccountLedger, policy BillingPolicy, clk clock.Clock) PaymentCommands {
	return &paymentApplier{uow: uow, ledger: accountLedger, policy: policy, clock: clk}
}

func (uc *paymentApplier) RegisterPayment(ctx context.Context, in RegisterPaymentInput) (*payment.Payment, error) {
	if err := payment.ValidateAmount(in.Amount); err != nil {
		return nil, domainErr(err)
	}
	if !in.Method.IsValid() {
		return nil, domainErr(payment.ErrInvalidMethod)
	}

	var recorded *payment.Payment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inv, err := tx.Invoices().GetForUpdate(ctx, in.InvoiceID)
		if err != nil {
			return notFoundOr(err, ErrInvoiceNotFound)
		}
		if inv.ClientID() != in.ClientID {
			return ErrClientMismatch
		}

		p, err := uc.apply(ctx, tx, inv, in.Amount, in.Method, in.Reference, uc.policy.AllowOverpayment)
		if err != nil {
			return err
		}
		recorded = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recorded, nil
}

// SettleDebt pays down the client's unpaid invoices oldest-issued first.
// Nothing is written when the client owes nothing or amount exceeds the debt.
func (uc *paymentApplier) SettleDebt(ctx context.Context, in SettleDebtInput) ([]*payment.Payment, error) {
	if err := payment.ValidateAmount(in.Amount); err != nil {
		return nil, domainErr(err)
	}
	if !in.Method.IsValid() {
		return nil, domainErr(payment.ErrInvalidMethod)
	}

	var recorded []*payment.Payment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ClientByID(ctx, in.ClientID); err != nil {
			return notFoundOr(err, ErrClientNotFound)
		}

		unpaid, err := tx.Invoices().ListUnpaidByClientForUpdate(ctx, in.ClientID)
		if err != nil {
			return err
		}
		byID := make(map[uuid.UUID]*invoice.Invoice, len(unpaid))
		debts := make([]payment.Debt, 0, len(unpaid))
		for _, inv := range unpaid {
			byID[inv.ID()] = inv
			debts = append(debts, payment.Debt{
				InvoiceID:   inv.ID(),
				Outstanding: inv.Outstanding(),
				IssuedAt:    inv.IssuedAt(),
			})
		}

		plan, err := payment.PlanSettlement(debts, in.Amount)
		if err != nil {
			return domainErr(err)
		}

		recorded = make([]*payment.Payment, 0, len(plan))
		for _, alloc := range plan {
			p, err := uc.apply(ctx, tx, byID[alloc.InvoiceID], alloc.Amount, in.Method, nil, false)
			if err != nil {
				return err
			}
			recorded = append(recorded, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recorded, nil
}

// apply must run with inv locked. The payment keeps the full amount even when
// an allowed overpayment caps amountPaid at total.
func (uc *paymentApplier) apply(
	ctx context.Context,
	tx shared.Tx,
	inv *invoice.Invoice,
	amount decimal.Decimal,
	method payment.Method,
	reference *string,
	allowOverpayment bool,
) (*payment.Payment, error) {
	now := uc.clock.Now()
	if _, err := inv.ApplyPayment(amount, allowOverpayment, now); err != nil {
		return nil, domainErr(err)
	}

	p, err := payment.Record(payment.NewParams{
		InvoiceID: inv.ID(),
		ClientID:  inv.ClientID(),
		Amount:    amount,
		Method:    method,
		Reference: reference,
	}, now)
	if err != nil {
		return nil, domainErr(err)
	}

	if err := tx.Invoices().UpdateSettlement(ctx, inv); err != nil {
		return nil, notFoundOr(err, ErrInvoiceNotFound)
	}
	if err := tx.Payments().Insert(ctx, p); err != nil {
		return nil, err
	}

	_, err = uc.ledger.Post(ctx, tx, ledger.PostParams{
		ClientID:    inv.ClientID(),
		Type:        ledger.TypePayment,
		Amount:      p.Amount(),
		Reference:   inv.Number(),
		Description: "Payment " + string(p.Method()),
		Metadata: map[string]any{
			"payment_id": p.ID().String(),
			"invoice_id": inv.ID().String(),
		},
	})
	if err != nil {
		return nil, err
	}

	if err := enqueue(ctx, tx, uc.clock, TopicPaymentRegistered, p.ID(), paymentEvent(p)); err != nil {
		return nil, err
	}
	return p, nil
}
