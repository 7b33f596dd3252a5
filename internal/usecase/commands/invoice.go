package commands

import (
	"context"
	"strings"

	"hotel-core/internal/domain/invoice"
	"hotel-core/internal/domain/ledger"
	"hotel-core/internal/domain/reservation"
	"hotel-core/internal/domain/room"
	"hotel-core/internal/infra"
	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// InvoiceGenerator bills a closing stay exactly once. The unique index on
// invoices.reservation_id enforces the "once"; callers cannot bypass it.
type InvoiceGenerator struct {
	ledger *AccountLedger
	policy BillingPolicy
	clock  clock.Clock
}

func NewInvoiceGenerator(accountLedger *AccountLedger, policy BillingPolicy, clk clock.Clock) *InvoiceGenerator {
	return &InvoiceGenerator{ledger: accountLedger, policy: policy, clock: clk}
}

func (g *InvoiceGenerator) Generate(ctx context.Context, tx shared.Tx, res *reservation.Reservation, rm *room.Room) (*invoice.Invoice, error) {
	inv, err := invoice.Issue(invoice.IssueParams{
		ReservationID: res.ID(),
		ClientID:      res.ClientID(),
		NightlyPrice:  rm.NightlyPrice(),
		Nights:        res.Stay().Nights(),
		TaxRate:       g.policy.TaxRate,
		IssuedAt:      g.clock.Now(),
		GracePeriod:   g.policy.GracePeriod,
	})
	if err != nil {
		return nil, domainErr(err)
	}

	if err := tx.Invoices().Insert(ctx, inv); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrInvoiceAlreadyIssued
		}
		return nil, err
	}

	// complimentary stays produce a zero invoice and no ledger entry
	if inv.Total().IsPositive() {
		_, err = g.ledger.Post(ctx, tx, ledger.PostParams{
			ClientID:    inv.ClientID(),
			Type:        ledger.TypeCharge,
			Amount:      inv.Total(),
			Reference:   inv.Number(),
			Description: "Stay " + res.Code(),
			Metadata: map[string]any{
				"invoice_id":     inv.ID().String(),
				"reservation_id": res.ID().String(),
			},
		})
		if err != nil {
			return nil, err
		}
	}

	if err := enqueue(ctx, tx, g.clock, TopicInvoiceIssued, inv.ID(), invoiceEvent(inv)); err != nil {
		return nil, err
	}
	return inv, nil
}

type InvoiceCommands interface {
	CancelInvoice(ctx context.Context, invoiceID uuid.UUID, reason string) (*invoice.Invoice, error)
}

type invoiceUseCaseImpl struct {
	uow    shared.UnitOfWork
	ledger *AccountLedger
	clock  clock.Clock
}

func NewInvoiceUseCase(uow shared.UnitOfWork, accountLedger *AccountLedger, clk clock.Clock) InvoiceCommands {
	return &invoiceUseCaseImpl{uow: uow, ledger: accountLedger, clock: clk}
}

// CancelInvoice voids an unpaid invoice and posts an ADJUSTMENT of -total so
// the client's balance returns to its value before the charge.
func (uc *invoiceUseCaseImpl) CancelInvoice(ctx context.Context, invoiceID uuid.UUID, reason string) (*invoice.Invoice, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}

	var cancelled *invoice.Invoice
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inv, err := tx.Invoices().GetForUpdate(ctx, invoiceID)
		if err != nil {
			return notFoundOr(err, ErrInvoiceNotFound)
		}
		if err := inv.Cancel(reason, uc.clock.Now()); err != nil {
			return domainErr(err)
		}
		if err := tx.Invoices().UpdateSettlement(ctx, inv); err != nil {
			return notFoundOr(err, ErrInvoiceNotFound)
		}

		if inv.Total().IsPositive() {
			_, err = uc.ledger.Post(ctx, tx, ledger.PostParams{
				ClientID:    inv.ClientID(),
				Type:        ledger.TypeAdjustment,
				Amount:      inv.Total().Neg(),
				Reference:   inv.Number(),
				Description: "Invoice cancelled: " + strings.TrimSpace(reason),
				Metadata:    map[string]any{"invoice_id": inv.ID().String()},
			})
			if err != nil {
				return err
			}
		}

		cancelled = inv
		return enqueue(ctx, tx, uc.clock, TopicInvoiceCancelled, inv.ID(), invoiceEvent(inv))
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}
