//go:build unit

package commands_test

import (
	"testing"
	"time"

	"hotel-core/internal/domain/invoice"
	"hotel-core/internal/domain/ledger"
	"hotel-core/internal/domain/payment"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/pkg/patch"
	"hotel-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// RegisterPayment
// =============================================================================

func TestRegisterPayment(t *testing.T) {
	t.Run("success: partial then full payment", func(t *testing.T) {
		f := newFixture(t)
		inv := f.checkedOut(t, f.room.ID(), stay(t, "2026-03-10", "2026-03-13"))

		p, err := f.payments.RegisterPayment(f.ctx, commands.RegisterPaymentInput{
			InvoiceID: inv.ID(),
			ClientID:  f.clientID,
			Amount:    dec("100"),
			Method:    payment.MethodCard,
			Reference: patch.Of("AUTH-1"),
		})
		require.NoError(t, err)
		assert.Equal(t, payment.StatusCompleted, p.Status())
		assert.Equal(t, "PARTIAL", f.invoiceView(t, inv.ID()).Status)
		assert.True(t, dec("263.00").Equal(f.balance(t)))

		_, err = f.payments.RegisterPayment(f.ctx, commands.RegisterPaymentInput{
			InvoiceID: inv.ID(),
			ClientID:  f.clientID,
			Amount:    dec("263"),
			Method:    payment.MethodCash,
		})
		require.NoError(t, err)

		view := f.invoiceView(t, inv.ID())
		assert.Equal(t, "PAID", view.Status)
		assert.True(t, view.Outstanding.IsZero())
		assert.True(t, f.balance(t).IsZero())

		mvs := f.movements(t)
		require.Len(t, mvs, 3)
		assert.Equal(t, "PAYMENT", mvs[0].Type)
		assert.Equal(t, inv.Number(), mvs[0].Reference)
	})

	t.Run("error: overpayment is rejected by default", func(t *testing.T) {
		f := newFixture(t)
		inv := f.checkedOut(t, f.room.ID(), stay(t, "2026-03-10", "2026-03-13"))
		before := f.store.Counts()

		_, err := f.payments.RegisterPayment(f.ctx, commands.RegisterPaymentInput{
			InvoiceID: inv.ID(),
			ClientID:  f.clientID,
			Amount:    dec("400"),
			Method:    payment.MethodCard,
		})

		assert.ErrorIs(t, err, invoice.ErrOverpayment)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, before, f.store.Counts())
	})

	t.Run("error: sub-cent amount is rejected before anything is written", func(t *testing.T) {
		f := newFixture(t)
		inv := f.checkedOut(t, f.room.ID(), stay(t, "2026-03-10", "2026-03-11"))
		before := f.store.Counts()

		_, err := f.payments.RegisterPayment(f.ctx, commands.RegisterPaymentInput{
			InvoiceID: inv.ID(),
			ClientID:  f.clientID,
			Amount:    dec("120.995"),
			Method:    payment.MethodCard,
		})

		assert.ErrorIs(t, err, payment.ErrAmountPrecision)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, before, f.store.Counts())
		view := f.invoiceView(t, inv.ID())
		assert.Equal(t, "PENDING", view.Status)
		assert.True(t, view.AmountPaid.IsZero())
		assert.True(t, dec("121.00").Equal(f.balance(t)))
	})

	t.Run("success: trailing zeros beyond cents are accepted", func(t *testing.T) {
		f := newFixture(t)
		inv := f.checkedOut(t, f.room.ID(), stay(t, "2026-03-10", "2026-03-11"))

		_, err := f.payments.RegisterPayment(f.ctx, commands.RegisterPaymentInput{
			InvoiceID: inv.ID(),
			ClientID:  f.clientID,
			Amount:    dec("121.000"),
			Method:    payment.MethodCard,
		})

		require.NoError(t, err)
		assert.Equal(t, "PAID", f.invoiceView(t, inv.ID()).Status)
		assert.True(t, f.balance(t).IsZero())
	})

	t.Run("success: overpayment allowed by policy leaves a credit", func(t *testing.T) {
		policy := commands.DefaultBillingPolicy()
		policy.AllowOverpayment = true
		f := newFixtureWithPolicy(t, policy)
		inv := f.checkedOut(t, f.room.ID(), stay(t, "2026-03-10", "2026-03-13"))

		p, err := f.payments.RegisterPayment(f.ctx, commands.RegisterPaymentInput{
			InvoiceID: inv.ID(),
			ClientID:  f.clientID,
			Amount:    dec("400"),
			Method:    payment.MethodTransfer,
		})

		require.NoError(t, err)
		assert.True(t, dec("400").Equal(p.Amount()))
		view := f.invoiceView(t, inv.ID())
		assert.Equal(t, "PAID", view.Status)
		assert.True(t, dec("363.00").Equal(view.AmountPaid))
		assert.True(t, dec("-37.00").Equal(f.balance(t)), f.balance(t).String())
	})

	t.Run("error: invoice of another client", func(t *testing.T) {
		f := newFixture(t)
		inv := f.checkedOut(t, f.room.ID(), stay(t, "2026-03-10", "2026-03-13"))

		_, err := f.payments.RegisterPayment(f.ctx, commands.RegisterPaymentInput{
			InvoiceID: inv.ID(),
			ClientID:  f.addClient(),
			Amount:    dec("10"),
			Method:    payment.MethodCash,
		})
		assert.ErrorIs(t, err, commands.ErrClientMismatch)
	})

	t.Run("error: cancelled invoice", func(t *testing.T) {
		f := newFixture(t)
		inv := f.checkedOut(t, f.room.ID(), stay(t, "2026-03-10", "2026-03-13"))
		_, err := f.invoices.CancelInvoice(f.ctx, inv.ID(), "billing error")
		require.NoError(t, err)

		_, err = f.payments.RegisterPayment(f.ctx, commands.RegisterPaymentInput{
			InvoiceID: inv.ID(),
			ClientID:  f.clientID,
			Amount:    dec("10"),
			Method:    payment.MethodCash,
		})
		assert.ErrorIs(t, err, invoice.ErrInvoiceCancelled)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("error: invalid input", func(t *testing.T) {
		f := newFixture(t)
		inv := f.checkedOut(t, f.room.ID(), stay(t, "2026-03-10", "2026-03-13"))

		_, err := f.payments.RegisterPayment(f.ctx, commands.RegisterPaymentInput{
			InvoiceID: inv.ID(), ClientID: f.clientID, Amount: dec("0"), Method: payment.MethodCash,
		})
		assert.True(t, errs.Is(err, errs.ErrValidation))

		_, err = f.payments.RegisterPayment(f.ctx, commands.RegisterPaymentInput{
			InvoiceID: inv.ID(), ClientID: f.clientID, Amount: dec("10"), Method: payment.Method("CHEQUE"),
		})
		assert.ErrorIs(t, err, payment.ErrInvalidMethod)

		_, err = f.payments.RegisterPayment(f.ctx, commands.RegisterPaymentInput{
			InvoiceID: uuid.New(), ClientID: f.clientID, Amount: dec("10"), Method: payment.MethodCash,
		})
		assert.ErrorIs(t, err, commands.ErrInvoiceNotFound)
	})
}

// =============================================================================
// SettleDebt
// =============================================================================

func TestSettleDebt(t *testing.T) {
	twoInvoices := func(t *testing.T, f *fixture) (older, newer *invoice.Invoice) {
		older = f.checkedOut(t, f.room.ID(), stay(t, "2026-03-02", "2026-03-04"))
		f.clock.Add(time.Hour)
		newer = f.checkedOut(t, f.room.ID(), stay(t, "2026-03-05", "2026-03-06"))
		return older, newer
	}

	t.Run("success: pays oldest invoice first", func(t *testing.T) {
		f := newFixture(t)
		older, newer := twoInvoices(t, f)
		// 2 nights = 242.00, 1 night = 121.00

		paid, err := f.payments.SettleDebt(f.ctx, commands.SettleDebtInput{
			ClientID: f.clientID,
			Amount:   dec("300"),
			Method:   payment.MethodCash,
		})

		require.NoError(t, err)
		require.Len(t, paid, 2)
		assert.Equal(t, older.ID(), paid[0].InvoiceID())
		assert.True(t, dec("242.00").Equal(paid[0].Amount()))
		assert.Equal(t, newer.ID(), paid[1].InvoiceID())
		assert.True(t, dec("58.00").Equal(paid[1].Amount()))

		assert.Equal(t, "PAID", f.invoiceView(t, older.ID()).Status)
		assert.Equal(t, "PARTIAL", f.invoiceView(t, newer.ID()).Status)
		assert.True(t, dec("63.00").Equal(f.balance(t)))
	})

	t.Run("error: amount above the total debt writes nothing", func(t *testing.T) {
		f := newFixture(t)
		twoInvoices(t, f)
		before := f.store.Counts()

		_, err := f.payments.SettleDebt(f.ctx, commands.SettleDebtInput{
			ClientID: f.clientID,
			Amount:   dec("363.01"),
			Method:   payment.MethodCash,
		})

		assert.ErrorIs(t, err, payment.ErrExceedsDebt)
		assert.Equal(t, before, f.store.Counts())
	})

	t.Run("error: sub-cent amount writes nothing", func(t *testing.T) {
		f := newFixture(t)
		twoInvoices(t, f)
		before := f.store.Counts()

		_, err := f.payments.SettleDebt(f.ctx, commands.SettleDebtInput{
			ClientID: f.clientID,
			Amount:   dec("241.999"),
			Method:   payment.MethodCash,
		})

		assert.ErrorIs(t, err, payment.ErrAmountPrecision)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, before, f.store.Counts())
	})

	t.Run("error: client without debt", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.payments.SettleDebt(f.ctx, commands.SettleDebtInput{
			ClientID: f.clientID,
			Amount:   dec("10"),
			Method:   payment.MethodCash,
		})
		assert.ErrorIs(t, err, payment.ErrNoDebt)
	})

	t.Run("error: unknown client", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.payments.SettleDebt(f.ctx, commands.SettleDebtInput{
			ClientID: uuid.New(),
			Amount:   dec("10"),
			Method:   payment.MethodCash,
		})
		assert.ErrorIs(t, err, commands.ErrClientNotFound)
	})
}

// =============================================================================
// CancelInvoice
// =============================================================================

func TestCancelInvoice(t *testing.T) {
	t.Run("success: adjustment restores the balance", func(t *testing.T) {
		f := newFixture(t)
		inv := f.checkedOut(t, f.room.ID(), stay(t, "2026-03-10", "2026-03-13"))

		cancelled, err := f.invoices.CancelInvoice(f.ctx, inv.ID(), "duplicate stay")

		require.NoError(t, err)
		assert.Equal(t, invoice.StatusCancelled, cancelled.Status())
		assert.True(t, f.balance(t).IsZero())

		mvs := f.movements(t)
		require.Len(t, mvs, 2)
		assert.Equal(t, "ADJUSTMENT", mvs[0].Type)
		assert.True(t, dec("-363.00").Equal(mvs[0].Amount))
	})

	t.Run("error: partially paid invoice", func(t *testing.T) {
		f := newFixture(t)
		inv := f.checkedOut(t, f.room.ID(), stay(t, "2026-03-10", "2026-03-13"))
		_, err := f.payments.RegisterPayment(f.ctx, commands.RegisterPaymentInput{
			InvoiceID: inv.ID(), ClientID: f.clientID, Amount: dec("1"), Method: payment.MethodCash,
		})
		require.NoError(t, err)

		_, err = f.invoices.CancelInvoice(f.ctx, inv.ID(), "oops")
		assert.ErrorIs(t, err, invoice.ErrCannotCancel)
	})

	t.Run("error: blank reason", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.invoices.CancelInvoice(f.ctx, uuid.New(), "  ")
		assert.ErrorIs(t, err, commands.ErrReasonRequired)
	})

	t.Run("error: unknown invoice", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.invoices.CancelInvoice(f.ctx, uuid.New(), "oops")
		assert.ErrorIs(t, err, commands.ErrInvoiceNotFound)
	})
}

// =============================================================================
// Ledger
// =============================================================================

func TestPostAdjustment(t *testing.T) {
	t.Run("success: signed adjustment moves the balance", func(t *testing.T) {
		f := newFixture(t)
		f.checkedOut(t, f.room.ID(), stay(t, "2026-03-10", "2026-03-13"))

		mv, err := f.ledger.PostAdjustment(f.ctx, commands.AdjustmentInput{
			ClientID:    f.clientID,
			Amount:      dec("-13"),
			Reference:   "GOODWILL-1",
			Description: "late breakfast",
		})

		require.NoError(t, err)
		assert.Equal(t, ledger.TypeAdjustment, mv.Type())
		assert.True(t, dec("350.00").Equal(mv.Balance()))
		assert.True(t, dec("350.00").Equal(f.balance(t)))
	})

	t.Run("error: zero amount", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.ledger.PostAdjustment(f.ctx, commands.AdjustmentInput{ClientID: f.clientID, Amount: dec("0"), Reference: "X"})
		assert.ErrorIs(t, err, ledger.ErrZeroAdjustment)
	})

	t.Run("error: sub-cent amount", func(t *testing.T) {
		f := newFixture(t)
		before := f.store.Counts()
		_, err := f.ledger.PostAdjustment(f.ctx, commands.AdjustmentInput{ClientID: f.clientID, Amount: dec("-0.005"), Reference: "X"})
		assert.ErrorIs(t, err, ledger.ErrAmountPrecision)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, before, f.store.Counts())
	})

	t.Run("error: missing reference", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.ledger.PostAdjustment(f.ctx, commands.AdjustmentInput{ClientID: f.clientID, Amount: dec("5"), Reference: " "})
		assert.ErrorIs(t, err, ledger.ErrReferenceRequired)
	})

	t.Run("error: unknown client", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.ledger.PostAdjustment(f.ctx, commands.AdjustmentInput{ClientID: uuid.New(), Amount: dec("5"), Reference: "X"})
		assert.ErrorIs(t, err, commands.ErrClientNotFound)
	})
}

func TestReverseMovement(t *testing.T) {
	t.Run("success: compensates the charge and marks it reversed", func(t *testing.T) {
		f := newFixture(t)
		f.checkedOut(t, f.room.ID(), stay(t, "2026-03-10", "2026-03-13"))
		charge := f.movements(t)[0]

		comp, err := f.ledger.ReverseMovement(f.ctx, charge.ID, "posted twice")

		require.NoError(t, err)
		require.NotNil(t, comp.ReversalOf())
		assert.Equal(t, charge.ID, *comp.ReversalOf())
		assert.True(t, dec("-363.00").Equal(comp.Amount()))
		assert.True(t, f.balance(t).IsZero())

		mvs := f.movements(t)
		require.Len(t, mvs, 2)
		assert.Equal(t, "REVERSED", mvs[1].Status)
		assert.True(t, dec("363.00").Equal(mvs[1].Amount), "original amount is immutable")
	})

	t.Run("error: second reversal", func(t *testing.T) {
		f := newFixture(t)
		f.checkedOut(t, f.room.ID(), stay(t, "2026-03-10", "2026-03-13"))
		charge := f.movements(t)[0]
		_, err := f.ledger.ReverseMovement(f.ctx, charge.ID, "posted twice")
		require.NoError(t, err)

		_, err = f.ledger.ReverseMovement(f.ctx, charge.ID, "again")
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("error: compensations are final", func(t *testing.T) {
		f := newFixture(t)
		f.checkedOut(t, f.room.ID(), stay(t, "2026-03-10", "2026-03-13"))
		comp, err := f.ledger.ReverseMovement(f.ctx, f.movements(t)[0].ID, "posted twice")
		require.NoError(t, err)

		_, err = f.ledger.ReverseMovement(f.ctx, comp.ID(), "undo")
		assert.ErrorIs(t, err, ledger.ErrCompensatingMovement)
	})

	t.Run("error: blank reason and unknown movement", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.ledger.ReverseMovement(f.ctx, uuid.New(), "")
		assert.ErrorIs(t, err, commands.ErrReasonRequired)

		_, err = f.ledger.ReverseMovement(f.ctx, uuid.New(), "typo")
		assert.ErrorIs(t, err, commands.ErrMovementNotFound)
	})
}
