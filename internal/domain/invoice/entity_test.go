//go:build unit

package invoice_test

import (
	"strings"
	"testing"
	"time"

	"hotel-core/internal/domain/invoice"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2025, 3, 5, 11, 0, 0, 0, time.UTC)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func issue(t *testing.T, price string, nights int, ratePercent string) *invoice.Invoice {
	t.Helper()
	rate, err := invoice.NewTaxRate(dec(ratePercent))
	require.NoError(t, err)
	inv, err := invoice.Issue(invoice.IssueParams{
		ReservationID: uuid.New(),
		ClientID:      uuid.New(),
		NightlyPrice:  dec(price),
		Nights:        nights,
		TaxRate:       rate,
		IssuedAt:      issuedAt,
		GracePeriod:   30 * 24 * time.Hour,
	})
	require.NoError(t, err)
	return inv
}

func TestIssue(t *testing.T) {
	t.Run("subtotal 1000 at 21 percent", func(t *testing.T) {
		inv := issue(t, "250", 4, "21")

		assert.True(t, dec("1000").Equal(inv.Subtotal()))
		assert.True(t, dec("210.00").Equal(inv.TaxAmount()))
		assert.True(t, dec("1210.00").Equal(inv.Total()))
		assert.True(t, inv.AmountPaid().IsZero())
		assert.Equal(t, invoice.StatusPending, inv.Status())
		assert.Equal(t, issuedAt.Add(30*24*time.Hour), inv.DueDate())
		assert.True(t, strings.HasPrefix(inv.Number(), "INV-202503-"))
	})

	t.Run("tax is rounded to cents", func(t *testing.T) {
		inv := issue(t, "33.33", 1, "21")
		// 33.33 * 0.21 = 6.9993
		assert.Equal(t, "7", inv.TaxAmount().String())
		assert.Equal(t, "40.33", inv.Total().String())
		assert.True(t, inv.Total().Equal(inv.Subtotal().Add(inv.Subtotal().Mul(inv.TaxRate().Fraction())).Round(2)))
	})

	t.Run("zero rate", func(t *testing.T) {
		inv := issue(t, "100", 2, "0")
		assert.True(t, inv.TaxAmount().IsZero())
		assert.True(t, dec("200").Equal(inv.Total()))
	})

	t.Run("validation", func(t *testing.T) {
		_, err := invoice.Issue(invoice.IssueParams{NightlyPrice: dec("10"), Nights: 0, TaxRate: invoice.DefaultTaxRate()})
		assert.ErrorIs(t, err, invoice.ErrInvalidNights)

		_, err = invoice.Issue(invoice.IssueParams{NightlyPrice: dec("-1"), Nights: 1, TaxRate: invoice.DefaultTaxRate()})
		assert.ErrorIs(t, err, invoice.ErrNegativeNightlyPrice)
	})
}

func TestTaxRate(t *testing.T) {
	cases := []struct {
		percent string
		ok      bool
	}{
		{"0", true}, {"21", true}, {"100", true}, {"-0.01", false}, {"100.01", false},
	}
	for _, c := range cases {
		t.Run(c.percent, func(t *testing.T) {
			_, err := invoice.NewTaxRate(dec(c.percent))
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, invoice.ErrTaxRateOutOfRange)
			}
		})
	}
	assert.True(t, dec("21").Equal(invoice.DefaultTaxRate().Percent()))
}

func TestApplyPayment(t *testing.T) {
	now := issuedAt.Add(time.Hour)

	t.Run("partial then full payment", func(t *testing.T) {
		inv := issue(t, "250", 4, "21")

		applied, err := inv.ApplyPayment(dec("500"), false, now)
		require.NoError(t, err)
		assert.True(t, dec("500").Equal(applied))
		assert.Equal(t, invoice.StatusPartial, inv.Status())
		assert.True(t, dec("710").Equal(inv.Outstanding()))

		_, err = inv.ApplyPayment(dec("710"), false, now)
		require.NoError(t, err)
		assert.Equal(t, invoice.StatusPaid, inv.Status())
		assert.True(t, inv.Outstanding().IsZero())
		assert.Equal(t, now, inv.UpdatedAt())
	})

	t.Run("overpayment rejected by default", func(t *testing.T) {
		inv := issue(t, "100", 1, "0")
		_, err := inv.ApplyPayment(dec("100.01"), false, now)
		require.ErrorIs(t, err, invoice.ErrOverpayment)
		assert.True(t, inv.AmountPaid().IsZero())
		assert.Equal(t, invoice.StatusPending, inv.Status())
	})

	t.Run("overpayment allowed caps amount paid", func(t *testing.T) {
		inv := issue(t, "100", 1, "0")
		applied, err := inv.ApplyPayment(dec("150"), true, now)
		require.NoError(t, err)
		assert.True(t, dec("100").Equal(applied))
		assert.True(t, dec("100").Equal(inv.AmountPaid()))
		assert.Equal(t, invoice.StatusPaid, inv.Status())
	})

	t.Run("rejections", func(t *testing.T) {
		paid := issue(t, "100", 1, "0")
		_, err := paid.ApplyPayment(dec("100"), false, now)
		require.NoError(t, err)

		cancelled := issue(t, "100", 1, "0")
		require.NoError(t, cancelled.Cancel("duplicate", now))

		cases := []struct {
			name   string
			inv    *invoice.Invoice
			amount string
			errIs  error
		}{
			{name: "zero amount", inv: issue(t, "100", 1, "0"), amount: "0", errIs: invoice.ErrNonPositiveAmount},
			{name: "negative amount", inv: issue(t, "100", 1, "0"), amount: "-5", errIs: invoice.ErrNonPositiveAmount},
			{name: "sub-cent amount", inv: issue(t, "100", 1, "21"), amount: "120.995", errIs: invoice.ErrAmountPrecision},
			{name: "already paid", inv: paid, amount: "1", errIs: invoice.ErrInvoiceAlreadyPaid},
			{name: "cancelled", inv: cancelled, amount: "1", errIs: invoice.ErrInvoiceCancelled},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				before := c.inv.AmountPaid()
				_, err := c.inv.ApplyPayment(dec(c.amount), true, now)
				require.ErrorIs(t, err, c.errIs)
				assert.True(t, before.Equal(c.inv.AmountPaid()))
			})
		}
	})
}

func TestCancel(t *testing.T) {
	now := issuedAt.Add(time.Hour)

	t.Run("pending invoice", func(t *testing.T) {
		inv := issue(t, "100", 1, "21")
		require.NoError(t, inv.Cancel(" duplicate stay ", now))
		assert.Equal(t, invoice.StatusCancelled, inv.Status())
		require.NotNil(t, inv.CancellationReason())
		assert.Equal(t, "duplicate stay", *inv.CancellationReason())
		assert.False(t, inv.IsOverdue(issuedAt.Add(365*24*time.Hour)))
	})

	t.Run("partially paid invoice", func(t *testing.T) {
		inv := issue(t, "100", 1, "21")
		_, err := inv.ApplyPayment(dec("10"), false, now)
		require.NoError(t, err)
		assert.ErrorIs(t, inv.Cancel("mistake", now), invoice.ErrCannotCancel)
	})

	t.Run("reason required", func(t *testing.T) {
		inv := issue(t, "100", 1, "21")
		assert.ErrorIs(t, inv.Cancel("", now), invoice.ErrCancelReasonRequired)
	})
}
