//go:build unit

package ledger_test

import (
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"
	"time"

	"hotel-core/internal/domain/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, head ledger.Head, now time.Time, typ ledger.MovementType, amount string) *ledger.Movement {
	t.Helper()
	m, err := ledger.NewMovement(head, now, ledger.PostParams{
		ClientID:    uuid.New(),
		Type:        typ,
		Amount:      decimal.RequireFromString(amount),
		Reference:   "INV-202503-00000001",
		Description: "test posting",
	})
	require.NoError(t, err)
	return m
}

func TestNewMovement(t *testing.T) {
	now := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

	t.Run("sign convention", func(t *testing.T) {
		charge := post(t, ledger.Head{}, now, ledger.TypeCharge, "1210")
		assert.Equal(t, "1210", charge.Balance().String())
		assert.Equal(t, ledger.StatusCompleted, charge.Status())
		assert.Equal(t, uuid.Version(7), charge.ID().Version())

		payment := post(t, charge.Head(), now, ledger.TypePayment, "500")
		assert.Equal(t, "710", payment.Balance().String())
		assert.Equal(t, "-500", payment.SignedAmount().String())

		credit := post(t, payment.Head(), now, ledger.TypeAdjustment, "-10.5")
		assert.Equal(t, "699.5", credit.Balance().String())
		assert.Equal(t, "-10.5", credit.Amount().String())
	})

	t.Run("created at is strictly increasing per client", func(t *testing.T) {
		first := post(t, ledger.Head{}, now, ledger.TypeCharge, "10")
		assert.Equal(t, now, first.CreatedAt())

		backwards := post(t, first.Head(), now.Add(-time.Minute), ledger.TypeCharge, "10")
		assert.Equal(t, now.Add(time.Microsecond), backwards.CreatedAt())

		same := post(t, backwards.Head(), backwards.CreatedAt(), ledger.TypeCharge, "10")
		assert.Equal(t, now.Add(2*time.Microsecond), same.CreatedAt())

		// sub-microsecond clocks collapse to the stored precision
		nanosLater := post(t, same.Head(), same.CreatedAt().Add(500*time.Nanosecond), ledger.TypeCharge, "10")
		assert.Equal(t, now.Add(3*time.Microsecond), nanosLater.CreatedAt())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			params ledger.PostParams
			errIs  error
		}{
			{name: "unknown type", params: ledger.PostParams{Type: "FEE", Amount: decimal.NewFromInt(1), Reference: "r"}, errIs: ledger.ErrInvalidType},
			{name: "zero charge", params: ledger.PostParams{Type: ledger.TypeCharge, Amount: decimal.Zero, Reference: "r"}, errIs: ledger.ErrNonPositiveAmount},
			{name: "negative payment", params: ledger.PostParams{Type: ledger.TypePayment, Amount: decimal.NewFromInt(-1), Reference: "r"}, errIs: ledger.ErrNonPositiveAmount},
			{name: "sub-cent amount", params: ledger.PostParams{Type: ledger.TypeAdjustment, Amount: decimal.RequireFromString("-25.505"), Reference: "r"}, errIs: ledger.ErrAmountPrecision},
			{name: "zero adjustment", params: ledger.PostParams{Type: ledger.TypeAdjustment, Amount: decimal.Zero, Reference: "r"}, errIs: ledger.ErrZeroAdjustment},
			{name: "missing reference", params: ledger.PostParams{Type: ledger.TypeCharge, Amount: decimal.NewFromInt(1), Reference: " "}, errIs: ledger.ErrReferenceRequired},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				m, err := ledger.NewMovement(ledger.Head{}, now, c.params)
				require.Nil(t, m)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestCompensation(t *testing.T) {
	now := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

	charge := post(t, ledger.Head{}, now, ledger.TypeCharge, "300")
	payment := post(t, charge.Head(), now, ledger.TypePayment, "100")

	params, err := payment.Compensation("bounced")
	require.NoError(t, err)
	assert.Equal(t, ledger.TypeAdjustment, params.Type)
	assert.Equal(t, "100", params.Amount.String())
	require.NotNil(t, params.ReversalOf)
	assert.Equal(t, payment.ID(), *params.ReversalOf)

	reversal, err := ledger.NewMovement(payment.Head(), now, params)
	require.NoError(t, err)
	assert.True(t, charge.Balance().Equal(reversal.Balance()), "reversal restores the balance before the reversed posting")

	require.NoError(t, payment.MarkReversed())
	assert.Equal(t, ledger.StatusReversed, payment.Status())
	assert.True(t, payment.Amount().Equal(decimal.NewFromInt(100)), "reversal never edits the amount")

	_, err = payment.Compensation("again")
	assert.ErrorIs(t, err, ledger.ErrAlreadyReversed)
	assert.ErrorIs(t, payment.MarkReversed(), ledger.ErrAlreadyReversed)

	_, err = reversal.Compensation("undo the undo")
	assert.ErrorIs(t, err, ledger.ErrCompensatingMovement)
}

// posting is a random CHARGE/PAYMENT/ADJUSTMENT for quick.Check.
type posting struct {
	Type   ledger.MovementType
	Amount decimal.Decimal
}

type postings []posting

func (postings) Generate(r *rand.Rand, size int) reflect.Value {
	types := []ledger.MovementType{ledger.TypeCharge, ledger.TypePayment, ledger.TypeAdjustment}
	out := make(postings, r.Intn(size+1))
	for i := range out {
		typ := types[r.Intn(len(types))]
		cents := r.Int63n(1_000_000) + 1
		if typ == ledger.TypeAdjustment && r.Intn(2) == 0 {
			cents = -cents
		}
		out[i] = posting{Type: typ, Amount: decimal.New(cents, -2)}
	}
	return reflect.ValueOf(out)
}

func TestBalanceEqualsSumOfSignedAmounts(t *testing.T) {
	now := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	property := func(seq postings) bool {
		head := ledger.Head{Balance: decimal.Zero}
		movements := make([]*ledger.Movement, 0, len(seq))
		for _, p := range seq {
			m, err := ledger.NewMovement(head, now, ledger.PostParams{
				ClientID:  uuid.Nil,
				Type:      p.Type,
				Amount:    p.Amount,
				Reference: "prop",
			})
			if err != nil {
				return false
			}
			movements = append(movements, m)
			head = m.Head()
		}
		return head.Balance.Equal(ledger.Sum(movements))
	}
	require.NoError(t, quick.Check(property, &quick.Config{MaxCount: 200}))
}
