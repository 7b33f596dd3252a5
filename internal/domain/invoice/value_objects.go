package invoice

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrTaxRateOutOfRange = errors.New("tax rate must be between 0 and 100 percent")

var hundred = decimal.NewFromInt(100)

// DefaultTaxRatePercent applies when no rate is configured.
var DefaultTaxRatePercent = decimal.NewFromInt(21)

// TaxRate is a flat percentage in [0, 100].
type TaxRate struct {
	percent decimal.Decimal
}

func NewTaxRate(percent decimal.Decimal) (TaxRate, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return TaxRate{}, ErrTaxRateOutOfRange
	}
	return TaxRate{percent: percent.Round(2)}, nil
}

func DefaultTaxRate() TaxRate {
	return TaxRate{percent: DefaultTaxRatePercent}
}

func (t TaxRate) Percent() decimal.Decimal {
	return t.percent
}

func (t TaxRate) Fraction() decimal.Decimal {
	return t.percent.Div(hundred)
}

// TaxOn returns round2(subtotal × rate).
func (t TaxRate) TaxOn(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(t.Fraction()).Round(2)
}
