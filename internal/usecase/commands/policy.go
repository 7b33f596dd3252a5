package commands

import (
	"time"

	"hotel-core/internal/domain/invoice"
	"hotel-core/internal/pkg/config"
	"hotel-core/internal/pkg/errs"
)

type BillingPolicy struct {
	TaxRate          invoice.TaxRate
	GracePeriod      time.Duration
	AllowOverpayment bool
}

func NewBillingPolicy(cfg config.BillingConfig) (BillingPolicy, error) {
	rate, err := invoice.NewTaxRate(cfg.TaxRatePercent)
	if err != nil {
		return BillingPolicy{}, errs.Wrap(err, "invalid BILLING_TAX_RATE_PERCENT")
	}
	if cfg.DueGracePeriod < 0 {
		return BillingPolicy{}, errs.New("BILLING_DUE_GRACE_PERIOD cannot be negative")
	}
	return BillingPolicy{
		TaxRate:          rate,
		GracePeriod:      cfg.DueGracePeriod,
		AllowOverpayment: cfg.AllowOverpayment,
	}, nil
}

func DefaultBillingPolicy() BillingPolicy {
	return BillingPolicy{
		TaxRate:     invoice.DefaultTaxRate(),
		GracePeriod: 30 * 24 * time.Hour,
	}
}
