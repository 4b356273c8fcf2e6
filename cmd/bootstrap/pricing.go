package bootstrap

import (
	"hotelbook/internal/domain/pricing"
	"hotelbook/internal/domain/receipt"
	"hotelbook/internal/pkg/config"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var PricingModule = fx.Module("pricing",
	fx.Provide(
		NewRateTable,
		pricing.NewEngine,
		NewTaxRate,
		receipt.NewComposer,
	),
)

func NewRateTable(cfg config.Config) (pricing.RateTable, error) {
	raw, err := cfg.Pricing.ParseRates()
	if err != nil {
		return pricing.RateTable{}, err
	}

	rates := make(map[pricing.Category]decimal.Decimal, len(raw))
	for category, rate := range raw {
		rates[pricing.Category(category)] = rate
	}
	return pricing.NewRateTable(rates)
}

func NewTaxRate(cfg config.Config) (decimal.Decimal, error) {
	return cfg.Pricing.ParseTaxRate()
}
