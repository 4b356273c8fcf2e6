//go:build unit

package pricing_test

import (
	"testing"

	"hotelbook/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *pricing.Engine {
	t.Helper()

	table, err := pricing.NewRateTable(map[pricing.Category]decimal.Decimal{
		pricing.CategorySingle: decimal.NewFromInt(50),
		pricing.CategoryDouble: decimal.NewFromInt(80),
		pricing.CategorySuite:  decimal.NewFromInt(120),
	})
	require.NoError(t, err)

	return pricing.NewEngine(table)
}

func TestEngine_Price(t *testing.T) {
	engine := newTestEngine(t)
	vat := decimal.NewFromFloat(0.16)

	t.Run("single room three nights at 16 percent", func(t *testing.T) {
		result, err := engine.Price(pricing.CategorySingle, 3, vat)
		require.NoError(t, err)

		assert.Equal(t, "150.00", result.Subtotal.StringFixed(2))
		assert.Equal(t, "24.00", result.Tax.StringFixed(2))
		assert.Equal(t, "174.00", result.GrandTotal.StringFixed(2))
		assert.Equal(t, "50.00", result.NightlyRate.StringFixed(2))
	})

	t.Run("suite two nights at 16 percent", func(t *testing.T) {
		result, err := engine.Price(pricing.CategorySuite, 2, vat)
		require.NoError(t, err)

		assert.Equal(t, "240.00", result.Subtotal.StringFixed(2))
		assert.Equal(t, "38.40", result.Tax.StringFixed(2))
		assert.Equal(t, "278.40", result.GrandTotal.StringFixed(2))
	})

	t.Run("unknown category prices at zero", func(t *testing.T) {
		result, err := engine.Price(pricing.Category("Penthouse"), 5, vat)
		require.NoError(t, err)

		assert.True(t, result.Subtotal.IsZero())
		assert.True(t, result.Tax.IsZero())
		assert.True(t, result.GrandTotal.IsZero())
	})

	t.Run("zero tax rate", func(t *testing.T) {
		result, err := engine.Price(pricing.CategoryDouble, 1, decimal.Zero)
		require.NoError(t, err)

		assert.Equal(t, "80.00", result.Subtotal.StringFixed(2))
		assert.True(t, result.Tax.IsZero())
		assert.Equal(t, "80.00", result.GrandTotal.StringFixed(2))
	})

	t.Run("grand total equals rounded subtotal plus rounded tax", func(t *testing.T) {
		// A fractional rate forces rounding at every step.
		table, err := pricing.NewRateTable(map[pricing.Category]decimal.Decimal{
			pricing.CategorySingle: decimal.NewFromFloat(33.335),
		})
		require.NoError(t, err)
		fractional := pricing.NewEngine(table)

		taxRate := decimal.NewFromFloat(0.075)
		result, err := fractional.Price(pricing.CategorySingle, 3, taxRate)
		require.NoError(t, err)

		expectedSubtotal := decimal.NewFromFloat(33.335).Mul(decimal.NewFromInt(3)).Round(2)
		expectedTax := expectedSubtotal.Mul(taxRate).Round(2)
		expectedGrand := expectedSubtotal.Add(expectedTax).Round(2)

		assert.True(t, result.Subtotal.Equal(expectedSubtotal))
		assert.True(t, result.Tax.Equal(expectedTax))
		assert.True(t, result.GrandTotal.Equal(expectedGrand))
	})

	t.Run("invalid inputs", func(t *testing.T) {
		cases := []struct {
			name    string
			nights  int
			taxRate decimal.Decimal
			errIs   error
		}{
			{name: "zero nights", nights: 0, taxRate: vat, errIs: pricing.ErrInvalidNights},
			{name: "negative nights", nights: -2, taxRate: vat, errIs: pricing.ErrInvalidNights},
			{name: "negative tax rate", nights: 1, taxRate: decimal.NewFromFloat(-0.01), errIs: pricing.ErrInvalidTaxRate},
			{name: "tax rate of one", nights: 1, taxRate: decimal.NewFromInt(1), errIs: pricing.ErrInvalidTaxRate},
			{name: "tax rate above one", nights: 1, taxRate: decimal.NewFromFloat(1.2), errIs: pricing.ErrInvalidTaxRate},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := engine.Price(pricing.CategorySingle, tc.nights, tc.taxRate)
				require.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestRateTable(t *testing.T) {
	t.Run("known and unknown categories", func(t *testing.T) {
		table, err := pricing.NewRateTable(map[pricing.Category]decimal.Decimal{
			pricing.CategorySingle: decimal.NewFromInt(50),
		})
		require.NoError(t, err)

		assert.True(t, table.RateFor(pricing.CategorySingle).Equal(decimal.NewFromInt(50)))
		assert.True(t, table.RateFor(pricing.Category("Cabin")).IsZero())
		assert.True(t, table.Knows(pricing.CategorySingle))
		assert.False(t, table.Knows(pricing.Category("Cabin")))
	})

	t.Run("rejects negative rates", func(t *testing.T) {
		_, err := pricing.NewRateTable(map[pricing.Category]decimal.Decimal{
			pricing.CategorySingle: decimal.NewFromInt(-1),
		})
		require.ErrorIs(t, err, pricing.ErrNegativeRate)
	})

	t.Run("empty table prices everything at zero", func(t *testing.T) {
		table, err := pricing.NewRateTable(nil)
		require.NoError(t, err)
		assert.True(t, table.RateFor(pricing.CategorySuite).IsZero())
		assert.Empty(t, table.Categories())
	})
}
