//go:build unit

package pricing_test

import (
	"testing"

	"hotelbook/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	d := func(s string) decimal.Decimal {
		v, err := decimal.NewFromString(s)
		assert.NoError(t, err)
		return v
	}

	cases := []struct {
		name       string
		stored     string
		recomputed string
		diverges   bool
	}{
		{name: "exact match", stored: "174.00", recomputed: "174.00", diverges: false},
		{name: "pre-tax legacy record", stored: "150.00", recomputed: "174.00", diverges: true},
		{name: "within tolerance", stored: "174.00", recomputed: "174.01", diverges: false},
		{name: "just beyond tolerance", stored: "174.00", recomputed: "174.02", diverges: true},
		{name: "free stay", stored: "0", recomputed: "0", diverges: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := pricing.ReconcileDefault(d(tc.stored), d(tc.recomputed))
			assert.Equal(t, tc.diverges, result.Diverges)
			assert.True(t, result.Stored.Equal(d(tc.stored)))
			assert.True(t, result.Recomputed.Equal(d(tc.recomputed)))

			// Divergence detection is symmetric.
			flipped := pricing.ReconcileDefault(d(tc.recomputed), d(tc.stored))
			assert.Equal(t, result.Diverges, flipped.Diverges)
			assert.True(t, result.Difference().Equal(flipped.Difference()))
		})
	}

	t.Run("custom tolerance", func(t *testing.T) {
		result := pricing.Reconcile(d("100.00"), d("104.00"), decimal.NewFromInt(5))
		assert.False(t, result.Diverges)
		assert.True(t, result.Difference().Equal(d("4.00")))
	})
}
