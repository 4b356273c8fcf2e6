//go:build unit

package metrics_test

import (
	"testing"

	"hotelbook/internal/domain/metrics"
	"hotelbook/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	t.Run("empty set yields zero metrics and full inventory", func(t *testing.T) {
		d := metrics.Aggregate(nil, 30)

		assert.Equal(t, 0, d.TotalBookings)
		assert.True(t, d.TotalRevenue.IsZero())
		assert.Equal(t, 30, d.AvailableRooms)
		assert.Empty(t, d.PerCategory)
	})

	t.Run("histogram and revenue over a mixed set", func(t *testing.T) {
		var stays []metrics.Stay
		add := func(category pricing.Category, count int, total float64) {
			for i := 0; i < count; i++ {
				stays = append(stays, metrics.Stay{Category: category, StoredTotal: decimal.NewFromFloat(total)})
			}
		}
		add(pricing.CategorySingle, 5, 174.00)
		add(pricing.CategoryDouble, 4, 185.60)
		add(pricing.CategorySuite, 3, 278.40)

		d := metrics.Aggregate(stays, 30)

		assert.Equal(t, 12, d.TotalBookings)
		assert.Equal(t, 18, d.AvailableRooms)
		assert.Equal(t, map[pricing.Category]int{
			pricing.CategorySingle: 5,
			pricing.CategoryDouble: 4,
			pricing.CategorySuite:  3,
		}, d.PerCategory)

		expected := decimal.NewFromFloat(174.00).Mul(decimal.NewFromInt(5)).
			Add(decimal.NewFromFloat(185.60).Mul(decimal.NewFromInt(4))).
			Add(decimal.NewFromFloat(278.40).Mul(decimal.NewFromInt(3)))
		assert.True(t, d.TotalRevenue.Equal(expected))
	})

	t.Run("available rooms floors at zero when overbooked", func(t *testing.T) {
		stays := make([]metrics.Stay, 31)
		for i := range stays {
			stays[i] = metrics.Stay{Category: pricing.CategorySingle, StoredTotal: decimal.NewFromInt(50)}
		}

		d := metrics.Aggregate(stays, 30)
		assert.Equal(t, 31, d.TotalBookings)
		assert.Equal(t, 0, d.AvailableRooms)
	})

	t.Run("unknown categories still counted", func(t *testing.T) {
		stays := []metrics.Stay{{Category: pricing.Category("Legacy"), StoredTotal: decimal.Zero}}
		d := metrics.Aggregate(stays, 10)
		assert.Equal(t, 1, d.PerCategory[pricing.Category("Legacy")])
	})
}
