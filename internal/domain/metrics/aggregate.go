// Package metrics folds a booking set into dashboard figures. Every call
// re-derives from a fresh snapshot; nothing is maintained incrementally, so
// the numbers can never go stale.
package metrics

import (
	"hotelbook/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// Stay is the slice of a booking the aggregator needs: the category it
// occupies and the total that was stored when it was charged. Revenue sums
// stored totals, never recomputed ones.
type Stay struct {
	Category    pricing.Category
	StoredTotal decimal.Decimal
}

type Dashboard struct {
	TotalBookings  int
	TotalRevenue   decimal.Decimal
	AvailableRooms int
	// PerCategory counts bookings per observed category. Categories with
	// zero bookings are absent, matching "no chart data" semantics for an
	// empty set.
	PerCategory map[pricing.Category]int
}

// Aggregate folds the full booking set against the configured room
// inventory. Pure and deterministic for a given snapshot.
func Aggregate(stays []Stay, totalInventory int) Dashboard {
	available := totalInventory - len(stays)
	if available < 0 {
		available = 0
	}

	revenue := decimal.Zero
	histogram := make(map[pricing.Category]int)
	for _, stay := range stays {
		revenue = revenue.Add(stay.StoredTotal)
		histogram[stay.Category]++
	}

	return Dashboard{
		TotalBookings:  len(stays),
		TotalRevenue:   revenue,
		AvailableRooms: available,
		PerCategory:    histogram,
	}
}
