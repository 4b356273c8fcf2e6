package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNegativeRate = errors.New("nightly rate cannot be negative")

// RateTable maps room categories to nightly rates. It is built once from
// configuration and never mutated afterwards, so it is safe for concurrent
// reads without locking.
type RateTable struct {
	rates map[Category]decimal.Decimal
}

func NewRateTable(rates map[Category]decimal.Decimal) (RateTable, error) {
	table := make(map[Category]decimal.Decimal, len(rates))
	for category, rate := range rates {
		if rate.IsNegative() {
			return RateTable{}, ErrNegativeRate
		}
		table[category] = rate
	}
	return RateTable{rates: table}, nil
}

// RateFor returns the configured nightly rate for a category. Unknown
// categories price at zero rather than failing: bookings recorded under a
// legacy category must still be valuable.
func (t RateTable) RateFor(category Category) decimal.Decimal {
	rate, ok := t.rates[category]
	if !ok {
		return decimal.Zero
	}
	return rate
}

// Knows reports whether the category is present in the table.
func (t RateTable) Knows(category Category) bool {
	_, ok := t.rates[category]
	return ok
}

// Categories returns the configured category set, unordered.
func (t RateTable) Categories() []Category {
	categories := make([]Category, 0, len(t.rates))
	for category := range t.rates {
		categories = append(categories, category)
	}
	return categories
}
