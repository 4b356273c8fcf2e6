package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidNights  = errors.New("nights must be a positive integer")
	ErrInvalidTaxRate = errors.New("tax rate must be in [0, 1)")
)

// Result is the full price breakdown for one stay. All amounts are rounded
// to two decimals; GrandTotal == round(Subtotal + Tax) holds exactly.
type Result struct {
	NightlyRate decimal.Decimal
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	GrandTotal  decimal.Decimal
}

// Engine prices a stay from the rate table. It is a pure function of its
// inputs and the immutable table, so a single Engine may be shared freely.
type Engine struct {
	rates RateTable
}

func NewEngine(rates RateTable) *Engine {
	return &Engine{rates: rates}
}

func (e *Engine) RateTable() RateTable {
	return e.rates
}

// Price computes subtotal, tax, and grand total for a stay.
//
// Rounding happens at every intermediate step, not once at the end. Stored
// totals were produced that way, and reconciliation compares against them;
// deferring rounding would flag phantom divergences on perfectly good
// bookings.
func (e *Engine) Price(category Category, nights int, taxRate decimal.Decimal) (Result, error) {
	if nights < 1 {
		return Result{}, ErrInvalidNights
	}
	if taxRate.IsNegative() || taxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return Result{}, ErrInvalidTaxRate
	}

	rate := e.rates.RateFor(category)
	subtotal := rate.Mul(decimal.NewFromInt(int64(nights))).Round(2)
	tax := subtotal.Mul(taxRate).Round(2)
	grandTotal := subtotal.Add(tax).Round(2)

	return Result{
		NightlyRate: rate,
		Subtotal:    subtotal,
		Tax:         tax,
		GrandTotal:  grandTotal,
	}, nil
}
