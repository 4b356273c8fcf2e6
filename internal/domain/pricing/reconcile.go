package pricing

import "github.com/shopspring/decimal"

// DefaultTolerance is one cent: anything beyond that between a stored total
// and a recomputed total is a real divergence, not rounding noise.
var DefaultTolerance = decimal.NewFromFloat(0.01)

// ReconciliationResult reports whether a stored historical total still
// matches a total recomputed under current rate and tax settings. It never
// corrects anything: the stored financial record stays untouched and a
// human decides what to do with the discrepancy.
type ReconciliationResult struct {
	Stored     decimal.Decimal
	Recomputed decimal.Decimal
	Diverges   bool
}

// Difference is the absolute gap between the two compared totals.
func (r ReconciliationResult) Difference() decimal.Decimal {
	return r.Stored.Sub(r.Recomputed).Abs()
}

// Reconcile compares a stored total against a recomputed one. Total
// function: zero-valued inputs are a valid free stay, not an error.
// Divergence detection is symmetric in its arguments.
func Reconcile(stored, recomputed, tolerance decimal.Decimal) ReconciliationResult {
	return ReconciliationResult{
		Stored:     stored,
		Recomputed: recomputed,
		Diverges:   stored.Sub(recomputed).Abs().GreaterThan(tolerance),
	}
}

// ReconcileDefault applies the one-cent default tolerance.
func ReconcileDefault(stored, recomputed decimal.Decimal) ReconciliationResult {
	return Reconcile(stored, recomputed, DefaultTolerance)
}
