//go:build unit

package receipt_test

import (
	"testing"
	"time"

	"hotelbook/internal/domain/booking"
	"hotelbook/internal/domain/pricing"
	"hotelbook/internal/domain/receipt"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestComposer(t *testing.T) *receipt.Composer {
	t.Helper()

	table, err := pricing.NewRateTable(map[pricing.Category]decimal.Decimal{
		pricing.CategorySingle: decimal.NewFromInt(50),
		pricing.CategoryDouble: decimal.NewFromInt(80),
		pricing.CategorySuite:  decimal.NewFromInt(120),
	})
	require.NoError(t, err)

	return receipt.NewComposer(pricing.NewEngine(table))
}

func testBooking(t *testing.T, id int64, category pricing.Category, nights int, storedTotal string) *booking.Booking {
	t.Helper()

	n, err := booking.NewNights(nights)
	require.NoError(t, err)

	guest := booking.ReconstructGuest("Ada Lovelace", "+44 20 7946 0001", "ada@example.com", "P1234567")
	return booking.ReconstructBooking(
		id, guest, category, n,
		decimal.RequireFromString(storedTotal),
		time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	)
}

func TestComposer_Compose(t *testing.T) {
	composer := newTestComposer(t)
	vat := decimal.NewFromFloat(0.16)
	generatedAt := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)

	t.Run("matching stored total carries no note", func(t *testing.T) {
		b := testBooking(t, 42, pricing.CategorySingle, 3, "174.00")

		r, err := composer.Compose(b, vat, generatedAt)
		require.NoError(t, err)

		assert.Equal(t, "HB-000042", r.Reference)
		assert.Empty(t, r.Note)
		assert.False(t, r.Reconciliation.Diverges)
		assert.Equal(t, "174.00", r.GrandTotal.StringFixed(2))
		assert.Equal(t, "HB-000042|Ada Lovelace|$174.00", r.QRPayload)
	})

	t.Run("diverging stored total carries a note with both amounts", func(t *testing.T) {
		// Stored under an older 10% tax policy, recomputed at 16%.
		b := testBooking(t, 7, pricing.CategorySingle, 3, "165.00")

		r, err := composer.Compose(b, vat, generatedAt)
		require.NoError(t, err)

		assert.True(t, r.Reconciliation.Diverges)
		assert.Contains(t, r.Note, "$165.00")
		assert.Contains(t, r.Note, "$174.00")
		// The receipt itself shows the current recomputation, not the stored amount.
		assert.Equal(t, "174.00", r.GrandTotal.StringFixed(2))
		assert.Equal(t, "HB-000007|Ada Lovelace|$174.00", r.QRPayload)
	})

	t.Run("line items are ordered stay then tax then grand total", func(t *testing.T) {
		b := testBooking(t, 11, pricing.CategorySuite, 2, "278.40")

		r, err := composer.Compose(b, vat, generatedAt)
		require.NoError(t, err)

		require.Len(t, r.Lines, 3)
		assert.Equal(t, "Suite Room", r.Lines[0].Description)
		assert.Equal(t, "2", r.Lines[0].Quantity)
		assert.Equal(t, "$120.00", r.Lines[0].UnitRate)
		assert.Equal(t, "$240.00", r.Lines[0].Amount)
		assert.Equal(t, "Tax / VAT", r.Lines[1].Description)
		assert.Equal(t, "16%", r.Lines[1].UnitRate)
		assert.Equal(t, "$38.40", r.Lines[1].Amount)
		assert.Equal(t, "Grand Total", r.Lines[2].Description)
		assert.Equal(t, "$278.40", r.Lines[2].Amount)
	})

	t.Run("missing guest fields are rejected", func(t *testing.T) {
		n, err := booking.NewNights(1)
		require.NoError(t, err)

		incomplete := booking.ReconstructGuest("Ada Lovelace", "", "ada@example.com", "P1234567")
		b := booking.ReconstructBooking(3, incomplete, pricing.CategorySingle, n, decimal.NewFromInt(58), time.Time{}, time.Time{})

		_, err = composer.Compose(b, vat, generatedAt)
		require.ErrorIs(t, err, receipt.ErrMissingFields)
	})

	t.Run("invalid tax rate propagates", func(t *testing.T) {
		b := testBooking(t, 1, pricing.CategorySingle, 1, "58.00")

		_, err := composer.Compose(b, decimal.NewFromInt(1), generatedAt)
		require.ErrorIs(t, err, pricing.ErrInvalidTaxRate)
	})
}

func TestArtifactName(t *testing.T) {
	generatedAt := time.Date(2026, 8, 28, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "Receipt_HB-000042_2026-08-28", receipt.ArtifactName("HB-000042", generatedAt))
}
