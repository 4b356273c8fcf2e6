package booking

import (
	"errors"
	"time"

	"hotelbook/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeStoredTotal = errors.New("stored total cannot be negative")
	ErrMissingGuestFields  = errors.New("guest fields are required")
)

// Booking is one guest stay. The persistence layer owns the canonical
// record and assigns the integer identifier; the domain operates on
// snapshots and returns new computed values instead of mutating state.
type Booking struct {
	id          int64
	guest       Guest
	category    pricing.Category
	nights      Nights
	storedTotal decimal.Decimal
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking builds an unpersisted booking (id 0 until the store assigns
// one). The stored total is the grand total computed under the tax policy
// in effect at creation time.
func NewBooking(guest Guest, category pricing.Category, nights Nights, storedTotal decimal.Decimal) (*Booking, error) {
	if storedTotal.IsNegative() {
		return nil, ErrNegativeStoredTotal
	}

	return &Booking{
		guest:       guest,
		category:    category,
		nights:      nights,
		storedTotal: storedTotal,
	}, nil
}

// ReconstructBooking rebuilds an entity from a persisted row without
// re-running creation validation; stored data is trusted as-is so legacy
// records always load.
func ReconstructBooking(
	id int64,
	guest Guest,
	category pricing.Category,
	nights Nights,
	storedTotal decimal.Decimal,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		guest:       guest,
		category:    category,
		nights:      nights,
		storedTotal: storedTotal,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Revise returns a new booking with updated stay details and a freshly
// computed stored total, keeping the identity of the original. The stored
// total of the receiver is never modified in place.
func (b *Booking) Revise(guest Guest, category pricing.Category, nights Nights, storedTotal decimal.Decimal) (*Booking, error) {
	if storedTotal.IsNegative() {
		return nil, ErrNegativeStoredTotal
	}

	return &Booking{
		id:          b.id,
		guest:       guest,
		category:    category,
		nights:      nights,
		storedTotal: storedTotal,
		createdAt:   b.createdAt,
	}, nil
}

func (b *Booking) ID() int64                    { return b.id }
func (b *Booking) Guest() Guest                 { return b.guest }
func (b *Booking) Category() pricing.Category   { return b.category }
func (b *Booking) Nights() Nights               { return b.nights }
func (b *Booking) StoredTotal() decimal.Decimal { return b.storedTotal }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
