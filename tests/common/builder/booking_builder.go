//go:build unit || e2e

package builder

import (
	"time"

	"github.com/shopspring/decimal"

	"hotelbook/internal/domain/booking"
	"hotelbook/internal/domain/pricing"
	"hotelbook/internal/domain/receipt"
	reqdto "hotelbook/internal/handler/dto/request"
	"hotelbook/internal/usecase/queries"
)

type BookingBuilder struct {
	ID             int64
	GuestName      string
	GuestPhone     string
	GuestEmail     string
	DocumentNumber string
	Category       string
	Nights         int
	StoredTotal    string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:             1,
		GuestName:      "Ada Lovelace",
		GuestPhone:     "+44 20 7946 0001",
		GuestEmail:     "ada@example.com",
		DocumentNumber: "P1234567",
		Category:       "Single",
		Nights:         3,
		StoredTotal:    "174.00",
	}
}

func (b *BookingBuilder) BuildCreateDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		GuestName:      b.GuestName,
		GuestPhone:     b.GuestPhone,
		GuestEmail:     b.GuestEmail,
		DocumentNumber: b.DocumentNumber,
		Category:       b.Category,
		Nights:         b.Nights,
	}
}

func (b *BookingBuilder) BuildUpdateDTO() reqdto.UpdateBookingRequest {
	return reqdto.UpdateBookingRequest{
		GuestName:      b.GuestName,
		GuestPhone:     b.GuestPhone,
		GuestEmail:     b.GuestEmail,
		DocumentNumber: b.DocumentNumber,
		Category:       b.Category,
		Nights:         b.Nights,
	}
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	guest := booking.ReconstructGuest(b.GuestName, b.GuestPhone, b.GuestEmail, b.DocumentNumber)
	nights, _ := booking.NewNights(b.Nights)
	now := time.Now()

	return booking.ReconstructBooking(
		b.ID, guest, pricing.Category(b.Category), nights,
		decimal.RequireFromString(b.StoredTotal),
		now, now,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:             b.ID,
		Reference:      receipt.FormatReferenceID(b.ID),
		GuestName:      b.GuestName,
		GuestPhone:     b.GuestPhone,
		GuestEmail:     b.GuestEmail,
		DocumentNumber: b.DocumentNumber,
		Category:       b.Category,
		Nights:         b.Nights,
		StoredTotal:    decimal.RequireFromString(b.StoredTotal),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:          b.ID,
		Reference:   receipt.FormatReferenceID(b.ID),
		GuestName:   b.GuestName,
		Category:    b.Category,
		Nights:      b.Nights,
		StoredTotal: decimal.RequireFromString(b.StoredTotal),
		CreatedAt:   time.Now(),
	}
}

func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithCategory(category string) *BookingBuilder {
	b.Category = category
	return b
}

func (b *BookingBuilder) WithNights(nights int) *BookingBuilder {
	b.Nights = nights
	return b
}

func (b *BookingBuilder) WithStoredTotal(total string) *BookingBuilder {
	b.StoredTotal = total
	return b
}

func (b *BookingBuilder) WithGuestName(name string) *BookingBuilder {
	b.GuestName = name
	return b
}

func (b *BookingBuilder) WithDocumentNumber(document string) *BookingBuilder {
	b.DocumentNumber = document
	return b
}
