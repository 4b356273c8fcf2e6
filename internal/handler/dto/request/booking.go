package request

import (
	"hotelbook/internal/domain/booking"
	"hotelbook/internal/domain/pricing"
)

// CreateBookingRequest carries the front-desk form. Category is free text on
// the wire: unknown categories are accepted and price at a zero nightly
// rate rather than being rejected.
type CreateBookingRequest struct {
	GuestName      string `json:"guest_name" binding:"required"`
	GuestPhone     string `json:"guest_phone" binding:"required"`
	GuestEmail     string `json:"guest_email" binding:"required"`
	DocumentNumber string `json:"document_number" binding:"required"`
	Category       string `json:"category" binding:"required"`
	Nights         int    `json:"nights" binding:"required"`
}

func (r CreateBookingRequest) ToGuest() (booking.Guest, error) {
	return booking.NewGuest(r.GuestName, r.GuestPhone, r.GuestEmail, r.DocumentNumber)
}

func (r CreateBookingRequest) ToNights() (booking.Nights, error) {
	return booking.NewNights(r.Nights)
}

func (r CreateBookingRequest) ToCategory() pricing.Category {
	return pricing.Category(r.Category)
}

// UpdateBookingRequest replaces the full stay; the stored total is
// recomputed under current settings as part of the update.
type UpdateBookingRequest struct {
	GuestName      string `json:"guest_name" binding:"required"`
	GuestPhone     string `json:"guest_phone" binding:"required"`
	GuestEmail     string `json:"guest_email" binding:"required"`
	DocumentNumber string `json:"document_number" binding:"required"`
	Category       string `json:"category" binding:"required"`
	Nights         int    `json:"nights" binding:"required"`
}

func (r UpdateBookingRequest) ToGuest() (booking.Guest, error) {
	return booking.NewGuest(r.GuestName, r.GuestPhone, r.GuestEmail, r.DocumentNumber)
}

func (r UpdateBookingRequest) ToNights() (booking.Nights, error) {
	return booking.NewNights(r.Nights)
}

func (r UpdateBookingRequest) ToCategory() pricing.Category {
	return pricing.Category(r.Category)
}

// ListBookingsQuery binds the search filters on the list endpoint.
type ListBookingsQuery struct {
	Category       string `form:"category"`
	GuestName      string `form:"guest_name"`
	DocumentNumber string `form:"document_number"`
}

// QuoteQuery prices a prospective stay without creating a booking.
type QuoteQuery struct {
	Category string `form:"category" binding:"required"`
	Nights   int    `form:"nights" binding:"required"`
}
