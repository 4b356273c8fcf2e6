package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingView is the read-optimized projection of one booking.
type BookingView struct {
	ID             int64           `json:"id"`
	Reference      string          `json:"reference"`
	GuestName      string          `json:"guest_name"`
	GuestPhone     string          `json:"guest_phone"`
	GuestEmail     string          `json:"guest_email"`
	DocumentNumber string          `json:"document_number"`
	Category       string          `json:"category"`
	Nights         int             `json:"nights"`
	StoredTotal    decimal.Decimal `json:"stored_total"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type BookingListItem struct {
	ID          int64           `json:"id"`
	Reference   string          `json:"reference"`
	GuestName   string          `json:"guest_name"`
	Category    string          `json:"category"`
	Nights      int             `json:"nights"`
	StoredTotal decimal.Decimal `json:"stored_total"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BookingFilter narrows List results. Zero values match everything.
type BookingFilter struct {
	Category       string
	GuestName      string
	DocumentNumber string
}

// ReconciliationView compares a booking's stored total against the total
// recomputed under current rate and tax settings.
type ReconciliationView struct {
	BookingID  int64           `json:"booking_id"`
	Reference  string          `json:"reference"`
	Stored     decimal.Decimal `json:"stored_total"`
	Recomputed decimal.Decimal `json:"recomputed_total"`
	Difference decimal.Decimal `json:"difference"`
	Diverges   bool            `json:"diverges"`
}

// DashboardView is the occupancy and revenue summary for the whole hotel.
type DashboardView struct {
	TotalBookings  int             `json:"total_bookings"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	AvailableRooms int             `json:"available_rooms"`
	PerCategory    map[string]int  `json:"per_category"`
}

// AuthorizedUserView carries the staff fields needed for authorization.
type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
}
