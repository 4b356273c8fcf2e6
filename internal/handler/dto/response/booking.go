package response

import (
	"time"

	"github.com/jinzhu/copier"

	"hotelbook/internal/pkg/money"
	"hotelbook/internal/usecase/queries"
)

type BookingResponse struct {
	ID             int64     `json:"id"`
	Reference      string    `json:"reference"`
	GuestName      string    `json:"guestName"`
	GuestPhone     string    `json:"guestPhone"`
	GuestEmail     string    `json:"guestEmail"`
	DocumentNumber string    `json:"documentNumber"`
	Category       string    `json:"category"`
	Nights         int       `json:"nights"`
	StoredTotal    string    `json:"storedTotal"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID          int64     `json:"id"`
	Reference   string    `json:"reference"`
	GuestName   string    `json:"guestName"`
	Category    string    `json:"category"`
	Nights      int       `json:"nights"`
	StoredTotal string    `json:"storedTotal"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Views and responses share field names; copier moves the matching ones and
// the money fields are formatted afterwards.
func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	resp.StoredTotal = view.StoredTotal.StringFixed(2)
	return &resp
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, item)
	resp.StoredTotal = item.StoredTotal.StringFixed(2)
	return &resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	resps := make([]*BookingListResponse, 0, len(items))
	for _, item := range items {
		resps = append(resps, FromBookingListItem(item))
	}
	return resps
}

type ReconciliationResponse struct {
	BookingID  int64  `json:"bookingId"`
	Reference  string `json:"reference"`
	Stored     string `json:"storedTotal"`
	Recomputed string `json:"recomputedTotal"`
	Difference string `json:"difference"`
	Diverges   bool   `json:"diverges"`
}

func FromReconciliationView(view *queries.ReconciliationView) *ReconciliationResponse {
	return &ReconciliationResponse{
		BookingID:  view.BookingID,
		Reference:  view.Reference,
		Stored:     view.Stored.StringFixed(2),
		Recomputed: view.Recomputed.StringFixed(2),
		Difference: view.Difference.StringFixed(2),
		Diverges:   view.Diverges,
	}
}

func FromReconciliationViews(views []*queries.ReconciliationView) []*ReconciliationResponse {
	resps := make([]*ReconciliationResponse, 0, len(views))
	for _, view := range views {
		resps = append(resps, FromReconciliationView(view))
	}
	return resps
}

type QuoteResponse struct {
	Category    string `json:"category"`
	Nights      int    `json:"nights"`
	NightlyRate string `json:"nightlyRate"`
	Subtotal    string `json:"subtotal"`
	Tax         string `json:"tax"`
	GrandTotal  string `json:"grandTotal"`
}

type DashboardResponse struct {
	TotalBookings  int            `json:"totalBookings"`
	TotalRevenue   string         `json:"totalRevenue"`
	AvailableRooms int            `json:"availableRooms"`
	PerCategory    map[string]int `json:"perCategory"`
}

func FromDashboardView(view *queries.DashboardView) *DashboardResponse {
	return &DashboardResponse{
		TotalBookings:  view.TotalBookings,
		TotalRevenue:   money.Format(view.TotalRevenue),
		AvailableRooms: view.AvailableRooms,
		PerCategory:    view.PerCategory,
	}
}
