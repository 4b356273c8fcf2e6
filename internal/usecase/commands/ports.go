package commands

import (
	"context"

	"github.com/google/uuid"

	"hotelbook/internal/domain/booking"
	"hotelbook/internal/domain/receipt"
	"hotelbook/internal/domain/user"
)

// BookingRepository is the write-side port for booking persistence. The
// store assigns integer identifiers on create.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (int64, error)
	Update(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*booking.Booking, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

// ReceiptRenderer turns a composed receipt into a printable document.
type ReceiptRenderer interface {
	Render(r *receipt.Receipt) ([]byte, error)
}

// ReceiptStore persists a rendered document and returns its path. Saving
// the same name twice overwrites, so regenerating a receipt on the same
// day produces one artifact.
type ReceiptStore interface {
	Save(ctx context.Context, name string, pdf []byte) (string, error)
}
