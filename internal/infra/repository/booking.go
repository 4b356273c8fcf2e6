package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"hotelbook/internal/domain/booking"
	"hotelbook/internal/domain/pricing"
	"hotelbook/internal/infra"
	"hotelbook/internal/usecase/commands"
)

type bookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) commands.BookingRepository {
	return &bookingRepository{pool: pool}
}

func (r *bookingRepository) Create(ctx context.Context, b *booking.Booking) (int64, error) {
	const stmt = `
INSERT INTO bookings (guest_name, guest_phone, guest_email, document_number, category, nights, stored_total)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

	guest := b.Guest()
	var id int64
	err := r.pool.QueryRow(ctx, stmt,
		guest.Name(), guest.Phone(), guest.Email(), guest.DocumentNumber(),
		string(b.Category()), b.Nights().Value(), b.StoredTotal().StringFixed(2),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to create booking", err)
	}
	return id, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	const stmt = `
UPDATE bookings
SET guest_name = $2, guest_phone = $3, guest_email = $4, document_number = $5,
    category = $6, nights = $7, stored_total = $8, updated_at = now()
WHERE id = $1`

	guest := b.Guest()
	tag, err := r.pool.Exec(ctx, stmt,
		b.ID(),
		guest.Name(), guest.Phone(), guest.Email(), guest.DocumentNumber(),
		string(b.Category()), b.Nights().Value(), b.StoredTotal().StringFixed(2),
	)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	const stmt = `DELETE FROM bookings WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt, id)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*booking.Booking, error) {
	const query = `
SELECT id, guest_name, guest_phone, guest_email, document_number, category, nights, stored_total::text, created_at, updated_at
FROM bookings
WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)

	var (
		rowID                                       int64
		name, phone, email, document, category, raw string
		nights                                      int
		createdAt, updatedAt                        time.Time
	)
	err := row.Scan(&rowID, &name, &phone, &email, &document, &category, &nights, &raw, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find booking", err)
	}

	storedTotal, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "invalid stored total", err)
	}

	// Stored rows are trusted as-is so legacy records with incomplete guest
	// data or out-of-catalog categories still load.
	guest := booking.ReconstructGuest(name, phone, email, document)
	n, err := booking.NewNights(nights)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "invalid nights value", err)
	}

	return booking.ReconstructBooking(
		rowID, guest, pricing.Category(category), n, storedTotal,
		createdAt, updatedAt,
	), nil
}
