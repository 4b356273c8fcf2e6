package readstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"hotelbook/internal/domain/metrics"
	"hotelbook/internal/domain/pricing"
	"hotelbook/internal/domain/receipt"
	"hotelbook/internal/infra"
	"hotelbook/internal/usecase/queries"
)

type bookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) queries.BookingReadStore {
	return &bookingReadStore{pool: pool}
}

func NewStayReadStore(pool *pgxpool.Pool) queries.StayReadStore {
	return &bookingReadStore{pool: pool}
}

func (s *bookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	const query = `
SELECT id, guest_name, guest_phone, guest_email, document_number, category, nights, stored_total::text, created_at, updated_at
FROM bookings
WHERE id = $1`

	var (
		view                 queries.BookingView
		raw                  string
		createdAt, updatedAt time.Time
	)
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.GuestName, &view.GuestPhone, &view.GuestEmail, &view.DocumentNumber,
		&view.Category, &view.Nights, &raw, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find booking", err)
	}

	total, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "invalid stored total", err)
	}

	view.StoredTotal = total
	view.Reference = receipt.FormatReferenceID(view.ID)
	view.CreatedAt = createdAt
	view.UpdatedAt = updatedAt
	return &view, nil
}

// Search filters with case-insensitive matches; empty filter fields match
// every row. Results keep insertion order so references come out ascending.
func (s *bookingReadStore) Search(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingListItem, error) {
	const query = `
SELECT id, guest_name, category, nights, stored_total::text, created_at
FROM bookings
WHERE ($1 = '' OR category ILIKE $1)
  AND ($2 = '' OR guest_name ILIKE '%' || $2 || '%')
  AND ($3 = '' OR document_number ILIKE '%' || $3 || '%')
ORDER BY id`

	rows, err := s.pool.Query(ctx, query, filter.Category, filter.GuestName, filter.DocumentNumber)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to search bookings", err)
	}
	defer rows.Close()

	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var (
			item queries.BookingListItem
			raw  string
		)
		if err := rows.Scan(&item.ID, &item.GuestName, &item.Category, &item.Nights, &raw, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan booking row", err)
		}

		total, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "invalid stored total", err)
		}
		item.StoredTotal = total
		item.Reference = receipt.FormatReferenceID(item.ID)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to read booking rows", err)
	}
	return items, nil
}

func (s *bookingReadStore) ListStays(ctx context.Context) ([]metrics.Stay, error) {
	const query = `SELECT category, stored_total::text FROM bookings`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to list stays", err)
	}
	defer rows.Close()

	stays := make([]metrics.Stay, 0)
	for rows.Next() {
		var (
			category string
			raw      string
		)
		if err := rows.Scan(&category, &raw); err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan stay row", err)
		}

		total, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "invalid stored total", err)
		}
		stays = append(stays, metrics.Stay{Category: pricing.Category(category), StoredTotal: total})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to read stay rows", err)
	}
	return stays, nil
}
