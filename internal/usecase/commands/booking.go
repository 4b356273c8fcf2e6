package commands

import (
	"context"

	"github.com/shopspring/decimal"

	"hotelbook/internal/domain/booking"
	"hotelbook/internal/domain/pricing"
	reqdto "hotelbook/internal/handler/dto/request"
	"hotelbook/internal/infra"
	"hotelbook/internal/pkg/errs"
	"hotelbook/internal/usecase/queries"
)

var (
	ErrBookingNotFound         = errs.New("booking not found")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrPricingFailed           = errs.New("pricing failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	UpdateBooking(ctx context.Context, id int64, req reqdto.UpdateBookingRequest) (*queries.BookingView, error)
	DeleteBooking(ctx context.Context, id int64) error
}

type bookingCommandsImpl struct {
	repo           BookingRepository
	bookingQueries queries.BookingQueries
	engine         *pricing.Engine
	taxRate        decimal.Decimal
}

func NewBookingCommands(
	repo BookingRepository,
	bookingQueries queries.BookingQueries,
	engine *pricing.Engine,
	taxRate decimal.Decimal,
) BookingCommands {
	return &bookingCommandsImpl{
		repo:           repo,
		bookingQueries: bookingQueries,
		engine:         engine,
		taxRate:        taxRate,
	}
}

// CreateBooking prices the stay under current settings and persists the
// grand total as the booking's stored total. That snapshot is what later
// reconciliation compares against.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	entity, err := c.buildBooking(req.ToGuest, req.ToNights, req.ToCategory())
	if err != nil {
		return nil, err
	}

	id, err := c.repo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.bookingQueries.GetByID(ctx, id)
}

func (c *bookingCommandsImpl) UpdateBooking(ctx context.Context, id int64, req reqdto.UpdateBookingRequest) (*queries.BookingView, error) {
	current, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	replacement, err := c.buildBooking(req.ToGuest, req.ToNights, req.ToCategory())
	if err != nil {
		return nil, err
	}

	revised, err := current.Revise(replacement.Guest(), replacement.Category(), replacement.Nights(), replacement.StoredTotal())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.repo.Update(ctx, revised); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.bookingQueries.GetByID(ctx, id)
}

func (c *bookingCommandsImpl) DeleteBooking(ctx context.Context, id int64) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *bookingCommandsImpl) buildBooking(
	toGuest func() (booking.Guest, error),
	toNights func() (booking.Nights, error),
	category pricing.Category,
) (*booking.Booking, error) {
	guest, err := toGuest()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	nights, err := toNights()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	priced, err := c.engine.Price(category, nights.Value(), c.taxRate)
	if err != nil {
		return nil, errs.Mark(err, ErrPricingFailed)
	}

	entity, err := booking.NewBooking(guest, category, nights, priced.GrandTotal)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return entity, nil
}
