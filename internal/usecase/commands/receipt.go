package commands

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"hotelbook/internal/domain/receipt"
	"hotelbook/internal/infra"
	"hotelbook/internal/pkg/clock"
	"hotelbook/internal/pkg/errs"
)

var (
	ErrReceiptIncomplete = errs.New("booking is missing fields required for a receipt")
	ErrReceiptRender     = errs.New("receipt rendering failed")
	ErrReceiptStore      = errs.New("receipt storage failed")
)

// GeneratedReceipt pairs the composed document model with the path of the
// stored artifact.
type GeneratedReceipt struct {
	Receipt  *receipt.Receipt
	FilePath string
}

type ReceiptCommands interface {
	GenerateReceipt(ctx context.Context, bookingID int64) (*GeneratedReceipt, error)
}

type receiptCommandsImpl struct {
	repo     BookingRepository
	composer *receipt.Composer
	renderer ReceiptRenderer
	store    ReceiptStore
	taxRate  decimal.Decimal
	clock    clock.Clock
}

func NewReceiptCommands(
	repo BookingRepository,
	composer *receipt.Composer,
	renderer ReceiptRenderer,
	store ReceiptStore,
	taxRate decimal.Decimal,
	clock clock.Clock,
) ReceiptCommands {
	return &receiptCommandsImpl{
		repo:     repo,
		composer: composer,
		renderer: renderer,
		store:    store,
		taxRate:  taxRate,
		clock:    clock,
	}
}

// GenerateReceipt recomputes the stay under the current tax rate, renders
// the document, and stores it under a per-day name so a second run on the
// same day replaces the artifact instead of piling up copies.
func (c *receiptCommandsImpl) GenerateReceipt(ctx context.Context, bookingID int64) (*GeneratedReceipt, error) {
	entity, err := c.repo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	composed, err := c.composer.Compose(entity, c.taxRate, c.clock.Now())
	if err != nil {
		if errors.Is(err, receipt.ErrMissingFields) {
			return nil, errs.Mark(err, ErrReceiptIncomplete)
		}
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	pdf, err := c.renderer.Render(composed)
	if err != nil {
		return nil, errs.Mark(err, ErrReceiptRender)
	}

	name := receipt.ArtifactName(composed.Reference, composed.GeneratedAt) + ".pdf"
	path, err := c.store.Save(ctx, name, pdf)
	if err != nil {
		return nil, errs.Mark(err, ErrReceiptStore)
	}

	return &GeneratedReceipt{Receipt: composed, FilePath: path}, nil
}
