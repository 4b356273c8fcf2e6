package components

import (
	"hotelbook/internal/infra/pdf"
	"hotelbook/internal/infra/readstore"
	"hotelbook/internal/infra/receiptstore"
	"hotelbook/internal/infra/repository"
	"hotelbook/internal/pkg/config"
	"hotelbook/internal/usecase/commands"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewBookingRepository,
		repository.NewUserRepository,
		readstore.NewBookingReadStore,
		readstore.NewStayReadStore,
		readstore.NewUserReadStore,
		NewReceiptRenderer,
		NewReceiptStore,
	),
)

func NewReceiptRenderer(cfg config.Config) commands.ReceiptRenderer {
	return pdf.NewReceiptRenderer(cfg.Hotel)
}

func NewReceiptStore(cfg config.Config) commands.ReceiptStore {
	return receiptstore.NewFileStore(cfg.Hotel.ReceiptsDir)
}
