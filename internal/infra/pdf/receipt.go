// Package pdf renders composed receipts into printable documents.
package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"hotelbook/internal/domain/receipt"
	"hotelbook/internal/pkg/config"
	"hotelbook/internal/usecase/commands"
)

type receiptRenderer struct {
	hotel config.HotelConfig
}

func NewReceiptRenderer(hotel config.HotelConfig) commands.ReceiptRenderer {
	return &receiptRenderer{hotel: hotel}
}

// Render lays the document out top to bottom: hotel identity, booking
// reference block, guest block, the ordered line items, the optional
// divergence note, and a QR code carrying the machine-readable payload.
func (p *receiptRenderer) Render(r *receipt.Receipt) ([]byte, error) {
	cfg := marotocfg.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(24,
		col.New(8).Add(
			text.New(p.hotel.Name, props.Text{Size: 18, Style: fontstyle.Bold}),
			text.New(p.hotel.Address, props.Text{Size: 9, Top: 9}),
			text.New(p.hotel.Contact, props.Text{Size: 9, Top: 13}),
		),
		text.NewCol(4, "Booking Receipt", props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Align: align.Right,
		}),
	)

	m.AddRow(16,
		col.New(6).Add(
			text.New("Reference: "+r.Reference, props.Text{Size: 10, Style: fontstyle.Bold}),
			text.New("Issued: "+r.GeneratedAt.Format("2006-01-02"), props.Text{Size: 9, Top: 6}),
		),
		col.New(6).Add(
			text.New(fmt.Sprintf("%s Room, %d night(s)", r.Category, r.Nights), props.Text{Size: 9, Align: align.Right}),
		),
	)

	m.AddRow(22,
		col.New(12).Add(
			text.New("Guest", props.Text{Size: 9, Style: fontstyle.Bold}),
			text.New(r.GuestName, props.Text{Size: 9, Top: 5}),
			text.New(r.GuestPhone+" / "+r.GuestEmail, props.Text{Size: 9, Top: 9}),
			text.New("Document: "+r.GuestDocument, props.Text{Size: 9, Top: 13}),
		),
	)

	m.AddRow(8,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, line := range r.Lines {
		m.AddRow(8,
			text.NewCol(6, line.Description, props.Text{Size: 9}),
			text.NewCol(2, line.Quantity, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, line.UnitRate, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, line.Amount, props.Text{Size: 9, Align: align.Right}),
		)
	}

	if r.Note != "" {
		m.AddRow(14,
			text.NewCol(12, "Note: "+r.Note, props.Text{Size: 8, Style: fontstyle.Italic}),
		)
	}

	m.AddRow(30,
		code.NewQrCol(3, r.QRPayload, props.Rect{
			Center:  false,
			Percent: 90,
		}),
		col.New(9).Add(
			text.New("Thank you for staying with us.", props.Text{Size: 9, Top: 10}),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate receipt pdf: %w", err)
	}
	return doc.GetBytes(), nil
}
