// Package receipt assembles a priced stay into an orderable document model.
// Composition is pure; rendering the model to a PDF and persisting it are
// infrastructure concerns.
package receipt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"hotelbook/internal/domain/booking"
	"hotelbook/internal/domain/pricing"
	"hotelbook/internal/pkg/money"

	"github.com/shopspring/decimal"
)

var ErrMissingFields = errors.New("booking is missing required guest fields")

// QRDelimiter separates the fields of the machine-readable payload. Guest
// names containing the delimiter make the payload ambiguous on decode; the
// payload is a lookup aid, not an integrity token, so this is accepted.
const QRDelimiter = "|"

type LineItem struct {
	Description string
	Quantity    string
	UnitRate    string
	Amount      string
}

// Receipt is the composed document model. Line items are ordered: stay,
// tax, grand total. Note is empty unless the stored total diverges from the
// recomputed one.
type Receipt struct {
	Reference      string
	GeneratedAt    time.Time
	GuestName      string
	GuestPhone     string
	GuestEmail     string
	GuestDocument  string
	Category       pricing.Category
	Nights         int
	Lines          []LineItem
	GrandTotal     decimal.Decimal
	Note           string
	QRPayload      string
	Reconciliation pricing.ReconciliationResult
}

// Composer prices the stay under the current tax policy and reconciles the
// result against the stored total. It holds only the immutable engine, so
// one composer serves all requests.
type Composer struct {
	engine *pricing.Engine
}

func NewComposer(engine *pricing.Engine) *Composer {
	return &Composer{engine: engine}
}

// Compose builds the receipt for a booking under the current tax rate.
// The receipt always reflects current settings; any divergence from the
// stored total is surfaced in the note, never silently hidden.
func (c *Composer) Compose(b *booking.Booking, taxRate decimal.Decimal, generatedAt time.Time) (*Receipt, error) {
	if !b.Guest().Complete() {
		return nil, ErrMissingFields
	}

	result, err := c.engine.Price(b.Category(), b.Nights().Value(), taxRate)
	if err != nil {
		return nil, err
	}

	reference := FormatReferenceID(b.ID())
	reconciliation := pricing.ReconcileDefault(b.StoredTotal(), result.GrandTotal)

	nights := b.Nights().Value()
	lines := []LineItem{
		{
			Description: fmt.Sprintf("%s Room", b.Category()),
			Quantity:    strconv.Itoa(nights),
			UnitRate:    money.Format(result.NightlyRate),
			Amount:      money.Format(result.Subtotal),
		},
		{
			Description: "Tax / VAT",
			UnitRate:    money.FormatPercent(taxRate),
			Amount:      money.Format(result.Tax),
		},
		{
			Description: "Grand Total",
			Amount:      money.Format(result.GrandTotal),
		},
	}

	note := ""
	if reconciliation.Diverges {
		note = fmt.Sprintf(
			"The amount stored in the system for this booking is %s; current calculation shows %s. Stored total differs from current tax settings.",
			money.Format(b.StoredTotal()), money.Format(result.GrandTotal),
		)
	}

	guest := b.Guest()
	return &Receipt{
		Reference:      reference,
		GeneratedAt:    generatedAt,
		GuestName:      guest.Name(),
		GuestPhone:     guest.Phone(),
		GuestEmail:     guest.Email(),
		GuestDocument:  guest.DocumentNumber(),
		Category:       b.Category(),
		Nights:         nights,
		Lines:          lines,
		GrandTotal:     result.GrandTotal,
		Note:           note,
		QRPayload:      reference + QRDelimiter + guest.Name() + QRDelimiter + money.Format(result.GrandTotal),
		Reconciliation: reconciliation,
	}, nil
}

// ArtifactName is the deterministic file stem for a generated receipt:
// one artifact per reference per day, later generations overwrite.
func ArtifactName(reference string, generatedAt time.Time) string {
	return fmt.Sprintf("Receipt_%s_%s", reference, generatedAt.Format("2006-01-02"))
}
