package response

import (
	"time"

	"hotelbook/internal/domain/receipt"
)

type ReceiptLineResponse struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity,omitempty"`
	UnitRate    string `json:"unitRate,omitempty"`
	Amount      string `json:"amount"`
}

type ReceiptResponse struct {
	Reference   string                `json:"reference"`
	GeneratedAt time.Time             `json:"generatedAt"`
	GuestName   string                `json:"guestName"`
	Category    string                `json:"category"`
	Nights      int                   `json:"nights"`
	Lines       []ReceiptLineResponse `json:"lines"`
	GrandTotal  string                `json:"grandTotal"`
	Note        string                `json:"note,omitempty"`
	QRPayload   string                `json:"qrPayload"`
	FilePath    string                `json:"filePath"`
}

func FromReceipt(r *receipt.Receipt, filePath string) *ReceiptResponse {
	lines := make([]ReceiptLineResponse, 0, len(r.Lines))
	for _, line := range r.Lines {
		lines = append(lines, ReceiptLineResponse{
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitRate:    line.UnitRate,
			Amount:      line.Amount,
		})
	}

	return &ReceiptResponse{
		Reference:   r.Reference,
		GeneratedAt: r.GeneratedAt,
		GuestName:   r.GuestName,
		Category:    string(r.Category),
		Nights:      r.Nights,
		Lines:       lines,
		GrandTotal:  r.GrandTotal.StringFixed(2),
		Note:        r.Note,
		QRPayload:   r.QRPayload,
		FilePath:    filePath,
	}
}
