package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "hotelbook/internal/handler/dto/response"
	"hotelbook/internal/handler/httperr"
	"hotelbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReceiptHandler struct {
	receiptCommands commands.ReceiptCommands
}

func NewReceiptHandler(receiptCommands commands.ReceiptCommands) *ReceiptHandler {
	return &ReceiptHandler{
		receiptCommands: receiptCommands,
	}
}

// @Summary Generate receipt
// @Description Recompute the stay under current settings, render the PDF, and store it
// @Tags receipts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 201 {object} resdto.ReceiptResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/receipt [post]
func (h *ReceiptHandler) GenerateReceipt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	generated, err := h.receiptCommands.GenerateReceipt(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrReceiptIncomplete):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking is missing fields required for a receipt", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReceipt(generated.Receipt, generated.FilePath))
}
