package api

import (
	"errors"
	"net/http"

	"hotelbook/internal/domain/pricing"
	reqdto "hotelbook/internal/handler/dto/request"
	resdto "hotelbook/internal/handler/dto/response"
	"hotelbook/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PricingHandler struct {
	engine  *pricing.Engine
	taxRate decimal.Decimal
}

func NewPricingHandler(engine *pricing.Engine, taxRate decimal.Decimal) *PricingHandler {
	return &PricingHandler{
		engine:  engine,
		taxRate: taxRate,
	}
}

// @Summary Quote a stay
// @Description Price a prospective stay under current settings without creating a booking
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Param category query string true "Room category"
// @Param nights query int true "Number of nights"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Router /pricing/quote [get]
func (h *PricingHandler) Quote(c *gin.Context) {
	var q reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	result, err := h.engine.Price(pricing.Category(q.Category), q.Nights, h.taxRate)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidNights):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Nights must be a positive integer", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.QuoteResponse{
		Category:    q.Category,
		Nights:      q.Nights,
		NightlyRate: result.NightlyRate.StringFixed(2),
		Subtotal:    result.Subtotal.StringFixed(2),
		Tax:         result.Tax.StringFixed(2),
		GrandTotal:  result.GrandTotal.StringFixed(2),
	})
}
