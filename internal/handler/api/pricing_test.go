//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotelbook/internal/domain/pricing"
	"hotelbook/internal/handler/api"
	resdto "hotelbook/internal/handler/dto/response"
	"hotelbook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newQuoteRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rates, err := pricing.NewRateTable(map[pricing.Category]decimal.Decimal{
		"Single": decimal.NewFromInt(50),
		"Double": decimal.NewFromInt(80),
		"Suite":  decimal.NewFromInt(120),
	})
	require.NoError(t, err)

	handler := api.NewPricingHandler(pricing.NewEngine(rates), decimal.RequireFromString("0.16"))

	router := gin.New()
	router.GET("/pricing/quote", handler.Quote)
	return router
}

func TestPricingHandler_Quote(t *testing.T) {
	router := newQuoteRouter(t)

	t.Run("prices a known category", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/pricing/quote?category=Single&nights=3", nil, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
		require.Equal(t, "50.00", response.NightlyRate)
		require.Equal(t, "150.00", response.Subtotal)
		require.Equal(t, "24.00", response.Tax)
		require.Equal(t, "174.00", response.GrandTotal)
	})

	t.Run("unknown category quotes at a zero rate", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/pricing/quote?category=Penthouse&nights=2", nil, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
		require.Equal(t, "0.00", response.NightlyRate)
		require.Equal(t, "0.00", response.GrandTotal)
	})

	t.Run("rejects non-positive nights", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/pricing/quote?category=Single&nights=-1", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "")
	})

	t.Run("rejects missing parameters", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/pricing/quote?category=Single", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid query parameters")
	})
}
