//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotelbook/internal/handler/api"
	resdto "hotelbook/internal/handler/dto/response"
	"hotelbook/internal/usecase/queries"
	"hotelbook/tests/common/httptest"
	queriesmock "hotelbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *queriesmock.MockDashboardQueries) {
		t.Helper()
		ctrl := gomock.NewController(t)
		mockQueries := queriesmock.NewMockDashboardQueries(ctrl)
		router := gin.New()
		router.GET("/dashboard", api.NewDashboardHandler(mockQueries).Summary)
		return router, mockQueries
	}

	t.Run("returns occupancy and revenue figures", func(t *testing.T) {
		router, mockQueries := newRouter(t)
		mockQueries.EXPECT().Summary(gomock.Any()).
			Return(&queries.DashboardView{
				TotalBookings:  12,
				TotalRevenue:   decimal.RequireFromString("2088.00"),
				AvailableRooms: 18,
				PerCategory:    map[string]int{"Single": 7, "Suite": 5},
			}, nil).Times(1)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/dashboard", nil, "")

		var response resdto.DashboardResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
		require.Equal(t, 12, response.TotalBookings)
		require.Equal(t, "$2,088.00", response.TotalRevenue)
		require.Equal(t, 18, response.AvailableRooms)
		require.Equal(t, map[string]int{"Single": 7, "Suite": 5}, response.PerCategory)
	})

	t.Run("returns 500 on read store failure", func(t *testing.T) {
		router, mockQueries := newRouter(t)
		mockQueries.EXPECT().Summary(gomock.Any()).
			Return(nil, errors.New("read store failure")).Times(1)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/dashboard", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
