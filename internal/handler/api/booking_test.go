//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotelbook/internal/handler/api"
	resdto "hotelbook/internal/handler/dto/response"
	"hotelbook/internal/usecase/commands"
	"hotelbook/internal/usecase/queries"
	"hotelbook/tests/common/builder"
	"hotelbook/tests/common/httptest"
	"hotelbook/tests/common/testutil"
	commandsmock "hotelbook/tests/mock/commands"
	queriesmock "hotelbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.GET("/bookings", s.handler.ListBookings)
	s.router.GET("/bookings/reconciliation", s.handler.ReconcileAll)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
	s.router.PUT("/bookings/:id", s.handler.UpdateBooking)
	s.router.DELETE("/bookings/:id", s.handler.DeleteBooking)
	s.router.GET("/bookings/:id/reconciliation", s.handler.ReconcileBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateDTO()
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 201 Created with the stored total", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.Reference, response.Reference)
		s.Equal("174.00", response.StoredTotal)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: guest_name", mutate: testutil.Field("guest_name", nil)},
			{name: "empty guest_name", mutate: testutil.Field("guest_name", "")},
			{name: "missing field: category", mutate: testutil.Field("category", nil)},
			{name: "missing field: nights", mutate: testutil.Field("nights", nil)},
			{name: "nights of wrong type", mutate: testutil.Field("nights", "three")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "domain validation",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Booking details failed validation",
			},
			{
				name:           "pricing failure",
				commandsError:  commands.ErrPricingFailed,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Stay could not be priced",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	returnView := builder.NewBookingBuilder().WithID(42).BuildView()

	s.Run("success: returns the booking with a formatted reference", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(42)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/42", nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("HB-000042", response.Reference)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(99)).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/99", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 Bad Request for non-numeric or non-positive IDs", func() {
		for _, id := range []string{"abc", "0", "-5"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
		}
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	items := []*queries.BookingListItem{
		builder.NewBookingBuilder().WithID(1).BuildListItem(),
		builder.NewBookingBuilder().WithID(2).WithCategory("Suite").WithStoredTotal("278.40").BuildListItem(),
	}

	s.Run("success: returns all bookings without filters", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.BookingFilter{}).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("278.40", response[1].StoredTotal)
	})

	s.Run("success: passes query filters through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.BookingFilter{Category: "Suite", GuestName: "Ada"}).
			Return(items[1:], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?category=Suite&guest_name=Ada", nil, "")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: filters by identity document number", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.BookingFilter{DocumentNumber: "AB12"}).
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?document_number=AB12", nil, "")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: empty result yields an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.BookingFilter{}).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

func (s *BookingHandlerTestSuite) TestUpdateBooking() {
	url := "/bookings/1"
	reqBody := builder.NewBookingBuilder().WithNights(5).BuildUpdateDTO()
	returnView := builder.NewBookingBuilder().WithNights(5).WithStoredTotal("290.00").BuildView()

	s.Run("success: returns the booking with its recomputed total", func() {
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), int64(1), reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(5, response.Nights)
		s.Equal("290.00", response.StoredTotal)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), int64(1), reqBody).
			Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), int64(1)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/1", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), int64(7)).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/7", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestReconcileBooking() {
	s.Run("success: reports a clean booking", func() {
		view := &queries.ReconciliationView{
			BookingID:  42,
			Reference:  "HB-000042",
			Stored:     decimal.RequireFromString("174.00"),
			Recomputed: decimal.RequireFromString("174.00"),
			Difference: decimal.Zero,
			Diverges:   false,
		}
		s.mockQueries.EXPECT().Reconcile(gomock.Any(), int64(42)).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/42/reconciliation", nil, "")

		var response resdto.ReconciliationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Diverges)
		s.Equal("0.00", response.Difference)
	})

	s.Run("success: reports a diverging booking", func() {
		view := &queries.ReconciliationView{
			BookingID:  7,
			Reference:  "HB-000007",
			Stored:     decimal.RequireFromString("165.00"),
			Recomputed: decimal.RequireFromString("174.00"),
			Difference: decimal.RequireFromString("9.00"),
			Diverges:   true,
		}
		s.mockQueries.EXPECT().Reconcile(gomock.Any(), int64(7)).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/7/reconciliation", nil, "")

		var response resdto.ReconciliationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Diverges)
		s.Equal("165.00", response.Stored)
		s.Equal("174.00", response.Recomputed)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockQueries.EXPECT().Reconcile(gomock.Any(), int64(99)).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/99/reconciliation", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestReconcileAll() {
	s.Run("success: returns one report per booking", func() {
		views := []*queries.ReconciliationView{
			{BookingID: 1, Reference: "HB-000001", Stored: decimal.RequireFromString("174.00"), Recomputed: decimal.RequireFromString("174.00"), Difference: decimal.Zero},
			{BookingID: 2, Reference: "HB-000002", Stored: decimal.RequireFromString("100.00"), Recomputed: decimal.RequireFromString("278.40"), Difference: decimal.RequireFromString("178.40"), Diverges: true},
		}
		s.mockQueries.EXPECT().ReconcileAll(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/reconciliation", nil, "")

		var response []resdto.ReconciliationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.False(response[0].Diverges)
		s.True(response[1].Diverges)
	})

	s.Run("error: 500 on read store failure", func() {
		s.mockQueries.EXPECT().ReconcileAll(gomock.Any()).
			Return(nil, errors.New("read store failure")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/reconciliation", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
