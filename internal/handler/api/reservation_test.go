//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-core/internal/domain/invoice"
	"hotel-core/internal/domain/reservation"
	"hotel-core/internal/handler/api"
	resdto "hotel-core/internal/handler/dto/response"
	"hotel-core/internal/handler/httperr"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/usecase/commands"
	"hotel-core/internal/usecase/queries"
	"hotel-core/tests/common/builder"
	"hotel-core/tests/common/httptest"
	"hotel-core/tests/common/testutil"
	commandsmock "hotel-core/tests/mock/commands"
	queriesmock "hotel-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockReservationCommands
	mockQueries      *queriesmock.MockReservationQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	handler          *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries, s.mockAvailability)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Next()
	}

	group := s.router.Group("/api", authMiddleware)
	group.GET("/availability", s.handler.CheckAvailability)
	group.POST("/reservations", s.handler.CreateReservation)
	group.GET("/reservations/:id", s.handler.GetReservation)
	group.PATCH("/reservations/:id/dates", s.handler.ModifyDates)
	group.POST("/reservations/:id/check-in", s.handler.CheckIn)
	group.POST("/reservations/:id/check-out", s.handler.CheckOut)
	group.POST("/reservations/:id/cancel", s.handler.CancelReservation)
	group.GET("/clients/:id/reservations", s.handler.ListClientReservations)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseRequest struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

const token = "bearer-token"

// ================================================================================
// TestCheckAvailability
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCheckAvailability() {
	rm := builder.NewRoomBuilder().BuildView()

	s.Run("success: returns free rooms for the stay", func() {
		stay, err := reservation.ParseDateRange("2026-03-10", "2026-03-13")
		s.Require().NoError(err)
		s.mockAvailability.EXPECT().
			Check(gomock.Any(), queries.AvailabilityFilter{Stay: stay, Guests: 2}).
			Return(&queries.AvailabilityResult{Available: true, Rooms: []*queries.RoomView{rm}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/availability?checkIn=2026-03-10&checkOut=2026-03-13&guests=2", nil, token)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Available)
		s.Require().Len(body.Rooms, 1)
		s.Equal(rm.ID, body.Rooms[0].ID)
		s.Equal("100.00", body.Rooms[0].NightlyPrice)
	})

	s.Run("success: single room filter is forwarded", func() {
		s.mockAvailability.EXPECT().
			Check(gomock.Any(), gomock.Cond(func(f queries.AvailabilityFilter) bool {
				return f.RoomID != nil && *f.RoomID == rm.ID
			})).
			Return(&queries.AvailabilityResult{Available: false, Rooms: []*queries.RoomView{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/availability?checkIn=2026-03-10&checkOut=2026-03-13&roomId="+rm.ID.String(), nil, token)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Available)
		s.Empty(body.Rooms)
	})

	s.Run("error: 400 Bad Request on invalid query", func() {
		urls := map[string]string{
			"missing checkOut":     "/api/availability?checkIn=2026-03-10",
			"reversed range":       "/api/availability?checkIn=2026-03-13&checkOut=2026-03-10",
			"same day":             "/api/availability?checkIn=2026-03-10&checkOut=2026-03-10",
			"malformed date":       "/api/availability?checkIn=10/03/2026&checkOut=2026-03-13",
			"malformed room id":    "/api/availability?checkIn=2026-03-10&checkOut=2026-03-13&roomId=101",
			"negative guest count": "/api/availability?checkIn=2026-03-10&checkOut=2026-03-13&guests=-1",
		}
		for name, url := range urls {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION")
			})
		}
	})

	s.Run("error: 404 Not Found for unknown room", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/availability?checkIn=2026-03-10&checkOut=2026-03-13&roomId="+uuid.NewString(), nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "room not found")
	})
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/api/reservations"

	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	created := b.BuildDomain()

	s.Run("success: returns 201 Created with the reservation", func() {
		expected := commands.CreateReservationInput{
			ClientID: b.ClientID,
			RoomID:   b.RoomID,
			Stay:     b.Stay(),
		}
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), expected).
			Return(&commands.CreateReservationResult{Reservation: created}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, token)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.ID)
		s.Equal(created.Code(), body.Code)
		s.Equal("2026-03-10", body.CheckIn)
		s.Equal("2026-03-13", body.CheckOut)
		s.Equal(3, body.Nights)
		s.Equal("CONFIRMED", body.Status)
		s.Equal(int64(1), body.Version)
	})

	s.Run("success: Idempotency-Key header reaches the use case", func() {
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Cond(func(in commands.CreateReservationInput) bool {
				return in.IdempotencyKey != nil && *in.IdempotencyKey == "req-7f3a"
			})).
			Return(&commands.CreateReservationResult{Reservation: created}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, token,
			map[string]string{"Idempotency-Key": "  req-7f3a "})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: replayed request returns 200 OK", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(&commands.CreateReservationResult{Reservation: created, Replayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, token,
			map[string]string{"Idempotency-Key": "req-7f3a"})

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(created.ID(), body.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseRequest{
			{name: "missing field: clientId", mutate: testutil.Field("clientId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: roomId", mutate: testutil.Field("roomId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: checkIn", mutate: testutil.Field("checkIn", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: checkOut", mutate: testutil.Field("checkOut", nil), expectCode: http.StatusBadRequest},
			{name: "malformed clientId", mutate: testutil.Field("clientId", "client-1"), expectCode: http.StatusBadRequest},
			{name: "malformed date", mutate: testutil.Field("checkIn", "2026-02-30"), expectCode: http.StatusBadRequest},
			{name: "check-out before check-in", mutate: testutil.Field("checkOut", "2026-03-09"), expectCode: http.StatusBadRequest},
			{name: "zero nights", mutate: testutil.Field("checkOut", "2026-03-10"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, token)
				httptest.AssertErrorCode(s.T(), rec, tc.expectCode, "VALIDATION")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
			expectedMsg    string
		}{
			{
				name:           "room already booked",
				commandsError:  commands.ErrRoomUnavailable,
				expectedStatus: http.StatusConflict,
				expectedCode:   "CONFLICT",
				expectedMsg:    "room is already booked",
			},
			{
				name:           "idempotency key reused",
				commandsError:  commands.ErrIdempotencyKeyReused,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedCode:   "IDEMPOTENCY_CONFLICT",
				expectedMsg:    "different request",
			},
			{
				name:           "client not found",
				commandsError:  commands.ErrClientNotFound,
				expectedStatus: http.StatusNotFound,
				expectedCode:   "NOT_FOUND",
				expectedMsg:    "client not found",
			},
			{
				name:           "stay in the past",
				commandsError:  errs.AsValidation(reservation.ErrStayInPast),
				expectedStatus: http.StatusBadRequest,
				expectedCode:   "VALIDATION",
			},
			{
				name:           "lock wait exhausted",
				commandsError:  errs.AsRetryable(errors.New("lock timeout")),
				expectedStatus: http.StatusServiceUnavailable,
				expectedCode:   "RETRYABLE",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedCode:   "INTERNAL",
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, token)
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 503 advertises Retry-After", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(nil, errs.AsRetryable(errors.New("serialization failure"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, token)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Retry-After": httperr.RetryAfterSeconds})
	})
}

// ================================================================================
// TestGetReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	view := builder.NewReservationBuilder().BuildView()
	url := "/api/reservations/" + view.ID.String()

	s.Run("success: returns 200 OK with the joined view", func() {
		invoiceID := uuid.New()
		view.InvoiceID = &invoiceID
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("101", body.RoomNumber)
		s.Equal(3, body.Nights)
		s.Require().NotNil(body.InvoiceID)
		s.Equal(invoiceID, *body.InvoiceID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/invalid-uuid", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 404 Not Found for missing reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})
}

// ================================================================================
// TestListClientReservations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListClientReservations() {
	clientID := uuid.New()
	url := "/api/clients/" + clientID.String() + "/reservations"

	item := &queries.ReservationListItem{
		ID:         uuid.New(),
		Code:       "RSV-20260310-7F3A9C",
		RoomID:     uuid.New(),
		RoomNumber: "204",
		CheckIn:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Status:     "CONFIRMED",
		Version:    2,
		CreatedAt:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	s.Run("success: first page returns the next cursor", func() {
		next := &queries.Cursor{After: queries.EncodeAfterCursor(item.CreatedAt, item.ID)}
		s.mockQueries.EXPECT().ListByClient(gomock.Any(), clientID, (*queries.Cursor)(nil), 1).
			Return([]*queries.ReservationListItem{item}, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=1", nil, token)

		var body resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal("204", body.Items[0].RoomNumber)
		s.Require().NotNil(body.NextCursor)
		s.Equal(next.After, *body.NextCursor)
	})

	s.Run("success: cursor is forwarded and last page has no next cursor", func() {
		after := queries.EncodeAfterCursor(item.CreatedAt, item.ID)
		s.mockQueries.EXPECT().ListByClient(gomock.Any(), clientID, &queries.Cursor{After: after}, 0).
			Return([]*queries.ReservationListItem{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor="+after, nil, token)

		var body resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
		s.Nil(body.NextCursor)
	})

	s.Run("error: 400 Bad Request for invalid cursor", func() {
		s.mockQueries.EXPECT().ListByClient(gomock.Any(), clientID, gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor=garbage", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})

	s.Run("error: 400 Bad Request for negative limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=-5", nil, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION")
	})
}

// ================================================================================
// TestModifyDates
// ================================================================================

func (s *ReservationHandlerTestSuite) TestModifyDates() {
	b := builder.NewReservationBuilder()
	url := "/api/reservations/" + b.ID.String() + "/dates"
	reqBody := map[string]any{"version": 1, "checkOut": "2026-03-15"}

	s.Run("success: returns the moved reservation", func() {
		newOut := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		moved := builder.NewReservationBuilder().With(func(r *builder.ReservationBuilder) {
			r.ID = b.ID
			r.CheckOut = newOut
			r.Version = 2
		}).BuildDomain()

		s.mockCommands.EXPECT().
			ModifyDates(gomock.Any(), commands.ModifyDatesInput{ReservationID: b.ID, Version: 1, CheckOut: &newOut}).
			Return(moved, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, token)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2026-03-15", body.CheckOut)
		s.Equal(5, body.Nights)
		s.Equal(int64(2), body.Version)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseRequest{
			{name: "missing version", mutate: testutil.Field("version", nil), expectCode: http.StatusBadRequest},
			{name: "zero version", mutate: testutil.Field("version", 0), expectCode: http.StatusBadRequest},
			{name: "malformed date", mutate: testutil.Field("checkOut", "15-03-2026"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, requestMap, token)
				httptest.AssertErrorCode(s.T(), rec, tc.expectCode, "VALIDATION")
			})
		}
	})

	s.Run("error: 409 Conflict for a stale version", func() {
		s.mockCommands.EXPECT().ModifyDates(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrStaleVersion).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "CONCURRENCY_CONFLICT")
	})

	s.Run("error: 409 Conflict when the new dates overlap", func() {
		s.mockCommands.EXPECT().ModifyDates(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrRoomUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "CONFLICT")
	})
}

// ================================================================================
// TestCheckInCheckOut
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCheckIn() {
	b := builder.NewReservationBuilder()
	url := "/api/reservations/" + b.ID.String() + "/check-in"

	s.Run("success: metadata reaches the use case", func() {
		checkedIn := builder.NewReservationBuilder().With(func(r *builder.ReservationBuilder) {
			r.ID = b.ID
			r.Status = reservation.StatusInProgress
			r.Version = 2
		}).BuildDomain()

		s.mockCommands.EXPECT().
			CheckIn(gomock.Any(), gomock.Cond(func(in commands.TransitionInput) bool {
				return in.ReservationID == b.ID && in.Version == 1 && in.Metadata["keyCards"] == float64(2)
			})).
			Return(checkedIn, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"version": 1, "metadata": map[string]any{"keyCards": 2}}, token)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("IN_PROGRESS", body.Status)
	})

	s.Run("error: 409 Conflict when the reservation is not confirmed", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), gomock.Any()).
			Return(nil, errs.AsConflict(reservation.ErrInvalidTransition)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"version": 1}, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "CONFLICT")
	})

	s.Run("error: 400 Bad Request without version", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION")
	})
}

func (s *ReservationHandlerTestSuite) TestCheckOut() {
	b := builder.NewReservationBuilder()
	url := "/api/reservations/" + b.ID.String() + "/check-out"

	s.Run("success: returns the completed reservation and its invoice", func() {
		completed := builder.NewReservationBuilder().With(func(r *builder.ReservationBuilder) {
			r.ID = b.ID
			r.ClientID = b.ClientID
			r.Status = reservation.StatusCompleted
			r.Version = 3
		}).BuildDomain()
		rate, err := invoice.NewTaxRate(decimal.NewFromInt(21))
		s.Require().NoError(err)
		inv, err := invoice.Issue(invoice.IssueParams{
			ReservationID: b.ID,
			ClientID:      b.ClientID,
			NightlyPrice:  decimal.RequireFromString("100.00"),
			Nights:        3,
			TaxRate:       rate,
			IssuedAt:      time.Date(2026, 3, 13, 11, 0, 0, 0, time.UTC),
			GracePeriod:   30 * 24 * time.Hour,
		})
		s.Require().NoError(err)

		s.mockCommands.EXPECT().CheckOut(gomock.Any(), commands.TransitionInput{ReservationID: b.ID, Version: 2}).
			Return(&commands.CheckOutResult{Reservation: completed, Invoice: inv}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"version": 2}, token)

		var body resdto.CheckOutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Reservation)
		s.Require().NotNil(body.Invoice)
		s.Equal("COMPLETED", body.Reservation.Status)
		s.Equal(b.ID, body.Invoice.ReservationID)
		s.Equal("300.00", body.Invoice.Subtotal)
		s.Equal("63.00", body.Invoice.TaxAmount)
		s.Equal("363.00", body.Invoice.Total)
		s.Equal("363.00", body.Invoice.Outstanding)
		s.Equal("PENDING", body.Invoice.Status)
	})

	s.Run("error: 409 Conflict for a stale version", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrStaleVersion).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"version": 1}, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "CONCURRENCY_CONFLICT")
	})
}

// ================================================================================
// TestCancelReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	b := builder.NewReservationBuilder()
	url := "/api/reservations/" + b.ID.String() + "/cancel"
	reqBody := map[string]any{"version": 1, "reason": "guest changed plans"}

	s.Run("success: returns the cancelled reservation", func() {
		reason := "guest changed plans"
		cancelled := builder.NewReservationBuilder().With(func(r *builder.ReservationBuilder) {
			r.ID = b.ID
			r.Status = reservation.StatusCancelled
			r.Version = 2
		}).BuildDomain()

		s.mockCommands.EXPECT().
			CancelReservation(gomock.Any(), commands.CancelInput{ReservationID: b.ID, Version: 1, Reason: reason}).
			Return(cancelled, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, token)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CANCELLED", body.Status)
	})

	s.Run("error: 400 Bad Request without reason", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("reason", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION")
	})

	s.Run("error: 404 Not Found for missing reservation", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})
}
