//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"courtbook/internal/domain/user"
	"courtbook/internal/handler/api"
	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"
	"courtbook/tests/common/httptest"
	"courtbook/tests/common/testutil"
	commandsmock "courtbook/tests/mock/commands"
	queriesmock "courtbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	actorID      uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleClient)
		c.Next()
	}

	s.router.POST("/reservations", authMiddleware, s.handler.CreateReservation)
	s.router.GET("/reservations", authMiddleware, s.handler.ListReservations)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.GetReservation)
	s.router.POST("/reservations/:id/confirm", authMiddleware, s.handler.ConfirmReservation)
	s.router.POST("/reservations/:id/reject", authMiddleware, s.handler.RejectReservation)
	s.router.POST("/reservations/:id/cancel", authMiddleware, s.handler.CancelReservation)
	s.router.POST("/reservations/:id/finalize", authMiddleware, s.handler.FinalizeReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) buildView(id uuid.UUID) *queries.ReservationView {
	note := "court A please"
	return &queries.ReservationView{
		ID:           id,
		ServiceID:    uuid.New(),
		ServiceTitle: "Indoor tennis court",
		ClientID:     s.actorID,
		ProviderID:   uuid.New(),
		SlotID:       uuid.New(),
		ScheduledAt:  time.Now().Add(5 * 24 * time.Hour),
		Status:       "pending",
		TotalCost:    decimal.NewFromInt(5000),
		Note:         &note,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	reqBody := reqdto.CreateReservationRequest{
		ServiceID:   uuid.New(),
		ScheduledAt: time.Now().Add(5 * 24 * time.Hour),
		Note:        "court A please",
	}
	newID := uuid.New()

	s.Run("success: returns 201 Created with the new id", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(newID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(newID, response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: service_id (required)", mutate: testutil.Field("service_id", nil)},
			{name: "missing field: scheduled_at (required)", mutate: testutil.Field("scheduled_at", nil)},
			{name: "malformed service_id", mutate: testutil.Field("service_id", "not-a-uuid")},
			{name: "malformed scheduled_at", mutate: testutil.Field("scheduled_at", "tomorrow")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
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
			expectedMsg    string
		}{
			{
				name:           "service not found",
				commandsError:  commands.ErrServiceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service not found",
			},
			{
				name:           "client not found",
				commandsError:  commands.ErrClientNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Client not found",
			},
			{
				name:           "actor is not a client",
				commandsError:  commands.ErrNotAClient,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Account may not create reservations",
			},
			{
				name:           "client suspended",
				commandsError:  commands.ErrClientInactive,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Account may not create reservations",
			},
			{
				name:           "service not published",
				commandsError:  commands.ErrServiceNotPublished,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Service is not accepting reservations",
			},
			{
				name:           "date not in the future",
				commandsError:  commands.ErrDateNotFuture,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Reservation date must be in the future",
			},
			{
				name:           "no slot capacity",
				commandsError:  commands.ErrSlotUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "No capacity available for the requested time",
			},
			{
				name:           "domain validation",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
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
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	s.Run("success: returns 200 OK with ReservationResponse", func() {
		view := s.buildView(reservationID)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, reservationID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reservationID, response.ID)
		s.Equal("pending", response.Status)
		s.Equal("5000.00", response.TotalCost)
		s.Equal(view.ServiceTitle, response.ServiceTitle)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: maps query errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				queriesError:   queries.ErrViewNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "belongs to someone else",
				queriesError:   queries.ErrViewForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Reservation belongs to another user",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, reservationID).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListReservations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListReservations() {
	url := "/reservations"

	items := []*queries.ReservationListItem{
		{ID: uuid.New(), ServiceTitle: "Court A", Status: "pending", TotalCost: decimal.NewFromInt(5000)},
		{ID: uuid.New(), ServiceTitle: "Court B", Status: "confirmed", TotalCost: decimal.NewFromInt(8000)},
	}

	s.Run("success: clients list their own reservations", func() {
		s.mockQueries.EXPECT().ListByClient(gomock.Any(), s.actorID, int32(0)).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("5000.00", response[0].TotalCost)
	})

	s.Run("success: providers list incoming reservations", func() {
		providerRouter := gin.New()
		providerAuthMiddleware := func(c *gin.Context) {
			c.Set("user_id", s.actorID)
			c.Set("user_role", user.RoleProvider)
			c.Next()
		}
		providerRouter.GET("/reservations", providerAuthMiddleware, s.handler.ListReservations)

		s.mockQueries.EXPECT().ListByProvider(gomock.Any(), s.actorID, int32(0)).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), providerRouter, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: returns 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().ListByClient(gomock.Any(), s.actorID, int32(0)).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *ReservationHandlerTestSuite) TestConfirmReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/confirm"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), reservationID, s.actorID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/invalid-uuid/confirm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				commandsError:  commands.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "belongs to another provider",
				commandsError:  commands.ErrForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Reservation belongs to another user",
			},
			{
				name:           "not in an eligible state",
				commandsError:  commands.ErrInvalidState,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Reservation is not in an eligible state",
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
				s.mockCommands.EXPECT().Confirm(gomock.Any(), reservationID, s.actorID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestRejectReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/reject"
	reqBody := reqdto.RejectReservationRequest{Reason: "court under repair"}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), reservationID, s.actorID, reqBody.Reason).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request when reason is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("reason", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/cancel"
	reqBody := reqdto.CancelReservationRequest{Reason: "schedule conflict"}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), reservationID, s.actorID, reqBody.Reason).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict when already finalized", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), reservationID, s.actorID, reqBody.Reason).
			Return(commands.ErrInvalidState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Reservation is not in an eligible state")
	})
}

func (s *ReservationHandlerTestSuite) TestFinalizeReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/finalize"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Finalize(gomock.Any(), reservationID, s.actorID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict before the service date", func() {
		s.mockCommands.EXPECT().Finalize(gomock.Any(), reservationID, s.actorID).
			Return(commands.ErrInvalidState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Reservation is not in an eligible state")
	})
}
