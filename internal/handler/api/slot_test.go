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
	commandsmock "courtbook/tests/mock/commands"
	queriesmock "courtbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSlotCommands
	mockQueries  *queriesmock.MockSlotQueries
	handler      *api.SlotHandler
	providerID   uuid.UUID
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSlotCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSlotQueries(s.mockCtrl)
	s.handler = api.NewSlotHandler(s.mockCommands, s.mockQueries)
	s.providerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.providerID)
		c.Set("user_role", user.RoleProvider)
		c.Next()
	}

	s.router.POST("/services/:id/slots", authMiddleware, s.handler.AddSlots)
	s.router.GET("/services/:id/slots", authMiddleware, s.handler.ListSlots)
	s.router.GET("/services/:id/capacity", authMiddleware, s.handler.CheckCapacity)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

// ================================================================================
// TestAddSlots
// ================================================================================

func (s *SlotHandlerTestSuite) TestAddSlots() {
	serviceID := uuid.New()
	url := "/services/" + serviceID.String() + "/slots"

	start := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	reqBody := reqdto.AddSlotsRequest{
		Slots: []reqdto.SlotItem{
			{StartAt: start, EndAt: start.Add(time.Hour), Capacity: 4},
			{StartAt: start.Add(time.Hour), EndAt: start.Add(2 * time.Hour), Capacity: 4},
		},
	}

	s.Run("success: returns 201 Created with the slot ids", func() {
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		s.mockCommands.EXPECT().AddSlots(gomock.Any(), s.providerID, serviceID, gomock.Len(2)).
			Return(ids, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.AddSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(ids, response.SlotIDs)
	})

	s.Run("error: 400 Bad Request on empty slot list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.AddSlotsRequest{Slots: []reqdto.SlotItem{}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
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
				name:           "not the owning provider",
				commandsError:  commands.ErrNotServiceProvider,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Service belongs to another provider",
			},
			{
				name:           "invalid slot definition",
				commandsError:  commands.ErrInvalidSlot,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Slot definition is invalid",
			},
			{
				name:           "internal error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AddSlots(gomock.Any(), s.providerID, serviceID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListSlots
// ================================================================================

func (s *SlotHandlerTestSuite) TestListSlots() {
	serviceID := uuid.New()
	url := "/services/" + serviceID.String() + "/slots?date=2026-03-06"

	s.Run("success: returns 200 OK with the day's slots", func() {
		date := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
		views := []*queries.SlotView{
			{
				ID:        uuid.New(),
				ServiceID: serviceID,
				SlotDate:  date,
				StartAt:   date.Add(10 * time.Hour),
				EndAt:     date.Add(11 * time.Hour),
				Total:     4,
				Remaining: 2,
				Active:    true,
			},
		}
		s.mockQueries.EXPECT().ListByService(gomock.Any(), serviceID, date).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("2026-03-06", response[0].SlotDate)
		s.Equal(int32(2), response[0].Remaining)
	})

	s.Run("error: 400 Bad Request on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/services/"+serviceID.String()+"/slots?date=03-06-2026", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})
}

// ================================================================================
// TestCheckCapacity
// ================================================================================

func (s *SlotHandlerTestSuite) TestCheckCapacity() {
	serviceID := uuid.New()
	at := time.Date(2026, 3, 6, 10, 30, 0, 0, time.UTC)
	url := "/services/" + serviceID.String() + "/capacity?at=" + at.Format(time.RFC3339)

	s.Run("success: reports availability without consuming capacity", func() {
		slotID := uuid.New()
		s.mockQueries.EXPECT().CheckCapacity(gomock.Any(), serviceID, at).
			Return(&queries.CapacityView{Available: true, SlotID: &slotID, Remaining: 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.CapacityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
		s.Equal(int32(2), response.Remaining)
	})

	s.Run("success: no covering slot means unavailable, not an error", func() {
		s.mockQueries.EXPECT().CheckCapacity(gomock.Any(), serviceID, at).
			Return(&queries.CapacityView{Available: false, Remaining: 0}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.CapacityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Available)
		s.Nil(response.SlotID)
	})

	s.Run("error: 400 Bad Request on malformed timestamp", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/services/"+serviceID.String()+"/capacity?at=tomorrow", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid timestamp")
	})
}
