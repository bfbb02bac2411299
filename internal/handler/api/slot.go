package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/handler/httperr"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	commands commands.SlotCommands
	queries  queries.SlotQueries
}

func NewSlotHandler(cmds commands.SlotCommands, qs queries.SlotQueries) *SlotHandler {
	return &SlotHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Publish slots
// @Description Provider publishes availability slots for an owned service
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.AddSlotsRequest true "Slots to publish"
// @Success 201 {object} resdto.AddSlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /services/{id}/slots [post]
func (h *SlotHandler) AddSlots(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user context missing"), "Unauthorized", nil)
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service id", nil)
		return
	}

	var req reqdto.AddSlotsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	params := make([]commands.SlotParams, len(req.Slots))
	for i, s := range req.Slots {
		params[i] = commands.SlotParams{
			StartAt:  s.StartAt,
			EndAt:    s.EndAt,
			Capacity: s.Capacity,
		}
	}

	ids, err := h.commands.AddSlots(c.Request.Context(), userID, serviceID, params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		case errors.Is(err, commands.ErrNotServiceProvider):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Service belongs to another provider", nil)
		case errors.Is(err, commands.ErrInvalidSlot):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Slot definition is invalid", nil)
		default:
			slog.Error("add slots failed", "error", err)
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.AddSlotsResponse{SlotIDs: ids})
}

// @Summary List slots
// @Description List a service's slots for one date
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Router /services/{id}/slots [get]
func (h *SlotHandler) ListSlots(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service id", nil)
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	views, err := h.queries.ListByService(c.Request.Context(), serviceID, date)
	if err != nil {
		slog.Error("list slots failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	response := make([]*resdto.SlotResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromSlotView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Check capacity
// @Description Probe whether a service can take a booking at the given time
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param at query string true "RFC 3339 timestamp"
// @Success 200 {object} resdto.CapacityResponse
// @Failure 400 {object} map[string]string
// @Router /services/{id}/capacity [get]
func (h *SlotHandler) CheckCapacity(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service id", nil)
		return
	}

	at, err := time.Parse(time.RFC3339, c.Query("at"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid timestamp, expected RFC 3339", nil)
		return
	}

	view, err := h.queries.CheckCapacity(c.Request.Context(), serviceID, at)
	if err != nil {
		slog.Error("check capacity failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCapacityView(view))
}
