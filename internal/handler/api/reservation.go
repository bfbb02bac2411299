package api

import (
	"errors"
	"net/http"

	"courtbook/internal/domain/user"
	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, qs queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create reservation
// @Description Book a slot of a published service for a future date
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.Create(c.Request.Context(), commands.CreateReservationParams{
		ClientID:    userID,
		ServiceID:   req.ServiceID,
		ScheduledAt: req.ScheduledAt,
		Note:        req.GetNote(),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, commands.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Client not found",
			})
		case errors.Is(err, commands.ErrNotAClient), errors.Is(err, commands.ErrClientInactive):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account may not create reservations",
			})
		case errors.Is(err, commands.ErrServiceNotPublished):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Service is not accepting reservations",
			})
		case errors.Is(err, commands.ErrDateNotFuture):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Reservation date must be in the future",
			})
		case errors.Is(err, commands.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No capacity available for the requested time",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Get reservation
// @Description Get reservation by ID; visible to its client and provider only
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrViewNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, queries.ErrViewForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Reservation belongs to another user",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List own reservations
// @Description List reservations where the caller is the client or the provider
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	role, _ := middleware.GetUserRole(c)

	var (
		items []*queries.ReservationListItem
		err   error
	)
	if role == user.RoleProvider {
		items, err = h.queries.ListByProvider(c.Request.Context(), userID, 0)
	} else {
		items, err = h.queries.ListByClient(c.Request.Context(), userID, 0)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ReservationListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromReservationListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Confirm reservation
// @Description Provider accepts a pending reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/confirm [post]
func (h *ReservationHandler) ConfirmReservation(c *gin.Context) {
	h.transition(c, func(id, actorID uuid.UUID) error {
		return h.commands.Confirm(c.Request.Context(), id, actorID)
	})
}

// @Summary Reject reservation
// @Description Provider declines a pending reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RejectReservationRequest true "Rejection reason"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/reject [post]
func (h *ReservationHandler) RejectReservation(c *gin.Context) {
	var req reqdto.RejectReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	h.transition(c, func(id, actorID uuid.UUID) error {
		return h.commands.Reject(c.Request.Context(), id, actorID, req.Reason)
	})
}

// @Summary Cancel reservation
// @Description Client cancels a pending or confirmed reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CancelReservationRequest true "Cancellation reason"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	var req reqdto.CancelReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	h.transition(c, func(id, actorID uuid.UUID) error {
		return h.commands.Cancel(c.Request.Context(), id, actorID, req.Reason)
	})
}

// @Summary Finalize reservation
// @Description Provider marks a confirmed reservation delivered after its date
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/finalize [post]
func (h *ReservationHandler) FinalizeReservation(c *gin.Context) {
	h.transition(c, func(id, actorID uuid.UUID) error {
		return h.commands.Finalize(c.Request.Context(), id, actorID)
	})
}

func (h *ReservationHandler) transition(c *gin.Context, op func(id, actorID uuid.UUID) error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := op(id, userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Reservation belongs to another user",
			})
		case errors.Is(err, commands.ErrInvalidState):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation is not in an eligible state",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
