package api

import (
	"errors"
	"net/http"

	"courtbook/internal/domain/payment"
	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	commands commands.PaymentCommands
	queries  queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, qs queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Submit payment
// @Description Pay for a pending reservation; approval confirms it atomically
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitPaymentRequest true "Payment request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) SubmitPayment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SubmitPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	method := payment.Method(req.Method)
	if !method.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown payment method",
		})
		return
	}

	id, err := h.commands.Submit(c.Request.Context(), commands.SubmitPaymentParams{
		ReservationID: req.ReservationID,
		ClientID:      userID,
		Method:        method,
		Details:       req.ToDetails(),
	})
	if err != nil {
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
				"error": "Reservation is not awaiting payment",
			})
		case errors.Is(err, commands.ErrDuplicatePayment):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation already has a payment",
			})
		case errors.Is(err, commands.ErrPaymentInvalid):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Payment details are incomplete for the chosen method",
			})
		case errors.Is(err, commands.ErrPaymentDeclined):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Payment was declined",
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

// @Summary Refund payment
// @Description Mark an approved payment refunded, approving any pending refund request
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payments/{id}/refund [post]
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment ID format",
		})
		return
	}

	if err := h.commands.Refund(c.Request.Context(), id, reviewerID); err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment not found",
			})
		case errors.Is(err, commands.ErrAlreadyRefunded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payment has already been refunded",
			})
		case errors.Is(err, commands.ErrPaymentNotApproved):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payment is not in an approved state",
			})
		case errors.Is(err, commands.ErrRefundDecided):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Refund request has already been decided",
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

// @Summary Reject refund request
// @Description Decline the pending refund request for a payment's reservation
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Param request body reqdto.RejectRefundRequest true "Review notes"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payments/{id}/refund/reject [post]
func (h *PaymentHandler) RejectRefund(c *gin.Context) {
	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment ID format",
		})
		return
	}

	var req reqdto.RejectRefundRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.commands.RejectRefund(c.Request.Context(), id, reviewerID, req.Notes); err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment not found",
			})
		case errors.Is(err, commands.ErrRefundNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Refund request not found",
			})
		case errors.Is(err, commands.ErrRefundDecided):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Refund request has already been decided",
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

// @Summary Issue receipt
// @Description Issue (or re-fetch) the receipt for an approved payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.ReceiptResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payments/{id}/receipt [post]
func (h *PaymentHandler) IssueReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment ID format",
		})
		return
	}

	receipt, err := h.commands.IssueReceipt(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment not found",
			})
		case errors.Is(err, commands.ErrPaymentNotApproved):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Receipts exist only for approved payments",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReceiptSnapshot(receipt))
}

// @Summary Get payment for reservation
// @Description Fetch the payment attached to a reservation
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/payment [get]
func (h *PaymentHandler) GetReservationPayment(c *gin.Context) {
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

	view, err := h.queries.GetByReservation(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrViewNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment not found",
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

	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}

// @Summary Get refund request for reservation
// @Description Fetch the refund request attached to a reservation
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.RefundResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/refund [get]
func (h *PaymentHandler) GetReservationRefund(c *gin.Context) {
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

	view, err := h.queries.GetRefundByReservation(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrViewNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Refund request not found",
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

	c.JSON(http.StatusOK, resdto.FromRefundView(view))
}
