package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ServiceID   uuid.UUID `json:"service_id" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Note        string    `json:"note,omitempty"`
}

func (r CreateReservationRequest) GetNote() string {
	return strings.TrimSpace(r.Note)
}

type RejectReservationRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type CancelReservationRequest struct {
	Reason string `json:"reason" binding:"required"`
}
