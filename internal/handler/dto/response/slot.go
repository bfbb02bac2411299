package response

import (
	"time"

	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID        uuid.UUID `json:"id"`
	ServiceID uuid.UUID `json:"serviceId"`
	SlotDate  string    `json:"slotDate"`
	StartAt   time.Time `json:"startAt"`
	EndAt     time.Time `json:"endAt"`
	Total     int32     `json:"totalCapacity"`
	Remaining int32     `json:"remainingCapacity"`
	Active    bool      `json:"active"`
}

type CapacityResponse struct {
	Available bool       `json:"available"`
	SlotID    *uuid.UUID `json:"slotId,omitempty"`
	Remaining int32      `json:"remainingCapacity"`
}

type AddSlotsResponse struct {
	SlotIDs []uuid.UUID `json:"slotIds"`
}

func FromSlotView(rm *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:        rm.ID,
		ServiceID: rm.ServiceID,
		SlotDate:  rm.SlotDate.Format("2006-01-02"),
		StartAt:   rm.StartAt,
		EndAt:     rm.EndAt,
		Total:     rm.Total,
		Remaining: rm.Remaining,
		Active:    rm.Active,
	}
}

func FromCapacityView(rm *queries.CapacityView) *CapacityResponse {
	return &CapacityResponse{
		Available: rm.Available,
		SlotID:    rm.SlotID,
		Remaining: rm.Remaining,
	}
}
