package response

import (
	"time"

	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	ServiceID    uuid.UUID `json:"serviceId"`
	ServiceTitle string    `json:"serviceTitle"`
	ClientID     uuid.UUID `json:"clientId"`
	ProviderID   uuid.UUID `json:"providerId"`
	SlotID       uuid.UUID `json:"slotId"`
	ScheduledAt  time.Time `json:"scheduledAt"`
	Status       string    `json:"status"`
	TotalCost    string    `json:"totalCost"`
	Note         *string   `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID           uuid.UUID `json:"id"`
	ServiceID    uuid.UUID `json:"serviceId"`
	ServiceTitle string    `json:"serviceTitle"`
	ScheduledAt  time.Time `json:"scheduledAt"`
	Status       string    `json:"status"`
	TotalCost    string    `json:"totalCost"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           rm.ID,
		ServiceID:    rm.ServiceID,
		ServiceTitle: rm.ServiceTitle,
		ClientID:     rm.ClientID,
		ProviderID:   rm.ProviderID,
		SlotID:       rm.SlotID,
		ScheduledAt:  rm.ScheduledAt,
		Status:       rm.Status,
		TotalCost:    rm.TotalCost.StringFixed(2),
		Note:         rm.Note,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:           rm.ID,
		ServiceID:    rm.ServiceID,
		ServiceTitle: rm.ServiceTitle,
		ScheduledAt:  rm.ScheduledAt,
		Status:       rm.Status,
		TotalCost:    rm.TotalCost.StringFixed(2),
		CreatedAt:    rm.CreatedAt,
	}
}
