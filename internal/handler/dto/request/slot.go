package request

import (
	"time"
)

type SlotItem struct {
	StartAt  time.Time `json:"start_at" binding:"required"`
	EndAt    time.Time `json:"end_at" binding:"required"`
	Capacity int32     `json:"capacity" binding:"required,min=1"`
}

type AddSlotsRequest struct {
	Slots []SlotItem `json:"slots" binding:"required,min=1,dive"`
}
