package dto

import (
	gModel "trimly/shared/model"
	"trimly/shared/timezone"

	"trimly/internal/domains/shop/model"

	"github.com/google/uuid"
)

type SlotResponse struct {
	Time       string `json:"time"`
	Label      string `json:"label"`
	SeatsTotal int    `json:"seats_total"`
	SeatsUsed  int    `json:"seats_used"`
	SeatsLeft  int    `json:"seats_left"`
	Blocked    bool   `json:"blocked"`
	Available  bool   `json:"available"`
}

type SlotAvailabilityResponse struct {
	ShopID         string         `json:"shop_id"`
	Date           string         `json:"date"`
	Slots          []SlotResponse `json:"slots"`
	TotalSlots     int            `json:"total_slots"`
	AvailableSlots int            `json:"available_slots"`
}

type BlockSlotRequest struct {
	Date string `json:"date" validate:"required,len=10"`
	Time string `json:"time" validate:"required,len=5"`
}

func (c *BlockSlotRequest) ToModel(shopID, user string) model.BlockedSlot {
	return model.BlockedSlot{
		ID:       uuid.NewString(),
		ShopID:   shopID,
		SlotDate: c.Date,
		SlotTime: c.Time,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}
}

type BlockedSlotResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Time string `json:"time"`
}

func (r *BlockedSlotResponse) FromModel(model model.BlockedSlot) {
	r.ID = model.ID
	r.Date = model.SlotDate
	r.Time = model.SlotTime
}
