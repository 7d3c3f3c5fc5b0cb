package service

import (
	"strings"
	"time"
	"trimly/internal/domains/shop/model"
	"trimly/internal/domains/shop/model/dto"
	"trimly/shared/constant"
)

// BuildSlotGrid walks the shop working hours in slot-duration steps and
// marks each slot with its seat accounting. Blocked slots and closed
// days surface with zero seats left so clients can grey them out.
func BuildSlotGrid(shop model.Shop, date string, seatsUsed map[string]int, blocked map[string]bool) dto.SlotAvailabilityResponse {
	res := dto.SlotAvailabilityResponse{
		ShopID: shop.ID,
		Date:   date,
		Slots:  []dto.SlotResponse{},
	}

	openTime, err := time.Parse(constant.TimeOnlyFormat, shop.OpenTime)
	if err != nil {
		return res
	}

	closeTime, err := time.Parse(constant.TimeOnlyFormat, shop.CloseTime)
	if err != nil || !closeTime.After(openTime) {
		return res
	}

	step := time.Duration(shop.SlotDurationMinutes) * time.Minute
	if step <= 0 {
		return res
	}

	dayOpen := shop.IsOpen && isWorkDay(shop.WorkDays, date)

	for slot := openTime; slot.Before(closeTime); slot = slot.Add(step) {
		slotTime := slot.Format(constant.TimeOnlyFormat)

		used := seatsUsed[slotTime]

		left := shop.Seats - used
		if left < 0 {
			left = 0
		}

		isBlocked := blocked[slotTime]
		if isBlocked || !dayOpen {
			left = 0
		}

		slotRes := dto.SlotResponse{
			Time:       slotTime,
			Label:      slot.Format("3:04 PM"),
			SeatsTotal: shop.Seats,
			SeatsUsed:  used,
			SeatsLeft:  left,
			Blocked:    isBlocked,
			Available:  left > 0,
		}

		if slotRes.Available {
			res.AvailableSlots++
		}

		res.Slots = append(res.Slots, slotRes)
	}

	res.TotalSlots = len(res.Slots)

	return res
}

// SlotOpen reports whether slotTime lands on a bookable grid instant of
// the shop working hours on the given date. Blocked slots and seat
// capacity are checked separately.
func SlotOpen(shop model.Shop, date, slotTime string) bool {
	if !shop.IsOpen || !isWorkDay(shop.WorkDays, date) {
		return false
	}

	openTime, err := time.Parse(constant.TimeOnlyFormat, shop.OpenTime)
	if err != nil {
		return false
	}

	closeTime, err := time.Parse(constant.TimeOnlyFormat, shop.CloseTime)
	if err != nil {
		return false
	}

	slot, err := time.Parse(constant.TimeOnlyFormat, slotTime)
	if err != nil {
		return false
	}

	if slot.Before(openTime) || !slot.Before(closeTime) {
		return false
	}

	if shop.SlotDurationMinutes <= 0 {
		return false
	}

	offset := int(slot.Sub(openTime).Minutes())

	return offset%shop.SlotDurationMinutes == 0
}

func isWorkDay(workDays, date string) bool {
	day, err := time.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		return false
	}

	short := day.Weekday().String()[:3]

	for _, workDay := range strings.Split(workDays, ",") {
		if strings.EqualFold(strings.TrimSpace(workDay), short) {
			return true
		}
	}

	return false
}
