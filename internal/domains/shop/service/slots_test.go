package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trimly/internal/domains/shop/model"
	"trimly/internal/domains/shop/service"
)

// 2026-09-07 is a Monday, 2026-09-06 a Sunday.
const (
	monday = "2026-09-07"
	sunday = "2026-09-06"
)

func gridShop() model.Shop {
	return model.Shop{
		ID:                  "shop-1",
		IsOpen:              true,
		Seats:               2,
		WorkDays:            "Mon,Tue,Wed,Thu,Fri,Sat",
		OpenTime:            "09:00",
		CloseTime:           "12:00",
		SlotDurationMinutes: 30,
	}
}

func TestBuildSlotGrid(t *testing.T) {
	t.Run("full grid on an open day", func(t *testing.T) {
		res := service.BuildSlotGrid(gridShop(), monday, nil, nil)

		assert.Equal(t, 6, res.TotalSlots)
		assert.Equal(t, 6, res.AvailableSlots)
		assert.Equal(t, "09:00", res.Slots[0].Time)
		assert.Equal(t, "11:30", res.Slots[5].Time)
		assert.Equal(t, 2, res.Slots[0].SeatsLeft)
	})

	t.Run("seats used reduce availability", func(t *testing.T) {
		used := map[string]int{"09:00": 1, "09:30": 2}

		res := service.BuildSlotGrid(gridShop(), monday, used, nil)

		assert.Equal(t, 1, res.Slots[0].SeatsLeft)
		assert.True(t, res.Slots[0].Available)
		assert.Equal(t, 0, res.Slots[1].SeatsLeft)
		assert.False(t, res.Slots[1].Available)
		assert.Equal(t, 5, res.AvailableSlots)
	})

	t.Run("overbooked slot clamps at zero", func(t *testing.T) {
		used := map[string]int{"09:00": 5}

		res := service.BuildSlotGrid(gridShop(), monday, used, nil)

		assert.Equal(t, 0, res.Slots[0].SeatsLeft)
	})

	t.Run("blocked slot is never available", func(t *testing.T) {
		blocked := map[string]bool{"10:00": true}

		res := service.BuildSlotGrid(gridShop(), monday, nil, blocked)

		assert.True(t, res.Slots[2].Blocked)
		assert.Equal(t, 0, res.Slots[2].SeatsLeft)
		assert.Equal(t, 5, res.AvailableSlots)
	})

	t.Run("closed day greys out every slot", func(t *testing.T) {
		res := service.BuildSlotGrid(gridShop(), sunday, nil, nil)

		assert.Equal(t, 6, res.TotalSlots)
		assert.Equal(t, 0, res.AvailableSlots)
	})

	t.Run("shop toggled closed greys out every slot", func(t *testing.T) {
		shop := gridShop()
		shop.IsOpen = false

		res := service.BuildSlotGrid(shop, monday, nil, nil)

		assert.Equal(t, 0, res.AvailableSlots)
	})

	t.Run("broken working hours yield an empty grid", func(t *testing.T) {
		shop := gridShop()
		shop.CloseTime = "08:00"

		res := service.BuildSlotGrid(shop, monday, nil, nil)

		assert.Empty(t, res.Slots)
	})
}

func TestSlotOpen(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
		mod  func(*model.Shop)
		want bool
	}{
		{name: "aligned slot inside hours", date: monday, time: "10:30", want: true},
		{name: "opening slot", date: monday, time: "09:00", want: true},
		{name: "last slot before close", date: monday, time: "11:30", want: true},
		{name: "closing time itself", date: monday, time: "12:00", want: false},
		{name: "before opening", date: monday, time: "08:30", want: false},
		{name: "off the grid", date: monday, time: "10:15", want: false},
		{name: "closed day", date: sunday, time: "10:00", want: false},
		{name: "garbage time", date: monday, time: "25:99", want: false},
		{
			name: "shop toggled closed",
			date: monday,
			time: "10:00",
			mod:  func(s *model.Shop) { s.IsOpen = false },
			want: false,
		},
		{
			name: "zero slot duration",
			date: monday,
			time: "10:00",
			mod:  func(s *model.Shop) { s.SlotDurationMinutes = 0 },
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shop := gridShop()
			if tt.mod != nil {
				tt.mod(&shop)
			}

			assert.Equal(t, tt.want, service.SlotOpen(shop, tt.date, tt.time))
		})
	}
}
