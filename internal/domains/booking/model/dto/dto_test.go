package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trimly/internal/domains/booking/model"
	"trimly/internal/domains/booking/model/dto"
	"trimly/shared/constant"
)

func completedBookings() []model.Booking {
	return []model.Booking{
		{
			ID:            "booking-1",
			ShopID:        "shop-1",
			ShopName:      "Fade Factory",
			TotalAmount:   100,
			PlatformFee:   10,
			BarberEarning: 90,
			Status:        constant.BookingStatusCompleted,
		},
		{
			ID:            "booking-2",
			ShopID:        "shop-1",
			ShopName:      "Fade Factory",
			TotalAmount:   40,
			PlatformFee:   4,
			BarberEarning: 36,
			Status:        constant.BookingStatusConfirmed,
		},
	}
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	t.Run("customer view hides the commission split", func(t *testing.T) {
		var res dto.GetBookingsResponse

		res.FromModels(completedBookings(), 2, 10, false)

		require.Len(t, res.Bookings, 2)
		for _, booking := range res.Bookings {
			assert.Nil(t, booking.PlatformFee)
			assert.Nil(t, booking.BarberEarning)
		}

		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, 1, res.TotalPage)
		assert.InDelta(t, 100, res.Bookings[0].TotalAmount, 0.001)
	})

	t.Run("owner view carries the commission split", func(t *testing.T) {
		var res dto.GetBookingsResponse

		res.FromModels(completedBookings(), 2, 10, true)

		require.Len(t, res.Bookings, 2)
		require.NotNil(t, res.Bookings[0].PlatformFee)
		require.NotNil(t, res.Bookings[0].BarberEarning)

		assert.InDelta(t, 10, *res.Bookings[0].PlatformFee, 0.001)
		assert.InDelta(t, 90, *res.Bookings[0].BarberEarning, 0.001)
		assert.InDelta(t, 4, *res.Bookings[1].PlatformFee, 0.001)
		assert.InDelta(t, 36, *res.Bookings[1].BarberEarning, 0.001)
	})
}
