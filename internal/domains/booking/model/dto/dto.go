package dto

import (
	"trimly/internal/domains/booking/model"
	"trimly/shared"
	gDto "trimly/shared/dto"
)

type CreateBookingRequest struct {
	ShopID     string   `json:"shop_id"     validate:"required"`
	ServiceIDs []string `json:"service_ids" validate:"required,min=1,dive,required"`
	Date       string   `json:"date"        validate:"required,len=10"`
	Time       string   `json:"time"        validate:"required,len=5"`
	Seats      int      `json:"seats"       validate:"required,min=1,max=10"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=255"`
}

type RejectBookingRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=255"`
}

type RescheduleRequest struct {
	Date   string `json:"date"   validate:"required,len=10"`
	Time   string `json:"time"   validate:"required,len=5"`
	Reason string `json:"reason" validate:"omitempty,max=255"`
}

type RespondRescheduleRequest struct {
	Accept *bool `json:"accept" validate:"required"`
}

type RateBookingRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"omitempty,max=500"`
}

type BookingResponse struct {
	ID               string   `json:"id"`
	ShopID           string   `json:"shop_id"`
	ShopName         string   `json:"shop_name"`
	ShopEmoji        string   `json:"shop_emoji"`
	CustomerName     string   `json:"customer_name"`
	CustomerPhone    string   `json:"customer_phone"`
	Services         string   `json:"services"`
	Date             string   `json:"date"`
	Time             string   `json:"time"`
	DurationMinutes  int      `json:"duration_minutes"`
	Seats            int      `json:"seats"`
	TotalAmount      float64  `json:"total_amount"`
	PlatformFee      *float64 `json:"platform_fee,omitempty"`
	BarberEarning    *float64 `json:"barber_earning,omitempty"`
	Status           string   `json:"status"`
	CancelReason     string   `json:"cancel_reason,omitempty"`
	Rating           *int     `json:"rating,omitempty"`
	Review           string   `json:"review,omitempty"`
	RescheduleDate   *string  `json:"reschedule_date,omitempty"`
	RescheduleTime   *string  `json:"reschedule_time,omitempty"`
	RescheduleReason *string  `json:"reschedule_reason,omitempty"`
	RescheduleStatus *string  `json:"reschedule_status,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.ShopID = model.ShopID
	r.ShopName = model.ShopName
	r.ShopEmoji = model.ShopEmoji
	r.CustomerName = model.CustomerName
	r.CustomerPhone = model.CustomerPhone
	r.Services = model.ServicesSnapshot
	r.Date = model.BookingDate
	r.Time = model.SlotTime
	r.DurationMinutes = model.DurationMinutes
	r.Seats = model.Seats
	r.TotalAmount = model.TotalAmount
	r.Status = model.Status
	r.CancelReason = model.CancelReason
	r.Rating = model.Rating
	r.Review = model.Review
	r.RescheduleDate = model.RescheduleDate
	r.RescheduleTime = model.RescheduleTime
	r.RescheduleReason = model.RescheduleReason
	r.RescheduleStatus = model.RescheduleStatus
	r.Metadata.FromModel(model.Metadata)
}

// FromModelWithFinancials includes the commission split that only
// owners and admins are allowed to see.
func (r *BookingResponse) FromModelWithFinancials(model model.Booking) {
	r.FromModel(model)
	r.PlatformFee = &model.PlatformFee
	r.BarberEarning = &model.BarberEarning
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int, withFinancials bool) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		if withFinancials {
			r.Bookings[i].FromModelWithFinancials(mod)
		} else {
			r.Bookings[i].FromModel(mod)
		}
	}
}

type BarberStatsResponse struct {
	TotalBookings  int     `json:"total_bookings"`
	Pending        int     `json:"pending"`
	Confirmed      int     `json:"confirmed"`
	Completed      int     `json:"completed"`
	Cancelled      int     `json:"cancelled"`
	TotalRevenue   float64 `json:"total_revenue"`
	PlatformFees   float64 `json:"platform_fees"`
	TotalEarnings  float64 `json:"total_earnings"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	AvgRating      float64 `json:"avg_rating"`
	TotalReviews   int     `json:"total_reviews"`
}

type AdminStatsResponse struct {
	TotalShops        int     `json:"total_shops"`
	ActiveShops       int     `json:"active_shops"`
	PendingShops      int     `json:"pending_shops"`
	TotalBookings     int     `json:"total_bookings"`
	CompletedBookings int     `json:"completed_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	PlatformFees      float64 `json:"platform_fees"`
}
