package model

import (
	"trimly/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldShopID           = "shop_id"
	FieldCustomerID       = "customer_id"
	FieldBookingDate      = "booking_date"
	FieldSlotTime         = "slot_time"
	FieldSeats            = "seats"
	FieldStatus           = "status"
	FieldCancelReason     = "cancel_reason"
	FieldRating           = "rating"
	FieldReview           = "review"
	FieldRescheduleDate   = "reschedule_date"
	FieldRescheduleTime   = "reschedule_time"
	FieldRescheduleReason = "reschedule_reason"
	FieldRescheduleStatus = "reschedule_status"
)

type Booking struct {
	ID               string  `db:"id"`
	ShopID           string  `db:"shop_id"`
	CustomerID       string  `db:"customer_id"`
	ServiceIDs       string  `db:"service_ids"`
	ServicesSnapshot string  `db:"services_snapshot"`
	BookingDate      string  `db:"booking_date"`
	SlotTime         string  `db:"slot_time"`
	DurationMinutes  int     `db:"duration_minutes"`
	Seats            int     `db:"seats"`
	TotalAmount      float64 `db:"total_amount"`
	PlatformFee      float64 `db:"platform_fee"`
	BarberEarning    float64 `db:"barber_earning"`
	Status           string  `db:"status"`
	CancelReason     string  `db:"cancel_reason"`
	Rating           *int    `db:"rating"`
	Review           string  `db:"review"`
	RescheduleDate   *string `db:"reschedule_date"`
	RescheduleTime   *string `db:"reschedule_time"`
	RescheduleReason *string `db:"reschedule_reason"`
	RescheduleStatus *string `db:"reschedule_status"`

	ShopName      string `db:"shop_name"      table:"shops"`
	ShopEmoji     string `db:"shop_emoji"     table:"shops" column:"emoji"`
	CustomerName  string `db:"customer_name"  table:"users" column:"full_name"`
	CustomerPhone string `db:"customer_phone" table:"users" column:"phone"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN shops ON shops.id = bookings.shop_id LEFT JOIN users ON users.id = bookings.customer_id"
}
