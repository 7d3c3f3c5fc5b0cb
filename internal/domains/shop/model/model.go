package model

import (
	"trimly/shared/model"
)

const (
	TableName  = "shops"
	EntityName = "shop"

	FieldID                = "id"
	FieldOwnerID           = "owner_id"
	FieldShopName          = "shop_name"
	FieldSlug              = "slug"
	FieldCity              = "city"
	FieldArea              = "area"
	FieldStatus            = "status"
	FieldIsOpen            = "is_open"
	FieldSeats             = "seats"
	FieldCommissionPercent = "commission_percent"
	FieldAvgRating         = "avg_rating"
	FieldTotalReviews      = "total_reviews"
	FieldTotalBookings     = "total_bookings"
	FieldMonthlyRevenue    = "monthly_revenue"
)

const (
	DefaultSeats               = 2
	DefaultCommissionPercent   = 10
	DefaultOpenTime            = "09:00"
	DefaultCloseTime           = "20:00"
	DefaultSlotDurationMinutes = 30
	DefaultWorkDays            = "Mon,Tue,Wed,Thu,Fri,Sat"
)

type Shop struct {
	ID                  string  `db:"id"`
	OwnerID             string  `db:"owner_id"`
	ShopName            string  `db:"shop_name"`
	Slug                string  `db:"slug"`
	Location            string  `db:"location"`
	City                string  `db:"city"`
	Area                string  `db:"area"`
	Bio                 string  `db:"bio"`
	Emoji               string  `db:"emoji"`
	Phone               string  `db:"phone"`
	Status              string  `db:"status"`
	IsOpen              bool    `db:"is_open"`
	Seats               int     `db:"seats"`
	CommissionPercent   float64 `db:"commission_percent"`
	WorkDays            string  `db:"work_days"`
	OpenTime            string  `db:"open_time"`
	CloseTime           string  `db:"close_time"`
	SlotDurationMinutes int     `db:"slot_duration_minutes"`
	AvgRating           float64 `db:"avg_rating"`
	TotalReviews        int     `db:"total_reviews"`
	TotalBookings       int     `db:"total_bookings"`
	MonthlyRevenue      float64 `db:"monthly_revenue"`
	model.Metadata
}
