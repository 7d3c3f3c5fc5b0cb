package dto

import (
	"trimly/internal/domains/shop/model"
	"trimly/shared"
	gDto "trimly/shared/dto"
)

type ShopResponse struct {
	ID                  string            `json:"id"`
	ShopName            string            `json:"shop_name"`
	Slug                string            `json:"slug"`
	Location            string            `json:"location"`
	City                string            `json:"city"`
	Area                string            `json:"area"`
	Bio                 string            `json:"bio"`
	Emoji               string            `json:"emoji"`
	Phone               string            `json:"phone"`
	Status              string            `json:"status"`
	IsOpen              bool              `json:"is_open"`
	Seats               int               `json:"seats"`
	WorkDays            string            `json:"work_days"`
	OpenTime            string            `json:"open_time"`
	CloseTime           string            `json:"close_time"`
	SlotDurationMinutes int               `json:"slot_duration_minutes"`
	AvgRating           float64           `json:"avg_rating"`
	TotalReviews        int               `json:"total_reviews"`
	TotalBookings       int               `json:"total_bookings"`
	CommissionPercent   *float64          `json:"commission_percent,omitempty"`
	MonthlyRevenue      *float64          `json:"monthly_revenue,omitempty"`
	Services            []ServiceResponse `json:"services,omitempty"`
	gDto.Metadata
}

func (r *ShopResponse) FromModel(model model.Shop) {
	r.ID = model.ID
	r.ShopName = model.ShopName
	r.Slug = model.Slug
	r.Location = model.Location
	r.City = model.City
	r.Area = model.Area
	r.Bio = model.Bio
	r.Emoji = model.Emoji
	r.Phone = model.Phone
	r.Status = model.Status
	r.IsOpen = model.IsOpen
	r.Seats = model.Seats
	r.WorkDays = model.WorkDays
	r.OpenTime = model.OpenTime
	r.CloseTime = model.CloseTime
	r.SlotDurationMinutes = model.SlotDurationMinutes
	r.AvgRating = model.AvgRating
	r.TotalReviews = model.TotalReviews
	r.TotalBookings = model.TotalBookings
	r.Metadata.FromModel(model.Metadata)
}

// FromModelWithFinancials includes the commission fields that only
// owners and admins are allowed to see.
func (r *ShopResponse) FromModelWithFinancials(model model.Shop) {
	r.FromModel(model)
	r.CommissionPercent = &model.CommissionPercent
	r.MonthlyRevenue = &model.MonthlyRevenue
}

type GetShopsResponse struct {
	Shops     []ShopResponse `json:"shops"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetShopsResponse) FromModels(models []model.Shop, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Shops = make([]ShopResponse, len(models))
	for i, mod := range models {
		r.Shops[i].FromModel(mod)
	}
}

func (r *GetShopsResponse) FromModelsWithFinancials(models []model.Shop, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Shops = make([]ShopResponse, len(models))
	for i, mod := range models {
		r.Shops[i].FromModelWithFinancials(mod)
	}
}

type UpdateShopRequest struct {
	ShopName            string `db:"shop_name"             json:"shop_name"             validate:"omitempty,max=100"`
	Location            string `db:"location"              json:"location"              validate:"omitempty,max=255"`
	City                string `db:"city"                  json:"city"                  validate:"omitempty,max=100"`
	Area                string `db:"area"                  json:"area"                  validate:"omitempty,max=100"`
	Bio                 string `db:"bio"                   json:"bio"                   validate:"omitempty,max=500"`
	Emoji               string `db:"emoji"                 json:"emoji"                 validate:"omitempty,max=10"`
	Phone               string `db:"phone"                 json:"phone"                 validate:"omitempty,max=20"`
	IsOpen              *bool  `db:"is_open"               json:"is_open"               validate:"omitempty"`
	Seats               int    `db:"seats"                 json:"seats"                 validate:"omitempty,min=1,max=50"`
	WorkDays            string `db:"work_days"             json:"work_days"             validate:"omitempty,max=100"`
	OpenTime            string `db:"open_time"             json:"open_time"             validate:"omitempty,len=5"`
	CloseTime           string `db:"close_time"            json:"close_time"            validate:"omitempty,len=5"`
	SlotDurationMinutes int    `db:"slot_duration_minutes" json:"slot_duration_minutes" validate:"omitempty,min=10,max=240"`
}

type UpdateShopStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING ACTIVE DISABLED"`
}

type UpdateCommissionRequest struct {
	CommissionPercent *float64 `json:"commission_percent" validate:"required,min=0,max=50"`
}

type LocationMetaResponse struct {
	Cities []string            `json:"cities"`
	Areas  map[string][]string `json:"areas"`
}
