package dto

import (
	gModel "trimly/shared/model"
	"trimly/shared/timezone"

	"trimly/internal/domains/shop/model"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	ServiceName     string  `json:"service_name"     validate:"required,max=100"`
	Description     string  `json:"description"      validate:"omitempty,max=500"`
	Category        string  `json:"category"         validate:"omitempty,max=50"`
	Price           float64 `json:"price"            validate:"required,gt=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=5,max=480"`
	Icon            string  `json:"icon"             validate:"omitempty,max=10"`
	IsCombo         bool    `json:"is_combo"         validate:"omitempty"`
}

func (c *CreateServiceRequest) ToModel(shopID, user string) model.Service {
	return model.Service{
		ID:              uuid.NewString(),
		ShopID:          shopID,
		ServiceName:     c.ServiceName,
		Description:     c.Description,
		Category:        c.Category,
		Price:           c.Price,
		DurationMinutes: c.DurationMinutes,
		Icon:            c.Icon,
		Enabled:         true,
		IsCombo:         c.IsCombo,
		Metadata:        gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateServiceRequest struct {
	ServiceName     string  `db:"service_name"     json:"service_name"     validate:"omitempty,max=100"`
	Description     string  `db:"description"      json:"description"      validate:"omitempty,max=500"`
	Category        string  `db:"category"         json:"category"         validate:"omitempty,max=50"`
	Price           float64 `db:"price"            json:"price"            validate:"omitempty,gt=0"`
	DurationMinutes int     `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,min=5,max=480"`
	Icon            string  `db:"icon"             json:"icon"             validate:"omitempty,max=10"`
	Enabled         *bool   `db:"enabled"          json:"enabled"          validate:"omitempty"`
}

type ServiceResponse struct {
	ID              string  `json:"id"`
	ShopID          string  `json:"shop_id"`
	ServiceName     string  `json:"service_name"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Icon            string  `json:"icon"`
	Enabled         bool    `json:"enabled"`
	IsCombo         bool    `json:"is_combo"`
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.ShopID = model.ShopID
	r.ServiceName = model.ServiceName
	r.Description = model.Description
	r.Category = model.Category
	r.Price = model.Price
	r.DurationMinutes = model.DurationMinutes
	r.Icon = model.Icon
	r.Enabled = model.Enabled
	r.IsCombo = model.IsCombo
}

func ServiceResponsesFromModels(models []model.Service) []ServiceResponse {
	responses := make([]ServiceResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
