package model

import (
	"trimly/shared/model"
)

const (
	ServiceTableName  = "shop_services"
	ServiceEntityName = "shop_service"

	FieldServiceShopID  = "shop_id"
	FieldServiceName    = "service_name"
	FieldServiceEnabled = "enabled"
)

type Service struct {
	ID              string  `db:"id"`
	ShopID          string  `db:"shop_id"`
	ServiceName     string  `db:"service_name"`
	Description     string  `db:"description"`
	Category        string  `db:"category"`
	Price           float64 `db:"price"`
	DurationMinutes int     `db:"duration_minutes"`
	Icon            string  `db:"icon"`
	Enabled         bool    `db:"enabled"`
	IsCombo         bool    `db:"is_combo"`
	model.Metadata
}
