package model

import (
	"trimly/shared/model"
)

const (
	BlockedSlotTableName  = "blocked_slots"
	BlockedSlotEntityName = "blocked_slot"

	FieldBlockedSlotShopID = "shop_id"
	FieldBlockedSlotDate   = "slot_date"
	FieldBlockedSlotTime   = "slot_time"
)

type BlockedSlot struct {
	ID       string `db:"id"`
	ShopID   string `db:"shop_id"`
	SlotDate string `db:"slot_date"`
	SlotTime string `db:"slot_time"`
	model.Metadata
}
