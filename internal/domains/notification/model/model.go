package model

import (
	"trimly/shared/model"
)

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID     = "id"
	FieldUserID = "user_id"
	FieldIsRead = "is_read"
)

type Notification struct {
	ID     string `db:"id"`
	UserID string `db:"user_id"`
	Kind   string `db:"kind"`
	Title  string `db:"title"`
	Body   string `db:"body"`
	IsRead bool   `db:"is_read"`
	model.Metadata
}
