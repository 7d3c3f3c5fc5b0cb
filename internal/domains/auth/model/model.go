package model

import (
	"time"
	"trimly/shared/model"
)

const (
	TableName  = "refresh_tokens"
	EntityName = "refresh_token"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldExpiresAt = "expires_at"
)

type RefreshToken struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	model.Metadata
}
