package repository

//go:generate go run go.uber.org/mock/mockgen -source=./blocked_slot.go -destination=../mocks/blocked_slot_mock.go -package=mocks

import (
	"context"
	"trimly/infras/otel"
	"trimly/infras/postgres"
	"trimly/internal/domains/shop/model"
	gDto "trimly/shared/dto"
	gRepo "trimly/shared/repository"
)

type BlockedSlot interface {
	Insert(ctx context.Context, model model.BlockedSlot) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BlockedSlot, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BlockedSlot, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type blockedSlotRepositoryImpl struct {
	gRepo.Repository[model.BlockedSlot]
	db   *postgres.Connection
	otel otel.Otel
}

func NewBlockedSlot(db *postgres.Connection, otel otel.Otel) BlockedSlot {
	return &blockedSlotRepositoryImpl{
		Repository: gRepo.NewRepository[model.BlockedSlot](model.BlockedSlotEntityName, model.BlockedSlotTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
