package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"trimly/infras/otel"
	"trimly/infras/postgres"
	"trimly/internal/domains/user/model"
	gDto "trimly/shared/dto"
	gRepo "trimly/shared/repository"

	"github.com/jmoiron/sqlx"
)

// User narrows the generic repository to what the account flows need.
// InsertTx exists so registration can create the user and its first
// refresh token in one transaction.
type User interface {
	Insert(ctx context.Context, model model.User) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type userRepository struct {
	gRepo.Repository[model.User]
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &userRepository{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
