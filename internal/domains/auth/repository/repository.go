package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trimly/infras/otel"
	"trimly/infras/postgres"
	"trimly/internal/domains/auth/model"
	shopModel "trimly/internal/domains/shop/model"
	userModel "trimly/internal/domains/user/model"
	"trimly/shared/constant"
	gDto "trimly/shared/dto"
	"trimly/shared/logger"
	gRepo "trimly/shared/repository"
	"trimly/shared/timezone"
)

type RefreshToken interface {
	Insert(ctx context.Context, model model.RefreshToken) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RefreshToken, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteExpired(ctx context.Context) (int64, error)
	CreateBarber(ctx context.Context, user userModel.User, shop shopModel.Shop) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RefreshToken]
	userRepo gRepo.Repository[userModel.User]
	shopRepo gRepo.Repository[shopModel.Shop]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RefreshToken {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RefreshToken](model.EntityName, model.TableName, model.FieldID, db, otel),
		userRepo:   gRepo.NewRepository[userModel.User](userModel.EntityName, userModel.TableName, userModel.FieldID, db, otel),
		shopRepo:   gRepo.NewRepository[shopModel.Shop](shopModel.EntityName, shopModel.TableName, shopModel.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// DeleteExpired sweeps refresh tokens past their expiry.
func (repo *repositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".refresh_token.DeleteExpired")
	defer scope.End()

	query := `DELETE FROM refresh_tokens WHERE expires_at < $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.ExecContext(ctx, query, timezone.Now())
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return deleted, nil
}

// CreateBarber inserts the owner account and its pending shop in one
// transaction.
func (repo *repositoryImpl) CreateBarber(ctx context.Context, user userModel.User, shop shopModel.Shop) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".refresh_token.CreateBarber")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err = repo.userRepo.InsertTx(ctx, tx, user); err != nil {
		return err //nolint:wrapcheck
	}

	if err = repo.shopRepo.InsertTx(ctx, tx, shop); err != nil {
		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit barber registration: %w", err)
	}

	return nil
}
