package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trimly/infras/otel"
	"trimly/infras/postgres"
	"trimly/internal/domains/shop/model"
	"trimly/shared/constant"
	gDto "trimly/shared/dto"
	"trimly/shared/logger"
	gRepo "trimly/shared/repository"
)

type Shop interface {
	Insert(ctx context.Context, model model.Shop) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Shop, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Shop, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	ActiveLocations(ctx context.Context) ([]Location, error)
}

// Location is a distinct (city, area) pair of the active shops.
type Location struct {
	City string `db:"city"`
	Area string `db:"area"`
}

type repositoryImpl struct {
	gRepo.Repository[model.Shop]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Shop {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Shop](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) ActiveLocations(ctx context.Context) ([]Location, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".shop.ActiveLocations")
	defer scope.End()

	query := `SELECT DISTINCT city, area FROM shops WHERE status = $1 AND city != '' ORDER BY city, area`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var locations []Location

	err := repo.db.Read.SelectContext(ctx, &locations, query, constant.ShopStatusActive)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get active locations: %w", err)
	}

	return locations, nil
}
