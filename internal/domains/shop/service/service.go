package service

import (
	"context"
	"fmt"
	"time"
	"trimly/config"
	"trimly/infras/otel"
	bookingRepo "trimly/internal/domains/booking/repository"
	"trimly/internal/domains/notification/dispatcher"
	"trimly/internal/domains/shop/model"
	"trimly/internal/domains/shop/model/dto"
	"trimly/internal/domains/shop/repository"
	"trimly/shared"
	"trimly/shared/cache"
	"trimly/shared/constant"
	gDto "trimly/shared/dto"
	"trimly/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetShop       = "shop:get"
	cacheGetAllShops   = "shop:gets"
	cacheCountShops    = "shop:count"
	cacheShopLocations = "shop:locations"
)

type Shop interface {
	GetPublicShops(ctx context.Context, params gDto.QueryParams, query, city, area string) (dto.GetShopsResponse, error)
	GetPublicShop(ctx context.Context, id string) (dto.ShopResponse, error)
	GetPublicShopBySlug(ctx context.Context, slug string) (dto.ShopResponse, error)
	GetSlots(ctx context.Context, shopID, date string) (dto.SlotAvailabilityResponse, error)
	GetLocations(ctx context.Context) (dto.LocationMetaResponse, error)

	GetOwnShop(ctx context.Context, ownerID string) (dto.ShopResponse, error)
	UpdateOwnShop(ctx context.Context, ownerID string, req dto.UpdateShopRequest) (dto.ShopResponse, error)
	AddService(ctx context.Context, ownerID string, req dto.CreateServiceRequest) (dto.ServiceResponse, error)
	UpdateService(ctx context.Context, ownerID, serviceID string, req dto.UpdateServiceRequest) error
	DeleteService(ctx context.Context, ownerID, serviceID string) error
	GetBlockedSlots(ctx context.Context, ownerID, date string) ([]dto.BlockedSlotResponse, error)
	BlockSlot(ctx context.Context, ownerID string, req dto.BlockSlotRequest) error
	UnblockSlot(ctx context.Context, ownerID, blockedSlotID string) error

	GetAllShops(ctx context.Context, params gDto.QueryParams, status string) (dto.GetShopsResponse, error)
	SetShopStatus(ctx context.Context, adminID, shopID string, req dto.UpdateShopStatusRequest) error
	SetCommission(ctx context.Context, adminID, shopID string, req dto.UpdateCommissionRequest) error
}

type serviceImpl struct {
	repo        repository.Shop
	serviceRepo repository.Service
	blockedRepo repository.BlockedSlot
	bookingRepo bookingRepo.Booking
	dispatcher  dispatcher.Dispatcher
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Shop,
	serviceRepo repository.Service,
	blockedRepo repository.BlockedSlot,
	bookingRepo bookingRepo.Booking,
	dispatcher dispatcher.Dispatcher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Shop {
	return &serviceImpl{
		repo:        repo,
		serviceRepo: serviceRepo,
		blockedRepo: blockedRepo,
		bookingRepo: bookingRepo,
		dispatcher:  dispatcher,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func activeFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    constant.ShopStatusActive,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) GetPublicShops(ctx context.Context, params gDto.QueryParams, query, city, area string) (res dto.GetShopsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPublicShops")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := activeFilter()

	if query != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldShopName,
			Operator: gDto.FilterOperatorLike,
			Value:    query,
			Table:    model.TableName,
		})
	}

	if city != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldCity,
			Operator: gDto.FilterOperatorEq,
			Value:    city,
			Table:    model.TableName,
		})
	}

	if area != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldArea,
			Operator: gDto.FilterOperatorEq,
			Value:    area,
			Table:    model.TableName,
		})
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllShops, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for shops")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count shops")

		return res, fmt.Errorf("failed to count shops: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get shops")

		return res, fmt.Errorf("failed to get shops: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save shops to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetPublicShop(ctx context.Context, id string) (dto.ShopResponse, error) {
	return s.getPublicShopBy(ctx, shared.FilterByID(id, model.FieldID, model.TableName), id)
}

func (s *serviceImpl) GetPublicShopBySlug(ctx context.Context, slug string) (dto.ShopResponse, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSlug,
				Operator: gDto.FilterOperatorEq,
				Value:    slug,
				Table:    model.TableName,
			},
		},
	}

	return s.getPublicShopBy(ctx, filter, slug)
}

func (s *serviceImpl) getPublicShopBy(ctx context.Context, filter gDto.FilterGroup, cacheSuffix string) (res dto.ShopResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPublicShop")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetShop, cacheSuffix)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for shop")

		return res, nil
	}

	shop, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get shop")

		return res, fmt.Errorf("failed to get shop: %w", err)
	}

	// Shops that are not live are invisible to the public surface.
	if shop.ID == constant.Empty || shop.Status != constant.ShopStatusActive {
		return res, failure.NotFound("shop not found") // nolint:wrapcheck
	}

	services, err := s.enabledServices(ctx, shop.ID)
	if err != nil {
		return res, err
	}

	res.FromModel(shop)
	res.Services = dto.ServiceResponsesFromModels(services)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save shop to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) enabledServices(ctx context.Context, shopID string) ([]model.Service, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldServiceShopID,
				Operator: gDto.FilterOperatorEq,
				Value:    shopID,
				Table:    model.ServiceTableName,
			},
			gDto.Filter{
				Field:    model.FieldServiceEnabled,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.ServiceTableName,
			},
		},
	}

	services, err := s.serviceRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get shop services")

		return nil, fmt.Errorf("failed to get shop services: %w", err)
	}

	return services, nil
}

func (s *serviceImpl) GetSlots(ctx context.Context, shopID, date string) (res dto.SlotAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = time.Parse(constant.DateOnlyFormat, date); err != nil {
		return res, failure.BadRequestFromString("invalid date, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	shop, err := s.repo.Get(ctx, shared.FilterByID(shopID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get shop")

		return res, fmt.Errorf("failed to get shop: %w", err)
	}

	if shop.ID == constant.Empty || shop.Status != constant.ShopStatusActive {
		return res, failure.NotFound("shop not found") // nolint:wrapcheck
	}

	seatsUsed, err := s.bookingRepo.SeatsUsedByDate(ctx, shop.ID, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to get seats used")

		return res, fmt.Errorf("failed to get seats used: %w", err)
	}

	blocked, err := s.blockedSlotSet(ctx, shop.ID, date)
	if err != nil {
		return res, err
	}

	return BuildSlotGrid(shop, date, seatsUsed, blocked), nil
}

func (s *serviceImpl) blockedSlotSet(ctx context.Context, shopID, date string) (map[string]bool, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBlockedSlotShopID,
				Operator: gDto.FilterOperatorEq,
				Value:    shopID,
				Table:    model.BlockedSlotTableName,
			},
			gDto.Filter{
				Field:    model.FieldBlockedSlotDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
				Table:    model.BlockedSlotTableName,
			},
		},
	}

	slots, err := s.blockedRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blocked slots")

		return nil, fmt.Errorf("failed to get blocked slots: %w", err)
	}

	blocked := make(map[string]bool, len(slots))
	for _, slot := range slots {
		blocked[slot.SlotTime] = true
	}

	return blocked, nil
}

func (s *serviceImpl) GetLocations(ctx context.Context) (res dto.LocationMetaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetLocations")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheShopLocations, &res)
	if err == nil {
		return res, nil
	}

	locations, err := s.repo.ActiveLocations(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get locations")

		return res, fmt.Errorf("failed to get locations: %w", err)
	}

	res.Areas = map[string][]string{}

	for _, location := range locations {
		if _, seen := res.Areas[location.City]; !seen {
			res.Cities = append(res.Cities, location.City)
		}

		if location.Area != "" {
			res.Areas[location.City] = append(res.Areas[location.City], location.Area)
		} else if _, seen := res.Areas[location.City]; !seen {
			res.Areas[location.City] = []string{}
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheShopLocations, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save locations to cache")
		}
	}()

	return res, nil
}

// getOwnedShop resolves the one shop belonging to an owner account.
func (s *serviceImpl) getOwnedShop(ctx context.Context, ownerID string) (model.Shop, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldOwnerID,
				Operator: gDto.FilterOperatorEq,
				Value:    ownerID,
				Table:    model.TableName,
			},
		},
	}

	shop, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get shop")

		return shop, fmt.Errorf("failed to get shop: %w", err)
	}

	if shop.ID == constant.Empty {
		return shop, failure.NotFound("shop not found") // nolint:wrapcheck
	}

	return shop, nil
}

func (s *serviceImpl) invalidateShopCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetShop)
		shared.InvalidateCaches(c, s.cache, cacheGetAllShops)
		shared.InvalidateCaches(c, s.cache, cacheCountShops)
		shared.InvalidateCaches(c, s.cache, cacheShopLocations)
	}()
}
