package service

import (
	"context"
	"fmt"
	"time"
	"trimly/internal/domains/shop/model"
	"trimly/internal/domains/shop/model/dto"
	"trimly/shared"
	"trimly/shared/constant"
	gDto "trimly/shared/dto"
	"trimly/shared/failure"

	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) GetOwnShop(ctx context.Context, ownerID string) (res dto.ShopResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOwnShop")
	defer scope.End()
	defer scope.TraceIfError(err)

	shop, err := s.getOwnedShop(ctx, ownerID)
	if err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldServiceShopID,
				Operator: gDto.FilterOperatorEq,
				Value:    shop.ID,
				Table:    model.ServiceTableName,
			},
		},
	}

	services, err := s.serviceRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get shop services")

		return res, fmt.Errorf("failed to get shop services: %w", err)
	}

	res.FromModelWithFinancials(shop)
	res.Services = dto.ServiceResponsesFromModels(services)

	return res, nil
}

func (s *serviceImpl) UpdateOwnShop(ctx context.Context, ownerID string, req dto.UpdateShopRequest) (res dto.ShopResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateOwnShop")
	defer scope.End()
	defer scope.TraceIfError(err)

	shop, err := s.getOwnedShop(ctx, ownerID)
	if err != nil {
		return res, err
	}

	openTime := shop.OpenTime
	if req.OpenTime != "" {
		openTime = req.OpenTime
	}

	closeTime := shop.CloseTime
	if req.CloseTime != "" {
		closeTime = req.CloseTime
	}

	if err = validateWorkingHours(openTime, closeTime); err != nil {
		return res, err
	}

	filter := shared.FilterByID(shop.ID, model.FieldID, model.TableName)

	updatedFields := shared.TransformFields(req, ownerID)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update shop")

		return res, fmt.Errorf("failed to update shop: %w", err)
	}

	s.invalidateShopCaches(ctx)

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get shop")

		return res, fmt.Errorf("failed to get shop: %w", err)
	}

	res.FromModelWithFinancials(updated)

	return res, nil
}

func validateWorkingHours(openTime, closeTime string) error {
	open, err := time.Parse(constant.TimeOnlyFormat, openTime)
	if err != nil {
		return failure.BadRequestFromString("invalid open_time, expected HH:MM") // nolint:wrapcheck
	}

	closing, err := time.Parse(constant.TimeOnlyFormat, closeTime)
	if err != nil {
		return failure.BadRequestFromString("invalid close_time, expected HH:MM") // nolint:wrapcheck
	}

	if !closing.After(open) {
		return failure.BadRequestFromString("close_time must be after open_time") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) AddService(ctx context.Context, ownerID string, req dto.CreateServiceRequest) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddService")
	defer scope.End()
	defer scope.TraceIfError(err)

	shop, err := s.getOwnedShop(ctx, ownerID)
	if err != nil {
		return res, err
	}

	service := req.ToModel(shop.ID, ownerID)

	if err = s.serviceRepo.Insert(ctx, service); err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return res, fmt.Errorf("failed to create service: %w", err)
	}

	s.invalidateShopCaches(ctx)

	res.FromModel(service)

	return res, nil
}

// getOwnedService resolves a service and checks it belongs to the
// owner's shop before any mutation.
func (s *serviceImpl) getOwnedService(ctx context.Context, ownerID, serviceID string) (model.Service, error) {
	shop, err := s.getOwnedShop(ctx, ownerID)
	if err != nil {
		return model.Service{}, err
	}

	service, err := s.serviceRepo.Get(ctx, shared.FilterByID(serviceID, model.FieldID, model.ServiceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return service, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == constant.Empty || service.ShopID != shop.ID {
		return service, failure.NotFound("service not found") // nolint:wrapcheck
	}

	return service, nil
}

func (s *serviceImpl) UpdateService(ctx context.Context, ownerID, serviceID string, req dto.UpdateServiceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateService")
	defer scope.End()
	defer scope.TraceIfError(err)

	service, err := s.getOwnedService(ctx, ownerID, serviceID)
	if err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, ownerID)
	if err = s.serviceRepo.Update(ctx, updatedFields, shared.FilterByID(service.ID, model.FieldID, model.ServiceTableName)); err != nil {
		log.Error().Err(err).Msg("failed to update service")

		return fmt.Errorf("failed to update service: %w", err)
	}

	s.invalidateShopCaches(ctx)

	return nil
}

func (s *serviceImpl) DeleteService(ctx context.Context, ownerID, serviceID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteService")
	defer scope.End()
	defer scope.TraceIfError(err)

	service, err := s.getOwnedService(ctx, ownerID, serviceID)
	if err != nil {
		return err
	}

	if err = s.serviceRepo.Delete(ctx, shared.FilterByID(service.ID, model.FieldID, model.ServiceTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete service")

		return fmt.Errorf("failed to delete service: %w", err)
	}

	s.invalidateShopCaches(ctx)

	return nil
}

func (s *serviceImpl) GetBlockedSlots(ctx context.Context, ownerID, date string) (res []dto.BlockedSlotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBlockedSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	shop, err := s.getOwnedShop(ctx, ownerID)
	if err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBlockedSlotShopID,
				Operator: gDto.FilterOperatorEq,
				Value:    shop.ID,
				Table:    model.BlockedSlotTableName,
			},
		},
	}

	if date != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldBlockedSlotDate,
			Operator: gDto.FilterOperatorEq,
			Value:    date,
			Table:    model.BlockedSlotTableName,
		})
	}

	slots, err := s.blockedRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blocked slots")

		return res, fmt.Errorf("failed to get blocked slots: %w", err)
	}

	res = make([]dto.BlockedSlotResponse, len(slots))
	for i, slot := range slots {
		res[i].FromModel(slot)
	}

	return res, nil
}

func (s *serviceImpl) BlockSlot(ctx context.Context, ownerID string, req dto.BlockSlotRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BlockSlot")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = time.Parse(constant.DateOnlyFormat, req.Date); err != nil {
		return failure.BadRequestFromString("invalid date, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	if _, err = time.Parse(constant.TimeOnlyFormat, req.Time); err != nil {
		return failure.BadRequestFromString("invalid time, expected HH:MM") // nolint:wrapcheck
	}

	shop, err := s.getOwnedShop(ctx, ownerID)
	if err != nil {
		return err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBlockedSlotShopID,
				Operator: gDto.FilterOperatorEq,
				Value:    shop.ID,
				Table:    model.BlockedSlotTableName,
			},
			gDto.Filter{
				Field:    model.FieldBlockedSlotDate,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Date,
				Table:    model.BlockedSlotTableName,
			},
			gDto.Filter{
				Field:    model.FieldBlockedSlotTime,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Time,
				Table:    model.BlockedSlotTableName,
			},
		},
	}

	exists, err := s.blockedRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check blocked slot")

		return fmt.Errorf("failed to check blocked slot: %w", err)
	}

	if exists {
		return failure.Conflict("slot already blocked") // nolint:wrapcheck
	}

	if err = s.blockedRepo.Insert(ctx, req.ToModel(shop.ID, ownerID)); err != nil {
		log.Error().Err(err).Msg("failed to block slot")

		return fmt.Errorf("failed to block slot: %w", err)
	}

	return nil
}

func (s *serviceImpl) UnblockSlot(ctx context.Context, ownerID, blockedSlotID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UnblockSlot")
	defer scope.End()
	defer scope.TraceIfError(err)

	shop, err := s.getOwnedShop(ctx, ownerID)
	if err != nil {
		return err
	}

	filter := shared.FilterByID(blockedSlotID, model.FieldID, model.BlockedSlotTableName)

	slot, err := s.blockedRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blocked slot")

		return fmt.Errorf("failed to get blocked slot: %w", err)
	}

	if slot.ID == constant.Empty || slot.ShopID != shop.ID {
		return failure.NotFound("blocked slot not found") // nolint:wrapcheck
	}

	if err = s.blockedRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to unblock slot")

		return fmt.Errorf("failed to unblock slot: %w", err)
	}

	return nil
}
