package service

import (
	"context"
	"fmt"
	"trimly/internal/domains/notification/dispatcher"
	"trimly/internal/domains/shop/model"
	"trimly/internal/domains/shop/model/dto"
	"trimly/shared"
	"trimly/shared/constant"
	gDto "trimly/shared/dto"
	"trimly/shared/failure"
	"trimly/shared/timezone"

	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) GetAllShops(ctx context.Context, params gDto.QueryParams, status string) (res dto.GetShopsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllShops")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if status != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
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

	res.FromModelsWithFinancials(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) SetShopStatus(ctx context.Context, adminID, shopID string, req dto.UpdateShopStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetShopStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(shopID, model.FieldID, model.TableName)

	shop, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get shop")

		return fmt.Errorf("failed to get shop: %w", err)
	}

	if shop.ID == constant.Empty {
		return failure.NotFound("shop not found") // nolint:wrapcheck
	}

	if shop.Status == req.Status {
		return nil
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: adminID,
	}

	// A disabled shop must not keep accepting walk-ins.
	if req.Status == constant.ShopStatusDisabled {
		updatedFields[model.FieldIsOpen] = false
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update shop status")

		return fmt.Errorf("failed to update shop status: %w", err)
	}

	s.invalidateShopCaches(ctx)

	s.dispatcher.Dispatch(ctx, dispatcher.Event{
		Kind:        dispatcher.EventShopStatusChanged,
		RecipientID: shop.OwnerID,
		Title:       "Shop status updated",
		Body:        fmt.Sprintf("%s is now %s", shop.ShopName, req.Status),
		ShopID:      shop.ID,
	})

	return nil
}

// SetCommission changes the platform cut for future bookings only.
// Amounts already snapshotted on existing bookings are untouched.
func (s *serviceImpl) SetCommission(ctx context.Context, adminID, shopID string, req dto.UpdateCommissionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetCommission")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(shopID, model.FieldID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check shop")

		return fmt.Errorf("failed to check shop: %w", err)
	}

	if !exists {
		return failure.NotFound("shop not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldCommissionPercent: *req.CommissionPercent,
		constant.FieldModifiedAt:     timezone.Now(),
		constant.FieldModifiedBy:     adminID,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update commission")

		return fmt.Errorf("failed to update commission: %w", err)
	}

	s.invalidateShopCaches(ctx)

	return nil
}
