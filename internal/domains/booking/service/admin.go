package service

import (
	"context"
	"fmt"
	"trimly/internal/domains/booking/model"
	"trimly/internal/domains/booking/model/dto"
	shopModel "trimly/internal/domains/shop/model"
	"trimly/shared/constant"
	gDto "trimly/shared/dto"

	"github.com/rs/zerolog/log"
)

func statusFilter(status string) gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if status != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	return filter
}

func (s *serviceImpl) GetAdminBookings(ctx context.Context, status string, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAdminBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := statusFilter(status)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit, true)

	return res, nil
}

func (s *serviceImpl) GetAdminStats(ctx context.Context) (res dto.AdminStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAdminStats")
	defer scope.End()
	defer scope.TraceIfError(err)

	shopCounts := map[string]*int{
		constant.Empty:             &res.TotalShops,
		constant.ShopStatusActive:  &res.ActiveShops,
		constant.ShopStatusPending: &res.PendingShops,
	}

	for status, target := range shopCounts {
		filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

		if status != "" {
			filter.Filters = append(filter.Filters, gDto.Filter{
				Field:    shopModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    status,
				Table:    shopModel.TableName,
			})
		}

		count, countErr := s.shopRepo.Count(ctx, filter)
		if countErr != nil {
			log.Error().Err(countErr).Msg("failed to count shops")

			return res, fmt.Errorf("failed to count shops: %w", countErr)
		}

		*target = count
	}

	bookingCounts := map[string]*int{
		constant.Empty:                  &res.TotalBookings,
		constant.BookingStatusCompleted: &res.CompletedBookings,
	}

	for status, target := range bookingCounts {
		count, countErr := s.repo.Count(ctx, statusFilter(status))
		if countErr != nil {
			log.Error().Err(countErr).Msg("failed to count bookings")

			return res, fmt.Errorf("failed to count bookings: %w", countErr)
		}

		*target = count
	}

	totals, err := s.repo.SumTotals(ctx, statusFilter(constant.BookingStatusCompleted))
	if err != nil {
		log.Error().Err(err).Msg("failed to sum booking totals")

		return res, fmt.Errorf("failed to sum booking totals: %w", err)
	}

	res.TotalRevenue = totals.TotalAmount
	res.PlatformFees = totals.PlatformFee

	return res, nil
}
