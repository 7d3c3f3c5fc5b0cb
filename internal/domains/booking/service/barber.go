package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"trimly/internal/domains/booking/model"
	"trimly/internal/domains/booking/model/dto"
	"trimly/internal/domains/booking/repository"
	"trimly/internal/domains/notification/dispatcher"
	shopService "trimly/internal/domains/shop/service"
	"trimly/shared"
	"trimly/shared/constant"
	gDto "trimly/shared/dto"
	"trimly/shared/failure"

	"github.com/rs/zerolog/log"
)

func shopBookingsFilter(shopID, status string) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldShopID,
				Operator: gDto.FilterOperatorEq,
				Value:    shopID,
				Table:    model.TableName,
			},
		},
	}

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

func (s *serviceImpl) GetBarberBookings(ctx context.Context, ownerID, status string, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBarberBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	shop, err := s.getOwnedShop(ctx, ownerID)
	if err != nil {
		return res, err
	}

	filter := shopBookingsFilter(shop.ID, status)

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

func (s *serviceImpl) GetBarberStats(ctx context.Context, ownerID string) (res dto.BarberStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBarberStats")
	defer scope.End()
	defer scope.TraceIfError(err)

	shop, err := s.getOwnedShop(ctx, ownerID)
	if err != nil {
		return res, err
	}

	counts := map[string]*int{
		constant.Empty:                  &res.TotalBookings,
		constant.BookingStatusPending:   &res.Pending,
		constant.BookingStatusConfirmed: &res.Confirmed,
		constant.BookingStatusCompleted: &res.Completed,
		constant.BookingStatusCancelled: &res.Cancelled,
	}

	for status, target := range counts {
		count, countErr := s.repo.Count(ctx, shopBookingsFilter(shop.ID, status))
		if countErr != nil {
			log.Error().Err(countErr).Msg("failed to count bookings")

			return res, fmt.Errorf("failed to count bookings: %w", countErr)
		}

		*target = count
	}

	totals, err := s.repo.SumTotals(ctx, shopBookingsFilter(shop.ID, constant.BookingStatusCompleted))
	if err != nil {
		log.Error().Err(err).Msg("failed to sum booking totals")

		return res, fmt.Errorf("failed to sum booking totals: %w", err)
	}

	res.TotalRevenue = totals.TotalAmount
	res.PlatformFees = totals.PlatformFee
	res.TotalEarnings = totals.BarberEarning
	res.MonthlyRevenue = shop.MonthlyRevenue
	res.AvgRating = shop.AvgRating
	res.TotalReviews = shop.TotalReviews

	return res, nil
}

func (s *serviceImpl) Accept(ctx context.Context, ownerID, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AcceptBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, _, err := s.getOwnedBooking(ctx, ownerID, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != constant.BookingStatusPending {
		return failure.BadRequestFromString("booking is not pending") // nolint:wrapcheck
	}

	fields := transitionFields(constant.BookingStatusConfirmed, ownerID)

	if err = s.repo.Update(ctx, fields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to accept booking")

		return fmt.Errorf("failed to accept booking: %w", err)
	}

	s.notifyCustomer(ctx, booking, dispatcher.EventBookingConfirmed, "Booking confirmed",
		fmt.Sprintf("see you on %s at %s", booking.BookingDate, booking.SlotTime))

	return nil
}

func (s *serviceImpl) Reject(ctx context.Context, ownerID, bookingID string, req dto.RejectBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RejectBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, _, err := s.getOwnedBooking(ctx, ownerID, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != constant.BookingStatusPending {
		return failure.BadRequestFromString("booking is not pending") // nolint:wrapcheck
	}

	fields := transitionFields(constant.BookingStatusRejected, ownerID)
	fields[model.FieldCancelReason] = req.Reason

	if err = s.repo.Update(ctx, fields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to reject booking")

		return fmt.Errorf("failed to reject booking: %w", err)
	}

	s.notifyCustomer(ctx, booking, dispatcher.EventBookingRejected, "Booking rejected", req.Reason)

	return nil
}

func (s *serviceImpl) CancelByBarber(ctx context.Context, ownerID, bookingID string, req dto.CancelBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelByBarber")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, _, err := s.getOwnedBooking(ctx, ownerID, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != constant.BookingStatusConfirmed {
		return failure.BadRequestFromString("booking is not confirmed") // nolint:wrapcheck
	}

	fields := transitionFields(constant.BookingStatusCancelled, ownerID)
	fields[model.FieldCancelReason] = req.Reason

	if err = s.repo.Update(ctx, fields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.notifyCustomer(ctx, booking, dispatcher.EventBookingCancelled, "Booking cancelled", req.Reason)

	return nil
}

func (s *serviceImpl) Complete(ctx context.Context, ownerID, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CompleteBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, _, err := s.getOwnedBooking(ctx, ownerID, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != constant.BookingStatusConfirmed {
		return failure.BadRequestFromString("booking is not confirmed") // nolint:wrapcheck
	}

	fields := transitionFields(constant.BookingStatusCompleted, ownerID)

	if err = s.repo.CompleteWithShopTotals(ctx, booking.ID, fields, booking.ShopID, booking.TotalAmount); err != nil {
		log.Error().Err(err).Msg("failed to complete booking")

		return fmt.Errorf("failed to complete booking: %w", err)
	}

	s.notifyCustomer(ctx, booking, dispatcher.EventBookingCompleted, "Booking completed",
		"thanks for your visit, leave a rating when you have a minute")

	return nil
}

func (s *serviceImpl) RequestReschedule(ctx context.Context, ownerID, bookingID string, req dto.RescheduleRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestReschedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = time.Parse(constant.DateOnlyFormat, req.Date); err != nil {
		return failure.BadRequestFromString("invalid date, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	if _, err = time.Parse(constant.TimeOnlyFormat, req.Time); err != nil {
		return failure.BadRequestFromString("invalid time, expected HH:MM") // nolint:wrapcheck
	}

	booking, shop, err := s.getOwnedBooking(ctx, ownerID, bookingID)
	if err != nil {
		return err
	}

	switch booking.Status {
	case constant.BookingStatusPending, constant.BookingStatusConfirmed:
	default:
		return failure.BadRequestFromString("booking cannot be rescheduled") // nolint:wrapcheck
	}

	if !shopService.SlotOpen(shop, req.Date, req.Time) {
		return failure.BadRequestFromString("shop is closed at the proposed slot") // nolint:wrapcheck
	}

	blocked, err := s.slotBlocked(ctx, shop.ID, req.Date, req.Time)
	if err != nil {
		return err
	}

	if blocked {
		return failure.BadRequestFromString("proposed slot is blocked") // nolint:wrapcheck
	}

	fields := transitionFields(constant.BookingStatusRescheduleRequested, ownerID)
	fields[model.FieldRescheduleDate] = req.Date
	fields[model.FieldRescheduleTime] = req.Time
	fields[model.FieldRescheduleReason] = req.Reason
	fields[model.FieldRescheduleStatus] = constant.RescheduleStatusPending

	// The proposal itself reserves nothing, but it must be honest: a
	// slot that cannot fit the booking is not worth proposing.
	err = s.repo.UpdateWithCapacity(ctx, booking.ID, fields, shop.ID, req.Date, req.Time, booking.Seats, shop.Seats)
	if err != nil {
		if errors.Is(err, repository.ErrSlotFull) {
			return failure.Conflict("not enough seats left at the proposed slot") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to propose reschedule")

		return fmt.Errorf("failed to propose reschedule: %w", err)
	}

	s.notifyCustomer(ctx, booking, dispatcher.EventRescheduleProposed, "Reschedule proposed",
		fmt.Sprintf("your barber proposed %s at %s", req.Date, req.Time))

	return nil
}

// notifyCustomer routes a booking event to the booking's customer.
func (s *serviceImpl) notifyCustomer(ctx context.Context, booking model.Booking, kind, title, body string) {
	s.dispatcher.Dispatch(ctx, dispatcher.Event{
		Kind:        kind,
		RecipientID: booking.CustomerID,
		Title:       title,
		Body:        body,
		BookingID:   booking.ID,
		ShopID:      booking.ShopID,
	})
}
