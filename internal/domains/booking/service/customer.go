package service

import (
	"context"
	"errors"
	"fmt"
	"trimly/internal/domains/booking/model"
	"trimly/internal/domains/booking/model/dto"
	"trimly/internal/domains/booking/repository"
	"trimly/internal/domains/notification/dispatcher"
	shopModel "trimly/internal/domains/shop/model"
	"trimly/shared"
	"trimly/shared/constant"
	gDto "trimly/shared/dto"
	"trimly/shared/failure"
	"trimly/shared/timezone"

	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) GetCustomerBookings(ctx context.Context, customerID string, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCustomerBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCustomerID,
				Operator: gDto.FilterOperatorEq,
				Value:    customerID,
				Table:    model.TableName,
			},
		},
	}

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

	res.FromModels(bookings, total, params.Limit, false)

	return res, nil
}

func (s *serviceImpl) CancelByCustomer(ctx context.Context, customerID, bookingID string, req dto.CancelBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelByCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getCustomerBooking(ctx, customerID, bookingID)
	if err != nil {
		return err
	}

	switch booking.Status {
	case constant.BookingStatusPending, constant.BookingStatusConfirmed, constant.BookingStatusRescheduleRequested:
	default:
		return failure.BadRequestFromString("booking can no longer be cancelled") // nolint:wrapcheck
	}

	fields := transitionFields(constant.BookingStatusCancelled, customerID)
	fields[model.FieldCancelReason] = req.Reason

	if err = s.repo.Update(ctx, fields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.notifyOwner(ctx, booking, dispatcher.EventBookingCancelled, "Booking cancelled",
		fmt.Sprintf("%s at %s was cancelled by the customer", booking.BookingDate, booking.SlotTime))

	return nil
}

func (s *serviceImpl) RespondReschedule(ctx context.Context, customerID, bookingID string, req dto.RespondRescheduleRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RespondReschedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getCustomerBooking(ctx, customerID, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != constant.BookingStatusRescheduleRequested {
		return failure.BadRequestFromString("no reschedule proposal to respond to") // nolint:wrapcheck
	}

	if booking.RescheduleDate == nil || booking.RescheduleTime == nil {
		return failure.BadRequestFromString("no reschedule proposal to respond to") // nolint:wrapcheck
	}

	accepted := *req.Accept

	fields := transitionFields(constant.BookingStatusConfirmed, customerID)
	fields[model.FieldRescheduleDate] = nil
	fields[model.FieldRescheduleTime] = nil
	fields[model.FieldRescheduleReason] = nil

	if !accepted {
		fields[model.FieldRescheduleStatus] = constant.RescheduleStatusDeclined

		if err = s.repo.Update(ctx, fields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to decline reschedule")

			return fmt.Errorf("failed to decline reschedule: %w", err)
		}

		s.notifyOwner(ctx, booking, dispatcher.EventRescheduleAnswered, "Reschedule declined",
			fmt.Sprintf("the booking stays at %s %s", booking.BookingDate, booking.SlotTime))

		return nil
	}

	shop, err := s.shopRepo.Get(ctx, shared.FilterByID(booking.ShopID, shopModel.FieldID, shopModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get shop")

		return fmt.Errorf("failed to get shop: %w", err)
	}

	newDate, newTime := *booking.RescheduleDate, *booking.RescheduleTime

	fields[model.FieldRescheduleStatus] = constant.RescheduleStatusAccepted
	fields[model.FieldBookingDate] = newDate
	fields[model.FieldSlotTime] = newTime

	// Capacity is re-checked at commit: the slot may have filled up
	// while the proposal sat unanswered.
	err = s.repo.UpdateWithCapacity(ctx, booking.ID, fields, booking.ShopID, newDate, newTime, booking.Seats, shop.Seats)
	if err != nil {
		if errors.Is(err, repository.ErrSlotFull) {
			return failure.Conflict("proposed slot is no longer available") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to accept reschedule")

		return fmt.Errorf("failed to accept reschedule: %w", err)
	}

	s.notifyOwner(ctx, booking, dispatcher.EventRescheduleAnswered, "Reschedule accepted",
		fmt.Sprintf("the booking moved to %s %s", newDate, newTime))

	return nil
}

func (s *serviceImpl) Rate(ctx context.Context, customerID, bookingID string, req dto.RateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getCustomerBooking(ctx, customerID, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != constant.BookingStatusCompleted {
		return failure.BadRequestFromString("only completed bookings can be rated") // nolint:wrapcheck
	}

	if booking.Rating != nil {
		return failure.BadRequestFromString("booking already rated") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldRating:        req.Rating,
		model.FieldReview:        req.Review,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: customerID,
	}

	if err = s.repo.RateAndRecalcShop(ctx, booking.ID, fields, booking.ShopID); err != nil {
		log.Error().Err(err).Msg("failed to rate booking")

		return fmt.Errorf("failed to rate booking: %w", err)
	}

	return nil
}

// notifyOwner routes a booking event to the shop owner.
func (s *serviceImpl) notifyOwner(ctx context.Context, booking model.Booking, kind, title, body string) {
	shop, err := s.shopRepo.Get(ctx, shared.FilterByID(booking.ShopID, shopModel.FieldID, shopModel.TableName))
	if err != nil || shop.ID == constant.Empty {
		log.Error().Err(err).Str("shopID", booking.ShopID).Msg("failed to resolve shop owner for notification")

		return
	}

	s.dispatcher.Dispatch(ctx, dispatcher.Event{
		Kind:        kind,
		RecipientID: shop.OwnerID,
		Title:       title,
		Body:        body,
		BookingID:   booking.ID,
		ShopID:      booking.ShopID,
	})
}
