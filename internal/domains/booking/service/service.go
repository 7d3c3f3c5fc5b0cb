package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"trimly/infras/otel"
	"trimly/internal/domains/booking/model"
	"trimly/internal/domains/booking/model/dto"
	"trimly/internal/domains/booking/repository"
	"trimly/internal/domains/notification/dispatcher"
	shopModel "trimly/internal/domains/shop/model"
	shopRepo "trimly/internal/domains/shop/repository"
	shopService "trimly/internal/domains/shop/service"
	"trimly/shared"
	"trimly/shared/constant"
	gDto "trimly/shared/dto"
	"trimly/shared/failure"
	gModel "trimly/shared/model"
	"trimly/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, customerID string, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetCustomerBookings(ctx context.Context, customerID string, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	CancelByCustomer(ctx context.Context, customerID, bookingID string, req dto.CancelBookingRequest) error
	RespondReschedule(ctx context.Context, customerID, bookingID string, req dto.RespondRescheduleRequest) error
	Rate(ctx context.Context, customerID, bookingID string, req dto.RateBookingRequest) error

	GetBarberBookings(ctx context.Context, ownerID, status string, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetBarberStats(ctx context.Context, ownerID string) (dto.BarberStatsResponse, error)
	Accept(ctx context.Context, ownerID, bookingID string) error
	Reject(ctx context.Context, ownerID, bookingID string, req dto.RejectBookingRequest) error
	CancelByBarber(ctx context.Context, ownerID, bookingID string, req dto.CancelBookingRequest) error
	Complete(ctx context.Context, ownerID, bookingID string) error
	RequestReschedule(ctx context.Context, ownerID, bookingID string, req dto.RescheduleRequest) error

	GetAdminBookings(ctx context.Context, status string, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetAdminStats(ctx context.Context) (dto.AdminStatsResponse, error)
}

type serviceImpl struct {
	repo        repository.Booking
	shopRepo    shopRepo.Shop
	serviceRepo shopRepo.Service
	blockedRepo shopRepo.BlockedSlot
	dispatcher  dispatcher.Dispatcher
	otel        otel.Otel
}

func New(
	repo repository.Booking,
	shopRepo shopRepo.Shop,
	serviceRepo shopRepo.Service,
	blockedRepo shopRepo.BlockedSlot,
	dispatcher dispatcher.Dispatcher,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:        repo,
		shopRepo:    shopRepo,
		serviceRepo: serviceRepo,
		blockedRepo: blockedRepo,
		dispatcher:  dispatcher,
		otel:        otel,
	}
}

// SplitCommission snapshots the platform cut of a booking total. The
// fee rounds half up to cents and the earning is the exact remainder,
// so the two always add back to the total.
func SplitCommission(totalAmount, commissionPercent float64) (fee, earning float64) {
	fee = shared.RoundMoney(totalAmount * commissionPercent / 100)
	earning = shared.RoundMoney(totalAmount - fee)

	return fee, earning
}

func (s *serviceImpl) Create(ctx context.Context, customerID string, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = time.Parse(constant.DateOnlyFormat, req.Date); err != nil {
		return res, failure.BadRequestFromString("invalid date, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	if _, err = time.Parse(constant.TimeOnlyFormat, req.Time); err != nil {
		return res, failure.BadRequestFromString("invalid time, expected HH:MM") // nolint:wrapcheck
	}

	shop, err := s.shopRepo.Get(ctx, shared.FilterByID(req.ShopID, shopModel.FieldID, shopModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get shop")

		return res, fmt.Errorf("failed to get shop: %w", err)
	}

	if shop.ID == constant.Empty || shop.Status != constant.ShopStatusActive {
		return res, failure.NotFound("shop not found") // nolint:wrapcheck
	}

	if !shopService.SlotOpen(shop, req.Date, req.Time) {
		return res, failure.BadRequestFromString("shop is closed at the requested slot") // nolint:wrapcheck
	}

	blocked, err := s.slotBlocked(ctx, shop.ID, req.Date, req.Time)
	if err != nil {
		return res, err
	}

	if blocked {
		return res, failure.BadRequestFromString("slot is blocked by the shop") // nolint:wrapcheck
	}

	services, err := s.resolveServices(ctx, shop.ID, req.ServiceIDs)
	if err != nil {
		return res, err
	}

	var (
		totalAmount float64
		duration    int
		names       []string
	)

	for _, service := range services {
		totalAmount += service.Price
		duration += service.DurationMinutes
		names = append(names, service.ServiceName)
	}

	totalAmount = shared.RoundMoney(totalAmount)
	fee, earning := SplitCommission(totalAmount, shop.CommissionPercent)

	booking := model.Booking{
		ID:               uuid.NewString(),
		ShopID:           shop.ID,
		CustomerID:       customerID,
		ServiceIDs:       strings.Join(req.ServiceIDs, ","),
		ServicesSnapshot: strings.Join(names, ", "),
		BookingDate:      req.Date,
		SlotTime:         req.Time,
		DurationMinutes:  duration,
		Seats:            req.Seats,
		TotalAmount:      totalAmount,
		PlatformFee:      fee,
		BarberEarning:    earning,
		Status:           constant.BookingStatusPending,
		Metadata:         gModel.NewMetadata(customerID, timezone.Now()),
	}

	if err = s.repo.InsertWithCapacity(ctx, booking, shop.Seats); err != nil {
		if errors.Is(err, repository.ErrSlotFull) {
			return res, failure.Conflict("not enough seats left at this slot") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.dispatcher.Dispatch(ctx, dispatcher.Event{
		Kind:        dispatcher.EventBookingRequested,
		RecipientID: shop.OwnerID,
		Title:       "New booking request",
		Body:        fmt.Sprintf("%s at %s for %d seat(s)", booking.BookingDate, booking.SlotTime, booking.Seats),
		BookingID:   booking.ID,
		ShopID:      shop.ID,
	})

	res.FromModel(booking)
	res.ShopName = shop.ShopName
	res.ShopEmoji = shop.Emoji

	return res, nil
}

// resolveServices loads the requested services and rejects anything
// that does not exist, is disabled, or belongs to another shop.
func (s *serviceImpl) resolveServices(ctx context.Context, shopID string, serviceIDs []string) ([]shopModel.Service, error) {
	unique := make(map[string]bool, len(serviceIDs))
	for _, id := range serviceIDs {
		unique[id] = true
	}

	if len(unique) != len(serviceIDs) {
		return nil, failure.BadRequestFromString("duplicate service ids") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    shopModel.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    serviceIDs,
				Table:    shopModel.ServiceTableName,
			},
		},
	}

	services, err := s.serviceRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return nil, fmt.Errorf("failed to get services: %w", err)
	}

	if len(services) != len(serviceIDs) {
		return nil, failure.NotFound("service not found") // nolint:wrapcheck
	}

	for _, service := range services {
		if service.ShopID != shopID {
			return nil, failure.NotFound("service not found") // nolint:wrapcheck
		}

		if !service.Enabled {
			return nil, failure.BadRequestFromString("service is not available") // nolint:wrapcheck
		}
	}

	return services, nil
}

func (s *serviceImpl) slotBlocked(ctx context.Context, shopID, date, slotTime string) (bool, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    shopModel.FieldBlockedSlotShopID,
				Operator: gDto.FilterOperatorEq,
				Value:    shopID,
				Table:    shopModel.BlockedSlotTableName,
			},
			gDto.Filter{
				Field:    shopModel.FieldBlockedSlotDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
				Table:    shopModel.BlockedSlotTableName,
			},
			gDto.Filter{
				Field:    shopModel.FieldBlockedSlotTime,
				Operator: gDto.FilterOperatorEq,
				Value:    slotTime,
				Table:    shopModel.BlockedSlotTableName,
			},
		},
	}

	blocked, err := s.blockedRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check blocked slot")

		return false, fmt.Errorf("failed to check blocked slot: %w", err)
	}

	return blocked, nil
}

// getBooking loads a booking or reports NotFound.
func (s *serviceImpl) getBooking(ctx context.Context, bookingID string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// getCustomerBooking loads a booking and checks the caller owns it.
func (s *serviceImpl) getCustomerBooking(ctx context.Context, customerID, bookingID string) (model.Booking, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return booking, err
	}

	if booking.CustomerID != customerID {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// getOwnedBooking loads a booking belonging to the caller's shop.
func (s *serviceImpl) getOwnedBooking(ctx context.Context, ownerID, bookingID string) (model.Booking, shopModel.Shop, error) {
	shop, err := s.getOwnedShop(ctx, ownerID)
	if err != nil {
		return model.Booking{}, shop, err
	}

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return booking, shop, err
	}

	if booking.ShopID != shop.ID {
		return booking, shop, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, shop, nil
}

func (s *serviceImpl) getOwnedShop(ctx context.Context, ownerID string) (shopModel.Shop, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    shopModel.FieldOwnerID,
				Operator: gDto.FilterOperatorEq,
				Value:    ownerID,
				Table:    shopModel.TableName,
			},
		},
	}

	shop, err := s.shopRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get shop")

		return shop, fmt.Errorf("failed to get shop: %w", err)
	}

	if shop.ID == constant.Empty {
		return shop, failure.NotFound("shop not found") // nolint:wrapcheck
	}

	return shop, nil
}

// transitionFields is the base update map of every status transition.
func transitionFields(status, actor string) map[string]any {
	return map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}
}
