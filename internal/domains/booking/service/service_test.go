package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	bookingMocks "trimly/internal/domains/booking/mocks"
	"trimly/internal/domains/booking/model"
	"trimly/internal/domains/booking/model/dto"
	"trimly/internal/domains/booking/repository"
	"trimly/internal/domains/booking/service"
	"trimly/infras/otel/mocks"
	notificationMocks "trimly/internal/domains/notification/mocks"
	shopMocks "trimly/internal/domains/shop/mocks"
	shopModel "trimly/internal/domains/shop/model"
	"trimly/shared/constant"
	gDto "trimly/shared/dto"
)

// 2026-09-07 is a Monday.
const (
	testDate = "2026-09-07"
	testTime = "10:00"
)

func activeShop() shopModel.Shop {
	return shopModel.Shop{
		ID:                  "shop-1",
		OwnerID:             "owner-1",
		ShopName:            "Fade Factory",
		Status:              constant.ShopStatusActive,
		IsOpen:              true,
		Seats:               2,
		CommissionPercent:   10,
		WorkDays:            "Mon,Tue,Wed,Thu,Fri,Sat",
		OpenTime:            "09:00",
		CloseTime:           "20:00",
		SlotDurationMinutes: 30,
	}
}

func TestSplitCommission(t *testing.T) {
	tests := []struct {
		name        string
		total       float64
		percent     float64
		wantFee     float64
		wantEarning float64
	}{
		{name: "round amounts", total: 100, percent: 10, wantFee: 10, wantEarning: 90},
		{name: "fee rounds half up", total: 33.33, percent: 10, wantFee: 3.33, wantEarning: 30},
		{name: "midpoint cents round up", total: 12.50, percent: 15, wantFee: 1.88, wantEarning: 10.62},
		{name: "zero commission", total: 45.50, percent: 0, wantFee: 0, wantEarning: 45.50},
		{name: "zero total", total: 0, percent: 10, wantFee: 0, wantEarning: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, earning := service.SplitCommission(tt.total, tt.percent)

			assert.InDelta(t, tt.wantFee, fee, 0.001)
			assert.InDelta(t, tt.wantEarning, earning, 0.001)
			assert.InDelta(t, tt.total, fee+earning, 0.001)
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockShopRepo := shopMocks.NewMockShop(ctrl)
	mockServiceRepo := shopMocks.NewMockService(ctrl)
	mockBlockedRepo := shopMocks.NewMockBlockedSlot(ctrl)
	mockDispatcher := notificationMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockShopRepo, mockServiceRepo, mockBlockedRepo, mockDispatcher, mockOtel)

	mockDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).AnyTimes()

	enabledService := shopModel.Service{
		ID:              "svc-1",
		ShopID:          "shop-1",
		ServiceName:     "Classic Cut",
		Price:           25.50,
		DurationMinutes: 30,
		Enabled:         true,
	}

	validReq := dto.CreateBookingRequest{
		ShopID:     "shop-1",
		ServiceIDs: []string{"svc-1"},
		Date:       testDate,
		Time:       testTime,
		Seats:      1,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful booking",
			req:  validReq,
			setupMock: func() {
				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockBlockedRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockServiceRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]shopModel.Service{enabledService}, nil)

				mockRepo.EXPECT().
					InsertWithCapacity(gomock.Any(), gomock.Any(), 2).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "invalid date",
			req: dto.CreateBookingRequest{
				ShopID:     "shop-1",
				ServiceIDs: []string{"svc-1"},
				Date:       "07-09-2026",
				Time:       testTime,
				Seats:      1,
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "shop not active",
			req:  validReq,
			setupMock: func() {
				shop := activeShop()
				shop.Status = constant.ShopStatusPending

				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(shop, nil)
			},
			wantErr: true,
		},
		{
			name: "slot outside working hours",
			req: dto.CreateBookingRequest{
				ShopID:     "shop-1",
				ServiceIDs: []string{"svc-1"},
				Date:       testDate,
				Time:       "21:00",
				Seats:      1,
			},
			setupMock: func() {
				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)
			},
			wantErr: true,
		},
		{
			name: "slot off the grid",
			req: dto.CreateBookingRequest{
				ShopID:     "shop-1",
				ServiceIDs: []string{"svc-1"},
				Date:       testDate,
				Time:       "10:15",
				Seats:      1,
			},
			setupMock: func() {
				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)
			},
			wantErr: true,
		},
		{
			name: "closed day",
			req: dto.CreateBookingRequest{
				ShopID:     "shop-1",
				ServiceIDs: []string{"svc-1"},
				Date:       "2026-09-06", // Sunday
				Time:       testTime,
				Seats:      1,
			},
			setupMock: func() {
				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)
			},
			wantErr: true,
		},
		{
			name: "slot blocked",
			req:  validReq,
			setupMock: func() {
				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockBlockedRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "duplicate service ids",
			req: dto.CreateBookingRequest{
				ShopID:     "shop-1",
				ServiceIDs: []string{"svc-1", "svc-1"},
				Date:       testDate,
				Time:       testTime,
				Seats:      1,
			},
			setupMock: func() {
				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockBlockedRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "service disabled",
			req:  validReq,
			setupMock: func() {
				disabled := enabledService
				disabled.Enabled = false

				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockBlockedRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockServiceRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]shopModel.Service{disabled}, nil)
			},
			wantErr: true,
		},
		{
			name: "service belongs to another shop",
			req:  validReq,
			setupMock: func() {
				foreign := enabledService
				foreign.ShopID = "shop-2"

				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockBlockedRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockServiceRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]shopModel.Service{foreign}, nil)
			},
			wantErr: true,
		},
		{
			name: "slot full",
			req:  validReq,
			setupMock: func() {
				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockBlockedRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockServiceRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]shopModel.Service{enabledService}, nil)

				mockRepo.EXPECT().
					InsertWithCapacity(gomock.Any(), gomock.Any(), 2).
					Return(repository.ErrSlotFull)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), "customer-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, constant.BookingStatusPending, res.Status)
				assert.Equal(t, "Fade Factory", res.ShopName)
				assert.InDelta(t, 25.50, res.TotalAmount, 0.001)
			}
		})
	}
}

func TestBookingService_Accept(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockShopRepo := shopMocks.NewMockShop(ctrl)
	mockServiceRepo := shopMocks.NewMockService(ctrl)
	mockBlockedRepo := shopMocks.NewMockBlockedSlot(ctrl)
	mockDispatcher := notificationMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockShopRepo, mockServiceRepo, mockBlockedRepo, mockDispatcher, mockOtel)

	mockDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).AnyTimes()

	pendingBooking := model.Booking{
		ID:          "booking-1",
		ShopID:      "shop-1",
		CustomerID:  "customer-1",
		BookingDate: testDate,
		SlotTime:    testTime,
		Seats:       1,
		Status:      constant.BookingStatusPending,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "pending booking confirmed",
			setupMock: func() {
				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "booking already confirmed",
			setupMock: func() {
				confirmed := pendingBooking
				confirmed.Status = constant.BookingStatusConfirmed

				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)
			},
			wantErr: true,
		},
		{
			name: "booking of another shop",
			setupMock: func() {
				foreign := pendingBooking
				foreign.ShopID = "shop-2"

				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(foreign, nil)
			},
			wantErr: true,
		},
		{
			name: "caller has no shop",
			setupMock: func() {
				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(shopModel.Shop{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Accept(context.Background(), "owner-1", "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockShopRepo := shopMocks.NewMockShop(ctrl)
	mockServiceRepo := shopMocks.NewMockService(ctrl)
	mockBlockedRepo := shopMocks.NewMockBlockedSlot(ctrl)
	mockDispatcher := notificationMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockShopRepo, mockServiceRepo, mockBlockedRepo, mockDispatcher, mockOtel)

	mockDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).AnyTimes()

	pendingBooking := model.Booking{
		ID:          "booking-1",
		ShopID:      "shop-1",
		CustomerID:  "customer-1",
		BookingDate: testDate,
		SlotTime:    testTime,
		Seats:       1,
		Status:      constant.BookingStatusPending,
	}

	reason := "fully booked that day"

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "pending booking rejected with reason",
			setupMock: func() {
				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, constant.BookingStatusRejected, fields[model.FieldStatus])
						assert.Equal(t, reason, fields[model.FieldCancelReason])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "confirmed booking cannot be rejected",
			setupMock: func() {
				confirmed := pendingBooking
				confirmed.Status = constant.BookingStatusConfirmed

				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)
			},
			wantErr: true,
		},
		{
			name: "booking of another shop",
			setupMock: func() {
				foreign := pendingBooking
				foreign.ShopID = "shop-2"

				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(foreign, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Reject(context.Background(), "owner-1", "booking-1", dto.RejectBookingRequest{Reason: reason})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_CancelByBarber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockShopRepo := shopMocks.NewMockShop(ctrl)
	mockServiceRepo := shopMocks.NewMockService(ctrl)
	mockBlockedRepo := shopMocks.NewMockBlockedSlot(ctrl)
	mockDispatcher := notificationMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockShopRepo, mockServiceRepo, mockBlockedRepo, mockDispatcher, mockOtel)

	mockDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).AnyTimes()

	confirmedBooking := model.Booking{
		ID:          "booking-1",
		ShopID:      "shop-1",
		CustomerID:  "customer-1",
		BookingDate: testDate,
		SlotTime:    testTime,
		Seats:       1,
		Status:      constant.BookingStatusConfirmed,
	}

	reason := "barber called in sick"

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "confirmed booking cancelled with reason",
			setupMock: func() {
				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, constant.BookingStatusCancelled, fields[model.FieldStatus])
						assert.Equal(t, reason, fields[model.FieldCancelReason])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "pending booking cannot be cancelled by the barber",
			setupMock: func() {
				pending := confirmedBooking
				pending.Status = constant.BookingStatusPending

				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.CancelByBarber(context.Background(), "owner-1", "booking-1", dto.CancelBookingRequest{Reason: reason})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Complete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockShopRepo := shopMocks.NewMockShop(ctrl)
	mockServiceRepo := shopMocks.NewMockService(ctrl)
	mockBlockedRepo := shopMocks.NewMockBlockedSlot(ctrl)
	mockDispatcher := notificationMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockShopRepo, mockServiceRepo, mockBlockedRepo, mockDispatcher, mockOtel)

	mockDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).AnyTimes()

	confirmedBooking := model.Booking{
		ID:          "booking-1",
		ShopID:      "shop-1",
		CustomerID:  "customer-1",
		TotalAmount: 25.50,
		Status:      constant.BookingStatusConfirmed,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "confirmed booking completed",
			setupMock: func() {
				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking, nil)

				mockRepo.EXPECT().
					CompleteWithShopTotals(gomock.Any(), "booking-1", gomock.Any(), "shop-1", 25.50).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "pending booking cannot complete",
			setupMock: func() {
				pending := confirmedBooking
				pending.Status = constant.BookingStatusPending

				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Complete(context.Background(), "owner-1", "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_CancelByCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockShopRepo := shopMocks.NewMockShop(ctrl)
	mockServiceRepo := shopMocks.NewMockService(ctrl)
	mockBlockedRepo := shopMocks.NewMockBlockedSlot(ctrl)
	mockDispatcher := notificationMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockShopRepo, mockServiceRepo, mockBlockedRepo, mockDispatcher, mockOtel)

	mockDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).AnyTimes()
	mockShopRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeShop(), nil).AnyTimes()

	booking := model.Booking{
		ID:         "booking-1",
		ShopID:     "shop-1",
		CustomerID: "customer-1",
		Status:     constant.BookingStatusConfirmed,
	}

	tests := []struct {
		name      string
		status    string
		customer  string
		setupMock func(b model.Booking)
		wantErr   bool
	}{
		{
			name:     "confirmed booking cancelled",
			status:   constant.BookingStatusConfirmed,
			customer: "customer-1",
			setupMock: func(b model.Booking) {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(b, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name:     "completed booking cannot be cancelled",
			status:   constant.BookingStatusCompleted,
			customer: "customer-1",
			setupMock: func(b model.Booking) {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(b, nil)
			},
			wantErr: true,
		},
		{
			name:     "someone else's booking",
			status:   constant.BookingStatusConfirmed,
			customer: "customer-2",
			setupMock: func(b model.Booking) {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(b, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := booking
			b.Status = tt.status

			tt.setupMock(b)

			err := svc.CancelByCustomer(context.Background(), tt.customer, "booking-1", dto.CancelBookingRequest{Reason: "plans changed"})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Rate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockShopRepo := shopMocks.NewMockShop(ctrl)
	mockServiceRepo := shopMocks.NewMockService(ctrl)
	mockBlockedRepo := shopMocks.NewMockBlockedSlot(ctrl)
	mockDispatcher := notificationMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockShopRepo, mockServiceRepo, mockBlockedRepo, mockDispatcher, mockOtel)

	completed := model.Booking{
		ID:         "booking-1",
		ShopID:     "shop-1",
		CustomerID: "customer-1",
		Status:     constant.BookingStatusCompleted,
	}

	rating := 4

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "completed booking rated",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completed, nil)

				mockRepo.EXPECT().
					RateAndRecalcShop(gomock.Any(), "booking-1", gomock.Any(), "shop-1").
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "booking not completed",
			setupMock: func() {
				pending := completed
				pending.Status = constant.BookingStatusPending

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)
			},
			wantErr: true,
		},
		{
			name: "booking already rated",
			setupMock: func() {
				rated := completed
				rated.Rating = &rating

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(rated, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Rate(context.Background(), "customer-1", "booking-1", dto.RateBookingRequest{Rating: 5, Review: "great cut"})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_RequestReschedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockShopRepo := shopMocks.NewMockShop(ctrl)
	mockServiceRepo := shopMocks.NewMockService(ctrl)
	mockBlockedRepo := shopMocks.NewMockBlockedSlot(ctrl)
	mockDispatcher := notificationMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockShopRepo, mockServiceRepo, mockBlockedRepo, mockDispatcher, mockOtel)

	mockDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).AnyTimes()

	confirmed := model.Booking{
		ID:         "booking-1",
		ShopID:     "shop-1",
		CustomerID: "customer-1",
		Seats:      1,
		Status:     constant.BookingStatusConfirmed,
	}

	req := dto.RescheduleRequest{Date: testDate, Time: "11:00", Reason: "double booked"}

	tests := []struct {
		name      string
		req       dto.RescheduleRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "proposal stored",
			req:  req,
			setupMock: func() {
				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)

				mockBlockedRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					UpdateWithCapacity(gomock.Any(), "booking-1", gomock.Any(), "shop-1", testDate, "11:00", 1, 2).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "proposed slot full",
			req:  req,
			setupMock: func() {
				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)

				mockBlockedRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					UpdateWithCapacity(gomock.Any(), "booking-1", gomock.Any(), "shop-1", testDate, "11:00", 1, 2).
					Return(repository.ErrSlotFull)
			},
			wantErr: true,
		},
		{
			name: "completed booking cannot move",
			req:  req,
			setupMock: func() {
				done := confirmed
				done.Status = constant.BookingStatusCompleted

				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(done, nil)
			},
			wantErr: true,
		},
		{
			name: "proposal outside working hours",
			req:  dto.RescheduleRequest{Date: testDate, Time: "22:00"},
			setupMock: func() {
				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.RequestReschedule(context.Background(), "owner-1", "booking-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_RespondReschedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockShopRepo := shopMocks.NewMockShop(ctrl)
	mockServiceRepo := shopMocks.NewMockService(ctrl)
	mockBlockedRepo := shopMocks.NewMockBlockedSlot(ctrl)
	mockDispatcher := notificationMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockShopRepo, mockServiceRepo, mockBlockedRepo, mockDispatcher, mockOtel)

	mockDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).AnyTimes()

	newDate, newTime := "2026-09-08", "14:00"
	reason := "double booked"

	proposal := model.Booking{
		ID:               "booking-1",
		ShopID:           "shop-1",
		CustomerID:       "customer-1",
		BookingDate:      testDate,
		SlotTime:         testTime,
		Seats:            1,
		Status:           constant.BookingStatusRescheduleRequested,
		RescheduleDate:   &newDate,
		RescheduleTime:   &newTime,
		RescheduleReason: &reason,
	}

	boolPtr := func(b bool) *bool { return &b }

	tests := []struct {
		name      string
		req       dto.RespondRescheduleRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "proposal accepted moves the booking",
			req:  dto.RespondRescheduleRequest{Accept: boolPtr(true)},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(proposal, nil)

				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockRepo.EXPECT().
					UpdateWithCapacity(gomock.Any(), "booking-1", gomock.Any(), "shop-1", newDate, newTime, 1, 2).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "proposal declined keeps the slot",
			req:  dto.RespondRescheduleRequest{Accept: boolPtr(false)},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(proposal, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				// dispatching the answer resolves the shop owner
				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)
			},
			wantErr: false,
		},
		{
			name: "accepted slot no longer available",
			req:  dto.RespondRescheduleRequest{Accept: boolPtr(true)},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(proposal, nil)

				mockShopRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeShop(), nil)

				mockRepo.EXPECT().
					UpdateWithCapacity(gomock.Any(), "booking-1", gomock.Any(), "shop-1", newDate, newTime, 1, 2).
					Return(repository.ErrSlotFull)
			},
			wantErr: true,
		},
		{
			name: "no proposal pending",
			req:  dto.RespondRescheduleRequest{Accept: boolPtr(true)},
			setupMock: func() {
				plain := proposal
				plain.Status = constant.BookingStatusConfirmed

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(plain, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.RespondReschedule(context.Background(), "customer-1", "booking-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_GetAdminStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockShopRepo := shopMocks.NewMockShop(ctrl)
	mockServiceRepo := shopMocks.NewMockService(ctrl)
	mockBlockedRepo := shopMocks.NewMockBlockedSlot(ctrl)
	mockDispatcher := notificationMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockShopRepo, mockServiceRepo, mockBlockedRepo, mockDispatcher, mockOtel)

	mockShopRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(5, nil).Times(3)
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil).Times(2)
	mockRepo.EXPECT().SumTotals(gomock.Any(), gomock.Any()).
		Return(repository.Totals{TotalAmount: 300, PlatformFee: 30, BarberEarning: 270}, nil)

	res, err := svc.GetAdminStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 5, res.TotalShops)
	assert.Equal(t, 12, res.TotalBookings)
	assert.InDelta(t, 300, res.TotalRevenue, 0.001)
	assert.InDelta(t, 30, res.PlatformFees, 0.001)
}

func TestBookingService_CountError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockShopRepo := shopMocks.NewMockShop(ctrl)
	mockServiceRepo := shopMocks.NewMockService(ctrl)
	mockBlockedRepo := shopMocks.NewMockBlockedSlot(ctrl)
	mockDispatcher := notificationMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockShopRepo, mockServiceRepo, mockBlockedRepo, mockDispatcher, mockOtel)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(0, errors.New("connection refused"))

	_, err := svc.GetCustomerBookings(context.Background(), "customer-1", gDto.QueryParams{Limit: 10})

	assert.Error(t, err)
}
