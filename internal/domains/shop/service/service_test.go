package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"trimly/config"
	"trimly/infras/otel/mocks"
	bookingMocks "trimly/internal/domains/booking/mocks"
	notificationMocks "trimly/internal/domains/notification/mocks"
	shopMocks "trimly/internal/domains/shop/mocks"
	"trimly/internal/domains/shop/model"
	"trimly/internal/domains/shop/model/dto"
	"trimly/internal/domains/shop/repository"
	"trimly/internal/domains/shop/service"
	"trimly/shared/constant"
	gDto "trimly/shared/dto"
)

// missCache never hits and swallows writes, so cached paths always fall
// through to the repositories.
type missCache struct{}

func (missCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (missCache) Get(_ context.Context, _ string, _ any) error         { return errors.New("cache miss") }
func (missCache) Delete(_ context.Context, _ string) error             { return nil }
func (missCache) Clear(_ context.Context, _ string) error              { return nil }

type shopServiceMocks struct {
	repo        *shopMocks.MockShop
	serviceRepo *shopMocks.MockService
	blockedRepo *shopMocks.MockBlockedSlot
	bookingRepo *bookingMocks.MockBooking
	dispatcher  *notificationMocks.MockDispatcher
}

func newShopService(ctrl *gomock.Controller) (service.Shop, shopServiceMocks) {
	m := shopServiceMocks{
		repo:        shopMocks.NewMockShop(ctrl),
		serviceRepo: shopMocks.NewMockService(ctrl),
		blockedRepo: shopMocks.NewMockBlockedSlot(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		dispatcher:  notificationMocks.NewMockDispatcher(ctrl),
	}

	svc := service.New(m.repo, m.serviceRepo, m.blockedRepo, m.bookingRepo,
		m.dispatcher, &config.Config{}, missCache{}, mocks.NewOtel())

	return svc, m
}

func activeShop() model.Shop {
	return model.Shop{
		ID:                  "shop-1",
		OwnerID:             "owner-1",
		ShopName:            "Fade Factory",
		Slug:                "fade-factory",
		City:                "Austin",
		Area:                "Downtown",
		Status:              constant.ShopStatusActive,
		IsOpen:              true,
		Seats:               2,
		CommissionPercent:   10,
		WorkDays:            "Mon,Tue,Wed,Thu,Fri,Sat",
		OpenTime:            "09:00",
		CloseTime:           "12:00",
		SlotDurationMinutes: 30,
	}
}

func TestShopService_GetPublicShops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newShopService(ctrl)

	m.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	m.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Shop{activeShop()}, nil)

	res, err := svc.GetPublicShops(context.Background(), gDto.QueryParams{Limit: 10}, "fade", "Austin", "")

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Shops, 1)
	assert.Equal(t, "Fade Factory", res.Shops[0].ShopName)
}

func TestShopService_GetPublicShop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newShopService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "active shop visible",
			setupMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeShop(), nil)
				m.serviceRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Service{{ID: "svc-1", ShopID: "shop-1", ServiceName: "Classic Cut", Enabled: true}}, nil)
			},
			wantErr: false,
		},
		{
			name: "pending shop invisible",
			setupMock: func() {
				shop := activeShop()
				shop.Status = constant.ShopStatusPending

				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(shop, nil)
			},
			wantErr: true,
		},
		{
			name: "unknown shop",
			setupMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Shop{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetPublicShop(context.Background(), "shop-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "fade-factory", res.Slug)
				assert.Len(t, res.Services, 1)
			}
		})
	}
}

func TestShopService_GetSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newShopService(ctrl)

	t.Run("grid reflects bookings and blocks", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeShop(), nil)
		m.bookingRepo.EXPECT().SeatsUsedByDate(gomock.Any(), "shop-1", monday).
			Return(map[string]int{"09:00": 2}, nil)
		m.blockedRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.BlockedSlot{{ID: "blk-1", ShopID: "shop-1", SlotDate: monday, SlotTime: "10:00"}}, nil)

		res, err := svc.GetSlots(context.Background(), "shop-1", monday)

		assert.NoError(t, err)
		assert.Equal(t, 6, res.TotalSlots)
		assert.False(t, res.Slots[0].Available)
		assert.True(t, res.Slots[2].Blocked)
		assert.Equal(t, 4, res.AvailableSlots)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := svc.GetSlots(context.Background(), "shop-1", "not-a-date")

		assert.Error(t, err)
	})

	t.Run("inactive shop", func(t *testing.T) {
		shop := activeShop()
		shop.Status = constant.ShopStatusDisabled

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(shop, nil)

		_, err := svc.GetSlots(context.Background(), "shop-1", monday)

		assert.Error(t, err)
	})
}

func TestShopService_UpdateOwnShop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newShopService(ctrl)

	tests := []struct {
		name      string
		req       dto.UpdateShopRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "hours updated",
			req:  dto.UpdateShopRequest{OpenTime: "08:00", CloseTime: "18:00"},
			setupMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeShop(), nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeShop(), nil)
			},
			wantErr: false,
		},
		{
			name: "close before open rejected",
			req:  dto.UpdateShopRequest{OpenTime: "18:00", CloseTime: "08:00"},
			setupMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeShop(), nil)
			},
			wantErr: true,
		},
		{
			name: "new close must clear existing open",
			req:  dto.UpdateShopRequest{CloseTime: "08:00"},
			setupMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeShop(), nil)
			},
			wantErr: true,
		},
		{
			name: "no shop for caller",
			req:  dto.UpdateShopRequest{Bio: "best fades in town"},
			setupMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Shop{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.UpdateOwnShop(context.Background(), "owner-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestShopService_BlockSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newShopService(ctrl)

	req := dto.BlockSlotRequest{Date: monday, Time: "10:00"}

	tests := []struct {
		name      string
		req       dto.BlockSlotRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "slot blocked",
			req:  req,
			setupMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeShop(), nil)
				m.blockedRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.blockedRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "already blocked",
			req:  req,
			setupMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeShop(), nil)
				m.blockedRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: true,
		},
		{
			name:      "garbage date",
			req:       dto.BlockSlotRequest{Date: "someday", Time: "10:00"},
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.BlockSlot(context.Background(), "owner-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestShopService_UnblockSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newShopService(ctrl)

	t.Run("own slot removed", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeShop(), nil)
		m.blockedRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.BlockedSlot{ID: "blk-1", ShopID: "shop-1"}, nil)
		m.blockedRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.UnblockSlot(context.Background(), "owner-1", "blk-1"))
	})

	t.Run("slot of another shop", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeShop(), nil)
		m.blockedRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.BlockedSlot{ID: "blk-2", ShopID: "shop-2"}, nil)

		assert.Error(t, svc.UnblockSlot(context.Background(), "owner-1", "blk-2"))
	})
}

func TestShopService_SetShopStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newShopService(ctrl)

	m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).AnyTimes()

	t.Run("disabling also closes the shop", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeShop(), nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, constant.ShopStatusDisabled, fields[model.FieldStatus])
				assert.Equal(t, false, fields[model.FieldIsOpen])
				return nil
			})

		err := svc.SetShopStatus(context.Background(), "admin-1", "shop-1", dto.UpdateShopStatusRequest{Status: constant.ShopStatusDisabled})

		assert.NoError(t, err)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeShop(), nil)

		err := svc.SetShopStatus(context.Background(), "admin-1", "shop-1", dto.UpdateShopStatusRequest{Status: constant.ShopStatusActive})

		assert.NoError(t, err)
	})

	t.Run("unknown shop", func(t *testing.T) {
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Shop{}, nil)

		err := svc.SetShopStatus(context.Background(), "admin-1", "shop-x", dto.UpdateShopStatusRequest{Status: constant.ShopStatusActive})

		assert.Error(t, err)
	})
}

func TestShopService_SetCommission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newShopService(ctrl)

	percent := 12.5

	t.Run("commission updated", func(t *testing.T) {
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, percent, fields[model.FieldCommissionPercent])
				return nil
			})

		err := svc.SetCommission(context.Background(), "admin-1", "shop-1", dto.UpdateCommissionRequest{CommissionPercent: &percent})

		assert.NoError(t, err)
	})

	t.Run("unknown shop", func(t *testing.T) {
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.SetCommission(context.Background(), "admin-1", "shop-x", dto.UpdateCommissionRequest{CommissionPercent: &percent})

		assert.Error(t, err)
	})
}

func TestShopService_GetLocations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newShopService(ctrl)

	m.repo.EXPECT().ActiveLocations(gomock.Any()).Return([]repository.Location{
		{City: "Austin", Area: "Downtown"},
		{City: "Austin", Area: "East Side"},
		{City: "Dallas", Area: ""},
	}, nil)

	res, err := svc.GetLocations(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"Austin", "Dallas"}, res.Cities)
	assert.Equal(t, []string{"Downtown", "East Side"}, res.Areas["Austin"])
	assert.Empty(t, res.Areas["Dallas"])
}
