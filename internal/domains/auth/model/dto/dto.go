package dto

import (
	"trimly/infras/jwt"
	shopModel "trimly/internal/domains/shop/model"
	userModel "trimly/internal/domains/user/model"
	"trimly/shared"
	"trimly/shared/constant"
	gModel "trimly/shared/model"
	"trimly/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email,max=100"`
	Phone    string `json:"phone"     validate:"omitempty,max=20"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
}

func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	return userModel.User{
		ID:       uuid.NewString(),
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: hashedPassword,
		Role:     constant.RoleCustomer,
		Metadata: gModel.NewMetadata(constant.ContextGuest, timezone.Now()),
	}
}

type RegisterBarberRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email,max=100"`
	Phone    string `json:"phone"     validate:"omitempty,max=20"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	ShopName string `json:"shop_name" validate:"required,max=100"`
	Location string `json:"location"  validate:"omitempty,max=255"`
	City     string `json:"city"      validate:"omitempty,max=100"`
	Area     string `json:"area"      validate:"omitempty,max=100"`
}

func (r *RegisterBarberRequest) ToUserModel(hashedPassword string) userModel.User {
	return userModel.User{
		ID:       uuid.NewString(),
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: hashedPassword,
		Role:     constant.RoleOwner,
		Metadata: gModel.NewMetadata(constant.ContextGuest, timezone.Now()),
	}
}

// ToShopModel builds the owner's shop, pending admin approval.
func (r *RegisterBarberRequest) ToShopModel(ownerID string) shopModel.Shop {
	id := uuid.NewString()

	return shopModel.Shop{
		ID:                  id,
		OwnerID:             ownerID,
		ShopName:            r.ShopName,
		Slug:                shared.Slugify(r.ShopName) + "-" + id[:8],
		Location:            r.Location,
		City:                r.City,
		Area:                r.Area,
		Phone:               r.Phone,
		Status:              constant.ShopStatusPending,
		IsOpen:              false,
		Seats:               shopModel.DefaultSeats,
		CommissionPercent:   shopModel.DefaultCommissionPercent,
		WorkDays:            shopModel.DefaultWorkDays,
		OpenTime:            shopModel.DefaultOpenTime,
		CloseTime:           shopModel.DefaultCloseTime,
		SlotDurationMinutes: shopModel.DefaultSlotDurationMinutes,
		Metadata:            gModel.NewMetadata(ownerID, timezone.Now()),
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	UserID       string `json:"user_id"`
	FullName     string `json:"full_name"`
	Role         string `json:"role"`
}

func (r *LoginResponse) FromTokenPair(pair *jwt.TokenPair, user userModel.User) {
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
	r.TokenType = pair.TokenType
	r.ExpiresIn = pair.ExpiresIn
	r.UserID = user.ID
	r.FullName = user.FullName
	r.Role = user.Role
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(pair *jwt.TokenPair) {
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
	r.TokenType = pair.TokenType
	r.ExpiresIn = pair.ExpiresIn
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
