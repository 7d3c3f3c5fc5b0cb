package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	jwtLib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"trimly/config"
	"trimly/infras/jwt"
	jwtMocks "trimly/infras/jwt/mocks"
	"trimly/infras/otel/mocks"
	authMocks "trimly/internal/domains/auth/mocks"
	"trimly/internal/domains/auth/model/dto"
	"trimly/internal/domains/auth/service"
	userMocks "trimly/internal/domains/user/mocks"
	userModel "trimly/internal/domains/user/model"
	"trimly/shared/constant"
	"trimly/shared/timezone"
)

// "password" hashed with bcrypt.
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func validUser() userModel.User {
	return userModel.User{
		ID:       "user-id-123",
		FullName: "Test Customer",
		Email:    "test@example.com",
		Password: passwordHash,
		Role:     constant.RoleCustomer,
	}
}

func tokenPair() *jwt.TokenPair {
	return &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}
}

func refreshClaims(tokenID, userID string) *jwt.Claims {
	return &jwt.Claims{
		UserID:  userID,
		TokenID: tokenID,
		Type:    jwt.RefreshToken,
		RegisteredClaims: jwtLib.RegisteredClaims{
			ExpiresAt: jwtLib.NewNumericDate(timezone.Now().Add(24 * time.Hour)),
		},
	}
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockTokenRepo := authMocks.NewMockRefreshToken(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockTokenRepo, &config.Config{}, mockOtel, mockJWT)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful registration",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "email already registered",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "lookup error",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Register(context.Background(), dto.RegisterRequest{
				FullName: "Test Customer",
				Email:    "test@example.com",
				Password: "password",
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_RegisterBarber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockTokenRepo := authMocks.NewMockRefreshToken(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockTokenRepo, &config.Config{}, mockOtel, mockJWT)

	req := dto.RegisterBarberRequest{
		FullName: "Test Owner",
		Email:    "owner@example.com",
		Password: "password",
		ShopName: "Fade Factory",
		City:     "Austin",
	}

	t.Run("owner and pending shop created together", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockTokenRepo.EXPECT().
			CreateBarber(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.RegisterBarber(context.Background(), req))
	})

	t.Run("email taken", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		assert.Error(t, svc.RegisterBarber(context.Background(), req))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockTokenRepo := authMocks.NewMockRefreshToken(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockTokenRepo, &config.Config{}, mockOtel, mockJWT)

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func() {
				user := validUser()

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(user.ID, user.Email, user.Role).
					Return(tokenPair(), nil)

				mockJWT.EXPECT().
					ValidateToken("refresh-token", jwt.RefreshToken).
					Return(refreshClaims("token-id-1", user.ID), nil)

				mockTokenRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown email",
			req: dto.LoginRequest{
				Email:    "nobody@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "wrongpassword",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser(), nil)
			},
			wantErr: true,
		},
		{
			name: "token generation error",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func() {
				user := validUser()

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(user.ID, user.Email, user.Role).
					Return(nil, errors.New("token generation failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.AccessToken)
				assert.NotEmpty(t, res.RefreshToken)
				assert.Equal(t, constant.RoleCustomer, res.Role)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockTokenRepo := authMocks.NewMockRefreshToken(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockTokenRepo, &config.Config{}, mockOtel, mockJWT)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "token rotated",
			setupMock: func() {
				user := validUser()

				mockJWT.EXPECT().
					ValidateToken("old-refresh-token", jwt.RefreshToken).
					Return(refreshClaims("token-id-1", user.ID), nil)

				mockTokenRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockTokenRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockJWT.EXPECT().
					GenerateTokenPair(user.ID, user.Email, user.Role).
					Return(tokenPair(), nil)

				mockJWT.EXPECT().
					ValidateToken("refresh-token", jwt.RefreshToken).
					Return(refreshClaims("token-id-2", user.ID), nil)

				mockTokenRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "invalid token",
			setupMock: func() {
				mockJWT.EXPECT().
					ValidateToken("old-refresh-token", jwt.RefreshToken).
					Return(nil, jwt.ErrInvalidToken)
			},
			wantErr: true,
		},
		{
			name: "revoked token",
			setupMock: func() {
				mockJWT.EXPECT().
					ValidateToken("old-refresh-token", jwt.RefreshToken).
					Return(refreshClaims("token-id-1", "user-id-123"), nil)

				mockTokenRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "old-refresh-token"})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.AccessToken)
				assert.NotEmpty(t, res.RefreshToken)
			}
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockTokenRepo := authMocks.NewMockRefreshToken(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockTokenRepo, &config.Config{}, mockOtel, mockJWT)

	t.Run("refresh token revoked", func(t *testing.T) {
		mockJWT.EXPECT().
			ValidateToken("refresh-token", jwt.RefreshToken).
			Return(refreshClaims("token-id-1", "user-id-123"), nil)

		mockTokenRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Logout(context.Background(), dto.LogoutRequest{RefreshToken: "refresh-token"}))
	})

	t.Run("invalid token", func(t *testing.T) {
		mockJWT.EXPECT().
			ValidateToken("garbage", jwt.RefreshToken).
			Return(nil, jwt.ErrInvalidToken)

		assert.Error(t, svc.Logout(context.Background(), dto.LogoutRequest{RefreshToken: "garbage"}))
	})
}
