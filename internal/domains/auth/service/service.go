package service

import (
	"context"
	"fmt"
	"trimly/config"
	"trimly/infras/jwt"
	"trimly/infras/otel"
	"trimly/internal/domains/auth/model"
	"trimly/internal/domains/auth/model/dto"
	authRepo "trimly/internal/domains/auth/repository"
	userModel "trimly/internal/domains/user/model"
	userRepo "trimly/internal/domains/user/repository"
	"trimly/shared"
	"trimly/shared/constant"
	gDto "trimly/shared/dto"
	"trimly/shared/failure"
	gModel "trimly/shared/model"
	"trimly/shared/password"
	"trimly/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	RegisterBarber(ctx context.Context, req dto.RegisterBarberRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Logout(ctx context.Context, req dto.LogoutRequest) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	tokenRepo  authRepo.RefreshToken
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, tokenRepo authRepo.RefreshToken, cfg *config.Config, otel otel.Otel, jwtService jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwtService,
	}
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    userModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.userRepo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.userRepo.Insert(ctx, req.ToUserModel(hashedPassword)); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *serviceImpl) RegisterBarber(ctx context.Context, req dto.RegisterBarberRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegisterBarber")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.userRepo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	owner := req.ToUserModel(hashedPassword)

	if err = s.tokenRepo.CreateBarber(ctx, owner, req.ToShopModel(owner.ID)); err != nil {
		log.Error().Err(err).Msg("failed to register barber")

		return fmt.Errorf("failed to register barber: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString("invalid email or password") // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid email or password") // nolint:wrapcheck
	}

	tokenPair, err := s.issueTokens(ctx, user)
	if err != nil {
		return res, err
	}

	res.FromTokenPair(tokenPair, user)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to validate refresh token")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	filter := shared.FilterByID(claims.TokenID, model.FieldID, model.TableName)

	exists, err := s.tokenRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check refresh token")

		return res, fmt.Errorf("failed to check refresh token: %w", err)
	}

	if !exists {
		return res, failure.Unauthorized("refresh token revoked") // nolint:wrapcheck
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(claims.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	// Rotate: the presented token is spent either way.
	if err = s.tokenRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to revoke refresh token")

		return res, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	tokenPair, err := s.issueTokens(ctx, user)
	if err != nil {
		return res, err
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context, req dto.LogoutRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("logout with invalid refresh token")

		return failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	if err = s.tokenRepo.Delete(ctx, shared.FilterByID(claims.TokenID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to revoke refresh token")

		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// issueTokens generates a token pair and persists the refresh half so
// it can be revoked later.
func (s *serviceImpl) issueTokens(ctx context.Context, user userModel.User) (*jwt.TokenPair, error) {
	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	claims, err := s.jwtService.ValidateToken(tokenPair.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse issued refresh token")

		return nil, fmt.Errorf("failed to parse issued refresh token: %w", err)
	}

	record := model.RefreshToken{
		ID:        claims.TokenID,
		UserID:    user.ID,
		ExpiresAt: claims.ExpiresAt.Time,
		Metadata:  gModel.NewMetadata(user.ID, timezone.Now()),
	}

	if err = s.tokenRepo.Insert(ctx, record); err != nil {
		log.Error().Err(err).Msg("failed to store refresh token")

		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return tokenPair, nil
}
