//go:build wireinject
// +build wireinject

package di

import (
	"trimly/config"
	"trimly/infras/jwt"
	"trimly/infras/kafka"
	"trimly/infras/otel"
	"trimly/infras/postgres"
	"trimly/infras/redis"
	"trimly/permissions"
	"trimly/shared/cache"
	"trimly/transport/http"
	"trimly/transport/http/middleware"
	"trimly/transport/http/router"

	authRepository "trimly/internal/domains/auth/repository"
	authService "trimly/internal/domains/auth/service"
	bookingRepository "trimly/internal/domains/booking/repository"
	bookingService "trimly/internal/domains/booking/service"
	"trimly/internal/domains/notification/dispatcher"
	notificationRepository "trimly/internal/domains/notification/repository"
	notificationService "trimly/internal/domains/notification/service"
	shopRepository "trimly/internal/domains/shop/repository"
	shopService "trimly/internal/domains/shop/service"
	userRepository "trimly/internal/domains/user/repository"
	userService "trimly/internal/domains/user/service"

	adminHandler "trimly/internal/handlers/admin"
	authHandler "trimly/internal/handlers/auth"
	barberHandler "trimly/internal/handlers/barber"
	bookingHandler "trimly/internal/handlers/booking"
	customerHandler "trimly/internal/handlers/customer"
	notificationHandler "trimly/internal/handlers/notification"
	shopHandler "trimly/internal/handlers/shop"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authRepository.New,
	authService.New,
)

var shopDomain = wire.NewSet(
	shopRepository.New,
	shopRepository.NewService,
	shopRepository.NewBlockedSlot,
	shopService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	dispatcher.New,
	notificationService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	shopDomain,
	bookingDomain,
	notificationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	shopHandler.New,
	customerHandler.New,
	bookingHandler.New,
	barberHandler.New,
	adminHandler.New,
	notificationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
