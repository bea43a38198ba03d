//go:build wireinject
// +build wireinject

package di

import (
	"pitstop/config"
	"pitstop/infras/jwt"
	"pitstop/infras/kafka"
	"pitstop/infras/otel"
	"pitstop/infras/postgres"
	"pitstop/infras/redis"
	"pitstop/infras/s3"
	"pitstop/permissions"
	"pitstop/shared/cache"
	"pitstop/transport/http"
	"pitstop/transport/http/middleware"
	"pitstop/transport/http/router"

	"github.com/google/wire"

	appointmentRepository "pitstop/internal/domains/appointment/repository"
	appointmentService "pitstop/internal/domains/appointment/service"
	authService "pitstop/internal/domains/auth/service"
	catalogRepository "pitstop/internal/domains/catalog/repository"
	catalogService "pitstop/internal/domains/catalog/service"
	reviewRepository "pitstop/internal/domains/review/repository"
	reviewService "pitstop/internal/domains/review/service"
	stockRepository "pitstop/internal/domains/stock/repository"
	stockService "pitstop/internal/domains/stock/service"
	userRepository "pitstop/internal/domains/user/repository"
	userService "pitstop/internal/domains/user/service"

	appointmentHandler "pitstop/internal/handlers/appointment"
	authHandler "pitstop/internal/handlers/auth"
	catalogHandler "pitstop/internal/handlers/catalog"
	reviewHandler "pitstop/internal/handlers/review"
	stockHandler "pitstop/internal/handlers/stock"
	userHandler "pitstop/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.NewCategory,
	catalogRepository.NewService,
	catalogService.New,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var stockDomain = wire.NewSet(
	stockRepository.New,
	stockService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	catalogDomain,
	appointmentDomain,
	reviewDomain,
	stockDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	catalogHandler.New,
	appointmentHandler.New,
	reviewHandler.New,
	stockHandler.New,
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
