//go:build wireinject
// +build wireinject

package di

import (
	"cowork/config"
	"cowork/infras/jwt"
	"cowork/infras/kafka"
	"cowork/infras/otel"
	"cowork/infras/postgres"
	"cowork/infras/redis"
	"cowork/infras/s3"
	"cowork/permissions"
	"cowork/shared/cache"
	"cowork/transport/http"
	"cowork/transport/http/middleware"
	"cowork/transport/http/router"

	"github.com/google/wire"

	authRepository "cowork/internal/domains/auth/repository"
	authService "cowork/internal/domains/auth/service"
	bookingRepository "cowork/internal/domains/booking/repository"
	bookingService "cowork/internal/domains/booking/service"
	couponRepository "cowork/internal/domains/coupon/repository"
	couponService "cowork/internal/domains/coupon/service"
	enquiryRepository "cowork/internal/domains/enquiry/repository"
	enquiryService "cowork/internal/domains/enquiry/service"
	locationRepository "cowork/internal/domains/location/repository"
	locationService "cowork/internal/domains/location/service"
	profileRepository "cowork/internal/domains/profile/repository"
	profileService "cowork/internal/domains/profile/service"
	requirementRepository "cowork/internal/domains/requirement/repository"
	requirementService "cowork/internal/domains/requirement/service"
	savedWorkspaceRepository "cowork/internal/domains/savedworkspace/repository"
	savedWorkspaceService "cowork/internal/domains/savedworkspace/service"
	serviceOptionRepository "cowork/internal/domains/serviceoption/repository"
	serviceOptionService "cowork/internal/domains/serviceoption/service"
	siteContentRepository "cowork/internal/domains/sitecontent/repository"
	siteContentService "cowork/internal/domains/sitecontent/service"
	userRepository "cowork/internal/domains/user/repository"
	userService "cowork/internal/domains/user/service"
	workspaceRepository "cowork/internal/domains/workspace/repository"
	workspaceService "cowork/internal/domains/workspace/service"

	authHandler "cowork/internal/handlers/auth"
	bookingHandler "cowork/internal/handlers/booking"
	couponHandler "cowork/internal/handlers/coupon"
	enquiryHandler "cowork/internal/handlers/enquiry"
	locationHandler "cowork/internal/handlers/location"
	profileHandler "cowork/internal/handlers/profile"
	requirementHandler "cowork/internal/handlers/requirement"
	savedWorkspaceHandler "cowork/internal/handlers/savedworkspace"
	serviceOptionHandler "cowork/internal/handlers/serviceoption"
	siteContentHandler "cowork/internal/handlers/sitecontent"
	userHandler "cowork/internal/handlers/user"
	workspaceHandler "cowork/internal/handlers/workspace"
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
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	provideOTPLimiter,
	provideInFlightGuard,
)

var identityDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authRepository.New,
	authService.New,
	profileRepository.New,
	profileService.New,
)

var catalogDomain = wire.NewSet(
	workspaceRepository.New,
	workspaceService.New,
	serviceOptionRepository.New,
	serviceOptionService.New,
	locationRepository.New,
	locationService.New,
	siteContentRepository.New,
	siteContentService.New,
	savedWorkspaceRepository.New,
	savedWorkspaceService.New,
)

var bookingDomain = wire.NewSet(
	couponRepository.New,
	couponService.New,
	bookingRepository.New,
	bookingService.New,
)

var leadDomain = wire.NewSet(
	enquiryRepository.New,
	enquiryService.New,
	requirementRepository.New,
	requirementService.New,
)

var domains = wire.NewSet(
	identityDomain,
	catalogDomain,
	bookingDomain,
	leadDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	profileHandler.New,
	workspaceHandler.New,
	serviceOptionHandler.New,
	locationHandler.New,
	siteContentHandler.New,
	couponHandler.New,
	bookingHandler.New,
	enquiryHandler.New,
	requirementHandler.New,
	savedWorkspaceHandler.New,
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
