package service

import (
	"context"
	"fmt"

	"cowork/config"
	"cowork/infras/otel"
	"cowork/internal/domains/location/model"
	"cowork/internal/domains/location/model/dto"
	"cowork/internal/domains/location/repository"
	"cowork/shared"
	"cowork/shared/cache"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
	"cowork/shared/identity"
	gRepo "cowork/shared/repository"
	"cowork/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetLocation    = "location:get"
	cacheGetAllLocation = "location:gets"
)

type Location interface {
	Create(ctx context.Context, req dto.SaveLocationRequest) (dto.LocationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetLocationsResponse, error)
	Get(ctx context.Context, id string) (dto.LocationResponse, error)
	Update(ctx context.Context, req dto.SaveLocationRequest, id string) error
	UpdateStatus(ctx context.Context, id string, isActive bool) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Location
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Location, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Location {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.SaveLocationRequest) (res dto.LocationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	location := req.ToModel(identity.Actor(ctx))

	if err = s.repo.Insert(ctx, location); err != nil {
		log.Error().Err(err).Msg("failed to create location")

		return res, fmt.Errorf("failed to create location: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	res.FromModel(location)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetLocationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllLocation, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count locations")

		return res, fmt.Errorf("failed to count locations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get locations")

		return res, fmt.Errorf("failed to get locations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save locations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.LocationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetLocation, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	location, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get location")

		return res, fmt.Errorf("failed to get location: %w", err)
	}

	if location.ID == constant.Empty {
		return res, failure.NotFound("location not found") // nolint:wrapcheck
	}

	res.FromModel(location)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save location to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.SaveLocationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.update(ctx, id, req.ToUpdate(identity.Actor(ctx)))
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, isActive bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.update(ctx, id, map[string]any{
		model.FieldIsActive:      isActive,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: identity.Actor(ctx),
	})
}

func (s *serviceImpl) update(ctx context.Context, id string, fields map[string]any) error {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if location exists")

		return fmt.Errorf("failed to check if location exists: %w", err)
	}

	if !exist {
		return failure.NotFound("location not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update location")

		return fmt.Errorf("failed to update location: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check if location exists: %w", err)
	}

	if !exist {
		return failure.NotFound("location not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete location")

		if gRepo.IsForeignKeyViolation(err) {
			return failure.Conflict("location is used by workspaces") // nolint:wrapcheck
		}

		return fmt.Errorf("failed to delete location: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetLocation, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete location from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllLocation)
	}()
}
