package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=SiteContent=MockSiteContentService

import (
	"context"
	"errors"
	"fmt"

	"cowork/config"
	"cowork/infras/otel"
	"cowork/infras/s3"
	"cowork/internal/domains/sitecontent/model"
	"cowork/internal/domains/sitecontent/model/dto"
	"cowork/internal/domains/sitecontent/repository"
	"cowork/shared"
	"cowork/shared/cache"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
	"cowork/shared/identity"
	"cowork/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSiteContent    = "site_content:get"
	cacheGetAllSiteContent = "site_content:gets"

	imageDirectory = "site"
)

var ErrDeleteImages = errors.New("failed to delete images from storage")

type SiteContent interface {
	Create(ctx context.Context, req dto.SaveSiteContentRequest) (dto.SiteContentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSiteContentsResponse, error)
	Get(ctx context.Context, id string) (dto.SiteContentResponse, error)
	Update(ctx context.Context, req dto.SaveSiteContentRequest, id string) error
	UpdateStatus(ctx context.Context, id string, isActive bool) error
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, image s3.Object) (dto.UploadImageResponse, error)
	DeleteImages(ctx context.Context, req dto.DeleteImagesRequest) error
}

type serviceImpl struct {
	repo    repository.SiteContent
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	storage s3.Storage
}

func New(repo repository.SiteContent, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, storage s3.Storage) SiteContent {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		storage: storage,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.SaveSiteContentRequest) (res dto.SiteContentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	content := req.ToModel(identity.Actor(ctx))

	if err = s.repo.Insert(ctx, content); err != nil {
		log.Error().Err(err).Msg("failed to create site content")

		return res, fmt.Errorf("failed to create site content: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSiteContent)
	}()

	res.FromModel(content)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSiteContentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.SortBy == constant.Empty {
		req.SortBy = model.FieldDisplayOrder
		req.SortDir = gDto.SortDirAsc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSiteContent, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for site content")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count site content")

		return res, fmt.Errorf("failed to count site content: %w", err)
	}

	contents, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get site content")

		return res, fmt.Errorf("failed to get site content: %w", err)
	}

	res.FromModels(contents, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save site content to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SiteContentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetSiteContent, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for site content")

		return res, nil
	}

	content, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get site content")

		return res, fmt.Errorf("failed to get site content: %w", err)
	}

	if content.ID == constant.Empty {
		return res, failure.NotFound("site content not found") // nolint:wrapcheck
	}

	res.FromModel(content)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save site content to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.SaveSiteContentRequest, id string) (err error) {
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
		log.Error().Err(err).Msg("failed to check site content existence")

		return fmt.Errorf("failed to check site content: %w", err)
	}

	if !exist {
		return failure.NotFound("site content not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update site content")

		return fmt.Errorf("failed to update site content: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Delete removes the record and then, in the background, the images it referenced.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	content, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get site content for image deletion")

		return fmt.Errorf("failed to get site content: %w", err)
	}

	if content.ID == constant.Empty {
		return failure.NotFound("site content not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete site content")

		return fmt.Errorf("failed to delete site content: %w", err)
	}

	s.invalidate(ctx, id)

	if len(content.Images) > 0 {
		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.DeleteImages(c, dto.DeleteImagesRequest{ImageURLs: content.Images}); err != nil {
				log.Error().Err(err).Str("id", id).Msg("failed to delete site content images")
			}
		}()
	}

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, image s3.Object) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	url, err := s.storage.Put(ctx, imageDirectory, image)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload site image")

		return res, fmt.Errorf("failed to upload site image: %w", err)
	}

	res.FromModel(url, image.Filename)

	return res, nil
}

// DeleteImages removes every url it can and reports how many failed.
func (s *serviceImpl) DeleteImages(ctx context.Context, req dto.DeleteImagesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteImages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var failed int

	for _, url := range req.ImageURLs {
		if s.storage.ObjectKey(url) == constant.Empty {
			log.Warn().Str("url", url).Msg("url does not belong to the bucket")

			continue
		}

		if err := s.storage.Remove(ctx, url); err != nil {
			log.Error().Err(err).Str("url", url).Msg("failed to delete site image")

			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d images", ErrDeleteImages, failed)
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSiteContent, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete site content cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSiteContent)
	}()
}
