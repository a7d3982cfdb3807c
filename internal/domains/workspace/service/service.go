package service

import (
	"context"
	"fmt"
	"slices"

	"cowork/config"
	"cowork/infras/otel"
	"cowork/infras/s3"
	"cowork/internal/domains/workspace/model"
	"cowork/internal/domains/workspace/model/dto"
	"cowork/internal/domains/workspace/repository"
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
	cacheGetWorkspace    = "workspace:get"
	cacheGetAllWorkspace = "workspace:gets"
	cacheCountWorkspace  = "workspace:count"

	galleryDirectory = "workspaces"
)

type Workspace interface {
	Create(ctx context.Context, req dto.SaveWorkspaceRequest) (dto.WorkspaceResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetWorkspacesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string, includeInactive bool) (dto.WorkspaceResponse, error)
	Update(ctx context.Context, req dto.SaveWorkspaceRequest, id string) error
	UpdateStatus(ctx context.Context, id string, isActive bool) error
	Delete(ctx context.Context, id string) error
	AddGalleryImage(ctx context.Context, id string, image s3.Object) (string, error)
	RemoveGalleryImage(ctx context.Context, id, url string) error
}

type serviceImpl struct {
	repo    repository.Workspace
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	storage s3.Storage
}

func New(repo repository.Workspace, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, storage s3.Storage) Workspace {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		storage: storage,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.SaveWorkspaceRequest) (res dto.WorkspaceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	workspace, err := req.ToModel(identity.Actor(ctx))
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, workspace); err != nil {
		log.Error().Err(err).Msg("failed to create workspace")

		if gRepo.IsForeignKeyViolation(err) {
			return res, failure.BadRequestFromString("location does not exist") // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to create workspace: %w", err)
	}

	s.invalidateLists(ctx)

	res.FromModel(workspace)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetWorkspacesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllWorkspace, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for workspaces")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count workspaces")

		return res, fmt.Errorf("failed to count workspaces: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get workspaces")

		return res, fmt.Errorf("failed to get workspaces: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save workspaces to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountWorkspace, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count workspaces")

		return res, fmt.Errorf("failed to count workspaces: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save workspace count to cache")
		}
	}()

	return res, nil
}

// Get loads one workspace. Inactive workspaces are hidden unless includeInactive is set.
func (s *serviceImpl) Get(ctx context.Context, id string, includeInactive bool) (res dto.WorkspaceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetWorkspace, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err != nil {
		workspace, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get workspace")

			return res, fmt.Errorf("failed to get workspace: %w", err)
		}

		if workspace.ID == constant.Empty {
			return res, failure.NotFound("workspace not found") // nolint:wrapcheck
		}

		res.FromModel(workspace)

		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save workspace to cache")
			}
		}()
	}

	if !res.IsActive && !includeInactive {
		return dto.WorkspaceResponse{}, failure.NotFound("workspace not found") // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.SaveWorkspaceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.ensureExists(ctx, filter); err != nil {
		return err
	}

	updatedFields, err := req.ToUpdate(identity.Actor(ctx))
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update workspace")

		if gRepo.IsForeignKeyViolation(err) {
			return failure.BadRequestFromString("location does not exist") // nolint:wrapcheck
		}

		return fmt.Errorf("failed to update workspace: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, isActive bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.ensureExists(ctx, filter); err != nil {
		return err
	}

	updatedFields := map[string]any{
		model.FieldIsActive:      isActive,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: identity.Actor(ctx),
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update workspace status")

		return fmt.Errorf("failed to update workspace status: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	workspace, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get workspace")

		return fmt.Errorf("failed to get workspace: %w", err)
	}

	if workspace.ID == constant.Empty {
		return failure.NotFound("workspace not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete workspace")

		if gRepo.IsForeignKeyViolation(err) {
			return failure.Conflict("workspace has bookings, deactivate it instead") // nolint:wrapcheck
		}

		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		for _, url := range workspace.Gallery {
			if err := s.storage.Remove(c, url); err != nil {
				log.Error().Err(err).Str("url", url).Msg("failed to remove workspace image")
			}
		}
	}()

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) AddGalleryImage(ctx context.Context, id string, image s3.Object) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddGalleryImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	workspace, err := s.repo.Get(ctx, filter)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to get workspace: %w", err)
	}

	if workspace.ID == constant.Empty {
		return constant.Empty, failure.NotFound("workspace not found") // nolint:wrapcheck
	}

	url, err = s.storage.Put(ctx, galleryDirectory, image)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	updatedFields := map[string]any{
		model.FieldGallery:       append(workspace.Gallery, url),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: identity.Actor(ctx),
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to attach image to workspace")

		if rmErr := s.storage.Remove(ctx, url); rmErr != nil {
			log.Error().Err(rmErr).Str("url", url).Msg("failed to remove orphan image")
		}

		return constant.Empty, fmt.Errorf("failed to attach image: %w", err)
	}

	s.invalidate(ctx, id)

	return url, nil
}

func (s *serviceImpl) RemoveGalleryImage(ctx context.Context, id, url string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveGalleryImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	workspace, err := s.repo.Get(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to get workspace: %w", err)
	}

	if workspace.ID == constant.Empty {
		return failure.NotFound("workspace not found") // nolint:wrapcheck
	}

	if !slices.Contains(workspace.Gallery, url) {
		return failure.NotFound("image not found") // nolint:wrapcheck
	}

	remaining := slices.DeleteFunc(slices.Clone(workspace.Gallery), func(item string) bool { return item == url })

	updatedFields := map[string]any{
		model.FieldGallery:       remaining,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: identity.Actor(ctx),
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		return fmt.Errorf("failed to detach image: %w", err)
	}

	if err = s.storage.Remove(ctx, url); err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to remove image from storage")
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) ensureExists(ctx context.Context, filter gDto.FilterGroup) error {
	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if workspace exists")

		return fmt.Errorf("failed to check if workspace exists: %w", err)
	}

	if !exist {
		return failure.NotFound("workspace not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetWorkspace, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete workspace from cache")
		}
	}()

	s.invalidateLists(ctx)
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllWorkspace)
		shared.InvalidateCaches(c, s.cache, cacheCountWorkspace)
	}()
}
