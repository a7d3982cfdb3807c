package service

import (
	"context"
	"fmt"

	"cowork/infras/otel"
	"cowork/internal/domains/serviceoption/model"
	"cowork/internal/domains/serviceoption/model/dto"
	"cowork/internal/domains/serviceoption/repository"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
	"cowork/shared/identity"
	gRepo "cowork/shared/repository"
	"cowork/shared/timezone"

	"github.com/rs/zerolog/log"
)

type ServiceOption interface {
	Create(ctx context.Context, req dto.SaveServiceOptionRequest) (dto.ServiceOptionResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetServiceOptionsResponse, error)
	Get(ctx context.Context, id string) (dto.ServiceOptionResponse, error)
	Update(ctx context.Context, req dto.SaveServiceOptionRequest, id string) error
	UpdateStatus(ctx context.Context, id string, isActive bool) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.ServiceOption
	otel otel.Otel
}

func New(repo repository.ServiceOption, otel otel.Otel) ServiceOption {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.SaveServiceOptionRequest) (res dto.ServiceOptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	option := req.ToModel(identity.Actor(ctx))

	if err = s.repo.Insert(ctx, option); err != nil {
		log.Error().Err(err).Msg("failed to create service option")

		if gRepo.IsForeignKeyViolation(err) {
			return res, failure.BadRequestFromString("workspace does not exist") // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to create service option: %w", err)
	}

	res.FromModel(option)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetServiceOptionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.SortBy == constant.Empty {
		req.SortBy = model.FieldDisplayOrder
		req.SortDir = gDto.SortDirAsc
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count service options: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service options")

		return res, fmt.Errorf("failed to get service options: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ServiceOptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	option, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get service option: %w", err)
	}

	if option.ID == constant.Empty {
		return res, failure.NotFound("service option not found") // nolint:wrapcheck
	}

	res.FromModel(option)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.SaveServiceOptionRequest, id string) (err error) {
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
		return fmt.Errorf("failed to check if service option exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service option not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update service option")

		if gRepo.IsForeignKeyViolation(err) {
			return failure.BadRequestFromString("workspace does not exist") // nolint:wrapcheck
		}

		return fmt.Errorf("failed to update service option: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check if service option exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service option not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete service option")

		return fmt.Errorf("failed to delete service option: %w", err)
	}

	return nil
}
