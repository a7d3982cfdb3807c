package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Requirement=MockRequirementService

import (
	"context"
	"fmt"

	"cowork/infras/otel"
	"cowork/internal/domains/requirement/model"
	"cowork/internal/domains/requirement/model/dto"
	"cowork/internal/domains/requirement/repository"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/export"
	"cowork/shared/failure"
	"cowork/shared/identity"
	"cowork/shared/metrics"
	"cowork/shared/timezone"

	"github.com/rs/zerolog/log"
)

const submissionKind = "requirement"

type Requirement interface {
	Create(ctx context.Context, req dto.SaveRequirementRequest) (dto.RequirementResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRequirementsResponse, error)
	Get(ctx context.Context, id string) (dto.RequirementResponse, error)
	Update(ctx context.Context, req dto.SaveRequirementRequest, id string) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, filter gDto.FilterGroup) ([]byte, error)
}

type serviceImpl struct {
	repo repository.Requirement
	otel otel.Otel
}

func New(repo repository.Requirement, otel otel.Otel) Requirement {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Create stores a public requirement with a single insert.
func (s *serviceImpl) Create(ctx context.Context, req dto.SaveRequirementRequest) (res dto.RequirementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	requirement := req.ToModel(identity.Actor(ctx))

	if err = s.repo.Insert(ctx, requirement); err != nil {
		log.Error().Err(err).Msg("failed to create requirement")

		return res, fmt.Errorf("failed to create requirement: %w", err)
	}

	metrics.IncSubmission(submissionKind)

	res.FromModel(requirement)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRequirementsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	requirements, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get requirements")

		return res, fmt.Errorf("failed to get requirements: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count requirements")

		return res, fmt.Errorf("failed to count requirements: %w", err)
	}

	res.FromModels(requirements, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RequirementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	requirement, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get requirement")

		return res, fmt.Errorf("failed to get requirement: %w", err)
	}

	if requirement.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(requirement)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.SaveRequirementRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureExists(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, req.ToUpdate(identity.Actor(ctx)), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update requirement")

		return fmt.Errorf("failed to update requirement: %w", err)
	}

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id, status string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureExists(ctx, id); err != nil {
		return err
	}

	fields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: identity.Actor(ctx),
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update requirement status")

		return fmt.Errorf("failed to update requirement status: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureExists(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete requirement")

		return fmt.Errorf("failed to delete requirement: %w", err)
	}

	return nil
}

// Export renders every requirement matching filter as an xlsx workbook.
func (s *serviceImpl) Export(ctx context.Context, filter gDto.FilterGroup) (data []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	requirements, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get requirements for export")

		return nil, fmt.Errorf("failed to get requirements for export: %w", err)
	}

	data, err = export.XLSX(dto.ExportTable(requirements))
	if err != nil {
		log.Error().Err(err).Msg("failed to render requirements export")

		return nil, fmt.Errorf("failed to render requirements export: %w", err)
	}

	return data, nil
}

func (s *serviceImpl) ensureExists(ctx context.Context, id string) error {
	exists, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check requirement")

		return fmt.Errorf("failed to check requirement: %w", err)
	}

	if !exists {
		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	return nil
}
