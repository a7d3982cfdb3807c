package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Enquiry=MockEnquiryService

import (
	"context"
	"fmt"

	"cowork/infras/otel"
	"cowork/internal/domains/enquiry/model"
	"cowork/internal/domains/enquiry/model/dto"
	"cowork/internal/domains/enquiry/repository"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/export"
	"cowork/shared/failure"
	"cowork/shared/identity"
	"cowork/shared/metrics"
	gRepo "cowork/shared/repository"
	"cowork/shared/timezone"

	"github.com/rs/zerolog/log"
)

const submissionKind = "enquiry"

type Enquiry interface {
	Create(ctx context.Context, req dto.SaveEnquiryRequest) (dto.EnquiryResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEnquiriesResponse, error)
	Get(ctx context.Context, id string) (dto.EnquiryResponse, error)
	Update(ctx context.Context, req dto.SaveEnquiryRequest, id string) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, filter gDto.FilterGroup) ([]byte, error)
}

type serviceImpl struct {
	repo repository.Enquiry
	otel otel.Otel
}

func New(repo repository.Enquiry, otel otel.Otel) Enquiry {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Create stores a public enquiry with a single insert.
func (s *serviceImpl) Create(ctx context.Context, req dto.SaveEnquiryRequest) (res dto.EnquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	enquiry := req.ToModel(identity.Actor(ctx))

	if err = s.repo.Insert(ctx, enquiry); err != nil {
		log.Error().Err(err).Msg("failed to create enquiry")

		if gRepo.IsForeignKeyViolation(err) {
			return res, failure.BadRequestFromString("workspace does not exist") // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to create enquiry: %w", err)
	}

	metrics.IncSubmission(submissionKind)

	res.FromModel(enquiry)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEnquiriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	enquiries, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get enquiries")

		return res, fmt.Errorf("failed to get enquiries: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count enquiries")

		return res, fmt.Errorf("failed to count enquiries: %w", err)
	}

	res.FromModels(enquiries, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EnquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	enquiry, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get enquiry")

		return res, fmt.Errorf("failed to get enquiry: %w", err)
	}

	if enquiry.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(enquiry)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.SaveEnquiryRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureExists(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, req.ToUpdate(identity.Actor(ctx)), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update enquiry")

		if gRepo.IsForeignKeyViolation(err) {
			return failure.BadRequestFromString("workspace does not exist") // nolint:wrapcheck
		}

		return fmt.Errorf("failed to update enquiry: %w", err)
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
		log.Error().Err(err).Msg("failed to update enquiry status")

		return fmt.Errorf("failed to update enquiry status: %w", err)
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
		log.Error().Err(err).Msg("failed to delete enquiry")

		return fmt.Errorf("failed to delete enquiry: %w", err)
	}

	return nil
}

// Export renders every enquiry matching filter as an xlsx workbook.
func (s *serviceImpl) Export(ctx context.Context, filter gDto.FilterGroup) (data []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	enquiries, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get enquiries for export")

		return nil, fmt.Errorf("failed to get enquiries for export: %w", err)
	}

	data, err = export.XLSX(dto.ExportTable(enquiries))
	if err != nil {
		log.Error().Err(err).Msg("failed to render enquiries export")

		return nil, fmt.Errorf("failed to render enquiries export: %w", err)
	}

	return data, nil
}

func (s *serviceImpl) ensureExists(ctx context.Context, id string) error {
	exists, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check enquiry")

		return fmt.Errorf("failed to check enquiry: %w", err)
	}

	if !exists {
		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	return nil
}
