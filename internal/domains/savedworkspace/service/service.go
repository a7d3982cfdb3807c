package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=SavedWorkspace=MockSavedWorkspaceService

import (
	"context"
	"fmt"

	"cowork/infras/otel"
	"cowork/internal/domains/savedworkspace/model"
	"cowork/internal/domains/savedworkspace/model/dto"
	"cowork/internal/domains/savedworkspace/repository"
	workspaceModel "cowork/internal/domains/workspace/model"
	workspaceRepo "cowork/internal/domains/workspace/repository"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
	"cowork/shared/identity"
	gRepo "cowork/shared/repository"

	"github.com/rs/zerolog/log"
)

const MessageSignIn = "please sign in to save workspaces"

// SavedWorkspace keeps the signed in user's shortlist. Saving twice and removing something
// that is not saved both succeed.
type SavedWorkspace interface {
	GetMine(ctx context.Context, req gDto.QueryParams) (dto.GetSavedWorkspacesResponse, error)
	Save(ctx context.Context, req dto.SaveWorkspaceRequest) (dto.SavedWorkspaceResponse, error)
	Remove(ctx context.Context, workspaceID string) error
}

type serviceImpl struct {
	repo          repository.SavedWorkspace
	workspaceRepo workspaceRepo.Workspace
	otel          otel.Otel
}

func New(repo repository.SavedWorkspace, workspaceRepo workspaceRepo.Workspace, otel otel.Otel) SavedWorkspace {
	return &serviceImpl{
		repo:          repo,
		workspaceRepo: workspaceRepo,
		otel:          otel,
	}
}

func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams) (res dto.GetSavedWorkspacesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller, ok := identity.FromContext(ctx)
	if !ok {
		return res, failure.Unauthorized(MessageSignIn) // nolint:wrapcheck
	}

	filter := shared.FilterByID(caller.ID, model.FieldUserID, model.TableName)

	saved, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get saved workspaces")

		return res, fmt.Errorf("failed to get saved workspaces: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count saved workspaces")

		return res, fmt.Errorf("failed to count saved workspaces: %w", err)
	}

	res.FromModels(saved, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Save(ctx context.Context, req dto.SaveWorkspaceRequest) (res dto.SavedWorkspaceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller, ok := identity.FromContext(ctx)
	if !ok {
		return res, failure.Unauthorized(MessageSignIn) // nolint:wrapcheck
	}

	existing, err := s.find(ctx, caller.ID, req.WorkspaceID)
	if err != nil {
		return res, err
	}

	if existing.ID != constant.Empty {
		res.FromModel(existing)

		return res, nil
	}

	exists, err := s.workspaceRepo.Exist(ctx, shared.FilterByID(req.WorkspaceID, workspaceModel.FieldID, workspaceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check workspace")

		return res, fmt.Errorf("failed to check workspace: %w", err)
	}

	if !exists {
		return res, failure.NotFound(workspaceModel.EntityName) // nolint:wrapcheck
	}

	saved := req.ToModel(caller.ID)

	if err = s.repo.Insert(ctx, saved); err != nil {
		if !gRepo.IsUniqueViolation(err) {
			log.Error().Err(err).Msg("failed to save workspace")

			return res, fmt.Errorf("failed to save workspace: %w", err)
		}

		// a concurrent save won
		if saved, err = s.find(ctx, caller.ID, req.WorkspaceID); err != nil {
			return res, err
		}
	}

	res.FromModel(saved)

	return res, nil
}

func (s *serviceImpl) Remove(ctx context.Context, workspaceID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller, ok := identity.FromContext(ctx)
	if !ok {
		return failure.Unauthorized(MessageSignIn) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, byUserAndWorkspace(caller.ID, workspaceID)); err != nil {
		log.Error().Err(err).Msg("failed to remove saved workspace")

		return fmt.Errorf("failed to remove saved workspace: %w", err)
	}

	return nil
}

func (s *serviceImpl) find(ctx context.Context, userID, workspaceID string) (model.SavedWorkspace, error) {
	saved, err := s.repo.Get(ctx, byUserAndWorkspace(userID, workspaceID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get saved workspace")

		return saved, fmt.Errorf("failed to get saved workspace: %w", err)
	}

	return saved, nil
}

func byUserAndWorkspace(userID, workspaceID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldUserID, Operator: gDto.FilterOperatorEq, Value: userID, Table: model.TableName},
			gDto.Filter{Field: model.FieldWorkspaceID, Operator: gDto.FilterOperatorEq, Value: workspaceID, Table: model.TableName},
		},
	}
}
