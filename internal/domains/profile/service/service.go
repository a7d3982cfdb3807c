package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Profile=MockProfileService

import (
	"context"
	"fmt"

	"cowork/infras/otel"
	"cowork/internal/domains/profile/model"
	"cowork/internal/domains/profile/model/dto"
	"cowork/internal/domains/profile/repository"
	userModel "cowork/internal/domains/user/model"
	userRepo "cowork/internal/domains/user/repository"
	"cowork/shared"
	"cowork/shared/constant"
	"cowork/shared/failure"
	"cowork/shared/identity"

	"github.com/rs/zerolog/log"
)

const MessageSignIn = "please sign in to manage your profile"

// Profile reads and saves the signed in user's own profile.
type Profile interface {
	Get(ctx context.Context) (dto.ProfileResponse, error)
	Save(ctx context.Context, req dto.SaveProfileRequest) (dto.ProfileResponse, error)
}

type serviceImpl struct {
	repo     repository.Profile
	userRepo userRepo.User
	otel     otel.Otel
}

func New(repo repository.Profile, userRepo userRepo.User, otel otel.Otel) Profile {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		otel:     otel,
	}
}

// Get falls back to the account details until a profile has been saved.
func (s *serviceImpl) Get(ctx context.Context) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller, ok := identity.FromContext(ctx)
	if !ok {
		return res, failure.Unauthorized(MessageSignIn) // nolint:wrapcheck
	}

	profile, err := s.repo.Get(ctx, shared.FilterByID(caller.ID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.UserID != constant.Empty {
		res.FromModel(profile)

		return res, nil
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(caller.ID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromUser(user)

	return res, nil
}

func (s *serviceImpl) Save(ctx context.Context, req dto.SaveProfileRequest) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller, ok := identity.FromContext(ctx)
	if !ok {
		return res, failure.Unauthorized(MessageSignIn) // nolint:wrapcheck
	}

	profile := req.ToModel(caller.ID)

	if err = s.repo.Upsert(ctx, profile); err != nil {
		log.Error().Err(err).Msg("failed to save profile")

		return res, fmt.Errorf("failed to save profile: %w", err)
	}

	res.FromModel(profile)

	return res, nil
}
