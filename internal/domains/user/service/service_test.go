package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cowork/config"
	"cowork/infras/otel/mocks"
	userMocks "cowork/internal/domains/user/mocks"
	"cowork/internal/domains/user/model"
	"cowork/internal/domains/user/model/dto"
	"cowork/internal/domains/user/service"
	cacheMocks "cowork/shared/cache/mocks"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
	"cowork/shared/identity"
	"cowork/shared/password"
)

func setup(t *testing.T) (*userMocks.MockUser, *cacheMocks.MockRedisCache, service.User) {
	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return mockRepo, mockCache, service.New(mockRepo, cfg, mockCache, mocks.NewOtel())
}

func adminContext() context.Context {
	return identity.WithUser(context.Background(), identity.User{ID: "admin-1", Email: "admin@example.com", Role: constant.RoleAdmin})
}

func TestUserService_Create(t *testing.T) {
	t.Run("hashes the password and lower-cases the email", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user model.User) error {
				assert.Equal(t, "staff@example.com", user.Email)
				assert.Equal(t, constant.RoleAdmin, user.Role)
				assert.Equal(t, "admin-1", user.CreatedBy)
				assert.NoError(t, password.Verify("secret-pass", user.Password))

				return nil
			})

		err := svc.Create(adminContext(), dto.CreateUserRequest{
			Email:    " Staff@Example.com ",
			Password: "secret-pass",
			Role:     constant.RoleAdmin,
		})

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
	})

	t.Run("email already registered", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Create(adminContext(), dto.CreateUserRequest{Email: "staff@example.com", Password: "secret-pass"})

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestUserService_Get(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(repo *userMocks.MockUser)
		wantCode int
	}{
		{
			name: "found",
			setup: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1", Email: "a@example.com", Role: constant.RoleUser}, nil)
			},
		},
		{
			name: "not found",
			setup: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setup: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo, mockCache, svc := setup(t)

			mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
			tt.setup(mockRepo)

			res, err := svc.Get(context.Background(), "user-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "user-1", res.ID)
		})
	}
}

func TestUserService_GetAll(t *testing.T) {
	mockRepo, mockCache, svc := setup(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.User{{ID: "a"}, {ID: "b"}}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Len(t, res.Users, 2)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
}

func TestUserService_Update(t *testing.T) {
	role := constant.RoleAdmin
	inactive := false

	t.Run("empty request", func(t *testing.T) {
		_, _, svc := setup(t)

		err := svc.Update(adminContext(), dto.UpdateUserRequest{}, "user-1")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("cannot change own role", func(t *testing.T) {
		_, _, svc := setup(t)

		err := svc.Update(adminContext(), dto.UpdateUserRequest{Role: &role}, "admin-1")

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("cannot deactivate self", func(t *testing.T) {
		_, _, svc := setup(t)

		err := svc.Update(adminContext(), dto.UpdateUserRequest{Active: &inactive}, "admin-1")

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("missing user", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(adminContext(), dto.UpdateUserRequest{Role: &role}, "user-1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("promotes another user", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, &role, fields[model.FieldRole])
				assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])
				assert.NotContains(t, fields, model.FieldActive)

				return nil
			})

		err := svc.Update(adminContext(), dto.UpdateUserRequest{Role: &role}, "user-1")

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("cannot delete self", func(t *testing.T) {
		_, _, svc := setup(t)

		err := svc.Delete(adminContext(), "admin-1")

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("deletes another user", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(adminContext(), "user-1")

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
	})
}
