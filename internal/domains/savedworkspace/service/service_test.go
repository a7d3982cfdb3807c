package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cowork/infras/otel/mocks"
	savedMocks "cowork/internal/domains/savedworkspace/mocks"
	"cowork/internal/domains/savedworkspace/model"
	"cowork/internal/domains/savedworkspace/model/dto"
	"cowork/internal/domains/savedworkspace/service"
	workspaceMocks "cowork/internal/domains/workspace/mocks"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
	"cowork/shared/identity"
)

const workspaceID = "5f0c2a8e-6d1b-4a57-9d83-3f1f5e2b7c10"

func setup(t *testing.T) (*savedMocks.MockSavedWorkspace, *workspaceMocks.MockWorkspace, service.SavedWorkspace) {
	ctrl := gomock.NewController(t)

	mockRepo := savedMocks.NewMockSavedWorkspace(ctrl)
	mockWorkspaces := workspaceMocks.NewMockWorkspace(ctrl)

	return mockRepo, mockWorkspaces, service.New(mockRepo, mockWorkspaces, mocks.NewOtel())
}

func signedIn() context.Context {
	return identity.WithUser(context.Background(), identity.User{ID: "user-1", Role: constant.RoleUser})
}

func TestSavedWorkspaceService_RequiresIdentity(t *testing.T) {
	_, _, svc := setup(t)

	_, err := svc.GetMine(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

	_, err = svc.Save(context.Background(), dto.SaveWorkspaceRequest{WorkspaceID: workspaceID})
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

	err = svc.Remove(context.Background(), workspaceID)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestSavedWorkspaceService_GetMine(t *testing.T) {
	mockRepo, _, svc := setup(t)

	name := "Hub One"

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.SavedWorkspace, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "saved_workspaces.user_id")
			assert.Equal(t, "user-1", args[model.FieldUserID])

			return []model.SavedWorkspace{{ID: "s-1", WorkspaceID: workspaceID, WorkspaceName: &name}}, nil
		})
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)

	res, err := svc.GetMine(signedIn(), gDto.QueryParams{Page: 1, Limit: 10})

	require.NoError(t, err)
	require.Len(t, res.SavedWorkspaces, 1)
	assert.Equal(t, "Hub One", res.SavedWorkspaces[0].WorkspaceName)
	assert.Equal(t, 1, res.TotalPage)
}

func TestSavedWorkspaceService_Save(t *testing.T) {
	t.Run("already saved returns the existing entry", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.SavedWorkspace{ID: "s-1", UserID: "user-1", WorkspaceID: workspaceID}, nil)

		res, err := svc.Save(signedIn(), dto.SaveWorkspaceRequest{WorkspaceID: workspaceID})

		require.NoError(t, err)
		assert.Equal(t, "s-1", res.ID)
	})

	t.Run("unknown workspace", func(t *testing.T) {
		mockRepo, mockWorkspaces, svc := setup(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.SavedWorkspace{}, nil)
		mockWorkspaces.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Save(signedIn(), dto.SaveWorkspaceRequest{WorkspaceID: workspaceID})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("inserts a new entry", func(t *testing.T) {
		mockRepo, mockWorkspaces, svc := setup(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.SavedWorkspace{}, nil)
		mockWorkspaces.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, saved model.SavedWorkspace) error {
				assert.Equal(t, "user-1", saved.UserID)
				assert.Equal(t, workspaceID, saved.WorkspaceID)
				assert.NotEmpty(t, saved.ID)

				return nil
			})

		res, err := svc.Save(signedIn(), dto.SaveWorkspaceRequest{WorkspaceID: workspaceID})

		require.NoError(t, err)
		assert.Equal(t, workspaceID, res.WorkspaceID)
	})

	t.Run("concurrent save resolves to the stored entry", func(t *testing.T) {
		mockRepo, mockWorkspaces, svc := setup(t)

		gomock.InOrder(
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.SavedWorkspace{}, nil),
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.SavedWorkspace{ID: "s-9", WorkspaceID: workspaceID}, nil),
		)
		mockWorkspaces.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})

		res, err := svc.Save(signedIn(), dto.SaveWorkspaceRequest{WorkspaceID: workspaceID})

		require.NoError(t, err)
		assert.Equal(t, "s-9", res.ID)
	})

	t.Run("database error", func(t *testing.T) {
		mockRepo, mockWorkspaces, svc := setup(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.SavedWorkspace{}, nil)
		mockWorkspaces.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		_, err := svc.Save(signedIn(), dto.SaveWorkspaceRequest{WorkspaceID: workspaceID})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestSavedWorkspaceService_Remove(t *testing.T) {
	mockRepo, _, svc := setup(t)

	mockRepo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) error {
			_, args := filter.GetWhereClause()
			assert.Equal(t, "user-1", args[model.FieldUserID])
			assert.Equal(t, workspaceID, args[model.FieldWorkspaceID])

			return nil
		})

	require.NoError(t, svc.Remove(signedIn(), workspaceID))
}
