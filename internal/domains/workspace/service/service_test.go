package service_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cowork/config"
	"cowork/infras/otel/mocks"
	"cowork/infras/s3"
	s3Mocks "cowork/infras/s3/mocks"
	"cowork/internal/domains/pricing"
	workspaceMocks "cowork/internal/domains/workspace/mocks"
	"cowork/internal/domains/workspace/model"
	"cowork/internal/domains/workspace/model/dto"
	"cowork/internal/domains/workspace/service"
	cacheMocks "cowork/shared/cache/mocks"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
	"cowork/shared/identity"
)

type fixture struct {
	repo    *workspaceMocks.MockWorkspace
	cache   *cacheMocks.MockRedisCache
	storage *s3Mocks.MockStorage
	svc     service.Workspace
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:    workspaceMocks.NewMockWorkspace(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
		storage: s3Mocks.NewMockStorage(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.storage)

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func adminCtx() context.Context {
	return identity.WithUser(context.Background(), identity.User{ID: "admin-1", Role: "admin"})
}

func validRequest() dto.SaveWorkspaceRequest {
	return dto.SaveWorkspaceRequest{
		Name:           "Skyline Hub",
		WorkspaceType:  "coworking",
		AmountPerMonth: 6000,
		Address:        "12 MG Road",
		City:           "Bengaluru",
	}
}

func TestWorkspaceService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, w model.Workspace) error {
						assert.Equal(t, "admin-1", w.CreatedBy)
						assert.NotEmpty(t, w.ID)

						return nil
					})
			},
		},
		{
			name: "unknown location",
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23503"})
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(adminCtx(), validRequest())

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Skyline Hub", res.Name)
			assert.Equal(t, []pricing.DurationType{pricing.Monthly}, res.AllowedDurations)
		})
	}
}

func TestWorkspaceService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Workspace{{ID: "ws-1", Name: "Skyline Hub", WorkspaceType: "meeting_room", IsActive: true}}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	require.Len(t, res.Workspaces, 1)
	assert.Equal(t, []pricing.DurationType{pricing.Daily, pricing.Monthly}, res.Workspaces[0].AllowedDurations)
}

func TestWorkspaceService_Get(t *testing.T) {
	tests := []struct {
		name            string
		found           model.Workspace
		includeInactive bool
		wantCode        int
	}{
		{
			name:  "active workspace",
			found: model.Workspace{ID: "ws-1", IsActive: true},
		},
		{
			name:     "missing workspace",
			found:    model.Workspace{},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "inactive workspace hidden from public",
			found:    model.Workspace{ID: "ws-1", IsActive: false},
			wantCode: http.StatusNotFound,
		},
		{
			name:            "inactive workspace visible to admin",
			found:           model.Workspace{ID: "ws-1", IsActive: false},
			includeInactive: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.cache.EXPECT().Get(gomock.Any(), "workspace:get:ws-1", gomock.Any()).Return(errors.New("cache miss"))
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.found, nil)

			res, err := f.svc.Get(context.Background(), "ws-1", tt.includeInactive)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "ws-1", res.ID)
		})
	}
}

func TestWorkspaceService_UpdateStatus(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, false, fields[model.FieldIsActive])
			assert.Len(t, fields, 3)

			return nil
		})

	err := f.svc.UpdateStatus(adminCtx(), "ws-1", false)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
}

func TestWorkspaceService_UpdateMissing(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := f.svc.Update(adminCtx(), validRequest(), "ws-404")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestWorkspaceService_Delete(t *testing.T) {
	t.Run("referenced by bookings", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Workspace{ID: "ws-1"}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23503"})

		err := f.svc.Delete(adminCtx(), "ws-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("removes gallery objects", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Workspace{ID: "ws-1", Gallery: pq.StringArray{"https://cdn.example.com/workspaces/a.jpg"}}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.storage.EXPECT().Remove(gomock.Any(), "https://cdn.example.com/workspaces/a.jpg").Return(nil)

		err := f.svc.Delete(adminCtx(), "ws-1")

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
	})
}

func TestWorkspaceService_Gallery(t *testing.T) {
	const url = "https://cdn.example.com/workspaces/new.png"

	t.Run("add image", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Workspace{ID: "ws-1"}, nil)
		f.storage.EXPECT().Put(gomock.Any(), "workspaces", gomock.Any()).Return(url, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, pq.StringArray{url}, fields[model.FieldGallery])

				return nil
			})

		got, err := f.svc.AddGalleryImage(adminCtx(), "ws-1", s3.Object{
			Filename:    "new.png",
			ContentType: "image/png",
			Size:        3,
			Body:        bytes.NewReader([]byte("png")),
		})

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, url, got)
	})

	t.Run("remove unknown image", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Workspace{ID: "ws-1"}, nil)

		err := f.svc.RemoveGalleryImage(adminCtx(), "ws-1", url)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
