package service_test

import (
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
	locationMocks "cowork/internal/domains/location/mocks"
	"cowork/internal/domains/location/model"
	"cowork/internal/domains/location/model/dto"
	"cowork/internal/domains/location/service"
	cacheMocks "cowork/shared/cache/mocks"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
)

func setup(t *testing.T) (*locationMocks.MockLocation, *cacheMocks.MockRedisCache, service.Location) {
	ctrl := gomock.NewController(t)

	mockRepo := locationMocks.NewMockLocation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return mockRepo, mockCache, service.New(mockRepo, cfg, mockCache, mocks.NewOtel())
}

func TestLocationService_Create(t *testing.T) {
	mockRepo, _, svc := setup(t)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, location model.Location) error {
			assert.Nil(t, location.State)
			assert.True(t, location.IsActive)

			return nil
		})

	res, err := svc.Create(context.Background(), dto.SaveLocationRequest{Name: "Koramangala", City: "Bengaluru"})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, "Koramangala", res.Name)
	assert.Equal(t, "guest", res.CreatedBy)
}

func TestLocationService_GetAll(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		_, mockCache, svc := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		require.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo, mockCache, svc := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		require.Error(t, err)
	})
}

func TestLocationService_Get(t *testing.T) {
	mockRepo, mockCache, svc := setup(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Location{}, nil)

	_, err := svc.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestLocationService_UpdateStatus(t *testing.T) {
	mockRepo, _, svc := setup(t)

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, true, fields[model.FieldIsActive])

			return nil
		})

	err := svc.UpdateStatus(context.Background(), "loc-1", true)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
}

func TestLocationService_Delete(t *testing.T) {
	mockRepo, _, svc := setup(t)

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23503"})

	err := svc.Delete(context.Background(), "loc-1")

	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}
