package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cowork/infras/otel/mocks"
	optionMocks "cowork/internal/domains/serviceoption/mocks"
	"cowork/internal/domains/serviceoption/model"
	"cowork/internal/domains/serviceoption/model/dto"
	"cowork/internal/domains/serviceoption/service"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
)

func TestServiceOptionService_Create(t *testing.T) {
	tests := []struct {
		name     string
		insert   error
		wantCode int
	}{
		{name: "successful creation"},
		{name: "unknown workspace", insert: &pq.Error{Code: "23503"}, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := optionMocks.NewMockServiceOption(ctrl)
			svc := service.New(mockRepo, mocks.NewOtel())

			mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(tt.insert)

			res, err := svc.Create(context.Background(), dto.SaveServiceOptionRequest{
				WorkspaceID: "8a4f5a3e-52a4-4bd4-9ad0-1f1c2a7c9e10",
				Name:        "Parking",
				Price:       1500,
				PriceUnit:   string(model.PriceUnitMonth),
			})

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Parking", res.Name)
			assert.True(t, res.IsActive)
		})
	}
}

func TestServiceOptionService_GetAllSortsByDisplayOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := optionMocks.NewMockServiceOption(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.ServiceOption, error) {
			assert.Equal(t, model.FieldDisplayOrder, params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)

			return []model.ServiceOption{{ID: "a", DisplayOrder: 1}, {ID: "b", DisplayOrder: 2}}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Len(t, res.ServiceOptions, 2)
	assert.Equal(t, 1, res.TotalPage)
}

func TestServiceOptionService_DeleteMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := optionMocks.NewMockServiceOption(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
