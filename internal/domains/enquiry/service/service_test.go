package service_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"cowork/infras/otel/mocks"
	enquiryMocks "cowork/internal/domains/enquiry/mocks"
	"cowork/internal/domains/enquiry/model"
	"cowork/internal/domains/enquiry/model/dto"
	"cowork/internal/domains/enquiry/service"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
)

func setup(t *testing.T) (*enquiryMocks.MockEnquiry, service.Enquiry) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := enquiryMocks.NewMockEnquiry(ctrl)

	return repo, service.New(repo, mocks.NewOtel())
}

func TestEnquiryService_Create(t *testing.T) {
	repo, svc := setup(t)

	var stored model.Enquiry
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e model.Enquiry) error {
		stored = e

		return nil
	})

	res, err := svc.Create(context.Background(), dto.SaveEnquiryRequest{
		Name:    "Asha",
		Email:   "asha@example.com",
		Phone:   "9800000000",
		City:    "Pune",
		Message: "",
		Status:  model.StatusConfirmed,
	})

	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, stored.Status)
	assert.Nil(t, stored.WorkspaceID)
	assert.Nil(t, stored.WorkspaceType)
	assert.Nil(t, stored.Message)
	assert.Equal(t, "guest", stored.CreatedBy)
	assert.Equal(t, stored.ID, res.ID)
}

func TestEnquiryService_CreateErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "unknown workspace", err: &pq.Error{Code: "23503"}, wantCode: http.StatusBadRequest},
		{name: "database down", err: errors.New("connection refused"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := setup(t)

			repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(tt.err)

			_, err := svc.Create(context.Background(), dto.SaveEnquiryRequest{
				Name: "Asha", Email: "asha@example.com", Phone: "98", City: "Pune",
				WorkspaceID: "8f0c5c1e-4a6e-4d4b-9f59-3d3b5a0e7c11",
			})

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestEnquiryService_GetMissing(t *testing.T) {
	repo, svc := setup(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Enquiry{}, nil)

	_, err := svc.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestEnquiryService_UpdateStatus(t *testing.T) {
	repo, svc := setup(t)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, model.StatusProcess, fields[model.FieldStatus])
			assert.Len(t, fields, 3)

			return nil
		})

	require.NoError(t, svc.UpdateStatus(context.Background(), "e-1", model.StatusProcess))
}

func TestEnquiryService_Update(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		wantStatus any
	}{
		{name: "edit without status keeps the current one", status: "", wantStatus: nil},
		{name: "edit naming a status applies it", status: model.StatusComplete, wantStatus: model.StatusComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := setup(t)

			repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, "Asha Rao", fields[model.FieldName])
					assert.Equal(t, tt.wantStatus, fields[model.FieldStatus])

					_, hasStatus := fields[model.FieldStatus]
					assert.Equal(t, tt.status != "", hasStatus)

					return nil
				})

			err := svc.Update(context.Background(), dto.SaveEnquiryRequest{
				Name: "Asha Rao", Email: "asha@example.com", Phone: "9800000000", City: "Pune", Status: tt.status,
			}, "e-confirmed")

			require.NoError(t, err)
		})
	}
}

func TestEnquiryService_DeleteMissing(t *testing.T) {
	repo, svc := setup(t)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestEnquiryService_Export(t *testing.T) {
	repo, svc := setup(t)
	workspace := "Board Room"

	repo.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{}, gomock.Any()).Return([]model.Enquiry{
		{ID: "e-1", Name: "Asha", Email: "asha@example.com", Phone: "1", City: "Pune", WorkspaceName: &workspace, Status: model.StatusPending},
		{ID: "e-2", Name: "Ravi", Email: "ravi@example.com", Phone: "2", City: "Goa", Status: model.StatusComplete},
	}, nil)

	data, err := svc.Export(context.Background(), gDto.FilterGroup{})
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Enquiries")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "Board Room", rows[1][4])
	assert.Equal(t, "Ravi", rows[2][0])
}
