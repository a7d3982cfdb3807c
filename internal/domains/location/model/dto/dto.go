package dto

import (
	"cowork/internal/domains/location/model"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	gModel "cowork/shared/model"
	"cowork/shared/timezone"

	"github.com/google/uuid"
)

type SaveLocationRequest struct {
	Name     string `json:"name"      validate:"notblank,max=120"`
	City     string `json:"city"      validate:"notblank,max=120"`
	State    string `json:"state"     validate:"omitempty,max=120"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
	IsActive *bool  `json:"is_active"`
}

func (r *SaveLocationRequest) active() bool {
	return r.IsActive == nil || *r.IsActive
}

func (r *SaveLocationRequest) ToModel(user string) model.Location {
	now := timezone.Now()

	return model.Location{
		ID:       uuid.NewString(),
		Name:     r.Name,
		City:     r.City,
		State:    shared.NullIfEmpty(r.State),
		ImageURL: shared.NullIfEmpty(r.ImageURL),
		IsActive: r.active(),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func (r *SaveLocationRequest) ToUpdate(user string) map[string]any {
	return map[string]any{
		model.FieldName:          r.Name,
		model.FieldCity:          r.City,
		model.FieldState:         shared.NullIfEmpty(r.State),
		model.FieldImageURL:      shared.NullIfEmpty(r.ImageURL),
		model.FieldIsActive:      r.active(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}
}

type UpdateStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type LocationResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	State    string `json:"state,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	IsActive bool   `json:"is_active"`
	gDto.Metadata
}

func (r *LocationResponse) FromModel(model model.Location) {
	r.ID = model.ID
	r.Name = model.Name
	r.City = model.City
	r.State = shared.ValueOrEmpty(model.State)
	r.ImageURL = shared.ValueOrEmpty(model.ImageURL)
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetLocationsResponse) FromModels(models []model.Location, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Locations = make([]LocationResponse, len(models))
	for i, mod := range models {
		r.Locations[i].FromModel(mod)
	}
}
