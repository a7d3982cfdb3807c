package dto

import (
	"cowork/internal/domains/serviceoption/model"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	gModel "cowork/shared/model"
	"cowork/shared/timezone"

	"github.com/google/uuid"
)

type SaveServiceOptionRequest struct {
	WorkspaceID  string  `json:"workspace_id"  validate:"required,uuid"`
	Name         string  `json:"name"          validate:"notblank,max=120"`
	Description  string  `json:"description"   validate:"omitempty,max=500"`
	Price        float64 `json:"price"         validate:"gte=0"`
	PriceUnit    string  `json:"price_unit"    validate:"required,oneof=month day hour seat"`
	DisplayOrder int     `json:"display_order" validate:"gte=0"`
	IsActive     *bool   `json:"is_active"`
}

func (r *SaveServiceOptionRequest) active() bool {
	return r.IsActive == nil || *r.IsActive
}

func (r *SaveServiceOptionRequest) ToModel(user string) model.ServiceOption {
	now := timezone.Now()

	return model.ServiceOption{
		ID:           uuid.NewString(),
		WorkspaceID:  r.WorkspaceID,
		Name:         r.Name,
		Description:  shared.NullIfEmpty(r.Description),
		Price:        r.Price,
		PriceUnit:    r.PriceUnit,
		DisplayOrder: r.DisplayOrder,
		IsActive:     r.active(),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func (r *SaveServiceOptionRequest) ToUpdate(user string) map[string]any {
	return map[string]any{
		model.FieldWorkspaceID:   r.WorkspaceID,
		model.FieldName:          r.Name,
		model.FieldDescription:   shared.NullIfEmpty(r.Description),
		model.FieldPrice:         r.Price,
		model.FieldPriceUnit:     r.PriceUnit,
		model.FieldDisplayOrder:  r.DisplayOrder,
		model.FieldIsActive:      r.active(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}
}

type UpdateStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type ServiceOptionResponse struct {
	ID           string  `json:"id"`
	WorkspaceID  string  `json:"workspace_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	PriceUnit    string  `json:"price_unit"`
	DisplayOrder int     `json:"display_order"`
	IsActive     bool    `json:"is_active"`
	gDto.Metadata
}

func (r *ServiceOptionResponse) FromModel(model model.ServiceOption) {
	r.ID = model.ID
	r.WorkspaceID = model.WorkspaceID
	r.Name = model.Name
	r.Description = shared.ValueOrEmpty(model.Description)
	r.Price = model.Price
	r.PriceUnit = model.PriceUnit
	r.DisplayOrder = model.DisplayOrder
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetServiceOptionsResponse struct {
	ServiceOptions []ServiceOptionResponse `json:"service_options"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetServiceOptionsResponse) FromModels(models []model.ServiceOption, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.ServiceOptions = make([]ServiceOptionResponse, len(models))
	for i, mod := range models {
		r.ServiceOptions[i].FromModel(mod)
	}
}
