package dto

import (
	"cowork/internal/domains/sitecontent/model"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	gModel "cowork/shared/model"
	"cowork/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SaveSiteContentRequest struct {
	Section      string   `json:"section"       validate:"notblank,max=60"`
	Title        string   `json:"title"         validate:"notblank,max=150"`
	Description  string   `json:"description"   validate:"omitempty,max=5000"`
	Images       []string `json:"images"        validate:"omitempty,dive,url"`
	DisplayOrder int      `json:"display_order" validate:"gte=0"`
	IsActive     *bool    `json:"is_active"`
}

func (r *SaveSiteContentRequest) active() bool {
	return r.IsActive == nil || *r.IsActive
}

func (r *SaveSiteContentRequest) images() pq.StringArray {
	if r.Images == nil {
		return pq.StringArray{}
	}

	return pq.StringArray(r.Images)
}

func (r *SaveSiteContentRequest) ToModel(user string) model.SiteContent {
	now := timezone.Now()

	return model.SiteContent{
		ID:           uuid.NewString(),
		Section:      r.Section,
		Title:        r.Title,
		Description:  shared.NullIfEmpty(r.Description),
		Images:       r.images(),
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

func (r *SaveSiteContentRequest) ToUpdate(user string) map[string]any {
	return map[string]any{
		model.FieldSection:       r.Section,
		model.FieldTitle:         r.Title,
		model.FieldDescription:   shared.NullIfEmpty(r.Description),
		model.FieldImages:        r.images(),
		model.FieldDisplayOrder:  r.DisplayOrder,
		model.FieldIsActive:      r.active(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}
}

type UpdateStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type SiteContentResponse struct {
	ID           string   `json:"id"`
	Section      string   `json:"section"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Images       []string `json:"images"`
	DisplayOrder int      `json:"display_order"`
	IsActive     bool     `json:"is_active"`
	gDto.Metadata
}

func (r *SiteContentResponse) FromModel(model model.SiteContent) {
	r.ID = model.ID
	r.Section = model.Section
	r.Title = model.Title
	r.Description = shared.ValueOrEmpty(model.Description)
	r.Images = []string(model.Images)
	r.DisplayOrder = model.DisplayOrder
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)

	if r.Images == nil {
		r.Images = []string{}
	}
}

type GetSiteContentsResponse struct {
	Contents  []SiteContentResponse `json:"contents"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *GetSiteContentsResponse) FromModels(models []model.SiteContent, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Contents = make([]SiteContentResponse, len(models))
	for i, m := range models {
		r.Contents[i].FromModel(m)
	}
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}

type DeleteImagesRequest struct {
	ImageURLs []string `json:"image_urls" validate:"required,min=1,dive,url"`
}
