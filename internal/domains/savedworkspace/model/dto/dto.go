package dto

import (
	"cowork/internal/domains/savedworkspace/model"
	"cowork/shared"
	gDto "cowork/shared/dto"
	gModel "cowork/shared/model"
	"cowork/shared/timezone"

	"github.com/google/uuid"
)

type SaveWorkspaceRequest struct {
	WorkspaceID string `json:"workspace_id" validate:"required,uuid"`
}

func (r *SaveWorkspaceRequest) ToModel(userID string) model.SavedWorkspace {
	now := timezone.Now()

	return model.SavedWorkspace{
		ID:          uuid.NewString(),
		UserID:      userID,
		WorkspaceID: r.WorkspaceID,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type SavedWorkspaceResponse struct {
	ID             string   `json:"id"`
	WorkspaceID    string   `json:"workspace_id"`
	WorkspaceName  string   `json:"workspace_name"`
	WorkspaceType  string   `json:"workspace_type"`
	WorkspaceCity  string   `json:"workspace_city"`
	AmountPerMonth *float64 `json:"amount_per_month,omitempty"`
	SavedAt        string   `json:"saved_at"`
}

func (r *SavedWorkspaceResponse) FromModel(model model.SavedWorkspace) {
	var metadata gDto.Metadata
	metadata.FromModel(model.Metadata)

	r.ID = model.ID
	r.WorkspaceID = model.WorkspaceID
	r.WorkspaceName = shared.ValueOrEmpty(model.WorkspaceName)
	r.WorkspaceType = shared.ValueOrEmpty(model.WorkspaceType)
	r.WorkspaceCity = shared.ValueOrEmpty(model.WorkspaceCity)
	r.AmountPerMonth = model.AmountPerMonth
	r.SavedAt = metadata.CreatedAt
}

type GetSavedWorkspacesResponse struct {
	SavedWorkspaces []SavedWorkspaceResponse `json:"saved_workspaces"`
	TotalPage       int                      `json:"total_page"`
	TotalData       int                      `json:"total_data"`
}

func (r *GetSavedWorkspacesResponse) FromModels(models []model.SavedWorkspace, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.SavedWorkspaces = make([]SavedWorkspaceResponse, len(models))
	for i, mod := range models {
		r.SavedWorkspaces[i].FromModel(mod)
	}
}
