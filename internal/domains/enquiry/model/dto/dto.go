package dto

import (
	"strconv"

	"cowork/internal/domains/enquiry/model"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/export"
	gModel "cowork/shared/model"
	"cowork/shared/timezone"

	"github.com/google/uuid"
)

// SaveEnquiryRequest is the public form and the admin edit form. Blank optional fields are stored as NULL.
type SaveEnquiryRequest struct {
	Name          string `json:"name"           validate:"notblank,max=120"`
	Email         string `json:"email"          validate:"required,email,max=254"`
	Phone         string `json:"phone"          validate:"notblank,max=20"`
	City          string `json:"city"           validate:"notblank,max=120"`
	WorkspaceID   string `json:"workspace_id"   validate:"omitempty,uuid"`
	WorkspaceType string `json:"workspace_type" validate:"omitempty,oneof=coworking serviced_office private_office meeting_room training_room virtual_office day_office"`
	Seats         *int   `json:"seats"          validate:"omitempty,min=1,max=10000"`
	Message       string `json:"message"        validate:"omitempty,max=2000"`
	Status        string `json:"status"         validate:"omitempty,oneof=pending process confirmed complete cancelled"`
}

func (r *SaveEnquiryRequest) ToModel(user string) model.Enquiry {
	now := timezone.Now()

	return model.Enquiry{
		ID:            uuid.NewString(),
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		City:          r.City,
		WorkspaceID:   shared.NullIfEmpty(r.WorkspaceID),
		WorkspaceType: shared.NullIfEmpty(r.WorkspaceType),
		Seats:         r.Seats,
		Message:       shared.NullIfEmpty(r.Message),
		Status:        model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// ToUpdate keeps the current status unless the edit names one.
func (r *SaveEnquiryRequest) ToUpdate(user string) map[string]any {
	fields := map[string]any{
		model.FieldName:          r.Name,
		model.FieldEmail:         r.Email,
		model.FieldPhone:         r.Phone,
		model.FieldCity:          r.City,
		model.FieldWorkspaceID:   shared.NullIfEmpty(r.WorkspaceID),
		model.FieldWorkspaceType: shared.NullIfEmpty(r.WorkspaceType),
		model.FieldSeats:         r.Seats,
		model.FieldMessage:       shared.NullIfEmpty(r.Message),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if r.Status != constant.Empty {
		fields[model.FieldStatus] = r.Status
	}

	return fields
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending process confirmed complete cancelled"`
}

// UpdatePayload is the admin function payload for an edit.
type UpdatePayload struct {
	ID string `json:"id" validate:"required,uuid"`
	SaveEnquiryRequest
}

type EnquiryResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	City          string `json:"city"`
	WorkspaceID   string `json:"workspace_id,omitempty"`
	WorkspaceName string `json:"workspace_name,omitempty"`
	WorkspaceType string `json:"workspace_type,omitempty"`
	Seats         *int   `json:"seats,omitempty"`
	Message       string `json:"message,omitempty"`
	Status        string `json:"status"`
	gDto.Metadata
}

func (r *EnquiryResponse) FromModel(model model.Enquiry) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.City = model.City
	r.WorkspaceID = shared.ValueOrEmpty(model.WorkspaceID)
	r.WorkspaceName = shared.ValueOrEmpty(model.WorkspaceName)
	r.WorkspaceType = shared.ValueOrEmpty(model.WorkspaceType)
	r.Seats = model.Seats
	r.Message = shared.ValueOrEmpty(model.Message)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetEnquiriesResponse struct {
	Enquiries []EnquiryResponse `json:"enquiries"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetEnquiriesResponse) FromModels(models []model.Enquiry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Enquiries = make([]EnquiryResponse, len(models))
	for i, mod := range models {
		r.Enquiries[i].FromModel(mod)
	}
}

// ExportTable lays the enquiries out as one spreadsheet row each.
func ExportTable(models []model.Enquiry) export.Table {
	table := export.Table{
		Sheet:   "Enquiries",
		Headers: []string{"Name", "Email", "Phone", "City", "Workspace", "Workspace Type", "Seats", "Message", "Status", "Received At"},
		Rows:    make([][]any, len(models)),
	}

	for i, mod := range models {
		seats := constant.Empty
		if mod.Seats != nil {
			seats = strconv.Itoa(*mod.Seats)
		}

		table.Rows[i] = []any{
			mod.Name,
			mod.Email,
			mod.Phone,
			mod.City,
			shared.ValueOrEmpty(mod.WorkspaceName),
			shared.ValueOrEmpty(mod.WorkspaceType),
			seats,
			shared.ValueOrEmpty(mod.Message),
			mod.Status,
			timezone.Format(mod.CreatedAt, constant.ExportDayTime),
		}
	}

	return table
}
