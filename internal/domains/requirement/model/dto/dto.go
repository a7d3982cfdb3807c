package dto

import (
	"strconv"
	"time"

	"cowork/internal/domains/requirement/model"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/export"
	gModel "cowork/shared/model"
	"cowork/shared/timezone"

	"github.com/google/uuid"
)

type SaveRequirementRequest struct {
	Name          string   `json:"name"           validate:"notblank,max=120"`
	Email         string   `json:"email"          validate:"required,email,max=254"`
	Phone         string   `json:"phone"          validate:"notblank,max=20"`
	Company       string   `json:"company"        validate:"omitempty,max=150"`
	City          string   `json:"city"           validate:"omitempty,max=120"`
	WorkspaceType string   `json:"workspace_type" validate:"omitempty,oneof=coworking serviced_office private_office meeting_room training_room virtual_office day_office"`
	Seats         *int     `json:"seats"          validate:"omitempty,min=1,max=10000"`
	Budget        *float64 `json:"budget"         validate:"omitempty,gte=0"`
	MoveInDate    string   `json:"move_in_date"   validate:"omitempty,datetime=2006-01-02"`
	Message       string   `json:"message"        validate:"omitempty,max=2000"`
	Status        string   `json:"status"         validate:"omitempty,oneof=pending confirmed complete"`
}

func (r *SaveRequirementRequest) moveInDate() *time.Time {
	if r.MoveInDate == constant.Empty {
		return nil
	}

	date, err := time.Parse(constant.DayFormat, r.MoveInDate)
	if err != nil {
		return nil
	}

	return &date
}

func (r *SaveRequirementRequest) ToModel(user string) model.Requirement {
	now := timezone.Now()

	return model.Requirement{
		ID:            uuid.NewString(),
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Company:       shared.NullIfEmpty(r.Company),
		City:          shared.NullIfEmpty(r.City),
		WorkspaceType: shared.NullIfEmpty(r.WorkspaceType),
		Seats:         r.Seats,
		Budget:        r.Budget,
		MoveInDate:    r.moveInDate(),
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
func (r *SaveRequirementRequest) ToUpdate(user string) map[string]any {
	fields := map[string]any{
		model.FieldName:          r.Name,
		model.FieldEmail:         r.Email,
		model.FieldPhone:         r.Phone,
		model.FieldCompany:       shared.NullIfEmpty(r.Company),
		model.FieldCity:          shared.NullIfEmpty(r.City),
		model.FieldWorkspaceType: shared.NullIfEmpty(r.WorkspaceType),
		model.FieldSeats:         r.Seats,
		model.FieldBudget:        r.Budget,
		model.FieldMoveInDate:    r.moveInDate(),
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
	Status string `json:"status" validate:"required,oneof=pending confirmed complete"`
}

type UpdatePayload struct {
	ID string `json:"id" validate:"required,uuid"`
	SaveRequirementRequest
}

type RequirementResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Company       string   `json:"company,omitempty"`
	City          string   `json:"city,omitempty"`
	WorkspaceType string   `json:"workspace_type,omitempty"`
	Seats         *int     `json:"seats,omitempty"`
	Budget        *float64 `json:"budget,omitempty"`
	MoveInDate    string   `json:"move_in_date,omitempty"`
	Message       string   `json:"message,omitempty"`
	Status        string   `json:"status"`
	gDto.Metadata
}

func (r *RequirementResponse) FromModel(model model.Requirement) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Company = shared.ValueOrEmpty(model.Company)
	r.City = shared.ValueOrEmpty(model.City)
	r.WorkspaceType = shared.ValueOrEmpty(model.WorkspaceType)
	r.Seats = model.Seats
	r.Budget = model.Budget
	r.Message = shared.ValueOrEmpty(model.Message)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)

	if model.MoveInDate != nil {
		r.MoveInDate = model.MoveInDate.Format(constant.DayFormat)
	}
}

type GetRequirementsResponse struct {
	Requirements []RequirementResponse `json:"requirements"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetRequirementsResponse) FromModels(models []model.Requirement, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Requirements = make([]RequirementResponse, len(models))
	for i, mod := range models {
		r.Requirements[i].FromModel(mod)
	}
}

func ExportTable(models []model.Requirement) export.Table {
	table := export.Table{
		Sheet: "Requirements",
		Headers: []string{
			"Name", "Email", "Phone", "Company", "City", "Workspace Type", "Seats", "Budget", "Move In", "Message", "Status", "Received At",
		},
		Rows: make([][]any, len(models)),
	}

	for i, mod := range models {
		var seats, budget, moveIn string

		if mod.Seats != nil {
			seats = strconv.Itoa(*mod.Seats)
		}

		if mod.Budget != nil {
			budget = strconv.FormatFloat(*mod.Budget, 'f', -1, 64)
		}

		if mod.MoveInDate != nil {
			moveIn = mod.MoveInDate.Format(constant.DayFormat)
		}

		table.Rows[i] = []any{
			mod.Name,
			mod.Email,
			mod.Phone,
			shared.ValueOrEmpty(mod.Company),
			shared.ValueOrEmpty(mod.City),
			shared.ValueOrEmpty(mod.WorkspaceType),
			seats,
			budget,
			moveIn,
			shared.ValueOrEmpty(mod.Message),
			mod.Status,
			timezone.Format(mod.CreatedAt, constant.ExportDayTime),
		}
	}

	return table
}
