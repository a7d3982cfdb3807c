package dto

import (
	"strings"
	"time"

	"cowork/internal/domains/user/model"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	gModel "cowork/shared/model"
	"cowork/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email      string  `json:"email"                 validate:"required,email"`
	Password   string  `json:"password"              validate:"required,min=8"`
	Role       string  `json:"role"                  validate:"omitempty,oneof=user admin superadmin"`
	Name       *string `json:"name,omitempty"        validate:"omitempty,max=120"`
	Phone      *string `json:"phone,omitempty"       validate:"omitempty,max=20"`
	IsVerified *bool   `json:"is_verified,omitempty"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleUser
	}

	isVerified := false
	if r.IsVerified != nil {
		isVerified = *r.IsVerified
	}

	return model.User{
		ID:         uuid.NewString(),
		Email:      strings.ToLower(strings.TrimSpace(r.Email)),
		Password:   hashedPassword,
		Role:       role,
		Name:       r.Name,
		Phone:      r.Phone,
		IsVerified: isVerified,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UserResponse struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Name       *string    `json:"name,omitempty"`
	Phone      *string    `json:"phone,omitempty"`
	IsVerified bool       `json:"is_verified"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	Active     bool       `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.Name = model.Name
	r.Phone = model.Phone
	r.IsVerified = model.IsVerified
	r.LastLogin = model.LastLogin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

// UpdateUserRequest only writes the fields that are set.
type UpdateUserRequest struct {
	Role       *string `db:"role"        json:"role,omitempty"        validate:"omitempty,oneof=user admin superadmin"`
	Name       *string `db:"name"        json:"name,omitempty"        validate:"omitempty,max=120"`
	Phone      *string `db:"phone"       json:"phone,omitempty"       validate:"omitempty,max=20"`
	IsVerified *bool   `db:"is_verified" json:"is_verified,omitempty"`
	Active     *bool   `db:"active"      json:"active,omitempty"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

// FilterByEmail matches an address case-insensitively through its stored lower-case form.
func FilterByEmail(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(strings.TrimSpace(email)),
				Table:    model.TableName,
			},
		},
	}
}
