package dto

import (
	"strings"

	"cowork/internal/domains/profile/model"
	userModel "cowork/internal/domains/user/model"
	"cowork/shared"
	gDto "cowork/shared/dto"
	gModel "cowork/shared/model"
	"cowork/shared/timezone"
)

type SaveProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=120"`
	Email       string `json:"email"        validate:"omitempty,email,max=254"`
	Phone       string `json:"phone"        validate:"omitempty,max=20"`
}

func (r *SaveProfileRequest) ToModel(userID string) model.Profile {
	now := timezone.Now()

	return model.Profile{
		UserID:      userID,
		DisplayName: shared.NullIfEmpty(r.DisplayName),
		Email:       shared.NullIfEmpty(strings.ToLower(r.Email)),
		Phone:       shared.NullIfEmpty(r.Phone),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type ProfileResponse struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Saved       bool   `json:"saved"`
	gDto.Metadata
}

func (r *ProfileResponse) FromModel(model model.Profile) {
	r.UserID = model.UserID
	r.DisplayName = shared.ValueOrEmpty(model.DisplayName)
	r.Email = shared.ValueOrEmpty(model.Email)
	r.Phone = shared.ValueOrEmpty(model.Phone)
	r.Saved = true
	r.Metadata.FromModel(model.Metadata)
}

// FromUser fills a profile that was never saved from the account it belongs to.
func (r *ProfileResponse) FromUser(user userModel.User) {
	r.UserID = user.ID
	r.DisplayName = shared.ValueOrEmpty(user.Name)
	r.Email = user.Email
	r.Phone = shared.ValueOrEmpty(user.Phone)
	r.Saved = false
	r.Metadata.FromModel(user.Metadata)
}
