package model

import (
	"cowork/shared/model"
)

const (
	TableName  = "profiles"
	EntityName = "profile"

	FieldUserID      = "user_id"
	FieldDisplayName = "display_name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
)

// Profile holds the contact details a user shows on bookings. There is at most one per user.
type Profile struct {
	UserID      string  `db:"user_id"`
	DisplayName *string `db:"display_name"`
	Email       *string `db:"email"`
	Phone       *string `db:"phone"`
	model.Metadata
}
