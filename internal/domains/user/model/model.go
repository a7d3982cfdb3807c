package model

import (
	"time"

	"cowork/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID         = "id"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldRole       = "role"
	FieldName       = "name"
	FieldPhone      = "phone"
	FieldIsVerified = "is_verified"
	FieldLastLogin  = "last_login"
	FieldActive     = "active"
)

// User is a login identity. Role replaces a separate user_roles table.
type User struct {
	ID         string     `db:"id"`
	Email      string     `db:"email"`
	Password   string     `db:"password"`
	Role       string     `db:"role"`
	Name       *string    `db:"name"`
	Phone      *string    `db:"phone"`
	IsVerified bool       `db:"is_verified"`
	LastLogin  *time.Time `db:"last_login"`
	Active     bool       `db:"active"`
	model.Metadata
}
