package model

import (
	"time"

	"cowork/shared/model"
)

const (
	TableName  = "requirements"
	EntityName = "requirement"

	FieldID            = "id"
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldCompany       = "company"
	FieldCity          = "city"
	FieldWorkspaceType = "workspace_type"
	FieldSeats         = "seats"
	FieldBudget        = "budget"
	FieldMoveInDate    = "move_in_date"
	FieldMessage       = "message"
	FieldStatus        = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusComplete  = "complete"
)

// Requirement is a lead describing space the visitor is looking for, not tied to a listed workspace.
type Requirement struct {
	ID            string     `db:"id"`
	Name          string     `db:"name"`
	Email         string     `db:"email"`
	Phone         string     `db:"phone"`
	Company       *string    `db:"company"`
	City          *string    `db:"city"`
	WorkspaceType *string    `db:"workspace_type"`
	Seats         *int       `db:"seats"`
	Budget        *float64   `db:"budget"`
	MoveInDate    *time.Time `db:"move_in_date"`
	Message       *string    `db:"message"`
	Status        string     `db:"status"`
	model.Metadata
}
