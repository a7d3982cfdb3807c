package model

import (
	"fmt"

	"cowork/shared/model"
)

const (
	TableName  = "enquiries"
	EntityName = "enquiry"

	FieldID            = "id"
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldCity          = "city"
	FieldWorkspaceID   = "workspace_id"
	FieldWorkspaceType = "workspace_type"
	FieldSeats         = "seats"
	FieldMessage       = "message"
	FieldStatus        = "status"
)

const (
	StatusPending   = "pending"
	StatusProcess   = "process"
	StatusConfirmed = "confirmed"
	StatusComplete  = "complete"
	StatusCancelled = "cancelled"
)

type Enquiry struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	Email         string  `db:"email"`
	Phone         string  `db:"phone"`
	City          string  `db:"city"`
	WorkspaceID   *string `db:"workspace_id"`
	WorkspaceName *string `db:"workspace_name" table:"workspaces" column:"name"`
	WorkspaceType *string `db:"workspace_type"`
	Seats         *int    `db:"seats"`
	Message       *string `db:"message"`
	Status        string  `db:"status"`
	model.Metadata
}

func (Enquiry) GetJoinQuery() string {
	return fmt.Sprintf("LEFT JOIN workspaces ON workspaces.id = %s.%s", TableName, FieldWorkspaceID)
}
