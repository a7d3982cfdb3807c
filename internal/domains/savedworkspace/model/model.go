package model

import (
	"fmt"

	"cowork/shared/model"
)

const (
	TableName  = "saved_workspaces"
	EntityName = "saved workspace"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldWorkspaceID = "workspace_id"
)

type SavedWorkspace struct {
	ID             string   `db:"id"`
	UserID         string   `db:"user_id"`
	WorkspaceID    string   `db:"workspace_id"`
	WorkspaceName  *string  `db:"workspace_name"  table:"workspaces" column:"name"`
	WorkspaceType  *string  `db:"workspace_type"  table:"workspaces" column:"workspace_type"`
	WorkspaceCity  *string  `db:"workspace_city"  table:"workspaces" column:"city"`
	AmountPerMonth *float64 `db:"amount_per_month" table:"workspaces" column:"amount_per_month"`
	model.Metadata
}

func (SavedWorkspace) GetJoinQuery() string {
	return fmt.Sprintf("LEFT JOIN workspaces ON workspaces.id = %s.%s", TableName, FieldWorkspaceID)
}
