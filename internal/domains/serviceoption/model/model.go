package model

import "cowork/shared/model"

const (
	TableName  = "workspace_service_options"
	EntityName = "workspace_service_option"

	FieldID           = "id"
	FieldWorkspaceID  = "workspace_id"
	FieldName         = "name"
	FieldDescription  = "description"
	FieldPrice        = "price"
	FieldPriceUnit    = "price_unit"
	FieldDisplayOrder = "display_order"
	FieldIsActive     = "is_active"
)

type PriceUnit string

const (
	PriceUnitMonth PriceUnit = "month"
	PriceUnitDay   PriceUnit = "day"
	PriceUnitHour  PriceUnit = "hour"
	PriceUnitSeat  PriceUnit = "seat"
)

// ServiceOption is an add-on a workspace offers next to its base rate.
type ServiceOption struct {
	ID           string  `db:"id"`
	WorkspaceID  string  `db:"workspace_id"`
	Name         string  `db:"name"`
	Description  *string `db:"description"`
	Price        float64 `db:"price"`
	PriceUnit    string  `db:"price_unit"`
	DisplayOrder int     `db:"display_order"`
	IsActive     bool    `db:"is_active"`
	model.Metadata
}
