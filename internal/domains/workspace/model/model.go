package model

import (
	"cowork/shared/model"

	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
)

const (
	TableName  = "workspaces"
	EntityName = "workspace"

	FieldID             = "id"
	FieldName           = "name"
	FieldWorkspaceType  = "workspace_type"
	FieldAmountPerMonth = "amount_per_month"
	FieldCapacity       = "capacity"
	FieldCity           = "city"
	FieldLocationID     = "location_id"
	FieldAddress        = "address"
	FieldGallery        = "gallery"
	FieldIsActive       = "is_active"
	FieldIsFeatured     = "is_featured"
)

type Workspace struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	WorkspaceType  string         `db:"workspace_type"`
	Description    *string        `db:"description"`
	AmountPerMonth float64        `db:"amount_per_month"`
	Capacity       *int           `db:"capacity"`
	LocationID     *string        `db:"location_id"`
	Address        string         `db:"address"`
	City           string         `db:"city"`
	State          *string        `db:"state"`
	Latitude       *float64       `db:"latitude"`
	Longitude      *float64       `db:"longitude"`
	Timings        types.JSONText `db:"timings"`
	NearbyPlaces   types.JSONText `db:"nearby_places"`
	Facilities     pq.StringArray `db:"facilities"`
	Amenities      pq.StringArray `db:"amenities"`
	Gallery        pq.StringArray `db:"gallery"`
	IsFeatured     bool           `db:"is_featured"`
	IsActive       bool           `db:"is_active"`
	model.Metadata
}

// Bookable reports whether the public flow may book the workspace.
func (w Workspace) Bookable() bool {
	return w.ID != "" && w.IsActive
}
