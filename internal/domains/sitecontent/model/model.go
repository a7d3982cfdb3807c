package model

import (
	"cowork/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "site_content"
	EntityName = "site content"

	FieldID           = "id"
	FieldSection      = "section"
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldImages       = "images"
	FieldDisplayOrder = "display_order"
	FieldIsActive     = "is_active"
)

// SiteContent is a block of imagery and copy shown in one section of the public site.
type SiteContent struct {
	ID           string         `db:"id"`
	Section      string         `db:"section"`
	Title        string         `db:"title"`
	Description  *string        `db:"description"`
	Images       pq.StringArray `db:"images"`
	DisplayOrder int            `db:"display_order"`
	IsActive     bool           `db:"is_active"`
	model.Metadata
}
