package model

import "cowork/shared/model"

const (
	TableName  = "locations"
	EntityName = "location"

	FieldID       = "id"
	FieldName     = "name"
	FieldCity     = "city"
	FieldState    = "state"
	FieldImageURL = "image_url"
	FieldIsActive = "is_active"
)

type Location struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	City     string  `db:"city"`
	State    *string `db:"state"`
	ImageURL *string `db:"image_url"`
	IsActive bool    `db:"is_active"`
	model.Metadata
}
