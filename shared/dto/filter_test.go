package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cowork/shared/dto"
)

func TestFilterGroup_AppendIfPresent(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}
	group.AppendIfPresent(
		dto.Filter{Field: "city", Operator: dto.FilterOperatorEq, Value: "Pune", Table: "workspaces"},
		dto.Filter{Field: "name", Operator: dto.FilterOperatorLike, Value: "  "},
		dto.Filter{Field: "location_id", Operator: dto.FilterOperatorEq, Value: nil},
		dto.Filter{Field: "is_active", Operator: dto.FilterOperatorEq, Value: false, Table: "workspaces"},
	)

	assert.Len(t, group.Filters, 2)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(workspaces.city = :city AND workspaces.is_active = :is_active)", where)
	assert.Equal(t, map[string]any{"city": "Pune", "is_active": false}, args)
}
