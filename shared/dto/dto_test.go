package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"cowork/shared/constant"
	"cowork/shared/dto"
	"cowork/shared/model"
	"cowork/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	modifiedAt := createdAt.Add(26 * time.Hour)

	var metadata dto.Metadata
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "guest",
		ModifiedBy: "admin@cowork.test",
	})

	assert.Equal(t, dto.Metadata{
		CreatedAt:  timezone.Format(createdAt, constant.DateFormat),
		ModifiedAt: timezone.Format(modifiedAt, constant.DateFormat),
		CreatedBy:  "guest",
		ModifiedBy: "admin@cowork.test",
	}, metadata)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		withDefaults bool
		expected     dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=price&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "price", SortDir: dto.SortDirAsc},
		},
		{
			name:         "defaults fill missing page and limit",
			query:        "sort_by=name",
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit, SortBy: "name"},
		},
		{
			name:     "no defaults leaves zero values",
			query:    "",
			expected: dto.QueryParams{},
		},
		{
			name:         "malformed and non positive values are ignored",
			query:        "page=abc&limit=-5&sort_dir=sideways",
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "limit is capped",
			query:    "page=1&limit=5000",
			expected: dto.QueryParams{Page: 1, Limit: constant.MaxValueLimit},
		},
		{
			name:     "blank sort column is ignored",
			query:    "sort_by=%20%20&sort_dir=DESC",
			expected: dto.QueryParams{SortDir: dto.SortDirDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/workspaces/?"+tt.query, nil)

			var params dto.QueryParams
			params.FromRequest(req, tt.withDefaults)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.QueryParams{}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 40, dto.QueryParams{Page: 3, Limit: 20}.Offset())
}
