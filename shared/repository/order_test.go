package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cowork/infras/otel/mocks"
	"cowork/shared/dto"
	"cowork/shared/model"
)

type sample struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	model.Metadata
}

func TestRepository_OrderClause(t *testing.T) {
	repo := NewRepository[sample]("sample", "samples", "id", nil, mocks.NewOtel())

	tests := []struct {
		name   string
		params dto.QueryParams
		want   string
	}{
		{
			name:   "defaults to newest first",
			params: dto.QueryParams{},
			want:   "ORDER BY samples.created_at DESC",
		},
		{
			name:   "known column",
			params: dto.QueryParams{SortBy: "name", SortDir: "asc"},
			want:   "ORDER BY samples.name ASC",
		},
		{
			name:   "unknown column is ignored",
			params: dto.QueryParams{SortBy: "name; DROP TABLE samples", SortDir: "ASC"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.orderClause(tt.params))
		})
	}
}
