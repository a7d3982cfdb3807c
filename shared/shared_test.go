package shared_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cowork/shared"
	"cowork/shared/cache/mocks"
	"cowork/shared/constant"
	"cowork/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		input    string
		expected *bool
	}{
		{input: "", expected: nil},
		{input: "true", expected: boolPtr(true)},
		{input: "1", expected: boolPtr(true)},
		{input: "F", expected: boolPtr(false)},
		{input: "yes", expected: nil},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, shared.NullIfEmpty(""))
	assert.Nil(t, shared.NullIfEmpty("   "))

	value := shared.NullIfEmpty("  Soho  ")
	require.NotNil(t, value)
	assert.Equal(t, "Soho", *value)
}

func TestValueOrEmpty(t *testing.T) {
	name := "Hot desk"

	assert.Equal(t, "", shared.ValueOrEmpty(nil))
	assert.Equal(t, "Hot desk", shared.ValueOrEmpty(&name))
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "no rows", total: 0, limit: 10, expected: 1},
		{name: "invalid limit", total: 25, limit: 0, expected: 1},
		{name: "exact fit", total: 20, limit: 10, expected: 2},
		{name: "remainder", total: 21, limit: 10, expected: 3},
		{name: "single partial page", total: 3, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name     string  `db:"name"`
		Capacity int     `db:"capacity"`
		Price    *int    `db:"price"`
		City     string  `db:"city"`
		Internal string  `db:"-"`
		Notes    *string `db:"notes"`
		Untagged string
	}

	zero := 0

	result := shared.TransformFields(update{
		Name:     "Studio",
		Price:    &zero,
		Internal: "skip",
		Untagged: "skip",
	}, "admin@cowork.test")

	assert.Equal(t, "Studio", result["name"])
	assert.Equal(t, &zero, result["price"])
	assert.Equal(t, "admin@cowork.test", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])

	for _, column := range []string{"capacity", "city", "-", "notes"} {
		assert.NotContains(t, result, column)
	}

	assert.Len(t, result, 4)
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("ws-1", "id", "workspaces")

	require.Len(t, group.Filters, 1)
	assert.Equal(t, dto.Filter{
		Field:    "id",
		Value:    "ws-1",
		Operator: dto.FilterOperatorEq,
		Table:    "workspaces",
	}, group.Filters[0])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "workspaces", shared.BuildCacheKey("workspaces"))
	assert.Equal(t, "workspaces:detail:ws-1", shared.BuildCacheKey("workspaces", "detail", "ws-1"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	byCity := func(city string) dto.FilterGroup {
		return dto.FilterGroup{Filters: []any{dto.Filter{Field: "city", Value: city, Operator: dto.FilterOperatorEq}}}
	}

	first := shared.BuildCacheKeyWithQuery("workspaces:list", params, byCity("London"))
	again := shared.BuildCacheKeyWithQuery("workspaces:list", params, byCity("London"))
	other := shared.BuildCacheKeyWithQuery("workspaces:list", params, byCity("Leeds"))

	params.Page = 2
	nextPage := shared.BuildCacheKeyWithQuery("workspaces:list", params, byCity("London"))

	assert.True(t, strings.HasPrefix(first, "workspaces:list:"))
	assert.Equal(t, first, again)
	assert.NotEqual(t, first, other)
	assert.NotEqual(t, first, nextPage)
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "workspaces*").Return(nil)
	shared.InvalidateCaches(context.Background(), redisCache, "workspaces")

	redisCache.EXPECT().Clear(gomock.Any(), "coupons*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), redisCache, "coupons")
}

func boolPtr(value bool) *bool {
	return &value
}
