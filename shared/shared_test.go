package shared_test

import (
	"testing"
	"time"
	"trimly/shared"
	"trimly/shared/constant"
	"trimly/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true", input: "true", expected: ptr(true)},
		{name: "false", input: "false", expected: ptr(false)},
		{name: "numeric one", input: "1", expected: ptr(true)},
		{name: "numeric zero", input: "0", expected: ptr(false)},
		{name: "uppercase", input: "TRUE", expected: ptr(true)},
		{name: "garbage returns nil", input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total still has one page", total: 0, limit: 10, expected: 1},
		{name: "zero limit still has one page", total: 100, limit: 0, expected: 1},
		{name: "negative limit still has one page", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "remainder adds a page", total: 101, limit: 10, expected: 11},
		{name: "limit above total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "already two decimals", input: 12.34, expected: 12.34},
		{name: "rounds down below half", input: 10.124, expected: 10.12},
		{name: "rounds half up", input: 10.125, expected: 10.13},
		{name: "ten percent commission on 150", input: 150.0 * 10 / 100, expected: 15.0},
		{name: "repeating fraction", input: 100.0 / 3, expected: 33.33},
		{name: "zero", input: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, shared.RoundMoney(tt.input), 0)
		})
	}
}

func TestTransformFields(t *testing.T) {
	type shopPatch struct {
		Name     string `db:"name"`
		Address  string `db:"address"`
		Rating   *int   `db:"rating"`
		Internal string
	}

	t.Run("zero fields and untagged fields are skipped", func(t *testing.T) {
		result := shared.TransformFields(shopPatch{Name: "Fade Factory", Internal: "dropped"}, "owner@example.com")

		assert.Equal(t, "Fade Factory", result["name"])
		assert.NotContains(t, result, "address")
		assert.NotContains(t, result, "rating")
		assert.Equal(t, "owner@example.com", result[constant.FieldModifiedBy])

		_, ok := result[constant.FieldModifiedAt].(time.Time)
		assert.True(t, ok)
	})

	t.Run("non-nil pointer to a zero value survives", func(t *testing.T) {
		rating := 0
		result := shared.TransformFields(shopPatch{Rating: &rating}, "admin@example.com")

		assert.Equal(t, &rating, result["rating"])
	})

	t.Run("empty patch still stamps the audit fields", func(t *testing.T) {
		result := shared.TransformFields(shopPatch{}, "admin@example.com")

		assert.Len(t, result, 2)
		assert.Equal(t, "admin@example.com", result[constant.FieldModifiedBy])
	})
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("shop-1", "id", "shops")

	require.Len(t, group.Filters, 1)

	filter, ok := group.Filters[0].(dto.Filter)
	require.True(t, ok)

	assert.Equal(t, "id", filter.Field)
	assert.Equal(t, "shop-1", filter.Value)
	assert.Equal(t, dto.FilterOperatorEq, filter.Operator)
	assert.Equal(t, "shops", filter.Table)

	where, args := group.GetWhereClause()
	assert.Equal(t, "(shops.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "shop-1"}, args)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple name", input: "Fade Factory", expected: "fade-factory"},
		{name: "punctuation collapses", input: "Joe's Barber & Co.", expected: "joe-s-barber-co"},
		{name: "leading and trailing noise trimmed", input: "  The Chop Shop!  ", expected: "the-chop-shop"},
		{name: "digits survive", input: "Cuts 24/7", expected: "cuts-24-7"},
		{name: "empty input", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.Slugify(tt.input))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "shops:shop-1:slots", shared.BuildCacheKey("shops", "shop-1", "slots"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := shared.FilterByID("shop-1", "id", "shops")

	first := shared.BuildCacheKeyWithQuery("shops", params, filter)
	second := shared.BuildCacheKeyWithQuery("shops", params, filter)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "shops:")

	other := shared.BuildCacheKeyWithQuery("shops", dto.QueryParams{Page: 2, Limit: 10}, filter)
	assert.NotEqual(t, first, other)
}

func ptr[T any](v T) *T {
	return &v
}
