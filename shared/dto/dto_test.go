package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"
	"trimly/shared/constant"
	"trimly/shared/dto"
	"trimly/shared/model"
	"trimly/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "owner@example.com",
		ModifiedBy: "admin@example.com",
	})

	assert.Equal(t, timezone.Format(createdAt, constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, timezone.Format(modifiedAt, constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "owner@example.com", metadata.CreatedBy)
	assert.Equal(t, "admin@example.com", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name          string
		target        string
		applyDefaults bool
		expected      dto.QueryParams
	}{
		{
			name:     "all parameters set",
			target:   "/v1/shops?page=2&limit=20&sort_by=name&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: "ASC"},
		},
		{
			name:          "empty query with defaults applied",
			target:        "/v1/shops",
			applyDefaults: true,
			expected:      dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "empty query without defaults",
			target:   "/v1/shops",
			expected: dto.QueryParams{},
		},
		{
			name:          "malformed numbers fall back to defaults",
			target:        "/v1/shops?page=two&limit=-5",
			applyDefaults: true,
			expected:      dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "unknown sort direction is dropped",
			target:   "/v1/shops?sort_by=rating&sort_dir=sideways",
			expected: dto.QueryParams{SortBy: "rating"},
		},
		{
			name:          "partial parameters keep defaults for the rest",
			target:        "/v1/shops?page=3&sort_by=created_at&sort_dir=DESC",
			applyDefaults: true,
			expected:      dto.QueryParams{Page: 3, Limit: constant.DefaultValueLimit, SortBy: "created_at", SortDir: "DESC"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := &dto.QueryParams{}
			params.FromRequest(httptest.NewRequest("GET", tt.target, nil), tt.applyDefaults)

			assert.Equal(t, tt.expected, *params)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality",
			filter:    dto.Filter{Field: "status", Value: "ACTIVE", Operator: dto.FilterOperatorEq},
			wantWhere: "status = :status",
			wantArgs:  map[string]any{"status": "ACTIVE"},
		},
		{
			name:      "table-qualified column",
			filter:    dto.Filter{Field: "shop_id", Table: "bookings", Value: "shop-1", Operator: dto.FilterOperatorEq},
			wantWhere: "bookings.shop_id = :shop_id",
			wantArgs:  map[string]any{"shop_id": "shop-1"},
		},
		{
			name:      "arg name override",
			filter:    dto.Filter{ArgName: "date_from", Field: "date", Value: "2026-03-14", Operator: dto.FilterOperatorGreaterEq},
			wantWhere: "date >= :date_from",
			wantArgs:  map[string]any{"date_from": "2026-03-14"},
		},
		{
			name:      "like wraps the value in wildcards",
			filter:    dto.Filter{Field: "name", Value: "fade", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(name) LIKE LOWER(:name) ",
			wantArgs:  map[string]any{"name": "%fade%"},
		},
		{
			name:      "in expands slice elements",
			filter:    dto.Filter{Field: "status", Value: []string{"PENDING", "CONFIRMED"}, Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0, :status_1) ",
			wantArgs:  map[string]any{"status_0": "PENDING", "status_1": "CONFIRMED"},
		},
		{
			name:      "is null takes no arguments",
			filter:    dto.Filter{Field: "deleted_at", Operator: dto.FilterIsNull},
			wantWhere: "deleted_at IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator yields nothing",
			filter:    dto.Filter{Field: "status", Value: "ACTIVE", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("nested groups combine with their own operators", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "shop_id", Value: "shop-1", Operator: dto.FilterOperatorEq},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{Field: "status", Value: "PENDING", Operator: dto.FilterOperatorEq},
						dto.Filter{ArgName: "status_confirmed", Field: "status", Value: "CONFIRMED", Operator: dto.FilterOperatorEq},
					},
				},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(shop_id = :shop_id AND (status = :status OR status = :status_confirmed))", where)
		assert.Equal(t, map[string]any{
			"shop_id":          "shop-1",
			"status":           "PENDING",
			"status_confirmed": "CONFIRMED",
		}, args)
	})
}
